// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the 'License');
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an 'AS IS' BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package gfs

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Claim creates the claim document, false when it already exists
func (claimStore *ClaimStore) Claim(ctx context.Context, key string) (claimed bool, err error) {
	ttl := claimStore.TTL
	if ttl <= 0 {
		ttl = DefaultClaimTTL
	}
	_, err = claimStore.client.Collection(claimStore.collectionID).Doc(key).Create(ctx, map[string]interface{}{
		"claimedAt": firestore.ServerTimestamp,
		"expireAt":  time.Now().Add(ttl),
	})
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return false, nil
		}
		return false, fmt.Errorf("firestoreClient.Doc(%s/%s).Create %v", claimStore.collectionID, key, err)
	}
	return true, nil
}
