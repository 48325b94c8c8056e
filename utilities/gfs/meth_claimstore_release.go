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
)

// Release deletes the claim document, deleting a missing document is not an error
func (claimStore *ClaimStore) Release(ctx context.Context, key string) error {
	_, err := claimStore.client.Collection(claimStore.collectionID).Doc(key).Delete(ctx)
	if err != nil {
		return fmt.Errorf("firestoreClient.Doc(%s/%s).Delete %v", claimStore.collectionID, key, err)
	}
	return nil
}
