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
	"time"

	"cloud.google.com/go/firestore"
)

// DefaultClaimTTL how long a claim is kept
const DefaultClaimTTL = 7 * 24 * time.Hour

// ClaimStore alert claims in a Firestore collection
type ClaimStore struct {
	client       *firestore.Client
	collectionID string
	TTL          time.Duration
}

// NewClaimStore builds a claim store on a client created once per process
func NewClaimStore(client *firestore.Client, collectionID string) *ClaimStore {
	return &ClaimStore{
		client:       client,
		collectionID: collectionID,
		TTL:          DefaultClaimTTL,
	}
}
