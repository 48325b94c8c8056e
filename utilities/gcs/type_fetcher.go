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

package gcs

import "cloud.google.com/go/storage"

// DefaultMaxObjectBytes largest log batch read in memory
const DefaultMaxObjectBytes int64 = 256 << 20

// Fetcher reads log batches from GCS
type Fetcher struct {
	client         *storage.Client
	MaxObjectBytes int64
}

// NewFetcher builds a fetcher on a client created once per process
func NewFetcher(client *storage.Client) *Fetcher {
	return &Fetcher{
		client:         client,
		MaxObjectBytes: DefaultMaxObjectBytes,
	}
}
