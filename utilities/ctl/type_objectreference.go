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

package ctl

import "fmt"

// ObjectReference identifies one log batch in object storage
type ObjectReference struct {
	Bucket     string `json:"bucket"`
	Name       string `json:"name"`
	Generation string `json:"generation,omitempty"`
}

// String renders the reference as a gs:// URI, or the bare name for a local file
func (ref ObjectReference) String() string {
	if ref.Bucket == "" {
		return ref.Name
	}
	return fmt.Sprintf("gs://%s/%s", ref.Bucket, ref.Name)
}
