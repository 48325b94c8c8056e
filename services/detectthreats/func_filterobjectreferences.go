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

package detectthreats

import (
	"regexp"

	"github.com/talmoqbil/aws-threat-detection/utilities/ctl"
)

// filterObjectReferences keeps the references whose name matches, all of them when there is no regex
func filterObjectReferences(refs []ctl.ObjectReference, objectNameRegex *regexp.Regexp) (kept []ctl.ObjectReference, skipped []ctl.ObjectReference) {
	for _, ref := range refs {
		if objectNameRegex == nil || objectNameRegex.MatchString(ref.Name) {
			kept = append(kept, ref)
		} else {
			skipped = append(skipped, ref)
		}
	}
	return kept, skipped
}
