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

package alr

import (
	"github.com/google/uuid"
	"github.com/talmoqbil/aws-threat-detection/utilities/det"
)

// ClaimKey name based UUID of the rule and the CloudTrail event id
// Empty when the event has no id: such matches are not claimed.
func ClaimKey(match det.Match) string {
	if match.Event.EventID == "" {
		return ""
	}
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(match.RuleID+"/"+match.Event.EventID)).String()
}
