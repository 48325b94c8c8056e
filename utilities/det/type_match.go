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

package det

import "github.com/talmoqbil/aws-threat-detection/utilities/ctl"

// MessageFormat alert text, event name then actor
const MessageFormat = "⚠️ Suspicious activity detected: %s by %s"

// Match an audit event matching a detection rule
type Match struct {
	RuleID         string         `json:"ruleID"`
	Event          ctl.AuditEvent `json:"event"`
	Message        string         `json:"message"`
	ConditionError string         `json:"conditionError,omitempty"`
}
