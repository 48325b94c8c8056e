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

// DefaultEventNames monitored when no configuration says otherwise
var DefaultEventNames = []string{"DeleteBucketPolicy", "CreateUser", "AttachRolePolicy"}

// DefaultRules one rule per default event name
func DefaultRules() []Rule {
	return RulesFromEventNames(DefaultEventNames)
}

// RulesFromEventNames one unconditional rule per event name, identified by the event name
func RulesFromEventNames(eventNames []string) []Rule {
	rules := make([]Rule, 0, len(eventNames))
	for _, eventName := range eventNames {
		rules = append(rules, Rule{
			ID:        eventName,
			EventName: eventName,
		})
	}
	return rules
}
