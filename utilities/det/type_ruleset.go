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

import (
	"sort"

	"github.com/open-policy-agent/opa/rego"
)

// RuleSet immutable set of rules keyed by event name
type RuleSet struct {
	rules map[string]compiledRule
}

type compiledRule struct {
	rule      Rule
	condition *rego.PreparedEvalQuery
}

// Len number of rules in the set
func (ruleSet *RuleSet) Len() int {
	if ruleSet == nil {
		return 0
	}
	return len(ruleSet.rules)
}

// EventNames monitored event names, sorted
func (ruleSet *RuleSet) EventNames() []string {
	if ruleSet == nil {
		return nil
	}
	eventNames := make([]string, 0, len(ruleSet.rules))
	for eventName := range ruleSet.rules {
		eventNames = append(eventNames, eventName)
	}
	sort.Strings(eventNames)
	return eventNames
}
