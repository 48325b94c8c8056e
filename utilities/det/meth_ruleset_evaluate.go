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
	"context"
	"fmt"

	"github.com/open-policy-agent/opa/rego"
	"github.com/talmoqbil/aws-threat-detection/utilities/ctl"
)

// Evaluate returns the match for an audit event, nil when no rule applies
// Pure in memory evaluation, safe for concurrent use.
func (ruleSet *RuleSet) Evaluate(event ctl.AuditEvent) *Match {
	if ruleSet == nil || event.EventName == "" {
		return nil
	}
	compiled, ok := ruleSet.rules[event.EventName]
	if !ok {
		return nil
	}
	match := &Match{
		RuleID:  compiled.rule.ID,
		Event:   event,
		Message: fmt.Sprintf(MessageFormat, event.EventName, event.Actor),
	}
	if compiled.condition == nil {
		return match
	}
	input := event.Fields
	if input == nil {
		input = map[string]interface{}{}
	}
	resultSet, err := compiled.condition.Eval(context.Background(), rego.EvalInput(input))
	if err != nil {
		match.ConditionError = err.Error()
		return match
	}
	if !resultSet.Allowed() {
		return nil
	}
	return match
}
