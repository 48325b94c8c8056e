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
	"strings"
)

// NewRuleSet checks and compiles rules
// An empty list is valid and never matches.
func NewRuleSet(rules []Rule) (*RuleSet, error) {
	ruleSet := &RuleSet{rules: make(map[string]compiledRule, len(rules))}
	for _, rule := range rules {
		if rule.EventName == "" {
			return nil, fmt.Errorf("rule '%s' has no eventName", rule.ID)
		}
		if rule.ID == "" {
			rule.ID = rule.EventName
		}
		if existing, ok := ruleSet.rules[rule.EventName]; ok {
			return nil, fmt.Errorf("rules '%s' and '%s' both monitor eventName %s", existing.rule.ID, rule.ID, rule.EventName)
		}
		compiled := compiledRule{rule: rule}
		if strings.TrimSpace(rule.Condition) != "" {
			condition, err := compileCondition(context.Background(), rule)
			if err != nil {
				return nil, err
			}
			compiled.condition = condition
		}
		ruleSet.rules[rule.EventName] = compiled
	}
	return ruleSet, nil
}
