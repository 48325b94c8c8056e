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
	"path/filepath"

	"github.com/talmoqbil/aws-threat-detection/utilities/det"
	"github.com/talmoqbil/aws-threat-detection/utilities/solution"
)

// buildRuleSet a relative rules file path is relative to the function code folder
func buildRuleSet(rulesFilePath string, eventNames []string) (ruleSet *det.RuleSet, source string, err error) {
	if rulesFilePath != "" && !filepath.IsAbs(rulesFilePath) {
		rulesFilePath = filepath.Join(solution.PathToFunctionCode, rulesFilePath)
	}
	rules, source, err := det.LoadRules(rulesFilePath, eventNames)
	if err != nil {
		return nil, "", err
	}
	ruleSet, err = det.NewRuleSet(rules)
	if err != nil {
		return nil, "", err
	}
	return ruleSet, source, nil
}
