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

// Rule sources reported by LoadRules besides a file path
const (
	SourceEventNames = "eventNames"
	SourceDefault    = "default"
)

// LoadRules picks the rules: the rules file when set, else the event names when any, else the default rules
func LoadRules(rulesFilePath string, eventNames []string) (rules []Rule, source string, err error) {
	switch {
	case rulesFilePath != "":
		rules, err = ReadRules(rulesFilePath)
		if err != nil {
			return nil, "", err
		}
		return rules, rulesFilePath, nil
	case len(eventNames) > 0:
		return RulesFromEventNames(eventNames), SourceEventNames, nil
	}
	return DefaultRules(), SourceDefault, nil
}
