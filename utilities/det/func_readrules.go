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
	"fmt"

	"github.com/talmoqbil/aws-threat-detection/utilities/ffo"
)

// ReadRules loads rules from a YAML file
func ReadRules(path string) ([]Rule, error) {
	var rules Rules
	err := ffo.ReadUnmarshalYAML(path, &rules)
	if err != nil {
		return nil, fmt.Errorf("ffo.ReadUnmarshalYAML %s %v", path, err)
	}
	return rules.Rules, nil
}
