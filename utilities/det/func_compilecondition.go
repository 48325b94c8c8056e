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
)

// ConditionQuery is the Rego query evaluated for rule conditions
const ConditionQuery = "data.detection.condition.match"

func compileCondition(ctx context.Context, rule Rule) (*rego.PreparedEvalQuery, error) {
	r := rego.New(
		rego.Query(ConditionQuery),
		rego.Module(fmt.Sprintf("%s.rego", rule.ID), rule.Condition),
	)
	query, err := r.PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("rule %s r.PrepareForEval %v", rule.ID, err)
	}
	return &query, nil
}
