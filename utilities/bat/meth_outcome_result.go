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

package bat

import (
	"fmt"
	"sort"
	"strings"
)

// Result reduces the outcome to status and summary message
// Per object descriptors are not part of it, they belong to the logs.
func (outcome Outcome) Result() Result {
	switch outcome.Status {
	case StatusNoOp:
		return Result{Status: ResultNoRecords}
	case StatusSuccess:
		if outcome.ObjectCount > 0 && outcome.NoRecordsCount == outcome.ObjectCount {
			return Result{Status: ResultNoRecords}
		}
		return Result{Status: ResultSuccess}
	}
	kindCounts := make(map[Kind]int)
	for _, objectError := range outcome.Errors {
		kindCounts[objectError.Kind]++
	}
	var parts []string
	for kind, count := range kindCounts {
		parts = append(parts, fmt.Sprintf("%s %d", kind, count))
	}
	sort.Strings(parts)
	return Result{
		Status:  ResultError,
		Message: fmt.Sprintf("%d of %d objects failed: %s", len(outcome.Errors), outcome.ObjectCount, strings.Join(parts, ", ")),
	}
}

// Transient true when at least one object error is worth a redelivery
func (outcome Outcome) Transient() bool {
	for _, objectError := range outcome.Errors {
		if objectError.Kind.Transient() {
			return true
		}
	}
	return false
}
