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

// Status of an invocation
type Status string

// Invocation statuses
const (
	StatusSuccess        Status = "success"
	StatusPartialFailure Status = "partial_failure"
	StatusFailure        Status = "failure"
	StatusNoOp           Status = "no_op"
)

// Outcome of one invocation
// States holds the terminal stage of each object in reference order, StageDone or StageErrored.
type Outcome struct {
	Status         Status
	Errors         []ObjectError
	States         []Stage
	ObjectCount    int
	NoRecordsCount int
	EventCount     int64
	MatchCount     int64
	DeliveredCount int64
	DuplicateCount int64
}
