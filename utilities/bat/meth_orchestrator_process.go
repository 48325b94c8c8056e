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
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/talmoqbil/aws-threat-detection/utilities/ctl"
)

type counters struct {
	noRecords atomic.Int64
	events    atomic.Int64
	matches   atomic.Int64
	delivered atomic.Int64
	duplicate atomic.Int64
}

// Process all objects of one invocation
// No retries here: transient failures surface in the outcome.
func (orchestrator *Orchestrator) Process(ctx context.Context, refs []ctl.ObjectReference) Outcome {
	if len(refs) == 0 {
		return Outcome{Status: StatusNoOp}
	}
	maxConcurrency := orchestrator.MaxConcurrency
	if maxConcurrency <= 0 {
		maxConcurrency = DefaultMaxConcurrency
	}

	var c counters
	objectErrors := make([]*ObjectError, len(refs))
	var g errgroup.Group
	g.SetLimit(maxConcurrency)
	for i, ref := range refs {
		i, ref := i, ref
		g.Go(func() error {
			objectErrors[i] = orchestrator.processObject(ctx, ref, &c)
			return nil
		})
	}
	_ = g.Wait()

	outcome := Outcome{
		ObjectCount:    len(refs),
		NoRecordsCount: int(c.noRecords.Load()),
		EventCount:     c.events.Load(),
		MatchCount:     c.matches.Load(),
		DeliveredCount: c.delivered.Load(),
		DuplicateCount: c.duplicate.Load(),
	}
	outcome.States = make([]Stage, len(refs))
	for i, objectError := range objectErrors {
		if objectError != nil {
			outcome.States[i] = StageErrored
			outcome.Errors = append(outcome.Errors, *objectError)
			continue
		}
		outcome.States[i] = StageDone
	}
	switch len(outcome.Errors) {
	case 0:
		outcome.Status = StatusSuccess
	case len(refs):
		outcome.Status = StatusFailure
	default:
		outcome.Status = StatusPartialFailure
	}
	return outcome
}
