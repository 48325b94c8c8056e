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
	"errors"
	"fmt"
	"io/fs"

	"github.com/talmoqbil/aws-threat-detection/utilities/ctl"
	"github.com/talmoqbil/aws-threat-detection/utilities/det"
	"github.com/talmoqbil/aws-threat-detection/utilities/gcs"
)

// processObject drives one object to done, or returns why it errored
// Counters are only incremented for objects that were not canceled.
func (orchestrator *Orchestrator) processObject(ctx context.Context, ref ctl.ObjectReference, c *counters) (objectError *ObjectError) {
	stage := StageFetching
	fail := func(kind Kind, err error) *ObjectError {
		return &ObjectError{Ref: ref, Stage: stage, Kind: kind, Err: err}
	}
	defer func() {
		if r := recover(); r != nil {
			objectError = fail(KindUnexpected, fmt.Errorf("panic: %v", r))
		}
	}()

	if err := ctx.Err(); err != nil {
		return fail(KindCanceled, err)
	}
	data, err := orchestrator.Fetcher.Get(ctx, ref)
	if err != nil {
		return fail(classifyFetchError(ctx, err), err)
	}

	stage = StageDecoding
	var noRecords bool
	events, err := ctl.Decode(ctl.RawPayload{Data: data, Encoding: ctl.GetEncoding(ref.Name)})
	if err != nil {
		if !errors.Is(err, ctl.ErrFormat) {
			return fail(KindDecode, err)
		}
		noRecords = true
	}

	stage = StageScanning
	var matches []det.Match
	for _, event := range events {
		if match := orchestrator.RuleSet.Evaluate(event); match != nil {
			matches = append(matches, *match)
		}
	}

	stage = StageDispatching
	var delivered, duplicate int64
	var deliveryErrors []error
	for _, match := range matches {
		if err := ctx.Err(); err != nil {
			return fail(KindCanceled, err)
		}
		result := orchestrator.Dispatcher.Dispatch(ctx, match)
		switch {
		case result.Err != nil:
			deliveryErrors = append(deliveryErrors, result.Err)
		case result.Duplicate:
			duplicate++
		case result.Delivered:
			delivered++
		}
	}
	if len(deliveryErrors) > 0 && ctx.Err() != nil {
		return fail(KindCanceled, ctx.Err())
	}

	if noRecords {
		c.noRecords.Add(1)
	}
	c.events.Add(int64(len(events)))
	c.matches.Add(int64(len(matches)))
	c.delivered.Add(delivered)
	c.duplicate.Add(duplicate)

	if len(deliveryErrors) > 0 {
		return fail(KindDelivery, fmt.Errorf("%d of %d alerts not delivered: %w", len(deliveryErrors), len(matches), errors.Join(deliveryErrors...)))
	}
	return nil
}

func classifyFetchError(ctx context.Context, err error) Kind {
	switch {
	case ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		return KindCanceled
	case errors.Is(err, gcs.ErrNotFound) || errors.Is(err, fs.ErrNotExist):
		return KindNotFound
	case errors.Is(err, gcs.ErrAccessDenied) || errors.Is(err, fs.ErrPermission):
		return KindAccessDenied
	}
	return KindFetch
}
