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
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/klauspost/compress/gzip"

	"github.com/talmoqbil/aws-threat-detection/utilities/ctl"
	"github.com/talmoqbil/aws-threat-detection/utilities/det"
	"github.com/talmoqbil/aws-threat-detection/utilities/gcs"
)

const bobCreateUser = `{"Records":[{"eventName":"CreateUser","eventID":"e-1","userIdentity":{"arn":"arn:aws:iam::123:user/bob"}}]}`

func newTestOrchestrator(t *testing.T, fetcher Fetcher, dispatcher Dispatcher) *Orchestrator {
	t.Helper()
	ruleSet, err := det.NewRuleSet(det.DefaultRules())
	if err != nil {
		t.Fatalf("det.NewRuleSet %v", err)
	}
	return &Orchestrator{Fetcher: fetcher, RuleSet: ruleSet, Dispatcher: dispatcher}
}

func refs(names ...string) []ctl.ObjectReference {
	var r []ctl.ObjectReference
	for _, name := range names {
		r = append(r, ctl.ObjectReference{Bucket: "trail", Name: name})
	}
	return r
}

func gzipped(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(s)); err != nil {
		t.Fatalf("gzip write %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("gzip close %v", err)
	}
	return buf.Bytes()
}

func TestUnitProcessEmptyIsNoOp(t *testing.T) {
	t.Parallel()
	fetcher := &fakeFetcher{}
	dispatcher := &fakeDispatcher{}
	outcome := newTestOrchestrator(t, fetcher, dispatcher).Process(context.Background(), nil)
	if outcome.Status != StatusNoOp {
		t.Errorf("want %s got %s", StatusNoOp, outcome.Status)
	}
	if fetcher.calls.Load() != 0 || dispatcher.count() != 0 {
		t.Errorf("want no fetch nor dispatch got %d %d", fetcher.calls.Load(), dispatcher.count())
	}
	if got := outcome.Result(); got.Status != ResultNoRecords || got.Message != "" {
		t.Errorf("unexpected result %+v", got)
	}
}

func TestUnitProcessCreateUserDispatchedOnce(t *testing.T) {
	t.Parallel()
	fetcher := &fakeFetcher{objects: map[string][]byte{"a.json": []byte(bobCreateUser)}}
	dispatcher := &fakeDispatcher{}
	outcome := newTestOrchestrator(t, fetcher, dispatcher).Process(context.Background(), refs("a.json"))
	if outcome.Status != StatusSuccess {
		t.Fatalf("want success got %s %v", outcome.Status, outcome.Errors)
	}
	if len(dispatcher.messages) != 1 {
		t.Fatalf("want 1 dispatch got %d", len(dispatcher.messages))
	}
	if !strings.Contains(dispatcher.messages[0], "CreateUser") || !strings.Contains(dispatcher.messages[0], "arn:aws:iam::123:user/bob") {
		t.Errorf("unexpected message %s", dispatcher.messages[0])
	}
	if outcome.EventCount != 1 || outcome.MatchCount != 1 || outcome.DeliveredCount != 1 {
		t.Errorf("unexpected counters %+v", outcome)
	}
	if got := outcome.Result(); got.Status != ResultSuccess {
		t.Errorf("want %s got %+v", ResultSuccess, got)
	}
}

func TestUnitProcessMissingActorIsUnknown(t *testing.T) {
	t.Parallel()
	fetcher := &fakeFetcher{objects: map[string][]byte{"a.json": []byte(`{"Records":[{"eventName":"DeleteBucketPolicy"}]}`)}}
	dispatcher := &fakeDispatcher{}
	outcome := newTestOrchestrator(t, fetcher, dispatcher).Process(context.Background(), refs("a.json"))
	if outcome.Status != StatusSuccess || len(dispatcher.messages) != 1 {
		t.Fatalf("want success with 1 dispatch got %s %d", outcome.Status, len(dispatcher.messages))
	}
	want := "⚠️ Suspicious activity detected: DeleteBucketPolicy by Unknown"
	if dispatcher.messages[0] != want {
		t.Errorf("want %s got %s", want, dispatcher.messages[0])
	}
}

func TestUnitProcessGzipObject(t *testing.T) {
	t.Parallel()
	fetcher := &fakeFetcher{objects: map[string][]byte{"a.json.gz": gzipped(t, bobCreateUser)}}
	dispatcher := &fakeDispatcher{}
	outcome := newTestOrchestrator(t, fetcher, dispatcher).Process(context.Background(), refs("a.json.gz"))
	if outcome.Status != StatusSuccess || dispatcher.count() != 1 {
		t.Errorf("want success with 1 dispatch got %s %d", outcome.Status, dispatcher.count())
	}
}

func TestUnitProcessFormatErrorIsEmptySuccess(t *testing.T) {
	t.Parallel()
	fetcher := &fakeFetcher{objects: map[string][]byte{"digest.json": []byte(`{"digestStartTime":"x"}`)}}
	dispatcher := &fakeDispatcher{}
	outcome := newTestOrchestrator(t, fetcher, dispatcher).Process(context.Background(), refs("digest.json"))
	if outcome.Status != StatusSuccess || len(outcome.Errors) != 0 {
		t.Fatalf("want success got %s %v", outcome.Status, outcome.Errors)
	}
	if got := outcome.Result(); got.Status != ResultNoRecords {
		t.Errorf("want %s got %+v", ResultNoRecords, got)
	}
}

func TestUnitProcessPartialFailure(t *testing.T) {
	t.Parallel()
	fetcher := &fakeFetcher{
		objects: map[string][]byte{
			"good.json":  []byte(bobCreateUser),
			"corrupt.gz": []byte("not gzip at all"),
		},
		errs: map[string]error{
			"missing.json": fmt.Errorf("%w: NewReader", gcs.ErrNotFound),
		},
	}
	dispatcher := &fakeDispatcher{}
	outcome := newTestOrchestrator(t, fetcher, dispatcher).Process(context.Background(), refs("missing.json", "good.json", "corrupt.gz"))
	if outcome.Status != StatusPartialFailure {
		t.Fatalf("want %s got %s", StatusPartialFailure, outcome.Status)
	}
	if dispatcher.count() != 1 {
		t.Errorf("the good object must still be scanned and dispatched, got %d dispatch", dispatcher.count())
	}
	kinds := make(map[string]Kind)
	for _, objectError := range outcome.Errors {
		kinds[objectError.Ref.Name] = objectError.Kind
	}
	if kinds["missing.json"] != KindNotFound || kinds["corrupt.gz"] != KindDecode || len(kinds) != 2 {
		t.Errorf("unexpected error kinds %v", kinds)
	}
	for _, objectError := range outcome.Errors {
		if objectError.Kind == KindDecode && objectError.Stage != StageDecoding {
			t.Errorf("decode error want stage %s got %s", StageDecoding, objectError.Stage)
		}
	}
	result := outcome.Result()
	if result.Status != ResultError || !strings.HasPrefix(result.Message, "2 of 3 objects failed") {
		t.Errorf("unexpected result %+v", result)
	}
	if outcome.Transient() {
		t.Errorf("not found and decode errors are not transient")
	}
}

func TestUnitProcessOneFetchFailureOthersMatch(t *testing.T) {
	t.Parallel()
	fetcher := &fakeFetcher{
		objects: map[string][]byte{
			"a.json": []byte(bobCreateUser),
			"b.json": []byte(`{"Records":[
				{"eventName":"DeleteBucketPolicy","eventID":"e-2","userIdentity":{"arn":"alice"}},
				{"eventName":"ListBuckets","eventID":"e-3","userIdentity":{"arn":"alice"}}]}`),
			"c.json.gz": gzipped(t, `{"Records":[
				{"eventName":"AttachRolePolicy","eventID":"e-4","userIdentity":{"arn":"carol"}},
				{"eventName":"CreateUser","eventID":"e-5","userIdentity":{"arn":"carol"}}]}`),
		},
		errs: map[string]error{
			"missing.json": fmt.Errorf("connection reset"),
		},
	}
	dispatcher := &fakeDispatcher{}
	outcome := newTestOrchestrator(t, fetcher, dispatcher).Process(context.Background(), refs("a.json", "missing.json", "b.json", "c.json.gz"))
	if outcome.Status != StatusPartialFailure {
		t.Fatalf("want %s got %s %v", StatusPartialFailure, outcome.Status, outcome.Errors)
	}
	if len(outcome.Errors) != 1 || outcome.Errors[0].Ref.Name != "missing.json" || outcome.Errors[0].Kind != KindFetch || outcome.Errors[0].Stage != StageFetching {
		t.Fatalf("want one fetch error on missing.json got %v", outcome.Errors)
	}
	if dispatcher.count() != 4 || outcome.MatchCount != 4 || outcome.DeliveredCount != 4 {
		t.Errorf("want one publish per match, 4, got %d dispatch %+v", dispatcher.count(), outcome)
	}
	wantStates := []Stage{StageDone, StageErrored, StageDone, StageDone}
	for i, want := range wantStates {
		if outcome.States[i] != want {
			t.Errorf("object %d want state %s got %s", i, want, outcome.States[i])
		}
	}
	result := outcome.Result()
	if result.Status != ResultError || !strings.HasPrefix(result.Message, "1 of 4 objects failed") {
		t.Errorf("unexpected result %+v", result)
	}
	if !outcome.Transient() {
		t.Errorf("an unclassified fetch error is transient")
	}
}

func TestUnitProcessAllFailed(t *testing.T) {
	t.Parallel()
	fetcher := &fakeFetcher{errs: map[string]error{
		"a.json": fmt.Errorf("%w: NewReader", gcs.ErrAccessDenied),
		"b.json": fmt.Errorf("connection reset"),
	}}
	outcome := newTestOrchestrator(t, fetcher, &fakeDispatcher{}).Process(context.Background(), refs("a.json", "b.json"))
	if outcome.Status != StatusFailure {
		t.Fatalf("want %s got %s", StatusFailure, outcome.Status)
	}
	if !outcome.Transient() {
		t.Errorf("an unclassified fetch error is transient")
	}
}

func TestUnitProcessDeliveryErrorsAfterAllAttempts(t *testing.T) {
	t.Parallel()
	fetcher := &fakeFetcher{objects: map[string][]byte{"a.json": []byte(`{"Records":[
		{"eventName":"CreateUser","userIdentity":{"arn":"alice"}},
		{"eventName":"AttachRolePolicy","userIdentity":{"arn":"bob"}},
		{"eventName":"DeleteBucketPolicy","userIdentity":{"arn":"carol"}}]}`)}}
	dispatcher := &fakeDispatcher{failOn: map[string]bool{"CreateUser": true}}
	outcome := newTestOrchestrator(t, fetcher, dispatcher).Process(context.Background(), refs("a.json"))
	if dispatcher.count() != 3 {
		t.Errorf("want every match attempted got %d", dispatcher.count())
	}
	if outcome.Status != StatusFailure || len(outcome.Errors) != 1 {
		t.Fatalf("want failure with 1 object error got %s %v", outcome.Status, outcome.Errors)
	}
	if outcome.Errors[0].Kind != KindDelivery || outcome.Errors[0].Stage != StageDispatching {
		t.Errorf("unexpected object error %v", outcome.Errors[0])
	}
	if outcome.DeliveredCount != 2 || outcome.MatchCount != 3 {
		t.Errorf("unexpected counters %+v", outcome)
	}
	if !outcome.Transient() {
		t.Errorf("delivery errors are transient")
	}
}

func TestUnitProcessDuplicateCounted(t *testing.T) {
	t.Parallel()
	fetcher := &fakeFetcher{objects: map[string][]byte{"a.json": []byte(bobCreateUser)}}
	dispatcher := &fakeDispatcher{dupOn: map[string]bool{"CreateUser": true}}
	outcome := newTestOrchestrator(t, fetcher, dispatcher).Process(context.Background(), refs("a.json"))
	if outcome.Status != StatusSuccess || outcome.DuplicateCount != 1 || outcome.DeliveredCount != 0 {
		t.Errorf("unexpected outcome %+v", outcome)
	}
}

func TestUnitProcessPanicIsRecovered(t *testing.T) {
	t.Parallel()
	fetcher := &fakeFetcher{
		objects: map[string][]byte{"good.json": []byte(bobCreateUser)},
		panics:  map[string]bool{"bad.json": true},
	}
	dispatcher := &fakeDispatcher{}
	outcome := newTestOrchestrator(t, fetcher, dispatcher).Process(context.Background(), refs("bad.json", "good.json"))
	if outcome.Status != StatusPartialFailure || len(outcome.Errors) != 1 {
		t.Fatalf("want partial failure got %s %v", outcome.Status, outcome.Errors)
	}
	objectError := outcome.Errors[0]
	if objectError.Kind != KindUnexpected || !strings.Contains(objectError.Err.Error(), "reader exploded on bad.json") {
		t.Errorf("unexpected object error %v", objectError)
	}
	if dispatcher.count() != 1 {
		t.Errorf("want the good object dispatched got %d", dispatcher.count())
	}
}

func TestUnitProcessCanceled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	fetcher := &fakeFetcher{objects: map[string][]byte{"a.json": []byte(bobCreateUser), "b.json": []byte(bobCreateUser)}}
	dispatcher := &fakeDispatcher{}
	outcome := newTestOrchestrator(t, fetcher, dispatcher).Process(ctx, refs("a.json", "b.json"))
	if outcome.Status != StatusFailure {
		t.Fatalf("want failure got %s", outcome.Status)
	}
	for _, objectError := range outcome.Errors {
		if objectError.Kind != KindCanceled {
			t.Errorf("want %s got %v", KindCanceled, objectError)
		}
	}
	if outcome.MatchCount != 0 || dispatcher.count() != 0 {
		t.Errorf("canceled objects must not count matches got %d %d", outcome.MatchCount, dispatcher.count())
	}
	if !outcome.Transient() {
		t.Errorf("cancellation is transient")
	}
}

func TestUnitProcessBoundedConcurrency(t *testing.T) {
	t.Parallel()
	objects := make(map[string][]byte)
	var names []string
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf("%02d.json", i)
		objects[name] = []byte(`{"Records":[]}`)
		names = append(names, name)
	}
	fetcher := &fakeFetcher{objects: objects, delay: 10 * time.Millisecond}
	orchestrator := newTestOrchestrator(t, fetcher, &fakeDispatcher{})
	orchestrator.MaxConcurrency = 3
	outcome := orchestrator.Process(context.Background(), refs(names...))
	if outcome.Status != StatusSuccess || outcome.ObjectCount != 12 {
		t.Fatalf("unexpected outcome %+v", outcome)
	}
	if got := fetcher.maxInFlight.Load(); got > 3 {
		t.Errorf("want at most 3 concurrent fetches got %d", got)
	}
	if fetcher.calls.Load() != 12 {
		t.Errorf("want 12 fetches got %d", fetcher.calls.Load())
	}
}
