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
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/talmoqbil/aws-threat-detection/utilities/alr"
	"github.com/talmoqbil/aws-threat-detection/utilities/ctl"
	"github.com/talmoqbil/aws-threat-detection/utilities/det"
)

type fakeFetcher struct {
	objects     map[string][]byte
	errs        map[string]error
	panics      map[string]bool
	delay       time.Duration
	calls       atomic.Int64
	inFlight    atomic.Int64
	maxInFlight atomic.Int64
}

func (f *fakeFetcher) Get(ctx context.Context, ref ctl.ObjectReference) ([]byte, error) {
	f.calls.Add(1)
	n := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		max := f.maxInFlight.Load()
		if n <= max || f.maxInFlight.CompareAndSwap(max, n) {
			break
		}
	}
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if f.panics[ref.Name] {
		panic(fmt.Sprintf("reader exploded on %s", ref.Name))
	}
	if err, ok := f.errs[ref.Name]; ok {
		return nil, err
	}
	data, ok := f.objects[ref.Name]
	if !ok {
		return nil, fmt.Errorf("no fake object %s", ref.Name)
	}
	return data, nil
}

type fakeDispatcher struct {
	mu       sync.Mutex
	failOn   map[string]bool
	dupOn    map[string]bool
	messages []string
}

func (d *fakeDispatcher) Dispatch(ctx context.Context, match det.Match) alr.DeliveryResult {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.messages = append(d.messages, match.Message)
	if d.failOn[match.Event.EventName] {
		return alr.DeliveryResult{Err: fmt.Errorf("%w: throttled", alr.ErrDelivery)}
	}
	if d.dupOn[match.Event.EventName] {
		return alr.DeliveryResult{Duplicate: true}
	}
	return alr.DeliveryResult{Delivered: true}
}

func (d *fakeDispatcher) count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.messages)
}
