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

package alr

import (
	"context"
	"sync"
)

type publishCall struct {
	channel string
	subject string
	body    string
}

type fakePublisher struct {
	mu    sync.Mutex
	err   error
	calls []publishCall
}

func (p *fakePublisher) Publish(ctx context.Context, channel string, subject string, body string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, publishCall{channel: channel, subject: subject, body: body})
	return p.err
}

type fakeClaimer struct {
	mu         sync.Mutex
	claimErr   error
	releaseErr error
	claims     map[string]bool
	released   []string
}

func newFakeClaimer() *fakeClaimer {
	return &fakeClaimer{claims: make(map[string]bool)}
}

func (c *fakeClaimer) Claim(ctx context.Context, key string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.claimErr != nil {
		return false, c.claimErr
	}
	if c.claims[key] {
		return false, nil
	}
	c.claims[key] = true
	return true, nil
}

func (c *fakeClaimer) Release(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.released = append(c.released, key)
	delete(c.claims, key)
	return c.releaseErr
}
