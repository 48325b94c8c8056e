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

package tdcli

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// printPublisher writes alerts instead of publishing them
type printPublisher struct {
	mu     sync.Mutex
	output io.Writer
}

func (publisher *printPublisher) Publish(ctx context.Context, channel string, subject string, body string) error {
	publisher.mu.Lock()
	defer publisher.mu.Unlock()
	_, err := fmt.Fprintf(publisher.output, "%s [%s] %s\n", subject, channel, body)
	return err
}
