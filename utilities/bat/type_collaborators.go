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

	"github.com/talmoqbil/aws-threat-detection/utilities/alr"
	"github.com/talmoqbil/aws-threat-detection/utilities/ctl"
	"github.com/talmoqbil/aws-threat-detection/utilities/det"
)

// Fetcher reads the raw bytes of an object
type Fetcher interface {
	Get(ctx context.Context, ref ctl.ObjectReference) ([]byte, error)
}

// Evaluator returns the match of an event, nil when none
type Evaluator interface {
	Evaluate(event ctl.AuditEvent) *det.Match
}

// Dispatcher delivers one match
type Dispatcher interface {
	Dispatch(ctx context.Context, match det.Match) alr.DeliveryResult
}
