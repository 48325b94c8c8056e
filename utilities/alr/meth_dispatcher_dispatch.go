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
	"fmt"
	"time"

	"github.com/talmoqbil/aws-threat-detection/utilities/det"
	"github.com/talmoqbil/aws-threat-detection/utilities/glo"
)

const releaseTimeout = 10 * time.Second

// Dispatch publishes one alert for the match
func (dispatcher *Dispatcher) Dispatch(ctx context.Context, match det.Match) DeliveryResult {
	if dispatcher.Publisher == nil {
		return DeliveryResult{Err: fmt.Errorf("%w: rule %s: no publisher", ErrDelivery, match.RuleID)}
	}

	var key string
	if dispatcher.Claimer != nil {
		key = ClaimKey(match)
	}
	if key != "" {
		claimed, err := dispatcher.Claimer.Claim(ctx, key)
		if err != nil {
			dispatcher.log(glo.Entry{
				Severity:    "WARNING",
				Message:     "claim_failed",
				Description: fmt.Sprintf("rule %s event %s alerting without claim: %v", match.RuleID, match.Event.EventID, err),
				RuleID:      match.RuleID,
			})
			key = ""
		} else if !claimed {
			return DeliveryResult{Duplicate: true}
		}
	}

	err := dispatcher.Publisher.Publish(ctx, dispatcher.Channel, Subject, match.Message)
	if err != nil {
		if key != "" {
			releaseCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
			defer cancel()
			if releaseErr := dispatcher.Claimer.Release(releaseCtx, key); releaseErr != nil {
				dispatcher.log(glo.Entry{
					Severity:    "WARNING",
					Message:     "claim_release_failed",
					Description: fmt.Sprintf("rule %s event %s: %v", match.RuleID, match.Event.EventID, releaseErr),
					RuleID:      match.RuleID,
				})
			}
		}
		return DeliveryResult{Err: fmt.Errorf("%w: rule %s channel %s: %v", ErrDelivery, match.RuleID, dispatcher.Channel, err)}
	}
	return DeliveryResult{Delivered: true}
}
