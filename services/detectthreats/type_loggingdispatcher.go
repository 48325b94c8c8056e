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

package detectthreats

import (
	"context"
	"log"

	"github.com/talmoqbil/aws-threat-detection/utilities/alr"
	"github.com/talmoqbil/aws-threat-detection/utilities/bat"
	"github.com/talmoqbil/aws-threat-detection/utilities/det"
	"github.com/talmoqbil/aws-threat-detection/utilities/glo"
)

// loggingDispatcher logs each published or duplicate alert
type loggingDispatcher struct {
	next     bat.Dispatcher
	logEntry func(entry glo.Entry)
}

func (dispatcher loggingDispatcher) Dispatch(ctx context.Context, match det.Match) alr.DeliveryResult {
	result := dispatcher.next.Dispatch(ctx, match)
	entry := glo.Entry{
		Severity:     "INFO",
		Component:    "alert_dispatcher",
		InvocationID: invocationIDFrom(ctx),
		RuleID:       match.RuleID,
		Description:  match.Message,
	}
	switch {
	case result.Err != nil:
		return result
	case result.Duplicate:
		entry.Message = "alert_duplicate"
	default:
		entry.Message = "alert_published"
		entry.Severity = "NOTICE"
	}
	if match.ConditionError != "" {
		entry.Severity = "WARNING"
		entry.Description += " condition_error " + match.ConditionError
	}
	if dispatcher.logEntry != nil {
		dispatcher.logEntry(entry)
	} else {
		log.Println(entry)
	}
	return result
}
