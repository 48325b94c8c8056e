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

package ctl

import "time"

// ExtractEvent builds an audit event from one decoded record, never fails
func ExtractEvent(record map[string]interface{}) AuditEvent {
	event := AuditEvent{
		EventName:          getString(record, "eventName"),
		Actor:              UnknownActor,
		EventID:            getString(record, "eventID"),
		EventSource:        getString(record, "eventSource"),
		AWSRegion:          getString(record, "awsRegion"),
		SourceIPAddress:    getString(record, "sourceIPAddress"),
		RecipientAccountID: getString(record, "recipientAccountId"),
		Fields:             record,
	}
	if userIdentity, ok := record["userIdentity"].(map[string]interface{}); ok {
		if arn := getString(userIdentity, "arn"); arn != "" {
			event.Actor = arn
		}
	}
	if eventTime := getString(record, "eventTime"); eventTime != "" {
		if t, err := time.Parse(time.RFC3339, eventTime); err == nil {
			event.EventTime = t
		}
	}
	return event
}

func getString(m map[string]interface{}, key string) string {
	if s, ok := m[key].(string); ok {
		return s
	}
	return ""
}
