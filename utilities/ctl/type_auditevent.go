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

// UnknownActor replaces a missing actor identity
const UnknownActor = "Unknown"

// RecordsFieldName top level field holding the batch records
const RecordsFieldName = "Records"

// AuditEvent one normalized audit record
// Fields keeps the whole record for rules needing more than the typed fields.
type AuditEvent struct {
	EventName          string                 `json:"eventName"`
	Actor              string                 `json:"actor"`
	EventID            string                 `json:"eventID,omitempty"`
	EventSource        string                 `json:"eventSource,omitempty"`
	EventTime          time.Time              `json:"eventTime,omitempty"`
	AWSRegion          string                 `json:"awsRegion,omitempty"`
	SourceIPAddress    string                 `json:"sourceIPAddress,omitempty"`
	RecipientAccountID string                 `json:"recipientAccountId,omitempty"`
	Fields             map[string]interface{} `json:"fields,omitempty"`
}
