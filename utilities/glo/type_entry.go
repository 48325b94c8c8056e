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

package glo

import (
	"encoding/json"
	"log"
	"time"
)

// Entry defines a Google Cloud logging structured entry
// https://cloud.google.com/logging/docs/agent/configuration#special-fields
type Entry struct {
	MicroserviceName           string     `json:"microservice_name,omitempty"`
	InstanceName               string     `json:"instance_name,omitempty"`
	Environment                string     `json:"environment,omitempty"`
	Severity                   string     `json:"severity,omitempty"`
	Message                    string     `json:"message"`
	Description                string     `json:"description,omitempty"`
	Now                        *time.Time `json:"now,omitempty"`
	Trace                      string     `json:"logging.googleapis.com/trace,omitempty"`
	Component                  string     `json:"component,omitempty"`
	InitID                     string     `json:"init_id,omitempty"`
	InvocationID               string     `json:"invocation_id,omitempty"`
	TriggeringPubsubID         string     `json:"triggering_pubsub_id,omitempty"`
	TriggeringPubsubTimestamp  *time.Time `json:"triggering_pubsub_timestamp,omitempty"`
	TriggeringPubsubAgeSeconds float64    `json:"triggering_pubsub_age_seconds,omitempty"`
	ObjectName                 string     `json:"object_name,omitempty"`
	Stage                      string     `json:"stage,omitempty"`
	Kind                       string     `json:"kind,omitempty"`
	RuleID                     string     `json:"rule_id,omitempty"`
	Status                     string     `json:"status,omitempty"`
	ObjectCount                int        `json:"object_count,omitempty"`
	EventCount                 int64      `json:"event_count,omitempty"`
	MatchCount                 int64      `json:"match_count,omitempty"`
	DeliveredCount             int64      `json:"delivered_count,omitempty"`
	DuplicateCount             int64      `json:"duplicate_count,omitempty"`
	ErrorCount                 int        `json:"error_count,omitempty"`
	OriginEventTimestamp       *time.Time `json:"origin_event_timestamp,omitempty"`
	LatencySeconds             float64    `json:"latency_seconds,omitempty"`
	LatencyE2ESeconds          float64    `json:"latency_e2e_seconds,omitempty"`
	StepStack                  Steps      `json:"step_stack,omitempty"`
}

// String renders an entry structure to the JSON format expected by Cloud Logging.
func (e Entry) String() string {
	if e.Severity == "" {
		e.Severity = "INFO"
	}
	out, err := json.Marshal(e)
	if err != nil {
		log.Printf("json.Marshal: %v", err)
	}
	return string(out)
}
