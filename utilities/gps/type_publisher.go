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

package gps

import (
	pubsub "cloud.google.com/go/pubsub/apiv1"
)

// SubjectAttributeName attribute carrying the alert subject
const SubjectAttributeName = "subject"

// Publisher publishes alerts as Pub/Sub messages, the channel being the topic
type Publisher struct {
	client    *pubsub.PublisherClient
	projectID string
}

// NewPublisher builds a publisher on a client created once per process
func NewPublisher(client *pubsub.PublisherClient, projectID string) *Publisher {
	return &Publisher{
		client:    client,
		projectID: projectID,
	}
}
