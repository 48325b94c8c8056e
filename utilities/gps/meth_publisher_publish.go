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
	"context"
	"fmt"

	pubsubpb "google.golang.org/genproto/googleapis/pubsub/v1"
)

// Publish one message, body as data and subject as attribute
// The generated client already retries transient publish failures.
func (publisher *Publisher) Publish(ctx context.Context, channel string, subject string, body string) error {
	var pubSubMessage pubsubpb.PubsubMessage
	pubSubMessage.Data = []byte(body)
	pubSubMessage.Attributes = map[string]string{SubjectAttributeName: subject}

	var publishRequest pubsubpb.PublishRequest
	publishRequest.Topic = TopicPath(publisher.projectID, channel)
	publishRequest.Messages = []*pubsubpb.PubsubMessage{&pubSubMessage}

	pubsubResponse, err := publisher.client.Publish(ctx, &publishRequest)
	if err != nil {
		return fmt.Errorf("publisher.client.Publish %s: %v", publishRequest.Topic, err)
	}
	if len(pubsubResponse.MessageIds) != 1 {
		return fmt.Errorf("publisher.client.Publish %s: want 1 message id got %d", publishRequest.Topic, len(pubsubResponse.MessageIds))
	}
	return nil
}
