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

	"cloud.google.com/go/iam"
	pubsub "cloud.google.com/go/pubsub/apiv1"
	pubsubpb "google.golang.org/genproto/googleapis/pubsub/v1"
)

// PublishPermission permission needed on the alert topic
const PublishPermission = "pubsub.topics.publish"

// CheckPublishPermission check the topic exists and the caller may publish on it
func CheckPublishPermission(ctx context.Context, pubSubPulisherClient *pubsub.PublisherClient, projectID string, topicName string) (err error) {
	var getTopicRequest pubsubpb.GetTopicRequest
	getTopicRequest.Topic = TopicPath(projectID, topicName)
	topic, err := pubSubPulisherClient.GetTopic(ctx, &getTopicRequest)
	if err != nil {
		return fmt.Errorf("pubSubPulisherClient.GetTopic %s %v", getTopicRequest.Topic, err)
	}

	var iamHandle *iam.Handle = pubSubPulisherClient.TopicIAM(topic)
	permissions, err := iamHandle.TestPermissions(ctx, []string{PublishPermission})
	if err != nil {
		return fmt.Errorf("iamHandle.TestPermissions %v", err)
	}
	for _, permission := range permissions {
		if permission == PublishPermission {
			return nil
		}
	}
	return fmt.Errorf("Missing permission %s on topic %s", PublishPermission, getTopicRequest.Topic)
}
