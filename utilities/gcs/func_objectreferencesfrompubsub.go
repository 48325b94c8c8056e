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

package gcs

import (
	"github.com/talmoqbil/aws-threat-detection/utilities/ctl"
)

// ObjectReferencesFromPubSub extracts object references from a Pub/Sub delivered notification
// GCS Pub/Sub notifications carry the object in attributes, anything else is read as an S3
// like envelope in the message data.
func ObjectReferencesFromPubSub(data []byte, attributes map[string]string) ([]ctl.ObjectReference, error) {
	if attributes["bucketId"] != "" && attributes["objectId"] != "" {
		if eventType := attributes["eventType"]; eventType != "" && eventType != "OBJECT_FINALIZE" {
			return nil, nil
		}
		return []ctl.ObjectReference{
			{
				Bucket:     attributes["bucketId"],
				Name:       attributes["objectId"],
				Generation: attributes["objectGeneration"],
			},
		}, nil
	}
	notification, err := ParseNotification(data)
	if err != nil {
		return nil, err
	}
	return notification.ObjectReferences(), nil
}
