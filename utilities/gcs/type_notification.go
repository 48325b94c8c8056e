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
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/talmoqbil/aws-threat-detection/utilities/ctl"
)

// Notification S3 like storage notification envelope
type Notification struct {
	Records []NotificationRecord `json:"Records"`
}

// NotificationRecord one object event of a notification
type NotificationRecord struct {
	EventName string `json:"eventName"`
	S3        struct {
		Bucket struct {
			Name string `json:"name"`
		} `json:"bucket"`
		Object struct {
			Key       string `json:"key"`
			Size      int64  `json:"size"`
			VersionID string `json:"versionId"`
			Sequencer string `json:"sequencer"`
		} `json:"object"`
	} `json:"s3"`
}

// ParseNotification unmarshal a notification envelope
// A document without Records is an empty notification.
func ParseNotification(data []byte) (notification Notification, err error) {
	err = json.Unmarshal(data, &notification)
	if err != nil {
		return notification, fmt.Errorf("json.Unmarshal notification %v", err)
	}
	return notification, nil
}

// ObjectReferences one reference per created object
// Removal events and records without bucket or key are skipped, keys are URL decoded.
func (notification Notification) ObjectReferences() []ctl.ObjectReference {
	var refs []ctl.ObjectReference
	for _, record := range notification.Records {
		if strings.HasPrefix(record.EventName, "ObjectRemoved") {
			continue
		}
		if record.S3.Bucket.Name == "" || record.S3.Object.Key == "" {
			continue
		}
		key, err := url.QueryUnescape(record.S3.Object.Key)
		if err != nil {
			key = record.S3.Object.Key
		}
		refs = append(refs, ctl.ObjectReference{
			Bucket:     record.S3.Bucket.Name,
			Name:       key,
			Generation: record.S3.Object.VersionID,
		})
	}
	return refs
}
