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

/*
Package gcs Google Cloud Storage side of the pipeline

It turns trigger payloads into object references and reads log batches:

- Event: GCS background event delivered to a storage triggered cloud function, one object.

- Notification: storage notification envelope delivered through Pub/Sub, either a GCS
Pub/Sub notification (attributes bucketId, objectId, eventType) or an S3 like
{"Records":[{"s3":{"bucket":{"name":...},"object":{"key":...}}}]} document, many objects.

- Fetcher: reads one object, stored bytes as is, and classifies failures as ErrNotFound or
ErrAccessDenied when possible.
*/
package gcs
