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
Package threatdetection real-time threat detection on AWS CloudTrail logs

## What

Inspect AWS CloudTrail log batches as they land in a Google Cloud Storage bucket and publish an alert
for each sensitive account management action found in them: by default DeleteBucketPolicy,
CreateUser and AttachRolePolicy.

## How

- services/detectthreats: cloud function triggered by GCS or by a storage notification relayed by Pub/Sub
- utilities/bat: per invocation orchestration, one object failing does not fail the others
- utilities/ctl: gzip, zstd or plain CloudTrail batches decoded into audit events
- utilities/det: detection rules keyed by event name, optional Rego condition
- utilities/alr: one alert per match on a Pub/Sub topic, optional Firestore claims against redelivery
- cmd/tdcli: replay the detection on local files, folders or gs:// objects

## Alert

Subject "AWS Security Alert", body "⚠️ Suspicious activity detected: {eventName} by {arn}",
"Unknown" when the event carries no user identity arn.
*/
package threatdetection
