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
Package tdcli threat detection command line.

Replays the detection pipeline on log batches outside of the cloud function: local files,
local folders (every file in them) or gs://bucket/object URIs.

By default alerts are only printed. With -publish they are sent to the Pub/Sub topic.
-dump-rules writes the effective rule set as YAML. -setup-metrics creates or updates the log
based metrics of the detectthreats function on -project, -check-metrics only verifies them.
The serialized result is printed last; the exit code is 0 for Success and No records, 1
otherwise, 2 on usage errors.

	tdcli -events CreateUser,AttachRolePolicy ./AWSLogs/ gs://audit-dev-trail/AWSLogs/123/CloudTrail/a.json.gz
*/
package tdcli
