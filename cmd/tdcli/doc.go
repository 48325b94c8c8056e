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
Command tdcli replays threat detection on CloudTrail log batches, see package tdcli.

Environment variables, optionally from a .env file in the working directory:
RULES_FILE_PATH, MONITORED_EVENT_NAMES, ALERT_TOPIC_NAME, GCP_PROJECT, MAX_CONCURRENCY.
*/
package main
