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
Package bat batch orchestrator

Process runs one invocation: for each object reference it fetches the object, decodes it into
audit events, evaluates every event against the rule set and dispatches every match. Objects
are isolated from each other: a failure on one object is recorded in the outcome and the others
carry on. Objects are processed concurrently, at most MaxConcurrency at a time.

Object lifecycle: fetching, decoding, scanning, dispatching, then done, or errored from any of
these stages. Errored is final.

The outcome status is Success when every object is done, PartialFailure when some errored,
Failure when all errored and NoOp when there was nothing to process. Result reduces it to the
{"status", "message"} document returned to the trigger.
*/
package bat
