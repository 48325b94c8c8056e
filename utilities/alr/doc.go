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
Package alr alert dispatcher

Turns each detection match into exactly one notification on the configured channel, subject
"AWS Security Alert", body the match message. A failed delivery is reported in the
DeliveryResult and never stops the dispatch of other matches.

When a Claimer is configured, a claim is taken on the match before publishing so that an
invocation redelivered by the trigger does not alert twice for the same CloudTrail event.
Claim store failures do not prevent alerting.
*/
package alr
