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
Package det evaluates audit events against detection rules.

A rule matches on the exact, case sensitive, event name. The rule set is keyed by event
name so one event yields at most one match.

A rule may carry a Rego condition narrowing the match. The condition module must be in
package detection.condition and define a boolean "match" rule, evaluated with the raw audit
record as input:

	package detection.condition

	match {
	    not input.userIdentity.type == "AWSService"
	}

An undefined match is no match. A body reading a field the record may lack is undefined for
such records, so exclusions are written with "not" to keep matching them.

When the condition cannot be evaluated the rule fails open: the match is kept and flagged
with the evaluation error.
*/
package det
