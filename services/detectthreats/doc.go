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
Package detectthreats inspects AWS CloudTrail log batches landing in GCS and alerts on sensitive account management actions.

One log batch = many audit events, one alert per event matching a detection rule.

# Triggered by

  - Google Cloud Storage event when a new log batch is written (EntryPoint).
  - PubSub message carrying a storage notification (EntryPointPubSub): either a GCS Pub/Sub
    notification or an S3 like {"Records":[{"s3":...}]} envelope relayed from AWS.

# Instances

One per audit logs bucket.

# Output

  - PubSub messages on the security alerts topic, data "⚠️ Suspicious activity detected: {eventName} by {arn}",
    attribute subject "AWS Security Alert".
  - Optional Firestore alert claims so that a redelivered trigger does not alert twice.
  - One finish log entry per invocation with status Success, Error or No records.

# Cardinality

One-many: one batch, zero to many alerts.

# Automatic retrying

Yes, only when the outcome is transient: unclassified fetch errors, delivery errors, cancellation.
Missing objects, access denied and corrupt batches are not retried.

# Is recurssive

No.

# Required settings

settings.yaml next to the function code, overridable by environment variables:
RAD_ENVIRONMENT, GCP_PROJECT, ALERT_TOPIC_NAME, MONITORED_EVENT_NAMES, RULES_FILE_PATH,
OBJECT_NAME_REGEX, CLAIMS_COLLECTION_ID, MAX_CONCURRENCY, RETRY_TIMEOUT_SECONDS.

# Implementation example

	package p
	import (
	    "context"

	    "github.com/talmoqbil/aws-threat-detection/services/detectthreats"
	    "github.com/talmoqbil/aws-threat-detection/utilities/gcs"
	)
	var global detectthreats.Global
	var ctx = context.Background()

	// EntryPoint is the function to be executed for each cloud function occurence
	func EntryPoint(ctxEvent context.Context, gcsEvent gcs.Event) error {
	    return detectthreats.EntryPoint(ctxEvent, gcsEvent, &global)
	}

	func init() {
	    detectthreats.Initialize(ctx, &global)
	}
*/
package detectthreats
