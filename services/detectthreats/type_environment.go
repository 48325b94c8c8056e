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

package detectthreats

// Environment overrides read from environment variables, empty values override nothing
type Environment struct {
	EnvironmentName     string `env:"RAD_ENVIRONMENT"`
	ProjectID           string `env:"GCP_PROJECT"`
	AlertTopicName      string `env:"ALERT_TOPIC_NAME"`
	MonitoredEventNames string `env:"MONITORED_EVENT_NAMES"`
	RulesFilePath       string `env:"RULES_FILE_PATH"`
	ObjectNameRegex     string `env:"OBJECT_NAME_REGEX"`
	ClaimsCollectionID  string `env:"CLAIMS_COLLECTION_ID"`
	MaxConcurrency      int    `env:"MAX_CONCURRENCY"`
	RetryTimeOutSeconds int64  `env:"RETRY_TIMEOUT_SECONDS"`
}
