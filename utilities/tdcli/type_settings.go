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

package tdcli

// settings flags and environment defaults of one run
type settings struct {
	RulesFilePath string `env:"RULES_FILE_PATH"`
	EventNames    string `env:"MONITORED_EVENT_NAMES"`
	TopicName     string `env:"ALERT_TOPIC_NAME"`
	ProjectID     string `env:"GCP_PROJECT"`
	Concurrency   int    `env:"MAX_CONCURRENCY" envDefault:"4"`
	Publish       bool
	DumpRulesPath string
	SetupMetrics  bool
	CheckMetrics  bool
	Arguments     []string
}
