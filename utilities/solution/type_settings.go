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

package solution

// Settings settings common to all services / all instances
type Settings struct {
	Hosting struct {
		ProjectID  string            `yaml:"projectID,omitempty" valid:"isNotZeroValue"`
		ProjectIDs map[string]string `yaml:"projectIDs"`
		GCS        struct {
			Buckets struct {
				AuditLogs struct {
					Name  string            `yaml:",omitempty"`
					Names map[string]string `yaml:"names"`
				} `yaml:"auditLogs"`
			} `yaml:"buckets"`
		} `yaml:"gcs"`
		Pubsub struct {
			TopicNames struct {
				SecurityAlerts string `yaml:"securityAlerts" valid:"isNotZeroValue"`
			} `yaml:"topicNames"`
		} `yaml:"pubsub"`
		FireStore struct {
			CollectionIDs struct {
				AlertClaims string `yaml:"alertClaims"`
			} `yaml:"collectionIDs"`
		} `yaml:"firestore"`
	} `yaml:"hosting"`
	Detection struct {
		EventNames      []string `yaml:"eventNames"`
		RulesFilePath   string   `yaml:"rulesFilePath"`
		ObjectNameRegex string   `yaml:"objectNameRegex" valid:"isRegexp"`
		MaxConcurrency  int      `yaml:"maxConcurrency" valid:"isPositive"`
	} `yaml:"detection"`
}
