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

import (
	"github.com/talmoqbil/aws-threat-detection/utilities/solution"
)

// DefaultRetryTimeOutSeconds events older than this are not processed
const DefaultRetryTimeOutSeconds int64 = 600

// InstanceDeployment settings structure
type InstanceDeployment struct {
	Core struct {
		SolutionSettings solution.Settings `yaml:"solution"`
		EnvironmentName  string            `yaml:"environmentName" valid:"isNotZeroValue"`
		InstanceName     string            `yaml:"instanceName"`
		ServiceName      string            `yaml:"serviceName"`
	} `yaml:"core"`
	Settings struct {
		Service struct {
			GCF struct {
				RetryTimeOutSeconds int64 `yaml:"retryTimeOutSeconds" valid:"isPositive"`
			} `yaml:"gcf"`
		} `yaml:"service"`
	} `yaml:"settings"`
}
