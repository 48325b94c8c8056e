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

const (
	// SettingsFileName settings file read at cold start
	SettingsFileName = "settings.yaml"
	// PathToFunctionCode folder holding the deployed function code and settings
	PathToFunctionCode = "./serverless_function_source_code/"
	// DevelopmentEnvironmentName default environment
	DevelopmentEnvironmentName = "dev"
	// ProductionEnvironmentName production environment
	ProductionEnvironmentName = "prd"
)

// EnvironmentNames accepted environment names
var EnvironmentNames = []string{DevelopmentEnvironmentName, "qa", ProductionEnvironmentName}
