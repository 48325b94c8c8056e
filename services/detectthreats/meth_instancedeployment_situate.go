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
	"fmt"

	"github.com/talmoqbil/aws-threat-detection/utilities/solution"
	"github.com/talmoqbil/aws-threat-detection/utilities/str"
	"github.com/talmoqbil/aws-threat-detection/utilities/validater"
)

// Situate complement settings with the environment overrides and the environment situation, then validate them
func (instanceDeployment *InstanceDeployment) Situate(environment Environment) (err error) {
	core := &instanceDeployment.Core
	detection := &core.SolutionSettings.Detection
	hosting := &core.SolutionSettings.Hosting

	if environment.EnvironmentName != "" {
		core.EnvironmentName = environment.EnvironmentName
	}
	if core.EnvironmentName == "" {
		core.EnvironmentName = solution.DevelopmentEnvironmentName
	}
	if !str.Find(solution.EnvironmentNames, core.EnvironmentName) {
		return fmt.Errorf("unknown environment name %s, expected one of %v", core.EnvironmentName, solution.EnvironmentNames)
	}
	if environment.ProjectID != "" {
		hosting.ProjectID = environment.ProjectID
	}
	if environment.AlertTopicName != "" {
		hosting.Pubsub.TopicNames.SecurityAlerts = environment.AlertTopicName
	}
	if environment.ClaimsCollectionID != "" {
		hosting.FireStore.CollectionIDs.AlertClaims = environment.ClaimsCollectionID
	}
	if environment.MonitoredEventNames != "" {
		detection.EventNames = str.SplitTrim(environment.MonitoredEventNames, ",")
	}
	if environment.RulesFilePath != "" {
		detection.RulesFilePath = environment.RulesFilePath
	}
	if environment.ObjectNameRegex != "" {
		detection.ObjectNameRegex = environment.ObjectNameRegex
	}
	if environment.MaxConcurrency != 0 {
		detection.MaxConcurrency = environment.MaxConcurrency
	}
	if environment.RetryTimeOutSeconds != 0 {
		instanceDeployment.Settings.Service.GCF.RetryTimeOutSeconds = environment.RetryTimeOutSeconds
	}
	if instanceDeployment.Settings.Service.GCF.RetryTimeOutSeconds == 0 {
		instanceDeployment.Settings.Service.GCF.RetryTimeOutSeconds = DefaultRetryTimeOutSeconds
	}

	core.SolutionSettings.Situate(core.EnvironmentName)
	return validater.ValidateStruct(instanceDeployment, "detectthreats.InstanceDeployment")
}
