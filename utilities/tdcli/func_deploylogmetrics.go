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

import (
	"context"
	"fmt"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/logging/v2"
	"google.golang.org/api/option"

	"github.com/talmoqbil/aws-threat-detection/utilities/glo"
)

func deployLogMetrics(ctx context.Context, projectID string, checkOnly bool) error {
	creds, err := google.FindDefaultCredentials(ctx, "https://www.googleapis.com/auth/logging.admin")
	if err != nil {
		return fmt.Errorf("google.FindDefaultCredentials %v", err)
	}
	loggingService, err := logging.NewService(ctx, option.WithCredentials(creds))
	if err != nil {
		return fmt.Errorf("logging.NewService %v", err)
	}
	projectMetricsService := logging.NewProjectsMetricsService(loggingService)
	for _, logMetric := range glo.LogMetrics(projectID) {
		err = glo.DeployLogMetric(ctx, projectMetricsService, logMetric, checkOnly)
		if err != nil {
			return err
		}
	}
	return nil
}
