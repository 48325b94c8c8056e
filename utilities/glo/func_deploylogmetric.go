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

package glo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"google.golang.org/api/googleapi"
	"google.golang.org/api/logging/v2"

	"github.com/talmoqbil/aws-threat-detection/utilities/erm"
)

const (
	getRetries = 3
	retryWait  = 2 * time.Second
)

// DeployLogMetric creates the log based metric, or updates it when it differs
// With checkOnly a missing or different metric is an error and nothing is written.
func DeployLogMetric(ctx context.Context, projectMetricsService *logging.ProjectsMetricsService, logMetric *logging.LogMetric, checkOnly bool) (err error) {
	var retrievedLogMetric *logging.LogMetric
	for i := 0; i < getRetries; i++ {
		retrievedLogMetric, err = projectMetricsService.Get(logMetric.Name).Context(ctx).Do()
		if err == nil || erm.IsNotTransientElseWait(err, retryWait) {
			break
		}
	}
	if err != nil {
		var apiErr *googleapi.Error
		if !errors.As(err, &apiErr) || apiErr.Code != http.StatusNotFound {
			return fmt.Errorf("projectMetricsService.Get %v", err)
		}
		if checkOnly {
			return fmt.Errorf("glo log based metric NOT found %s", logMetric.Name)
		}
		i := strings.Index(logMetric.Name, "/metrics/")
		if i < 0 {
			return fmt.Errorf("glo log metric name %s not like projects/x/metrics/y", logMetric.Name)
		}
		toCreate := *logMetric
		toCreate.Name = logMetric.Name[i+len("/metrics/"):]
		createdLogMetric, err := projectMetricsService.Create(logMetric.Name[:i], &toCreate).Context(ctx).Do()
		if err != nil {
			return fmt.Errorf("projectMetricsService.Create %v", err)
		}
		log.Printf("glo metric created %s", createdLogMetric.Name)
		return nil
	}

	err = checkLogMetric(logMetric, retrievedLogMetric)
	if err == nil {
		log.Printf("glo found log metric %s", retrievedLogMetric.Name)
		return nil
	}
	if checkOnly {
		return err
	}
	updatedLogMetric, err := projectMetricsService.Update(logMetric.Name, logMetric).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("projectMetricsService.Update %v", err)
	}
	log.Printf("glo metric updated %s", updatedLogMetric.Name)
	return nil
}
