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
	"fmt"

	"google.golang.org/api/logging/v2"
)

// Log based metric IDs built from the structured entries
const (
	AlertsMetricID         = "detectthreats_alerts"
	LatencyMetricID        = "detectthreats_latency"
	ObjectFailuresMetricID = "detectthreats_object_failures"
)

var commonLabelExtractors = map[string]string{
	"environment":       "EXTRACT(jsonPayload.environment)",
	"instance_name":     "EXTRACT(jsonPayload.instance_name)",
	"microservice_name": "EXTRACT(jsonPayload.microservice_name)",
}

var commonLabels = []*logging.LabelDescriptor{
	{Key: "environment", Description: "dev, qa, prd"},
	{Key: "instance_name", Description: "instance name"},
	{Key: "microservice_name", Description: "microservice name"},
}

// LogMetrics log based metrics on alerts, invocation latency and object failures
func LogMetrics(projectID string) []*logging.LogMetric {
	objectFailuresLabelExtractors := map[string]string{
		"kind":  "EXTRACT(jsonPayload.kind)",
		"stage": "EXTRACT(jsonPayload.stage)",
	}
	for k, v := range commonLabelExtractors {
		objectFailuresLabelExtractors[k] = v
	}
	return []*logging.LogMetric{
		{
			Name:            fmt.Sprintf("projects/%s/metrics/%s", projectID, AlertsMetricID),
			Description:     "Published security alerts",
			Filter:          `resource.type="cloud_function" jsonPayload.message="alert_published"`,
			LabelExtractors: copyLabelExtractors(commonLabelExtractors),
			MetricDescriptor: &logging.MetricDescriptor{
				Labels:     commonLabels,
				MetricKind: "DELTA",
				Unit:       "1",
				ValueType:  "INT64",
			},
		},
		{
			Name:            fmt.Sprintf("projects/%s/metrics/%s", projectID, LatencyMetricID),
			Description:     "Threat detection invocation latency",
			Filter:          `resource.type="cloud_function" severity=NOTICE jsonPayload.message="finish"`,
			ValueExtractor:  "EXTRACT(jsonPayload.latency_seconds)",
			LabelExtractors: copyLabelExtractors(commonLabelExtractors),
			BucketOptions: &logging.BucketOptions{
				ExponentialBuckets: &logging.Exponential{
					GrowthFactor:     1.4142135623731,
					NumFiniteBuckets: 64,
					Scale:            0.01,
				},
			},
			MetricDescriptor: &logging.MetricDescriptor{
				Labels:     commonLabels,
				MetricKind: "DELTA",
				Unit:       "s",
				ValueType:  "DISTRIBUTION",
			},
		},
		{
			Name:            fmt.Sprintf("projects/%s/metrics/%s", projectID, ObjectFailuresMetricID),
			Description:     "Log batches that could not be fully processed",
			Filter:          `resource.type="cloud_function" jsonPayload.message="object_failed"`,
			LabelExtractors: objectFailuresLabelExtractors,
			MetricDescriptor: &logging.MetricDescriptor{
				Labels: append([]*logging.LabelDescriptor{
					{Key: "kind", Description: "not_found, access_denied, fetch, decode, delivery, canceled, unexpected"},
					{Key: "stage", Description: "stage at which the object errored"},
				}, commonLabels...),
				MetricKind: "DELTA",
				Unit:       "1",
				ValueType:  "INT64",
			},
		},
	}
}

func copyLabelExtractors(labelExtractors map[string]string) map[string]string {
	c := make(map[string]string, len(labelExtractors))
	for k, v := range labelExtractors {
		c[k] = v
	}
	return c
}
