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
	"reflect"
	"strings"

	"google.golang.org/api/logging/v2"
)

// checkLogMetric lists the differences between the wanted and the retrieved log metric
// Fields not set on the wanted metric are not compared.
func checkLogMetric(logMetric, retrievedLogMetric *logging.LogMetric) (err error) {
	var diffs []string
	compare := func(name string, want, have interface{}) {
		if !reflect.DeepEqual(want, have) {
			diffs = append(diffs, fmt.Sprintf("%s\nwant %v\nhave %v", name, want, have))
		}
	}
	compare("description", logMetric.Description, retrievedLogMetric.Description)
	compare("filter", logMetric.Filter, retrievedLogMetric.Filter)
	compare("valueExtractor", logMetric.ValueExtractor, retrievedLogMetric.ValueExtractor)
	if logMetric.LabelExtractors != nil {
		compare("labelExtractors", logMetric.LabelExtractors, retrievedLogMetric.LabelExtractors)
	}
	if logMetric.BucketOptions != nil {
		if retrievedLogMetric.BucketOptions == nil {
			diffs = append(diffs, "bucketOptions not found")
		} else {
			compare("bucketOptions.explicitBuckets", logMetric.BucketOptions.ExplicitBuckets, retrievedLogMetric.BucketOptions.ExplicitBuckets)
			compare("bucketOptions.exponentialBuckets", logMetric.BucketOptions.ExponentialBuckets, retrievedLogMetric.BucketOptions.ExponentialBuckets)
			compare("bucketOptions.linearBuckets", logMetric.BucketOptions.LinearBuckets, retrievedLogMetric.BucketOptions.LinearBuckets)
		}
	}
	if logMetric.MetricDescriptor != nil {
		if retrievedLogMetric.MetricDescriptor == nil {
			diffs = append(diffs, "metricDescriptor not found")
		} else {
			want, have := logMetric.MetricDescriptor, retrievedLogMetric.MetricDescriptor
			compare("metricDescriptor.metricKind", want.MetricKind, have.MetricKind)
			compare("metricDescriptor.unit", want.Unit, have.Unit)
			compare("metricDescriptor.valueType", want.ValueType, have.ValueType)
			for _, label := range want.Labels {
				found := false
				for _, retrievedLabel := range have.Labels {
					if label.Key == retrievedLabel.Key {
						found = true
						compare("metricDescriptor.labels."+label.Key, label.Description, retrievedLabel.Description)
						break
					}
				}
				if !found {
					diffs = append(diffs, fmt.Sprintf("metricDescriptor.labels.%s not found", label.Key))
				}
			}
		}
	}
	if len(diffs) > 0 {
		return fmt.Errorf("glo invalid log based metric configuration:\n%s", strings.Join(diffs, "\n"))
	}
	return nil
}
