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
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"google.golang.org/api/logging/v2"
	"google.golang.org/api/option"
)

// fakeMetricsAPI in memory projects.metrics endpoint
type fakeMetricsAPI struct {
	mu      sync.Mutex
	metrics map[string]*logging.LogMetric
	writes  []string
}

func (api *fakeMetricsAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	api.mu.Lock()
	defer api.mu.Unlock()
	path := strings.TrimPrefix(r.URL.Path, "/v2/")
	switch r.Method {
	case http.MethodGet:
		logMetric, ok := api.metrics[path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":{"code":404,"message":"metric not found"}}`))
			return
		}
		json.NewEncoder(w).Encode(logMetric)
	case http.MethodPost, http.MethodPut:
		var logMetric logging.LogMetric
		if err := json.NewDecoder(r.Body).Decode(&logMetric); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		key := path
		if r.Method == http.MethodPost {
			key = path + "/" + logMetric.Name
		}
		api.metrics[key] = &logMetric
		api.writes = append(api.writes, r.Method)
		json.NewEncoder(w).Encode(&logMetric)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func newTestMetricsService(t *testing.T, api *fakeMetricsAPI) *logging.ProjectsMetricsService {
	t.Helper()
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)
	loggingService, err := logging.NewService(context.Background(), option.WithEndpoint(srv.URL+"/"), option.WithoutAuthentication())
	if err != nil {
		t.Fatalf("logging.NewService %v", err)
	}
	return logging.NewProjectsMetricsService(loggingService)
}

func TestUnitDeployLogMetric(t *testing.T) {
	ctx := context.Background()
	api := &fakeMetricsAPI{metrics: make(map[string]*logging.LogMetric)}
	metricsService := newTestMetricsService(t, api)
	logMetric := LogMetrics("audit-dev")[0]

	if err := DeployLogMetric(ctx, metricsService, logMetric, true); err == nil {
		t.Errorf("check only on a missing metric want error got nil")
	}
	if err := DeployLogMetric(ctx, metricsService, logMetric, false); err != nil {
		t.Fatalf("create %v", err)
	}
	if err := DeployLogMetric(ctx, metricsService, logMetric, true); err != nil {
		t.Errorf("check only on an up to date metric %v", err)
	}

	changed := *logMetric
	changed.Filter = `jsonPayload.message="alert_duplicate"`
	if err := DeployLogMetric(ctx, metricsService, &changed, true); err == nil {
		t.Errorf("check only on a different metric want error got nil")
	}
	if err := DeployLogMetric(ctx, metricsService, &changed, false); err != nil {
		t.Fatalf("update %v", err)
	}
	want := []string{http.MethodPost, http.MethodPut}
	if strings.Join(api.writes, ",") != strings.Join(want, ",") {
		t.Errorf("want writes %v got %v", want, api.writes)
	}
}

func TestUnitLogMetrics(t *testing.T) {
	t.Parallel()
	logMetrics := LogMetrics("audit-dev")
	wantMessages := map[string]string{
		AlertsMetricID:         `"alert_published"`,
		LatencyMetricID:        `"finish"`,
		ObjectFailuresMetricID: `"object_failed"`,
	}
	if len(logMetrics) != len(wantMessages) {
		t.Fatalf("want %d metrics got %d", len(wantMessages), len(logMetrics))
	}
	for _, logMetric := range logMetrics {
		parts := strings.Split(logMetric.Name, "/")
		metricID := parts[len(parts)-1]
		if !strings.HasPrefix(logMetric.Name, "projects/audit-dev/metrics/") {
			t.Errorf("unexpected name %s", logMetric.Name)
		}
		if !strings.Contains(logMetric.Filter, wantMessages[metricID]) {
			t.Errorf("%s filter %s should select %s entries", metricID, logMetric.Filter, wantMessages[metricID])
		}
		if err := checkLogMetric(logMetric, logMetric); err != nil {
			t.Errorf("%s not equal to itself %v", metricID, err)
		}
	}
}
