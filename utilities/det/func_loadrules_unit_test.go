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

package det

import (
	"testing"
)

func TestUnitLoadRules(t *testing.T) {
	var testCases = []struct {
		name          string
		rulesFilePath string
		eventNames    []string
		wantSource    string
		wantLen       int
		wantErr       bool
	}{
		{name: "file", rulesFilePath: "testdata/rules.yaml", eventNames: []string{"StopLogging"}, wantSource: "testdata/rules.yaml", wantLen: 3},
		{name: "eventNames", eventNames: []string{"StopLogging"}, wantSource: SourceEventNames, wantLen: 1},
		{name: "default", wantSource: SourceDefault, wantLen: 3},
		{name: "missingFile", rulesFilePath: "testdata/nope.yaml", wantErr: true},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			rules, source, err := LoadRules(tc.rulesFilePath, tc.eventNames)
			if tc.wantErr {
				if err == nil {
					t.Errorf("want error got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if source != tc.wantSource || len(rules) != tc.wantLen {
				t.Errorf("want %s %d got %s %d", tc.wantSource, tc.wantLen, source, len(rules))
			}
		})
	}
}
