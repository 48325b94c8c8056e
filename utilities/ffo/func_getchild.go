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

package ffo

import (
	"os"
	"path/filepath"
	"sort"
)

// GetChildFiles returns the sorted paths of the regular files directly under a folder
// Hidden files are skipped.
func GetChildFiles(folderPath string) (childPaths []string, err error) {
	entries, err := os.ReadDir(folderPath)
	if err != nil {
		return childPaths, err
	}
	for _, entry := range entries {
		if entry.IsDir() || entry.Name()[0] == '.' {
			continue
		}
		childPaths = append(childPaths, filepath.Join(folderPath, entry.Name()))
	}
	sort.Strings(childPaths)
	return childPaths, nil
}
