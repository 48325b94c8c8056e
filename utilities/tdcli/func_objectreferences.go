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
	"fmt"
	"os"
	"strings"

	"github.com/talmoqbil/aws-threat-detection/utilities/ctl"
	"github.com/talmoqbil/aws-threat-detection/utilities/ffo"
)

const gcsScheme = "gs://"

// objectReferences one reference per gs URI, per local file, per file in a local folder
// Local references have an empty bucket.
func objectReferences(arguments []string) (refs []ctl.ObjectReference, err error) {
	for _, argument := range arguments {
		if strings.HasPrefix(argument, gcsScheme) {
			parts := strings.SplitN(strings.TrimPrefix(argument, gcsScheme), "/", 2)
			if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
				return nil, fmt.Errorf("invalid GCS URI %s, expected gs://bucket/object", argument)
			}
			refs = append(refs, ctl.ObjectReference{Bucket: parts[0], Name: parts[1]})
			continue
		}
		fileInfo, err := os.Stat(argument)
		if err != nil {
			return nil, err
		}
		if !fileInfo.IsDir() {
			refs = append(refs, ctl.ObjectReference{Name: argument})
			continue
		}
		childPaths, err := ffo.GetChildFiles(argument)
		if err != nil {
			return nil, err
		}
		for _, childPath := range childPaths {
			refs = append(refs, ctl.ObjectReference{Name: childPath})
		}
	}
	return refs, nil
}

func needsGCS(refs []ctl.ObjectReference) bool {
	for _, ref := range refs {
		if ref.Bucket != "" {
			return true
		}
	}
	return false
}
