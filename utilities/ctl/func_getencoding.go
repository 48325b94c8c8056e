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

package ctl

import "strings"

// GetEncoding derives the payload encoding from an object name
// Suffix matching is case sensitive, unknown suffixes are plain.
func GetEncoding(objectName string) Encoding {
	switch {
	case strings.HasSuffix(objectName, ".gz"):
		return EncodingGzip
	case strings.HasSuffix(objectName, ".zst"):
		return EncodingZstd
	default:
		return EncodingPlain
	}
}
