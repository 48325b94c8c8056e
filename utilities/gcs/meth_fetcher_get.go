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

package gcs

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/talmoqbil/aws-threat-detection/utilities/ctl"
)

// Get reads the whole object, as stored: no decompressive transcoding
// The reader is closed on every path.
func (fetcher *Fetcher) Get(ctx context.Context, ref ctl.ObjectReference) ([]byte, error) {
	objectHandle := fetcher.client.Bucket(ref.Bucket).Object(ref.Name).ReadCompressed(true)
	if ref.Generation != "" {
		if generation, err := strconv.ParseInt(ref.Generation, 10, 64); err == nil {
			objectHandle = objectHandle.Generation(generation)
		}
	}
	reader, err := objectHandle.NewReader(ctx)
	if err != nil {
		return nil, classifyError(err, fmt.Sprintf("NewReader %s", ref))
	}
	defer reader.Close()

	maxObjectBytes := fetcher.MaxObjectBytes
	if maxObjectBytes <= 0 {
		maxObjectBytes = DefaultMaxObjectBytes
	}
	data, err := io.ReadAll(io.LimitReader(reader, maxObjectBytes+1))
	if err != nil {
		return nil, classifyError(err, fmt.Sprintf("read %s", ref))
	}
	if int64(len(data)) > maxObjectBytes {
		return nil, fmt.Errorf("object %s larger than %d bytes", ref, maxObjectBytes)
	}
	return data, nil
}
