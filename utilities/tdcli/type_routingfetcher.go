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
	"os"

	"github.com/talmoqbil/aws-threat-detection/utilities/bat"
	"github.com/talmoqbil/aws-threat-detection/utilities/ctl"
)

// routingFetcher reads local references from disk and the others from GCS
type routingFetcher struct {
	gcs bat.Fetcher
}

func (fetcher routingFetcher) Get(ctx context.Context, ref ctl.ObjectReference) ([]byte, error) {
	if ref.Bucket == "" {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		data, err := os.ReadFile(ref.Name)
		if err != nil {
			return nil, fmt.Errorf("os.ReadFile %w", err)
		}
		return data, nil
	}
	if fetcher.gcs == nil {
		return nil, fmt.Errorf("no GCS client for %s", ref)
	}
	return fetcher.gcs.Get(ctx, ref)
}
