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
	"errors"
	"fmt"
	"net/http"

	"cloud.google.com/go/storage"
	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// classifyError wraps storage errors with ErrNotFound or ErrAccessDenied when they are such
func classifyError(err error, what string) error {
	if errors.Is(err, storage.ErrObjectNotExist) || errors.Is(err, storage.ErrBucketNotExist) {
		return fmt.Errorf("%w: %s %v", ErrNotFound, what, err)
	}
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s %v", ErrNotFound, what, err)
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %s %v", ErrAccessDenied, what, err)
		}
	}
	switch status.Code(err) {
	case codes.NotFound:
		return fmt.Errorf("%w: %s %v", ErrNotFound, what, err)
	case codes.PermissionDenied, codes.Unauthenticated:
		return fmt.Errorf("%w: %s %v", ErrAccessDenied, what, err)
	}
	return fmt.Errorf("%s %w", what, err)
}
