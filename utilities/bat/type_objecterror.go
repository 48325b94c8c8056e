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

package bat

import (
	"fmt"

	"github.com/talmoqbil/aws-threat-detection/utilities/ctl"
)

// ObjectError describes why an object errored and at which stage
type ObjectError struct {
	Ref   ctl.ObjectReference
	Stage Stage
	Kind  Kind
	Err   error
}

func (objectError ObjectError) Error() string {
	return fmt.Sprintf("%s %s at %s: %v", objectError.Ref, objectError.Kind, objectError.Stage, objectError.Err)
}

func (objectError ObjectError) Unwrap() error {
	return objectError.Err
}
