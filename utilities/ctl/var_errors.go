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

import "errors"

// ErrDecode the payload could not be decompressed or is not valid JSON of the expected types
var ErrDecode = errors.New("decode error")

// ErrFormat the payload is valid JSON but holds no records field: nothing to scan
var ErrFormat = errors.New("format error")
