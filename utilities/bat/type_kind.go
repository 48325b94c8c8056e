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

// Kind of object error
type Kind string

// Object error kinds
const (
	KindNotFound     Kind = "not_found"
	KindAccessDenied Kind = "access_denied"
	KindFetch        Kind = "fetch"
	KindDecode       Kind = "decode"
	KindDelivery     Kind = "delivery"
	KindCanceled     Kind = "canceled"
	KindUnexpected   Kind = "unexpected"
)

// Transient true when redelivering the trigger may succeed
func (kind Kind) Transient() bool {
	switch kind {
	case KindFetch, KindDelivery, KindCanceled:
		return true
	}
	return false
}
