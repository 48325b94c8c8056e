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

package alr

import (
	"log"

	"github.com/talmoqbil/aws-threat-detection/utilities/glo"
)

// Dispatcher publishes matches to one channel
type Dispatcher struct {
	Publisher Publisher
	Channel   string
	Claimer   Claimer
	LogEntry  func(entry glo.Entry)
}

func (dispatcher *Dispatcher) log(entry glo.Entry) {
	if dispatcher.LogEntry != nil {
		dispatcher.LogEntry(entry)
		return
	}
	log.Println(entry)
}
