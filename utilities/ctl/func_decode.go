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

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Decode turns a raw payload into audit events
// Returns ErrFormat when the document is valid JSON without a records field,
// ErrDecode when it cannot be read or expands past MaxDecodedBytes. Events are nil on any error.
func Decode(payload RawPayload) ([]AuditEvent, error) {
	return decode(payload, MaxDecodedBytes)
}

func decode(payload RawPayload, maxDecodedBytes int64) ([]AuditEvent, error) {
	data, err := decompress(payload, maxDecodedBytes)
	if err != nil {
		return nil, err
	}

	data = bytes.TrimSpace(data)
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: invalid JSON syntax", ErrDecode)
	}
	if len(data) == 0 || data[0] != '{' {
		return nil, fmt.Errorf("%w: top level is not an object", ErrFormat)
	}

	var document map[string]json.RawMessage
	err = json.Unmarshal(data, &document)
	if err != nil {
		return nil, fmt.Errorf("%w: json.Unmarshal document %v", ErrDecode, err)
	}
	recordsJSON, ok := document[RecordsFieldName]
	if !ok {
		return nil, fmt.Errorf("%w: missing %s field", ErrFormat, RecordsFieldName)
	}

	var records []json.RawMessage
	err = json.Unmarshal(recordsJSON, &records)
	if err != nil {
		return nil, fmt.Errorf("%w: %s is not an array %v", ErrDecode, RecordsFieldName, err)
	}

	events := make([]AuditEvent, 0, len(records))
	for i, recordJSON := range records {
		var record map[string]interface{}
		err = json.Unmarshal(recordJSON, &record)
		if err != nil || record == nil {
			return nil, fmt.Errorf("%w: record %d is not an object", ErrDecode, i)
		}
		events = append(events, ExtractEvent(record))
	}
	return events, nil
}
