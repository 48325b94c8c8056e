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
	"errors"
	"reflect"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

const oneRecordBatch = `{"Records":[{"eventName":"CreateUser","userIdentity":{"arn":"arn:aws:iam::123:user/bob"}}]}`

const threeRecordsBatch = `{
  "Records": [
    {"eventVersion": "1.08", "eventName": "CreateUser", "eventSource": "iam.amazonaws.com", "userIdentity": {"type": "IAMUser", "arn": "arn:aws:iam::123:user/bob"}},
    {"eventVersion": "1.08", "eventName": "ListBuckets", "eventSource": "s3.amazonaws.com", "userIdentity": {"type": "IAMUser", "arn": "arn:aws:iam::123:user/alice"}},
    {"eventVersion": "1.08", "eventName": "DeleteBucketPolicy", "eventSource": "s3.amazonaws.com"}
  ]
}`

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	var buffer bytes.Buffer
	writer := gzip.NewWriter(&buffer)
	if _, err := writer.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := writer.Close(); err != nil {
		t.Fatal(err)
	}
	return buffer.Bytes()
}

func zstdBytes(t *testing.T, data []byte) []byte {
	t.Helper()
	encoder, err := zstd.NewWriter(nil)
	if err != nil {
		t.Fatal(err)
	}
	defer encoder.Close()
	return encoder.EncodeAll(data, nil)
}

func TestUnitDecode(t *testing.T) {
	var testCases = []struct {
		name           string
		payload        RawPayload
		wantErr        error
		wantEventNames []string
	}{
		{
			name:           "plainOneRecord",
			payload:        RawPayload{Data: []byte(oneRecordBatch)},
			wantEventNames: []string{"CreateUser"},
		},
		{
			name:           "plainThreeRecords",
			payload:        RawPayload{Data: []byte(threeRecordsBatch)},
			wantEventNames: []string{"CreateUser", "ListBuckets", "DeleteBucketPolicy"},
		},
		{
			name:           "emptyRecords",
			payload:        RawPayload{Data: []byte(`{"Records":[]}`)},
			wantEventNames: []string{},
		},
		{
			name:    "missingRecordsIsFormatError",
			payload: RawPayload{Data: []byte(`{"CloudTrailEvent":"digest"}`)},
			wantErr: ErrFormat,
		},
		{
			name:    "topLevelArrayIsFormatError",
			payload: RawPayload{Data: []byte(`[{"eventName":"CreateUser"}]`)},
			wantErr: ErrFormat,
		},
		{
			name:    "invalidJSONIsDecodeError",
			payload: RawPayload{Data: []byte(`{not json`)},
			wantErr: ErrDecode,
		},
		{
			name:    "emptyPayloadIsDecodeError",
			payload: RawPayload{Data: []byte{}},
			wantErr: ErrDecode,
		},
		{
			name:    "recordsNotAnArrayIsDecodeError",
			payload: RawPayload{Data: []byte(`{"Records":{"eventName":"CreateUser"}}`)},
			wantErr: ErrDecode,
		},
		{
			name:    "recordNotAnObjectIsDecodeError",
			payload: RawPayload{Data: []byte(`{"Records":[{"eventName":"CreateUser"},"oops"]}`)},
			wantErr: ErrDecode,
		},
		{
			name:    "nullRecordIsDecodeError",
			payload: RawPayload{Data: []byte(`{"Records":[null]}`)},
			wantErr: ErrDecode,
		},
		{
			name:    "corruptGzipIsDecodeError",
			payload: RawPayload{Data: []byte(oneRecordBatch), Encoding: EncodingGzip},
			wantErr: ErrDecode,
		},
		{
			name:    "corruptZstdIsDecodeError",
			payload: RawPayload{Data: []byte(oneRecordBatch), Encoding: EncodingZstd},
			wantErr: ErrDecode,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			events, err := Decode(tc.payload)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("want error %v have %v", tc.wantErr, err)
				}
				if events != nil {
					t.Errorf("events should be nil on error, have %d", len(events))
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if events == nil {
				t.Fatalf("events should not be nil on success")
			}
			gotEventNames := make([]string, 0, len(events))
			for _, event := range events {
				gotEventNames = append(gotEventNames, event.EventName)
			}
			if !reflect.DeepEqual(gotEventNames, tc.wantEventNames) {
				t.Errorf("want %v have %v", tc.wantEventNames, gotEventNames)
			}
		})
	}
}

func TestUnitDecodeFormatAndDecodeErrorsAreDistinct(t *testing.T) {
	_, err := Decode(RawPayload{Data: []byte(`{"foo":"bar"}`)})
	if errors.Is(err, ErrDecode) {
		t.Errorf("missing records should not be a decode error")
	}
	_, err = Decode(RawPayload{Data: []byte(`{not json`)})
	if errors.Is(err, ErrFormat) {
		t.Errorf("invalid JSON should not be a format error")
	}
}

func TestUnitDecodeCompressedRoundTrip(t *testing.T) {
	plain, err := Decode(RawPayload{Data: []byte(threeRecordsBatch)})
	if err != nil {
		t.Fatal(err)
	}
	var testCases = []struct {
		name    string
		payload RawPayload
	}{
		{
			name:    "gzip",
			payload: RawPayload{Data: gzipBytes(t, []byte(threeRecordsBatch)), Encoding: EncodingGzip},
		},
		{
			name:    "zstd",
			payload: RawPayload{Data: zstdBytes(t, []byte(threeRecordsBatch)), Encoding: EncodingZstd},
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			compressed, err := Decode(tc.payload)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(plain, compressed) {
				t.Errorf("compressed and plain decoding differ\nplain %+v\ncompressed %+v", plain, compressed)
			}
		})
	}
}

func TestUnitDecodeUnknownSuffixReadsPlain(t *testing.T) {
	events, err := Decode(RawPayload{Data: []byte(oneRecordBatch), Encoding: GetEncoding("batch.json.bz2")})
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 1 || events[0].Actor != "arn:aws:iam::123:user/bob" {
		t.Errorf("unexpected events %+v", events)
	}
}

func TestUnitDecodeExpansionLimit(t *testing.T) {
	// 2 MiB of padding compresses to a few KiB
	padded := append([]byte(`{"Records":[]}`), bytes.Repeat([]byte(" "), 2<<20)...)
	var testCases = []struct {
		name            string
		payload         RawPayload
		maxDecodedBytes int64
		wantErr         error
	}{
		{
			name:            "gzipBomb",
			payload:         RawPayload{Data: gzipBytes(t, padded), Encoding: EncodingGzip},
			maxDecodedBytes: 1 << 20,
			wantErr:         ErrDecode,
		},
		{
			name:            "zstdBomb",
			payload:         RawPayload{Data: zstdBytes(t, padded), Encoding: EncodingZstd},
			maxDecodedBytes: 1 << 20,
			wantErr:         ErrDecode,
		},
		{
			name:            "plainTooLarge",
			payload:         RawPayload{Data: padded, Encoding: EncodingPlain},
			maxDecodedBytes: 1 << 20,
			wantErr:         ErrDecode,
		},
		{
			name:            "gzipWithinLimit",
			payload:         RawPayload{Data: gzipBytes(t, padded), Encoding: EncodingGzip},
			maxDecodedBytes: 16 << 20,
		},
		{
			name:            "zstdWithinLimit",
			payload:         RawPayload{Data: zstdBytes(t, padded), Encoding: EncodingZstd},
			maxDecodedBytes: 16 << 20,
		},
	}
	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			events, err := decode(tc.payload, tc.maxDecodedBytes)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Errorf("want error %v have %v", tc.wantErr, err)
				}
				if events != nil {
					t.Errorf("want no events have %d", len(events))
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if len(events) != 0 {
				t.Errorf("want 0 events have %d", len(events))
			}
		})
	}
}
