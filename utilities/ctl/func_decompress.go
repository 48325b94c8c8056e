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
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// MaxDecodedBytes upper bound of the uncompressed content of one payload
const MaxDecodedBytes int64 = 1 << 30

// decompress returns the whole uncompressed content of a payload, at most maxBytes long
func decompress(payload RawPayload, maxBytes int64) ([]byte, error) {
	switch payload.Encoding {
	case EncodingGzip:
		reader, err := gzip.NewReader(bytes.NewReader(payload.Data))
		if err != nil {
			return nil, fmt.Errorf("%w: gzip.NewReader %v", ErrDecode, err)
		}
		defer reader.Close()
		return readAtMost(reader, maxBytes, "gzip")
	case EncodingZstd:
		decoder, err := zstd.NewReader(bytes.NewReader(payload.Data), zstd.WithDecoderMaxMemory(uint64(maxBytes)))
		if err != nil {
			return nil, fmt.Errorf("%w: zstd.NewReader %v", ErrDecode, err)
		}
		defer decoder.Close()
		return readAtMost(decoder, maxBytes, "zstd")
	default:
		if int64(len(payload.Data)) > maxBytes {
			return nil, fmt.Errorf("%w: content larger than %d bytes", ErrDecode, maxBytes)
		}
		return payload.Data, nil
	}
}

func readAtMost(reader io.Reader, maxBytes int64, what string) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(reader, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: %s read %v", ErrDecode, what, err)
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("%w: %s content larger than %d bytes", ErrDecode, what, maxBytes)
	}
	return data, nil
}
