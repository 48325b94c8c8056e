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

// Encoding is the compression of a raw payload, derived from the object name suffix
type Encoding int

const (
	// EncodingPlain uncompressed JSON, also the default for unknown suffixes
	EncodingPlain Encoding = iota
	// EncodingGzip gzip compressed JSON, ".gz" suffix
	EncodingGzip
	// EncodingZstd zstandard compressed JSON, ".zst" suffix
	EncodingZstd
)

// String returns the encoding name used in log entries
func (e Encoding) String() string {
	switch e {
	case EncodingGzip:
		return "gzip"
	case EncodingZstd:
		return "zstd"
	default:
		return "plain"
	}
}

// RawPayload the bytes of one log batch and how they are encoded
type RawPayload struct {
	Data     []byte
	Encoding Encoding
}
