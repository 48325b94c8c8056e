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

/*
Package ctl decodes CloudTrail like audit log batches into audit events

A batch is a JSON document holding a "Records" array, one element per audit record.
Batches may be delivered plain, gzip compressed (".gz" object name suffix) or zstd
compressed (".zst" object name suffix). Any other suffix is read as plain JSON.

The package knows nothing about detection rules.
*/
package ctl
