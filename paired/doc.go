// Copyright 2025 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package paired implements reading paired-line vocabulary files.
//
// A paired-line file is a hand written list of records. Each record comes in
// three lines:
//  1. The headword. A single uppercase letter marks the stressed letter,
//     e.g. "вОда".
//  2. The translation.
//  3. A separator line. Its contents are ignored.
//
// Files without separator lines can be read with [SeparatorBlank], which
// only drops blank lines between records.
package paired
