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

// Package vocab implements an in-memory vocabulary of Bulgarian headwords and
// their translations.
//
// Keys never carry stress marks and are always lowercase. The stress of a
// headword is kept in marker encoding and drawn on demand. Entries are sorted
// case-insensitively by key and can be paged through in fixed size batches.
package vocab
