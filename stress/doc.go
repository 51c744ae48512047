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

// Package stress converts words between the three forms a stressed word can
// take in a vocabulary:
//  1. Marker encoding: the stressed letter is written in uppercase, e.g.
//     "вОда" or "Дом". This is how paired-line vocabularies record stress.
//  2. Drawn form: lowercase with a combining acute accent (U+0301) right after
//     the stressed letter, e.g. "д\u0301ом". This is how words are displayed.
//  3. Chill form: lowercase without any stress marks, e.g. "дом". This is the
//     vocabulary lookup key.
//
// [Draw] and [Encode] convert between the first two forms. [Strip] and [Key]
// produce the chill form.
package stress
