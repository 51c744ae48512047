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

// Package tagged implements reading tagged-line vocabulary exports.
//
// A tagged-line export holds one dictionary article per line, wrapped in a
// single XML-ish element of constant length. Each line comes in four parts:
//  1. A fixed prefix, 92 bytes by default, holding the element's opening
//     markup up to the opening quote of the key attribute.
//  2. The key: the headword, possibly with stress marks (U+0301).
//  3. The two character delimiter `">` closing the attribute and the tag.
//  4. The translation markup, followed by a fixed suffix, 10 bytes by
//     default, holding the closing tag.
//
// The translation is HTML and is left as is. Readers flatten it to text for
// display.
package tagged
