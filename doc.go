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

// Package bgvocab implements loading Bulgarian vocabulary lists in pure Go.
//
// Two source formats are supported:
//  1. Tagged-line exports. Each line wraps a headword and its HTML
//     translation in a fixed width prefix and suffix. Headwords carry
//     combining acute accents (U+0301) on stressed letters. See package
//     tagged.
//  2. Paired-line files. A headword line, where an uppercase letter marks the
//     stressed letter, is followed by a translation line and a separator
//     line. See package paired.
//
// Sources may be compressed with gzip (.gz) or dictzip (.dz).
//
// Loading builds a [vocab.Vocabulary] keyed by the lowercase headword without
// stress marks. Stress is drawn again on demand with package stress.
package bgvocab
