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

package stress

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Acute is the combining acute accent used to mark the stressed letter.
const Acute = '\u0301'

// folder returns a [transform.Transformer] that removes all stress marks
// from its input.
func folder() transform.Transformer {
	return runes.Remove(runes.Predicate(func(r rune) bool {
		return r == Acute
	}))
}

// Strip returns word with every stress mark removed. Strip is idempotent.
func Strip(word string) string {
	if !strings.ContainsRune(word, Acute) {
		return word
	}
	return strings.Map(func(r rune) rune {
		if r == Acute {
			return -1
		}
		return r
	}, word)
}

// Draw converts a word in marker encoding, where each uppercase letter is a
// stressed letter, into its lowercase drawn form with a stress mark following
// every stressed letter. A word without uppercase letters is returned
// unchanged.
func Draw(word string) string {
	if strings.IndexFunc(word, unicode.IsUpper) < 0 {
		return word
	}

	w := []rune(word)
	var b strings.Builder
	b.Grow(len(word) + 2)
	for i, r := range w {
		if !unicode.IsUpper(r) {
			b.WriteRune(r)
			continue
		}
		b.WriteRune(unicode.ToLower(r))
		// Don't double up on a mark that is already drawn.
		if i+1 < len(w) && w[i+1] == Acute {
			continue
		}
		b.WriteRune(Acute)
	}
	return b.String()
}

// Encode is the inverse of Draw. It lowercases word and converts every letter
// followed by a stress mark into an uppercase letter without the mark.
func Encode(word string) string {
	w := []rune(word)
	var b strings.Builder
	b.Grow(len(word))
	for i, r := range w {
		if r == Acute {
			continue
		}
		r = unicode.ToLower(r)
		if i+1 < len(w) && w[i+1] == Acute {
			r = unicode.ToUpper(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Key returns the chill form of word used for lookup: stress marks removed and
// every letter lowercased with [unicode.ToLower], as Encode does.
func Key(word string) string {
	key, _, err := transform.String(transform.Chain(folder(), runes.Map(unicode.ToLower)), word)
	if err != nil {
		// Neither transformer reports errors on valid or invalid UTF-8.
		return strings.ToLower(Strip(word))
	}
	return key
}

// Compare compares two words case-insensitively by their chill forms. Keys
// that are already chill can be compared with [strings.Compare].
func Compare(a, b string) int {
	return strings.Compare(Key(a), Key(b))
}
