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

// Package folding implements text transformers used to clean up lines read
// from hand edited vocabulary files.
package folding

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

// byteOrderMark is often left at the start of files saved by text editors.
const byteOrderMark = '\ufeff'

// LineFolder cleans up a single line of a vocabulary file. It drops byte
// order marks and zero width formatting runes, trims whitespace at both ends
// and replaces every internal whitespace span with a single ASCII space.
type LineFolder struct {
	// started is true after the first rune that is emitted.
	started bool

	// pendingSpace is true while inside an internal whitespace span.
	pendingSpace bool
}

// Transform implements [transform.Transformer.Transform].
func (l *LineFolder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nSrc, nDst int
	for nSrc < len(src) {
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		c, size := utf8.DecodeRune(src[nSrc:])

		if c == byteOrderMark || unicode.Is(unicode.Cf, c) {
			nSrc += size
			continue
		}

		if unicode.IsSpace(c) {
			nSrc += size
			if l.started {
				l.pendingSpace = true
			}
			continue
		}

		need := utf8.RuneLen(c)
		if l.pendingSpace {
			need++
		}
		if nDst+need > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}

		if l.pendingSpace {
			dst[nDst] = ' '
			nDst++
			l.pendingSpace = false
		}
		l.started = true
		nSrc += size
		// c may be utf8.RuneError whose encoded length differs from size.
		nDst += utf8.EncodeRune(dst[nDst:], c)
	}

	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (l *LineFolder) Reset() {
	*l = LineFolder{}
}

// Line folds s with a new LineFolder.
func Line(s string) string {
	folded, _, err := transform.String(&LineFolder{}, s)
	if err != nil {
		return s
	}
	return folded
}
