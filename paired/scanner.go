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

package paired

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ianlewis/go-bgvocab/internal/folding"
)

var (
	// ErrTruncatedRecord indicates that a headword is not followed by a
	// translation.
	ErrTruncatedRecord = errors.New("truncated record")

	// ErrInvalidOptions indicates that the scanner options are invalid.
	ErrInvalidOptions = errors.New("invalid options")
)

// Separator is how records are separated from each other.
type Separator int

const (
	// SeparatorLine drops the line after each translation whatever it
	// contains. Further blank lines before the next headword are skipped.
	SeparatorLine Separator = iota

	// SeparatorBlank drops blank lines only. Records may follow each other
	// without a separator line.
	SeparatorBlank
)

// String implements [fmt.Stringer].
func (s Separator) String() string {
	switch s {
	case SeparatorLine:
		return "line"
	case SeparatorBlank:
		return "blank"
	default:
		return fmt.Sprintf("Separator(%d)", int(s))
	}
}

// ParseSeparator parses a separator name, "line" or "blank".
func ParseSeparator(name string) (Separator, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "line":
		return SeparatorLine, nil
	case "blank":
		return SeparatorBlank, nil
	default:
		return SeparatorLine, fmt.Errorf("%w: unknown separator %q", ErrInvalidOptions, name)
	}
}

// ScannerOptions are options for scanning a paired-line file.
type ScannerOptions struct {
	// Separator is how records are separated.
	Separator Separator
}

// DefaultScannerOptions is the default options for a Scanner.
var DefaultScannerOptions = &ScannerOptions{
	Separator: SeparatorLine,
}

// Record is a headword and its translation.
type Record struct {
	// Headword is the headword in marker encoding: uppercase letters mark
	// stressed letters.
	Headword string

	// Translation is the translation line.
	Translation string

	// Line is the 1-based line number of the headword.
	Line int
}

// Scanner scans a paired-line file record by record.
type Scanner struct {
	r    io.ReadCloser
	s    *bufio.Scanner
	opts ScannerOptions
	line int

	record *Record
	err    error
	done   bool
}

// NewScanner returns a new Scanner that reads records from r. The Scanner
// assumes ownership of the reader and should be closed with the Close method.
func NewScanner(r io.ReadCloser, options *ScannerOptions) (*Scanner, error) {
	if options == nil {
		options = DefaultScannerOptions
	}
	if options.Separator != SeparatorLine && options.Separator != SeparatorBlank {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOptions, options.Separator)
	}

	s := &Scanner{
		r:    r,
		s:    bufio.NewScanner(r),
		opts: *options,
	}
	// Translations can be long.
	s.s.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	return s, nil
}

// Scan advances to the next record. Blank lines before a headword are
// skipped. With SeparatorLine the line after the translation is dropped. It
// returns false at the end of the file, after a truncated record, or on a
// read error.
func (s *Scanner) Scan() bool {
	s.record, s.err = nil, nil
	if s.done {
		return false
	}

	headword, ok := s.next()
	if !ok {
		s.done = true
		return false
	}
	r := &Record{
		Headword: headword,
		Line:     s.line,
	}

	// The translation is the line right after the headword, even when blank.
	if !s.s.Scan() {
		s.done = true
		if s.s.Err() != nil {
			return false
		}
		s.record = r
		s.err = fmt.Errorf("%w: line %d: headword %q has no translation", ErrTruncatedRecord, r.Line, r.Headword)
		return true
	}
	s.line++
	r.Translation = folding.Line(s.s.Text())

	if s.opts.Separator == SeparatorLine && s.s.Scan() {
		s.line++
	}

	s.record = r
	return true
}

// next returns the next non-blank line.
func (s *Scanner) next() (string, bool) {
	for s.s.Scan() {
		s.line++
		if line := folding.Line(s.s.Text()); line != "" {
			return line, true
		}
	}
	return "", false
}

// Record returns the current record. The error wraps ErrTruncatedRecord when
// the file ends after a headword. The partial record is returned along with
// the error.
func (s *Scanner) Record() (*Record, error) {
	return s.record, s.err
}

// Err returns the first read error encountered.
func (s *Scanner) Err() error {
	if err := s.s.Err(); err != nil {
		return fmt.Errorf("reading line %d: %w", s.line+1, err)
	}
	return nil
}

// Close closes the underlying reader.
func (s *Scanner) Close() error {
	if err := s.r.Close(); err != nil {
		return fmt.Errorf("closing paired file: %w", err)
	}
	return nil
}
