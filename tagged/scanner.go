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

package tagged

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Delimiter separates the key from the translation in a tagged line.
const Delimiter = `">`

var (
	// ErrMalformedRecord indicates that a line does not have the tagged
	// layout.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrInvalidOptions indicates that the scanner options are invalid.
	ErrInvalidOptions = errors.New("invalid options")
)

// Record is a single parsed line.
type Record struct {
	// Key is the raw key. It may contain stress marks and uppercase letters.
	Key string

	// Value is the raw translation markup.
	Value string

	// Line is the 1-based line number of the record.
	Line int
}

// ScannerOptions are options for scanning a tagged-line file.
type ScannerOptions struct {
	// PrefixLen is the length in bytes of the fixed wrapper at the start of
	// every line.
	PrefixLen int

	// SuffixLen is the length in bytes of the fixed wrapper at the end of
	// every line.
	SuffixLen int
}

// DefaultScannerOptions is the default options for a Scanner.
var DefaultScannerOptions = &ScannerOptions{
	PrefixLen: 92,
	SuffixLen: 10,
}

// Scanner scans a tagged-line file from start to end.
type Scanner struct {
	r    io.ReadCloser
	s    *bufio.Scanner
	opts ScannerOptions
	line int
}

// NewScanner returns a new Scanner that reads lines from r. The Scanner assumes
// ownership of the reader and should be closed with the Close method.
func NewScanner(r io.ReadCloser, options *ScannerOptions) (*Scanner, error) {
	if options == nil {
		options = DefaultScannerOptions
	}
	if options.PrefixLen < 0 || options.SuffixLen < 0 {
		return nil, fmt.Errorf("%w: negative prefix or suffix length", ErrInvalidOptions)
	}

	s := &Scanner{
		r:    r,
		s:    bufio.NewScanner(r),
		opts: *options,
	}
	// Article lines can be long.
	s.s.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	return s, nil
}

// Scan advances to the next non-blank line. It returns false if the scan stops
// either by reaching the end of the file or an error.
func (s *Scanner) Scan() bool {
	for s.s.Scan() {
		s.line++
		if strings.TrimSpace(s.s.Text()) != "" {
			return true
		}
	}
	return false
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
		return fmt.Errorf("closing tagged file: %w", err)
	}
	return nil
}

// Record parses the current line. The error wraps ErrMalformedRecord when the
// line does not have the expected layout.
func (s *Scanner) Record() (*Record, error) {
	key, value, err := Parse(s.s.Text(), &s.opts)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", s.line, err)
	}
	return &Record{
		Key:   key,
		Value: value,
		Line:  s.line,
	}, nil
}

// Parse splits a single tagged line into its raw key and value.
func Parse(line string, options *ScannerOptions) (string, string, error) {
	if options == nil {
		options = DefaultScannerOptions
	}

	if len(line) < options.PrefixLen {
		return "", "", fmt.Errorf("%w: line shorter than %d byte prefix", ErrMalformedRecord, options.PrefixLen)
	}
	if options.PrefixLen < len(line) && !utf8.RuneStart(line[options.PrefixLen]) {
		return "", "", fmt.Errorf("%w: prefix ends inside a character", ErrMalformedRecord)
	}
	rest := line[options.PrefixLen:]

	pos := strings.Index(rest, Delimiter)
	if pos < 0 {
		return "", "", fmt.Errorf("%w: missing %q delimiter", ErrMalformedRecord, Delimiter)
	}
	key := rest[:pos]

	// The value keeps the delimiter until it is trimmed with the suffix.
	value := rest[pos:]
	end := len(value) - options.SuffixLen
	if end < len(Delimiter) {
		return "", "", fmt.Errorf("%w: line shorter than %d byte suffix", ErrMalformedRecord, options.SuffixLen)
	}
	if end < len(value) && !utf8.RuneStart(value[end]) {
		return "", "", fmt.Errorf("%w: suffix starts inside a character", ErrMalformedRecord)
	}

	return key, value[len(Delimiter):end], nil
}
