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

package bgvocab

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ianlewis/go-dictzip"

	"github.com/ianlewis/go-bgvocab/paired"
	"github.com/ianlewis/go-bgvocab/stress"
	"github.com/ianlewis/go-bgvocab/tagged"
	"github.com/ianlewis/go-bgvocab/vocab"
)

var (
	// ErrSourceUnreadable indicates that a vocabulary source could not be
	// opened or read.
	ErrSourceUnreadable = errors.New("source unreadable")

	// ErrUnknownFormat indicates an unsupported source format.
	ErrUnknownFormat = errors.New("unknown format")
)

// sniffLen is the number of bytes inspected to guess a source's format.
const sniffLen = 512

// Format is a vocabulary source format.
type Format int

const (
	// FormatAuto guesses the format from the file name or contents.
	FormatAuto Format = iota

	// FormatTagged is the tagged-line export format.
	FormatTagged

	// FormatPaired is the paired-line format.
	FormatPaired
)

// String implements [fmt.Stringer].
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTagged:
		return "tagged"
	case FormatPaired:
		return "paired"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat parses a format name.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return FormatAuto, nil
	case "tagged", "xml":
		return FormatTagged, nil
	case "paired", "txt", "text":
		return FormatPaired, nil
	default:
		return FormatAuto, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Options are options for loading a vocabulary.
type Options struct {
	// Format is the source format.
	Format Format

	// Skip is the number of leading entries, in sorted order, to discard
	// after the whole source is read.
	Skip int

	// Policy decides what happens to malformed and truncated records. A nil
	// Policy aborts the load.
	Policy ErrorPolicy

	// Logger receives diagnostics. A nil Logger uses [slog.Default].
	Logger *slog.Logger

	// DropProperNouns drops tagged-line records whose key starts with an
	// uppercase letter.
	DropProperNouns bool

	// Tagged are options for the tagged-line scanner. Nil uses
	// [tagged.DefaultScannerOptions].
	Tagged *tagged.ScannerOptions

	// Paired are options for the paired-line scanner. Nil uses
	// [paired.DefaultScannerOptions].
	Paired *paired.ScannerOptions
}

// DefaultOptions are the default options for loading a vocabulary.
var DefaultOptions = Options{
	Format: FormatAuto,
	Policy: AbortPolicy{},
}

func (o Options) withDefaults() Options {
	if o.Policy == nil {
		o.Policy = AbortPolicy{}
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// LoadFile loads a vocabulary from the file at the given path. Files ending
// in .gz are read as gzip and files ending in .dz as dictzip. With FormatAuto,
// a file whose name otherwise ends in .xml is read as tagged-line.
func LoadFile(path string, opts *Options) (*vocab.Vocabulary, error) {
	if opts == nil {
		opts = &DefaultOptions
	}
	o := *opts

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceUnreadable, err)
	}
	defer f.Close()

	var r io.Reader = f
	name := path
	switch ext := filepath.Ext(path); strings.ToLower(ext) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%w: opening %q: %w", ErrSourceUnreadable, path, err)
		}
		defer zr.Close()
		r = zr
		name = strings.TrimSuffix(path, ext)
	case ".dz":
		zr, err := dictzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("%w: opening %q: %w", ErrSourceUnreadable, path, err)
		}
		defer zr.Close()
		r = zr
		name = strings.TrimSuffix(path, ext)
	}

	if o.Format == FormatAuto && strings.EqualFold(filepath.Ext(name), ".xml") {
		o.Format = FormatTagged
	}

	v, err := Load(r, &o)
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", path, err)
	}
	return v, nil
}

// Load reads a whole vocabulary source from r. With FormatAuto, a source whose
// first non-blank character is '<' is read as tagged-line and anything else
// as paired-line.
func Load(r io.Reader, opts *Options) (*vocab.Vocabulary, error) {
	if opts == nil {
		opts = &DefaultOptions
	}
	o := opts.withDefaults()

	br := bufio.NewReader(r)
	format := o.Format
	if format == FormatAuto {
		format = sniff(br)
	}

	b := vocab.NewBuilder()
	var err error
	switch format {
	case FormatTagged:
		err = loadTagged(br, b, &o)
	case FormatPaired:
		err = loadPaired(br, b, &o)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, err
	}

	v := b.Build(o.Skip)
	o.Logger.Debug("loaded vocabulary",
		"format", format.String(),
		"keys", b.Len(),
		"entries", v.Len(),
	)
	return v, nil
}

func loadTagged(r io.Reader, b *vocab.Builder, o *Options) error {
	s, err := tagged.NewScanner(io.NopCloser(r), o.Tagged)
	if err != nil {
		return err
	}
	defer s.Close()

	for s.Scan() {
		rec, err := s.Record()
		if err != nil {
			if err := o.Policy.Handle(o.Logger, err); err != nil {
				return err
			}
			continue
		}
		if o.DropProperNouns && startsUpper(rec.Key) {
			continue
		}
		// Tagged keys carry drawn stress marks.
		b.Add(stress.Encode(rec.Key), rec.Value)
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrSourceUnreadable, err)
	}
	return nil
}

func loadPaired(r io.Reader, b *vocab.Builder, o *Options) error {
	s, err := paired.NewScanner(io.NopCloser(r), o.Paired)
	if err != nil {
		return err
	}
	defer s.Close()

	for s.Scan() {
		rec, err := s.Record()
		if err != nil {
			if err := o.Policy.Handle(o.Logger, err); err != nil {
				return err
			}
			continue
		}
		b.Add(rec.Headword, rec.Translation)
	}
	if err := s.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrSourceUnreadable, err)
	}
	return nil
}

func sniff(r *bufio.Reader) Format {
	// Peek returns what is available along with an error on short input.
	head, _ := r.Peek(sniffLen)
	head = bytes.TrimPrefix(head, []byte("\ufeff"))
	head = bytes.TrimLeftFunc(head, unicode.IsSpace)
	if len(head) > 0 && head[0] == '<' {
		return FormatTagged
	}
	return FormatPaired
}

func startsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}
