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

// Package pdf implements exporting vocabulary entries to printable PDF
// flashcards, one entry per page.
package pdf

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-pdf/fpdf"
	"golang.org/x/sync/errgroup"

	"github.com/ianlewis/go-bgvocab/deck"
	"github.com/ianlewis/go-bgvocab/vocab"
)

var (
	// ErrNoFonts indicates that no font directory is configured.
	ErrNoFonts = errors.New("font directory not found")

	// ErrFontNotFound indicates that the font file is missing from the font
	// directory.
	ErrFontNotFound = errors.New("font not found")

	// ErrInvalidOptions indicates invalid export options.
	ErrInvalidOptions = errors.New("invalid options")
)

const (
	wordFontSize        = 40
	translationFontSize = 20
	margin              = 10
)

// Options are options for Export.
type Options struct {
	// FontDir is the directory holding the TrueType font.
	FontDir string

	// Font is the font family. The file <Font>-Regular.ttf is loaded from
	// FontDir.
	Font string

	// ChunkSize is the number of entries per document.
	ChunkSize int

	// OutputDir is the directory where documents are written.
	OutputDir string

	// Logger receives progress messages. A nil Logger uses [slog.Default].
	Logger *slog.Logger
}

// DefaultOptions are the default export options.
var DefaultOptions = Options{
	Font:      "LiberationMono",
	ChunkSize: 50,
	OutputDir: ".",
}

// FontFile returns the path of the regular font file.
func (o *Options) FontFile() string {
	return filepath.Join(o.FontDir, o.Font+"-Regular.ttf")
}

// Chunks splits entries into consecutive chunks of at most size entries.
func Chunks(entries []*vocab.Entry, size int) [][]*vocab.Entry {
	if size <= 0 {
		return nil
	}
	var chunks [][]*vocab.Entry
	for len(entries) > size {
		chunks = append(chunks, entries[:size:size])
		entries = entries[size:]
	}
	if len(entries) > 0 {
		chunks = append(chunks, entries)
	}
	return chunks
}

// FileName returns the name of the i-th document, starting at 1.
func FileName(i int) string {
	return fmt.Sprintf("output_%d.pdf", i)
}

// Title returns the title of the i-th document, starting at 1.
func Title(i int) string {
	return fmt.Sprintf("BG vocabulary: part %d", i)
}

// Export writes entries to one PDF document per chunk and returns the paths of
// the written documents in order. Documents are written concurrently. It
// returns ErrNoFonts if opts.FontDir is empty.
func Export(entries []*vocab.Entry, opts *Options) ([]string, error) {
	if opts == nil {
		opts = &DefaultOptions
	}
	if opts.FontDir == "" {
		return nil, ErrNoFonts
	}
	if opts.ChunkSize <= 0 {
		return nil, fmt.Errorf("%w: chunk size %d", ErrInvalidOptions, opts.ChunkSize)
	}
	if _, err := os.Stat(opts.FontFile()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFontNotFound, err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	chunks := Chunks(entries, opts.ChunkSize)
	paths := make([]string, len(chunks))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, chunk := range chunks {
		g.Go(func() error {
			path := filepath.Join(opts.OutputDir, FileName(i+1))
			if err := writeDocument(path, Title(i+1), chunk, opts); err != nil {
				return fmt.Errorf("writing %q: %w", path, err)
			}
			logger.Info("wrote pdf", "path", path, "entries", len(chunk))
			paths[i] = path
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

func writeDocument(path, title string, entries []*vocab.Entry, opts *Options) error {
	doc := fpdf.New("P", "mm", "A4", opts.FontDir)
	doc.SetTitle(title, true)
	doc.SetMargins(margin, margin, margin)
	doc.SetAutoPageBreak(true, margin)
	doc.AddUTF8Font(opts.Font, "", filepath.Base(opts.FontFile()))
	if err := doc.Error(); err != nil {
		return fmt.Errorf("loading font: %w", err)
	}

	for _, e := range entries {
		doc.AddPage()

		doc.SetFont(opts.Font, "", wordFontSize)
		doc.MultiCell(0, wordFontSize/2, e.Stressed(), "", "L", false)
		doc.Ln(wordFontSize)

		doc.SetFont(opts.Font, "", translationFontSize)
		doc.MultiCell(0, translationFontSize/2, deck.Flatten(e.Translations), "", "R", false)
	}

	return doc.OutputFileAndClose(path)
}
