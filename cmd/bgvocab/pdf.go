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
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-bgvocab/internal/pdf"
)

// noFontsMessage is printed when no font directory can be found.
const noFontsMessage = "Font directory not found, not generating pdf"

var pdfCommand = &cli.Command{
	Name:      "pdf",
	Usage:     "export the vocabulary to PDF documents",
	ArgsUsage: " ",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "font-dir",
			Usage: "read fonts from `DIR`",
		},
		&cli.StringFlag{
			Name:    "output-dir",
			Usage:   "write documents to `DIR`",
			Aliases: []string{"o"},
		},
		&cli.IntFlag{
			Name:  "chunk-size",
			Usage: "number of words per document",
		},
	},
	OnUsageError: usageError,
	Action: func(c *cli.Context) error {
		s, err := newSession(c)
		if err != nil {
			return err
		}

		opts := &pdf.Options{
			FontDir:   s.cfg.PDF.FontDir,
			Font:      s.cfg.PDF.Font,
			ChunkSize: s.cfg.PDF.ChunkSize,
			OutputDir: s.cfg.PDF.OutputDir,
			Logger:    s.logger,
		}
		if opts.FontDir == "" {
			opts.FontDir = findFontDir(opts.Font)
		}

		paths, err := pdf.Export(s.vocab.Entries(), opts)
		if errors.Is(err, pdf.ErrNoFonts) {
			fmt.Fprintln(c.App.ErrWriter, noFontsMessage)
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBgvocab, err)
		}

		for _, path := range paths {
			fmt.Fprintln(c.App.Writer, path)
		}
		return nil
	},
}

// findFontDir returns the first well known font directory holding the regular
// face of the font family, or an empty string.
func findFontDir(font string) string {
	name := (&pdf.Options{Font: font}).FontFile()
	for _, dir := range fontLocations() {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return dir
		}
	}
	return ""
}
