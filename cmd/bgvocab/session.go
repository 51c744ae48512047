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
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-bgvocab"
	"github.com/ianlewis/go-bgvocab/internal/config"
	"github.com/ianlewis/go-bgvocab/paired"
	"github.com/ianlewis/go-bgvocab/vocab"
)

// session holds the state shared by all commands.
type session struct {
	cfg    *config.Config
	logger *slog.Logger
	vocab  *vocab.Vocabulary
}

// newSession loads the configuration, applies command line flags and loads
// the vocabulary.
func newSession(c *cli.Context) (*session, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	logger := newLogger(cfg.Log, c.App.ErrWriter)

	// Validate checked that these parse.
	format, _ := bgvocab.ParseFormat(cfg.Vocabulary.Format)
	policy, _ := bgvocab.ParsePolicy(cfg.Vocabulary.OnError)
	separator, _ := paired.ParseSeparator(cfg.Vocabulary.Separator)

	v, err := bgvocab.LoadFile(cfg.Vocabulary.Path, &bgvocab.Options{
		Format:          format,
		Skip:            cfg.Vocabulary.Skip,
		Policy:          policy,
		Logger:          logger,
		DropProperNouns: cfg.Vocabulary.DropProperNouns,
		Paired:          &paired.ScannerOptions{Separator: separator},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBgvocab, err)
	}

	return &session{
		cfg:    cfg,
		logger: logger,
		vocab:  v,
	}, nil
}

// loadConfig loads the configuration and applies command line flags.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBgvocab, err)
	}
	applyFlags(c, cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFlagParse, err)
	}
	return cfg, nil
}

// applyFlags overrides configuration values with flags set on the command
// line.
func applyFlags(c *cli.Context, cfg *config.Config) {
	if c.IsSet("vocab") {
		cfg.Vocabulary.Path = c.String("vocab")
	}
	if c.IsSet("format") {
		cfg.Vocabulary.Format = c.String("format")
	}
	if c.IsSet("skip") {
		cfg.Vocabulary.Skip = c.Int("skip")
	}
	if c.IsSet("on-error") {
		cfg.Vocabulary.OnError = c.String("on-error")
	}
	if c.IsSet("separator") {
		cfg.Vocabulary.Separator = c.String("separator")
	}
	if c.IsSet("drop-proper-nouns") {
		cfg.Vocabulary.DropProperNouns = c.Bool("drop-proper-nouns")
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}
	if c.IsSet("batch-size") {
		cfg.Batch.Size = c.Int("batch-size")
	}
	if c.IsSet("batch-number") {
		cfg.Batch.Number = c.Int("batch-number")
	}
	if c.IsSet("repeat") {
		cfg.Batch.Repeat = c.Int("repeat")
	}
	if c.IsSet("quiz") {
		cfg.Batch.Quiz = c.Bool("quiz")
	}
	if c.IsSet("font-dir") {
		cfg.PDF.FontDir = c.String("font-dir")
	}
	if c.IsSet("output-dir") {
		cfg.PDF.OutputDir = c.String("output-dir")
	}
	if c.IsSet("chunk-size") {
		cfg.PDF.ChunkSize = c.Int("chunk-size")
	}
	if c.IsSet("addr") {
		cfg.Server.Addr = c.String("addr")
	}
}

// batch returns the configured batch. It returns nil and prints a message if
// the batch is empty.
func (s *session) batch(c *cli.Context) (*vocab.Batch, error) {
	if err := s.cfg.Batch.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFlagParse, err)
	}
	b, err := s.vocab.Batch(s.cfg.Batch.Number, s.cfg.Batch.Size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFlagParse, err)
	}
	if b.Empty() {
		fmt.Fprintln(c.App.ErrWriter, emptyBatchMessage)
		return nil, nil
	}
	return b, nil
}

// batchFlags are flags for commands that select a batch.
func batchFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "batch-size",
			Usage:   "number of words per batch (at least 3)",
			Aliases: []string{"s"},
		},
		&cli.IntFlag{
			Name:    "batch-number",
			Usage:   "zero-based batch `NUMBER`",
			Aliases: []string{"n"},
		},
	}
}
