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

package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/ianlewis/go-bgvocab"
	"github.com/ianlewis/go-bgvocab/paired"
	"github.com/ianlewis/go-bgvocab/vocab"
)

var (
	validLogLevels  = []string{"debug", "info", "warn", "error"}
	validLogFormats = []string{"text", "json"}
)

// Validate checks the configuration shared by all commands. Batch settings
// are checked separately by [BatchConfig.Validate].
func (c *Config) Validate() error {
	if err := errors.Join(
		c.Vocabulary.validate(),
		c.PDF.validate(),
		c.Server.validate(),
		c.Log.validate(),
	); err != nil {
		return fmt.Errorf("%w: validate: %w", ErrConfig, err)
	}
	return nil
}

func (v *VocabularyConfig) validate() error {
	if strings.TrimSpace(v.Path) == "" {
		return errors.New("vocabulary.path must not be empty")
	}
	if _, err := bgvocab.ParseFormat(v.Format); err != nil {
		return fmt.Errorf("vocabulary.format: %w", err)
	}
	if _, err := bgvocab.ParsePolicy(v.OnError); err != nil {
		return fmt.Errorf("vocabulary.on_error: %w", err)
	}
	if _, err := paired.ParseSeparator(v.Separator); err != nil {
		return fmt.Errorf("vocabulary.separator: %w", err)
	}
	if v.Skip < 0 {
		return fmt.Errorf("vocabulary.skip must be >= 0 (got %d)", v.Skip)
	}
	return nil
}

// Validate checks the batch settings.
func (b *BatchConfig) Validate() error {
	if err := b.validate(); err != nil {
		return fmt.Errorf("%w: validate: %w", ErrConfig, err)
	}
	return nil
}

func (b *BatchConfig) validate() error {
	if b.Size < vocab.MinBatchSize {
		return fmt.Errorf("batch.size must be >= %d (got %d)", vocab.MinBatchSize, b.Size)
	}
	if b.Number < 0 {
		return fmt.Errorf("batch.number must be >= 0 (got %d)", b.Number)
	}
	if b.Repeat < 0 {
		return fmt.Errorf("batch.repeat must be >= 0 (got %d)", b.Repeat)
	}
	return nil
}

func (p *PDFConfig) validate() error {
	if p.ChunkSize <= 0 {
		return fmt.Errorf("pdf.chunk_size must be > 0 (got %d)", p.ChunkSize)
	}
	if strings.TrimSpace(p.Font) == "" {
		return errors.New("pdf.font must not be empty")
	}
	return nil
}

func (s *ServerConfig) validate() error {
	if strings.TrimSpace(s.Addr) == "" {
		return errors.New("server.addr must not be empty")
	}
	return nil
}

func (l *LogConfig) validate() error {
	if !slices.Contains(validLogLevels, strings.ToLower(l.Level)) {
		return fmt.Errorf("log.level must be one of %v (got %q)", validLogLevels, l.Level)
	}
	if !slices.Contains(validLogFormats, strings.ToLower(l.Format)) {
		return fmt.Errorf("log.format must be one of %v (got %q)", validLogFormats, l.Format)
	}
	return nil
}
