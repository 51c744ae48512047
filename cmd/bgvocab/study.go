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

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-bgvocab/deck"
	"github.com/ianlewis/go-bgvocab/internal/tui"
)

var studyCommand = &cli.Command{
	Name:      "study",
	Usage:     "study a batch of words with flashcards",
	ArgsUsage: " ",
	Flags: append(batchFlags(),
		&cli.BoolFlag{
			Name:    "quiz",
			Usage:   "hide the translation until the card is turned",
			Aliases: []string{"q"},
		},
		&cli.IntFlag{
			Name:    "repeat",
			Usage:   "repeat the batch `N` times",
			Aliases: []string{"r"},
		},
	),
	OnUsageError: usageError,
	Action: func(c *cli.Context) error {
		s, err := newSession(c)
		if err != nil {
			return err
		}

		b, err := s.batch(c)
		if err != nil || b == nil {
			return err
		}

		d, err := deck.New(b, &deck.Options{
			Quiz:   s.cfg.Batch.Quiz,
			Repeat: s.cfg.Batch.Repeat,
		})
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBgvocab, err)
		}

		s.logger.Debug("starting study session",
			"batch", b.Number,
			"size", b.Size,
			"cards", d.Len(),
			"quiz", s.cfg.Batch.Quiz,
		)

		if err := tui.New(d, s.vocab.Len()).Run(nil); err != nil {
			return fmt.Errorf("%w: %w", ErrBgvocab, err)
		}
		return nil
	},
}
