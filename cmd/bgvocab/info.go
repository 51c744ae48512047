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
)

var infoCommand = &cli.Command{
	Name:      "info",
	Usage:     "print vocabulary statistics",
	ArgsUsage: " ",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:    "batch-size",
			Usage:   "number of words per batch (at least 3)",
			Aliases: []string{"s"},
		},
	},
	OnUsageError: usageError,
	Action: func(c *cli.Context) error {
		s, err := newSession(c)
		if err != nil {
			return err
		}

		if err := s.cfg.Batch.Validate(); err != nil {
			return fmt.Errorf("%w: %w", ErrFlagParse, err)
		}

		batches, err := s.vocab.Batches(s.cfg.Batch.Size)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrFlagParse, err)
		}

		w := c.App.Writer
		fmt.Fprintf(w, "Vocabulary:  %s\n", s.cfg.Vocabulary.Path)
		fmt.Fprintf(w, "Words:       %d\n", s.vocab.Len())
		fmt.Fprintf(w, "Batch size:  %d\n", s.cfg.Batch.Size)
		fmt.Fprintf(w, "Batches:     %d\n", batches)

		return nil
	},
}
