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
	"strings"
	"unicode/utf8"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-bgvocab/deck"
	"github.com/ianlewis/go-bgvocab/stress"
)

var listCommand = &cli.Command{
	Name:         "list",
	Usage:        "list the words in a batch",
	ArgsUsage:    " ",
	Flags:        batchFlags(),
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

		tbl := table.New("#", "Word", "Translation").
			WithWriter(c.App.Writer).
			WithWidthFunc(displayWidth)
		for i, e := range b.Entries {
			tbl.AddRow(b.Number*b.Size+i+1, e.Stressed(), oneLine(deck.Flatten(e.Translations)))
		}
		tbl.Print()

		return nil
	},
}

// displayWidth is the number of columns a word takes in the terminal. Stress
// marks combine with the preceding letter.
func displayWidth(s string) int {
	return utf8.RuneCountInString(stress.Strip(s))
}

func oneLine(s string) string {
	return strings.ReplaceAll(s, "\n", "; ")
}
