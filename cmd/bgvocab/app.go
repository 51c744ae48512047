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
	"strings"

	"github.com/urfave/cli/v2"
	"sigs.k8s.io/release-utils/version"
)

const (
	// ExitCodeSuccess is successful error code.
	ExitCodeSuccess int = iota

	// ExitCodeFlagParseError is the exit code for a flag parsing error.
	ExitCodeFlagParseError

	// ExitCodeUnknownError is the exit code for an unknown error.
	ExitCodeUnknownError
)

// ErrBgvocab is a parent error for all command errors.
var ErrBgvocab = errors.New("bgvocab")

// ErrFlagParse is a flag parsing error.
var ErrFlagParse = fmt.Errorf("%w: parsing flags", ErrBgvocab)

// emptyBatchMessage is printed when the selected batch has no words.
const emptyBatchMessage = "Sorry, no words in vocabulary in this range. " +
	"Try batches of smaller size or batches with smaller indices."

var copyrightNames = []string{
	"2025 Ian Lewis",
}

//nolint:gochecknoinits // init needed needed for global variable.
func init() {
	// Set the HelpFlag to a random name so that it isn't used. `cli` handles
	// the flag with the root command such that it takes a command name argument
	// but the flag is declared again below so that it is listed last.
	//
	// This flag is hidden by the help output.
	// See: github.com/urfave/cli/issues/1809
	cli.HelpFlag = &cli.BoolFlag{
		// NOTE: Use a random name no one would guess.
		Name:               "d41d8cd98f00b204e980",
		DisableDefaultText: true,
	}
}

// check checks the error and panics if not nil.
func check(err error) {
	if err != nil {
		panic(err)
	}
}

func usageError(_ *cli.Context, err error, _ bool) error {
	return fmt.Errorf("%w: %w", ErrFlagParse, err)
}

func newBgvocabApp() *cli.App {
	return &cli.App{
		Name:  filepath.Base(os.Args[0]),
		Usage: "Study Bulgarian vocabulary with flashcards.",
		Description: strings.Join([]string{
			"Bulgarian vocabulary flashcards written in Go.",
			"http://github.com/ianlewis/go-bgvocab",
		}, "\n"),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "read configuration from `FILE`",
				Aliases: []string{"c"},
			},
			&cli.StringFlag{
				Name:    "vocab",
				Usage:   "read the vocabulary from `FILE` (.gz and .dz are decompressed)",
				Aliases: []string{"f"},
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "vocabulary `FORMAT`: auto, tagged or paired",
			},
			&cli.IntFlag{
				Name:  "skip",
				Usage: "discard the first `N` words of the sorted vocabulary",
			},
			&cli.StringFlag{
				Name:  "on-error",
				Usage: "what to do with malformed records: abort or skip",
			},
			&cli.StringFlag{
				Name:  "separator",
				Usage: "paired-line record `SEPARATOR`: line (any third line) or blank",
			},
			&cli.BoolFlag{
				Name:  "drop-proper-nouns",
				Usage: "drop capitalized headwords from tagged-line sources",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "log `LEVEL`: debug, info, warn or error",
			},

			// Special flags are shown at the end.
			&cli.BoolFlag{
				Name:               "help",
				Usage:              "print this help text and exit",
				Aliases:            []string{"h"},
				DisableDefaultText: true,
			},
			&cli.BoolFlag{
				Name:               "version",
				Usage:              "print version information and exit",
				Aliases:            []string{"V"},
				DisableDefaultText: true,
			},
		},
		Copyright:       strings.Join(copyrightNames, "\n"),
		HideHelp:        true,
		HideHelpCommand: true,
		OnUsageError:    usageError,
		Action: func(c *cli.Context) error {
			if c.Bool("version") {
				return printVersion(c)
			}

			check(cli.ShowAppHelp(c))
			return nil
		},
		Commands: []*cli.Command{
			studyCommand,
			listCommand,
			infoCommand,
			pdfCommand,
			serveCommand,
			wordsCommand,
			configCommand,
		},
	}
}

func printVersion(c *cli.Context) error {
	versionInfo := version.GetVersionInfo()

	_, err := fmt.Fprintf(c.App.Writer, `%s %s
Copyright (c) %s

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
`, c.App.Name, versionInfo.GitVersion, c.App.Copyright)
	if err != nil {
		return fmt.Errorf("%w: printing version: %w", ErrBgvocab, err)
	}
	return nil
}
