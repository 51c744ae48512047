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
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-bgvocab/internal/server"
)

var serveCommand = &cli.Command{
	Name:      "serve",
	Usage:     "serve vocabulary batches over HTTP",
	ArgsUsage: " ",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "addr",
			Usage:   "listen on `ADDR`",
			Aliases: []string{"a"},
		},
	},
	OnUsageError: usageError,
	Action: func(c *cli.Context) error {
		s, err := newSession(c)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
		defer stop()

		return serve(ctx, s)
	},
}

func serve(ctx context.Context, s *session) error {
	srv := server.New(s.vocab, s.logger)
	err := srv.ListenAndServe(ctx, server.Options{
		Addr:            s.cfg.Server.Addr,
		ReadTimeout:     s.cfg.Server.ReadTimeout,
		WriteTimeout:    s.cfg.Server.WriteTimeout,
		ShutdownTimeout: s.cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBgvocab, err)
	}
	return nil
}
