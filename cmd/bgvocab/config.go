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
	"gopkg.in/yaml.v3"
)

var configCommand = &cli.Command{
	Name:         "config",
	Usage:        "print the effective configuration as YAML",
	ArgsUsage:    " ",
	OnUsageError: usageError,
	Action: func(c *cli.Context) error {
		cfg, err := loadConfig(c)
		if err != nil {
			return err
		}

		enc := yaml.NewEncoder(c.App.Writer)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("%w: encoding config: %w", ErrBgvocab, err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("%w: encoding config: %w", ErrBgvocab, err)
		}
		return nil
	},
}
