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
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// PathEnv is the environment variable naming the configuration file.
const PathEnv = "BGVOCAB_CONFIG"

// DefaultPath is the configuration file read when PathEnv is not set.
const DefaultPath = "./bgvocab.yaml"

// ErrConfig is a parent error for all configuration errors.
var ErrConfig = errors.New("config")

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
// The file path is path if not empty, then the BGVOCAB_CONFIG environment
// variable and finally DefaultPath. A missing file is only an error when the
// path was given explicitly. Load does not validate the configuration so that
// callers can apply overrides first and then call Validate.
func Load(path string) (*Config, error) {
	var cfg Config

	explicitPath := path != ""
	if !explicitPath {
		path = os.Getenv(PathEnv)
		explicitPath = path != ""
	}
	if !explicitPath {
		path = DefaultPath
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("%w: read %s: %w", ErrConfig, path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("%w: file %s: %w", ErrConfig, path, err)
	} else {
		// No file, load from ENV + defaults only.
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("%w: read env: %w", ErrConfig, err)
		}
	}

	return &cfg, nil
}
