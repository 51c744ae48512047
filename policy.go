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

package bgvocab

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// ErrUnknownPolicy indicates an unsupported error policy name.
var ErrUnknownPolicy = errors.New("unknown error policy")

// ErrorPolicy decides how a load reacts to a bad record.
type ErrorPolicy interface {
	// Handle is called with the error for a malformed or truncated record.
	// Returning a non-nil error aborts the load. Returning nil continues
	// with the next record.
	Handle(logger *slog.Logger, err error) error
}

// AbortPolicy aborts the load at the first bad record.
type AbortPolicy struct{}

// Handle implements [ErrorPolicy.Handle].
func (AbortPolicy) Handle(_ *slog.Logger, err error) error {
	return err
}

// SkipPolicy logs a warning for each bad record and continues.
type SkipPolicy struct{}

// Handle implements [ErrorPolicy.Handle].
func (SkipPolicy) Handle(logger *slog.Logger, err error) error {
	logger.Warn("skipping record", "error", err)
	return nil
}

// ParsePolicy returns the error policy with the given name, "abort" or
// "skip".
func ParsePolicy(name string) (ErrorPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "abort":
		return AbortPolicy{}, nil
	case "skip":
		return SkipPolicy{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}
