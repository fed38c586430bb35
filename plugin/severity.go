// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package plugin

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownSeverity is returned for severities other than off, warn and error.
var ErrUnknownSeverity = errors.New("unknown severity")

// Severity is the ESLint rule severity.
type Severity uint8

//go:generate go tool stringer -type Severity -linecomment
const (
	// Off disables the rule.
	Off Severity = iota // off
	// Warn reports diagnostics without failing.
	Warn // warn
	// Error reports diagnostics and fails the check.
	Error // error
)

// ParseSeverity parses an ESLint severity given by name or number.
func ParseSeverity(s string) (Severity, error) {
	switch s {
	case "off", "0":
		return Off, nil
	case "warn", "1":
		return Warn, nil
	case "error", "2":
		return Error, nil
	default:
		return Off, fmt.Errorf("%q: %w", s, ErrUnknownSeverity)
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (s Severity) MarshalText() ([]byte, error) {
	if s > Error {
		return nil, fmt.Errorf("%d: %w", s, ErrUnknownSeverity)
	}

	return []byte(s.String()), nil
}

// UnmarshalJSON implements [json.Unmarshaler], accepting names and the numbers 0 to 2.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		var level json.Number
		if err := json.Unmarshal(data, &level); err != nil {
			return fmt.Errorf("%s: %w", data, ErrUnknownSeverity)
		}

		name = level.String()
	}

	severity, err := ParseSeverity(name)
	if err != nil {
		return err
	}

	*s = severity

	return nil
}

// Set implements [flag.Value].
func (s *Severity) Set(value string) error {
	severity, err := ParseSeverity(value)
	if err != nil {
		return err
	}

	*s = severity

	return nil
}

// Type implements [github.com/spf13/pflag.Value].
func (*Severity) Type() string { return "severity" }
