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

// Package output renders analysis results as text, ESLint compatible JSON or unified diffs.
package output

import (
	"errors"
	"fmt"
	"io"

	optchain "fillmore-labs.com/optchain/analyzer"
	"fillmore-labs.com/optchain/internal/driver"
	"fillmore-labs.com/optchain/plugin"
)

var (
	// ErrUnknownFormat is returned for unsupported output formats.
	ErrUnknownFormat = errors.New("unknown output format")

	// ErrUnknownColorMode is returned for color modes other than auto, on and off.
	ErrUnknownColorMode = errors.New("unknown color mode")
)

// Format selects the output renderer.
type Format uint8

//go:generate go tool stringer -type Format -linecomment
const (
	// Text prints one block per diagnostic with a source excerpt.
	Text Format = iota // text
	// JSON prints the ESLint JSON formatter structure.
	JSON // json
	// Diff prints unified diffs of the fixes.
	Diff // diff
)

// Set implements [github.com/spf13/pflag.Value].
func (f *Format) Set(s string) error {
	for format := range Diff + 1 {
		if format.String() == s {
			*f = format

			return nil
		}
	}

	return fmt.Errorf("%q: %w", s, ErrUnknownFormat)
}

// Type implements [github.com/spf13/pflag.Value].
func (*Format) Type() string { return "format" }

// Printer renders results.
type Printer struct {
	// W receives the output.
	W io.Writer
	// Severity is the rule severity. Internal errors are always errors.
	Severity plugin.Severity
	// Color enables ANSI colors.
	Color bool
}

// Print renders results in the given format.
func (p Printer) Print(format Format, results []driver.Result) (Counts, error) {
	switch format {
	case Text:
		return p.Text(results)

	case JSON:
		return p.JSON(results)

	case Diff:
		return p.Diff(results)

	default:
		return Counts{}, fmt.Errorf("%s: %w", format, ErrUnknownFormat)
	}
}

// Counts summarizes the printed diagnostics.
type Counts struct {
	Files    int
	Errors   int
	Warnings int
	Fixable  int
}

// Problems returns the number of errors and warnings.
func (c Counts) Problems() int { return c.Errors + c.Warnings }

func (c *Counts) add(severity plugin.Severity, d optchain.Diagnostic) {
	switch severity {
	case plugin.Error:
		c.Errors++
	case plugin.Warn:
		c.Warnings++
	default:
		return
	}

	if d.Fix != nil {
		c.Fixable++
	}
}

// severity returns the reported severity of d.
func (p Printer) severity(d optchain.Diagnostic) plugin.Severity {
	if d.Category == optchain.InternalError {
		return plugin.Error
	}

	return p.Severity
}
