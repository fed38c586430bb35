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

package output

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ColorMode controls colored output.
type ColorMode uint8

//go:generate go tool stringer -type ColorMode -linecomment
const (
	// ColorAuto colors terminal output unless NO_COLOR is set.
	ColorAuto ColorMode = iota // auto
	// ColorOn always colors.
	ColorOn // on
	// ColorOff never colors.
	ColorOff // off
)

// Set implements [github.com/spf13/pflag.Value].
func (m *ColorMode) Set(s string) error {
	for mode := range ColorOff + 1 {
		if mode.String() == s {
			*m = mode

			return nil
		}
	}

	return ErrUnknownColorMode
}

// Type implements [github.com/spf13/pflag.Value].
func (*ColorMode) Type() string { return "mode" }

// Enabled decides whether output to w is colored.
func (m ColorMode) Enabled(w io.Writer) bool {
	switch m {
	case ColorOn:
		return true

	case ColorOff:
		return false
	}

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type palette struct {
	path, err, warn, rule, caret, fix, added, deleted, hunk *color.Color
}

func newPalette(enabled bool) palette {
	c := func(attrs ...color.Attribute) *color.Color {
		col := color.New(attrs...)
		if enabled {
			col.EnableColor()
		} else {
			col.DisableColor()
		}

		return col
	}

	return palette{
		path:    c(color.Bold),
		err:     c(color.FgRed, color.Bold),
		warn:    c(color.FgYellow, color.Bold),
		rule:    c(color.Faint),
		caret:   c(color.FgGreen, color.Bold),
		fix:     c(color.FgCyan),
		added:   c(color.FgGreen),
		deleted: c(color.FgRed),
		hunk:    c(color.FgCyan),
	}
}
