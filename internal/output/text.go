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
	"bufio"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	optchain "fillmore-labs.com/optchain/analyzer"
	"fillmore-labs.com/optchain/internal/driver"
	"fillmore-labs.com/optchain/internal/jsast"
	"fillmore-labs.com/optchain/plugin"
)

// Text prints each diagnostic as
//
//	path:line:col: severity: message [messageId]
//
// followed by the source line, a caret underline and a preview of the fixed line.
func (p Printer) Text(results []driver.Result) (Counts, error) {
	w := bufio.NewWriter(p.W)
	c := newPalette(p.Color)

	var counts Counts

	for _, r := range results {
		if r.Err != nil {
			counts.Files++
			counts.Errors++
			fmt.Fprintf(w, "%s: %s %v\n", c.path.Sprint(r.Path), c.err.Sprint("error:"), r.Err)
		}

		if len(r.Diagnostics) == 0 {
			continue
		}

		if r.Err == nil {
			counts.Files++
		}

		file := jsast.NewFile(r.Path, r.Current(), nil, nil, nil)

		for _, d := range r.Diagnostics {
			severity := p.severity(d)
			counts.add(severity, d)

			label := c.warn.Sprint("warning:")
			if severity == plugin.Error {
				label = c.err.Sprint("error:")
			}

			fmt.Fprintf(w, "%s: %s %s %s\n",
				c.path.Sprintf("%s:%d:%d", r.Path, d.Pos.Line, d.Pos.Column),
				label, d.Message, c.rule.Sprintf("[%s]", d.Category))

			excerpt(w, c, file, d)
		}
	}

	if counts.Problems() > 0 {
		fmt.Fprintf(w, "\n%d %s (%d %s, %d %s)\n",
			counts.Problems(), plural(counts.Problems(), "problem"),
			counts.Errors, plural(counts.Errors, "error"),
			counts.Warnings, plural(counts.Warnings, "warning"))

		if counts.Fixable > 0 {
			fmt.Fprintf(w, "%d %s potentially fixable with `optchain fix`.\n",
				counts.Fixable, plural(counts.Fixable, "problem"))
		}
	}

	return counts, w.Flush()
}

// excerpt prints the source line of d with an underline and, for single line fixes, the fixed line.
func excerpt(w *bufio.Writer, c palette, file *jsast.File, d optchain.Diagnostic) {
	line := file.LineText(d.Pos.Line)
	if line == "" {
		return
	}

	start := min(d.Pos.Column-1, len(line))

	end := len(line)
	if d.End.Line == d.Pos.Line {
		end = min(max(d.End.Column-1, start), len(line))
	}

	fmt.Fprintf(w, "    %s\n", line)
	fmt.Fprintf(w, "    %s%s\n", indent(line[:start]), c.caret.Sprint(underline(line[start:end])))

	if fixed, ok := preview(file, d); ok {
		fmt.Fprintf(w, "    %s\n", c.fix.Sprint(fixed))
	}
}

// preview returns the diagnostic line with the fix applied.
func preview(file *jsast.File, d optchain.Diagnostic) (string, bool) {
	if d.Fix == nil || strings.Contains(d.Fix.NewText, "\n") {
		return "", false
	}

	start, end := file.Position(d.Fix.Start), file.Position(d.Fix.End)
	if start.Line != d.Pos.Line || end.Line != start.Line {
		return "", false
	}

	line := file.LineText(start.Line)
	if end.Column-1 > len(line) {
		return "", false
	}

	return line[:start.Column-1] + d.Fix.NewText + line[end.Column-1:], true
}

// indent keeps tabs and replaces everything else by spaces of the same display width.
func indent(prefix string) string {
	var b strings.Builder

	for _, r := range prefix {
		if r == '\t' {
			b.WriteByte('\t')

			continue
		}

		b.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}

	return b.String()
}

func underline(s string) string {
	width := max(runewidth.StringWidth(s), 1)

	return "^" + strings.Repeat("~", width-1)
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}

	return word + "s"
}
