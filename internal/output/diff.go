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
	"bytes"
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/sourcegraph/go-diff/diff"

	"fillmore-labs.com/optchain/internal/driver"
)

// Diff prints a unified diff for every fixed file, followed by a diff statistic.
// Results without changes are skipped.
func (p Printer) Diff(results []driver.Result) (Counts, error) {
	w := bufio.NewWriter(p.W)
	c := newPalette(p.Color)

	var (
		counts Counts
		all    bytes.Buffer
	)

	for _, r := range results {
		if r.Err != nil {
			counts.Errors++
			fmt.Fprintf(w, "%s: %s %v\n", c.path.Sprint(r.Path), c.err.Sprint("error:"), r.Err)
		}

		if r.Fix == nil || !r.Fix.Changed() {
			continue
		}

		counts.Files++
		counts.Fixable += r.Fix.Applied

		text, err := UnifiedDiff(r.Path, r.Fix.Original, r.Fix.Output)
		if err != nil {
			return counts, err
		}

		all.WriteString(text)

		for _, line := range strings.SplitAfter(text, "\n") {
			switch {
			case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
				w.WriteString(c.path.Sprint(line))
			case strings.HasPrefix(line, "+"):
				w.WriteString(c.added.Sprint(line))
			case strings.HasPrefix(line, "-"):
				w.WriteString(c.deleted.Sprint(line))
			case strings.HasPrefix(line, "@@"):
				w.WriteString(c.hunk.Sprint(line))
			default:
				w.WriteString(line)
			}
		}
	}

	if all.Len() > 0 {
		stat, err := Stat(all.Bytes())
		if err != nil {
			return counts, err
		}

		fmt.Fprintf(w, "%d %s changed, %d %s(+), %d %s(-)\n",
			counts.Files, plural(counts.Files, "file"),
			stat.Insertions, plural(stat.Insertions, "insertion"),
			stat.Deletions, plural(stat.Deletions, "deletion"))
	}

	return counts, w.Flush()
}

// UnifiedDiff returns the unified diff of a file with three lines of context.
func UnifiedDiff(path string, original, fixed []byte) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(original)),
		B:        difflib.SplitLines(string(fixed)),
		FromFile: "a/" + path,
		ToFile:   "b/" + path,
		Context:  3,
	})
}

// DiffStat counts changed lines the way `git diff --shortstat` does.
type DiffStat struct {
	Files      int
	Insertions int
	Deletions  int
}

// Stat parses a multi-file unified diff and counts its insertions and deletions.
func Stat(unified []byte) (DiffStat, error) {
	files, err := diff.ParseMultiFileDiff(unified)
	if err != nil {
		return DiffStat{}, fmt.Errorf("can't parse diff: %w", err)
	}

	stat := DiffStat{Files: len(files)}

	for _, f := range files {
		s := f.Stat()
		stat.Insertions += int(s.Added + s.Changed)
		stat.Deletions += int(s.Deleted + s.Changed)
	}

	return stat, nil
}
