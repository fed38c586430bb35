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

// Package report collects optional chaining diagnostics and their fixes.
package report

import (
	"cmp"
	"slices"

	"fillmore-labs.com/optchain/internal/jsast"
)

// TextEdit replaces the source bytes [Start, End) with NewText. Start == End is an insertion.
type TextEdit struct {
	Start, End int
	NewText    string
}

// Range returns the replaced source range.
func (e TextEdit) Range() jsast.Range {
	return jsast.Range{Start: e.Start, End: e.End}
}

// Diagnostic is a reported finding with at most one fix.
type Diagnostic struct {
	Category Category
	Message  string
	Range    jsast.Range
	Pos, End jsast.Position
	Fix      *TextEdit
}

// Sort orders diagnostics by source range, keeping the report order for equal ranges.
func Sort(diagnostics []Diagnostic) {
	slices.SortStableFunc(diagnostics, func(a, b Diagnostic) int {
		return cmp.Or(
			cmp.Compare(a.Range.Start, b.Range.Start),
			cmp.Compare(a.Range.End, b.Range.End),
		)
	})
}

// Edits returns the fixes of all diagnostics.
func Edits(diagnostics []Diagnostic) []TextEdit {
	var edits []TextEdit

	for _, d := range diagnostics {
		if d.Fix != nil {
			edits = append(edits, *d.Fix)
		}
	}

	return edits
}
