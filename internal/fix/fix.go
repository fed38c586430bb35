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

// Package fix applies text edits to a source buffer.
package fix

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"fillmore-labs.com/optchain/internal/report"
)

var (
	// ErrNoFixes is returned when no edit was applied.
	ErrNoFixes = errors.New("no applicable fixes found")

	// ErrConflict is returned by [Validate] for overlapping edits.
	ErrConflict = errors.New("conflicting edits")

	// ErrInvalidEdit is returned for edits outside of the source.
	ErrInvalidEdit = errors.New("invalid edit")
)

// Result summarizes an [Apply] call.
type Result struct {
	Output  []byte
	Applied int
	Skipped int
}

// Apply applies edits to src in source order. An edit starting at or before the end of an
// already applied edit is skipped, it will be proposed again by the next pass.
func Apply(src []byte, edits []report.TextEdit) (Result, error) {
	sorted := sortEdits(edits)

	result := Result{Output: make([]byte, 0, len(src))}
	last, lastEnd := 0, -1

	for _, e := range sorted {
		if e.Start < 0 || e.End < e.Start || e.End > len(src) {
			return Result{Output: src}, fmt.Errorf("edit [%d:%d] of %d bytes: %w", e.Start, e.End, len(src), ErrInvalidEdit)
		}

		if lastEnd >= e.Start {
			result.Skipped++

			continue
		}

		result.Output = append(result.Output, src[last:e.Start]...)
		result.Output = append(result.Output, e.NewText...)
		last, lastEnd = e.End, e.End
		result.Applied++
	}

	result.Output = append(result.Output, src[last:]...)

	if result.Applied == 0 {
		return Result{Output: src, Skipped: result.Skipped}, ErrNoFixes
	}

	return result, nil
}

// Validate checks that no two edits overlap or touch.
func Validate(edits []report.TextEdit) error {
	sorted := sortEdits(edits)

	for i := 1; i < len(sorted); i++ {
		if prev, e := sorted[i-1], sorted[i]; prev.End >= e.Start {
			return fmt.Errorf("edit [%d:%d] and [%d:%d]: %w", prev.Start, prev.End, e.Start, e.End, ErrConflict)
		}
	}

	return nil
}

func sortEdits(edits []report.TextEdit) []report.TextEdit {
	sorted := slices.Clone(edits)
	slices.SortStableFunc(sorted, func(a, b report.TextEdit) int {
		return cmp.Or(cmp.Compare(a.Start, b.Start), cmp.Compare(a.End, b.End))
	})

	return sorted
}
