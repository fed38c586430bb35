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

package fix_test

import (
	"errors"
	"testing"

	. "fillmore-labs.com/optchain/internal/fix"
	"fillmore-labs.com/optchain/internal/report"
)

func TestApply(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name    string
		src     string
		edits   []report.TextEdit
		want    string
		applied int
		skipped int
	}{
		{
			name:    "insert",
			src:     "a.b;",
			edits:   []report.TextEdit{{Start: 1, End: 1, NewText: "?"}},
			want:    "a?.b;",
			applied: 1,
		},
		{
			name: "unordered",
			src:  "a.b.c;",
			edits: []report.TextEdit{
				{Start: 3, End: 3, NewText: "?"},
				{Start: 1, End: 1, NewText: "?"},
			},
			want:    "a?.b?.c;",
			applied: 2,
		},
		{
			name:    "replace",
			src:     "a.[0];",
			edits:   []report.TextEdit{{Start: 1, End: 2, NewText: "?."}},
			want:    "a?.[0];",
			applied: 1,
		},
		{
			name: "overlap",
			src:  "a && a.b;",
			edits: []report.TextEdit{
				{Start: 0, End: 8, NewText: "a?.b"},
				{Start: 6, End: 6, NewText: "?"},
			},
			want:    "a?.b;",
			applied: 1,
			skipped: 1,
		},
		{
			name: "touching",
			src:  "ab",
			edits: []report.TextEdit{
				{Start: 0, End: 1, NewText: "x"},
				{Start: 1, End: 2, NewText: "y"},
			},
			want:    "xb",
			applied: 1,
			skipped: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := Apply([]byte(tt.src), tt.edits)
			if err != nil {
				t.Fatalf("Apply failed: %v", err)
			}

			if got := string(result.Output); got != tt.want {
				t.Errorf("Got %q, want %q", got, tt.want)
			}

			if result.Applied != tt.applied || result.Skipped != tt.skipped {
				t.Errorf("Got %d applied, %d skipped, want %d, %d", result.Applied, result.Skipped, tt.applied, tt.skipped)
			}
		})
	}
}

func TestApplyErrors(t *testing.T) {
	t.Parallel()

	const src = "a.b;"

	tests := [...]struct {
		name  string
		edits []report.TextEdit
		err   error
	}{
		{"none", nil, ErrNoFixes},
		{"negative", []report.TextEdit{{Start: -1, End: 0}}, ErrInvalidEdit},
		{"reversed", []report.TextEdit{{Start: 3, End: 2}}, ErrInvalidEdit},
		{"beyond", []report.TextEdit{{Start: 4, End: 5}}, ErrInvalidEdit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := Apply([]byte(src), tt.edits)
			if !errors.Is(err, tt.err) {
				t.Fatalf("Got error %v, want %v", err, tt.err)
			}

			if got := string(result.Output); got != src {
				t.Errorf("Got output %q, want unchanged source", got)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	ok := []report.TextEdit{{Start: 5, End: 5}, {Start: 1, End: 2}, {Start: 3, End: 4}}
	if err := Validate(ok); err != nil {
		t.Errorf("Validate failed: %v", err)
	}

	conflicting := []report.TextEdit{{Start: 3, End: 4}, {Start: 1, End: 3}}
	if err := Validate(conflicting); !errors.Is(err, ErrConflict) {
		t.Errorf("Got error %v, want %v", err, ErrConflict)
	}

	if err := Validate(nil); err != nil {
		t.Errorf("Validate(nil) failed: %v", err)
	}
}
