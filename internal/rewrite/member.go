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

package rewrite

import (
	"fillmore-labs.com/optchain/internal/astutil"
	"fillmore-labs.com/optchain/internal/jsast"
	"fillmore-labs.com/optchain/internal/report"
)

// Member rewrites the plain access `a.b` to `a?.b`.
//
// Plain member objects are rewritten first, so each level of `a.b.c` gets its own
// diagnostic with a single `?` insertion before its separating `.`. For a method call
// `a.b()` the marker still precedes the `.`.
func (r *Rewriter) Member(m *jsast.MemberExpression) {
	if m.Optional || m.Computed || !r.markProcessed(m) {
		return
	}

	r.recurse(m.Object)

	dot, ok := r.file.TokenAfter(m.Object.Span().End, jsast.Value("."))
	if !ok || dot.Range.End > m.Property.Span().Start {
		astutil.InternalError(r.report, m, "No '.' token after %q", r.file.NodeText(m.Object))

		return
	}

	r.report.Report(report.PropertyChaining, m.Span(), &report.TextEdit{
		Start:   dot.Range.Start,
		End:     dot.Range.Start,
		NewText: "?",
	})
}

// Computed rewrites the computed access `a[i]` to `a?.[i]`.
//
// A `.` between the object and the opening bracket is replaced with `?.`,
// otherwise `?.` is inserted before the bracket.
func (r *Rewriter) Computed(m *jsast.MemberExpression) {
	if m.Optional || !m.Computed || !r.markProcessed(m) {
		return
	}

	r.recurse(m.Object)

	objectEnd := m.Object.Span().End

	bracket, ok := r.file.TokenAfter(objectEnd, jsast.Value("["))
	if !ok || bracket.Range.End > m.Property.Outer().Start {
		astutil.InternalError(r.report, m, "No '[' token after %q", r.file.NodeText(m.Object))

		return
	}

	edit := report.TextEdit{Start: bracket.Range.Start, End: bracket.Range.Start, NewText: "?."}

	for _, t := range r.file.TokensBetween(objectEnd, bracket.Range.Start) {
		if t.Value == "." {
			edit = report.TextEdit{Start: t.Range.Start, End: t.Range.End, NewText: "?."}

			break
		}
	}

	r.report.Report(report.OptionalComputed, m.Span(), &edit)
}
