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
	"slices"
	"strings"

	"fillmore-labs.com/optchain/internal/astutil"
	"fillmore-labs.com/optchain/internal/jsast"
	"fillmore-labs.com/optchain/internal/report"
)

// ChainTop reports whether l starts a guard chain: an `&&` expression that is not the
// left operand of another `&&`.
func ChainTop(l *jsast.LogicalExpression) bool {
	if l.Operator != "&&" {
		return false
	}

	parent, ok := l.Parent().(*jsast.LogicalExpression)

	return !ok || parent.Operator != "&&" || parent.Right == l
}

// Operands flattens a left-leaning `&&` chain into its operands in source order.
func Operands(l *jsast.LogicalExpression) []jsast.Node {
	ops := []jsast.Node{l.Right}

	left := l.Left
	for jsast.IsLogicalAnd(left) {
		and := left.(*jsast.LogicalExpression)
		ops = append(ops, and.Right)
		left = and.Left
	}

	ops = append(ops, left)
	slices.Reverse(ops)

	return ops
}

// Chain collapses the first maximal guard run of the `&&` chain l into one optional chain:
// `a && a.b && a.b.c` becomes `a?.b?.c`. Operands before and after the run are kept.
func (r *Rewriter) Chain(l *jsast.LogicalExpression) {
	if !r.report.Enabled(report.PreferChaining) {
		return
	}

	ops := Operands(l)

	first, last := r.run(ops)
	if first < 0 {
		return
	}

	var text strings.Builder

	start, end := ops[first].Outer(), ops[last].Outer()
	text.WriteString(r.file.Text(start)) // ignore error

	for _, op := range ops[first+1 : last+1] {
		m := op.(*jsast.MemberExpression)
		r.processed[m] = struct{}{}

		property := r.file.NodeText(m.Property)

		text.WriteString("?.") // ignore error

		if m.Computed {
			text.WriteByte('[')        // ignore error
			text.WriteString(property) // ignore error
			text.WriteByte(']')        // ignore error
		} else {
			text.WriteString(property) // ignore error
		}
	}

	r.report.Report(report.PreferChaining, l.Span(), &report.TextEdit{
		Start:   start.Start,
		End:     end.End,
		NewText: text.String(),
	})
}

// run returns the bounds of the first maximal run of operands where each operand is
// a member access whose object equals the previous operand, or -1.
func (r *Rewriter) run(ops []jsast.Node) (first, last int) {
	first = -1

	for i := range len(ops) - 1 {
		if r.guards(ops[i], ops[i+1]) {
			first = i

			break
		}
	}

	if first < 0 {
		return -1, -1
	}

	last = first + 1
	for last+1 < len(ops) && r.guards(ops[last], ops[last+1]) {
		last++
	}

	return first, last
}

// guards reports whether next is a plain member access of guard.
func (r *Rewriter) guards(guard, next jsast.Node) bool {
	m, ok := next.(*jsast.MemberExpression)
	if !ok || jsast.InChain(m) || r.Processed(m) {
		return false
	}

	return astutil.EqualTokens(r.file, guard, m.Object)
}
