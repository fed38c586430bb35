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

package jsast_test

import (
	"testing"

	. "fillmore-labs.com/optchain/internal/jsast"
	"fillmore-labs.com/optchain/internal/testsource"
)

func TestPosition(t *testing.T) {
	t.Parallel()

	f := NewFile("test.js", []byte("ab\r\ncd\n\nef"), nil, nil, nil)

	tests := [...]struct {
		offset int
		want   Position
	}{
		{0, Position{Line: 1, Column: 1}},
		{2, Position{Line: 1, Column: 3}},
		{4, Position{Line: 2, Column: 1}},
		{7, Position{Line: 3, Column: 1}},
		{9, Position{Line: 4, Column: 2}},
	}

	for _, tt := range tests {
		if got := f.Position(tt.offset); got != tt.want {
			t.Errorf("Got Position(%d) = %v, want %v", tt.offset, got, tt.want)
		}
	}

	lines := [...]string{"", "ab", "cd", "", "ef", ""}
	for line, want := range lines {
		if got := f.LineText(line); got != want {
			t.Errorf("Got LineText(%d) = %q, want %q", line, got, want)
		}
	}
}

func TestRoot(t *testing.T) {
	t.Parallel()

	f := testsource.Parse(t, "a.b(c).d[e].f;")
	m := testsource.Member(t, f, "a.b(c).d[e].f")

	root, ok := Root(m).(*Identifier)
	if !ok || root.Name != "a" {
		t.Errorf("Got root %#v, want identifier a", Root(m))
	}

	call, found := WalkLeft(m, func(n Node) bool {
		_, ok := n.(*CallExpression)

		return ok
	})
	if !found || f.NodeText(call) != "a.b(c)" {
		t.Errorf("Got %q, want call a.b(c)", f.NodeText(call))
	}
}

func TestInChain(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		src    string
		access string
		want   bool
	}{
		{"a.b.c;", "a.b.c", false},
		{"a?.b.c;", "a?.b.c", true},
		{"a?.b;", "a?.b", true},
		{"a.b?.().c;", "a.b?.().c", true},
		{"(a?.b).c;", "(a?.b).c", false},
	}

	for _, tt := range tests {
		f := testsource.Parse(t, tt.src)

		if got := InChain(testsource.Member(t, f, tt.access)); got != tt.want {
			t.Errorf("Got InChain(%q) = %t, want %t", tt.access, got, tt.want)
		}
	}
}

func TestInspect(t *testing.T) {
	t.Parallel()

	f := testsource.Parse(t, "x && a.b.c;")

	var order []string

	Inspect(f.Program, func(n Node, push bool) bool {
		if m, ok := n.(*MemberExpression); ok && !push {
			order = append(order, f.NodeText(m))
		}

		return true
	})

	if len(order) != 2 || order[0] != "a.b" || order[1] != "a.b.c" {
		t.Errorf("Got exit order %q, want [a.b a.b.c]", order)
	}

	for child, parent := range Ancestors(testsource.Member(t, f, "a.b")) {
		if child.Parent() != parent {
			t.Errorf("Got parent %T of %T, want %T", child.Parent(), child, parent)
		}
	}
}

func TestTokensBetween(t *testing.T) {
	t.Parallel()

	f := testsource.Parse(t, "a . b[0];")
	m := testsource.Member(t, f, "a . b")

	var values []string
	for _, tok := range f.TokensIn(m.Span()) {
		values = append(values, tok.Value)
	}

	if len(values) != 3 || values[1] != "." {
		t.Errorf("Got tokens %q, want [a . b]", values)
	}

	if tok, ok := f.TokenAfter(m.Span().End, Value("[")); !ok || tok.Range.Start != 5 {
		t.Errorf("Got token %v, want [ at 5", tok)
	}
}
