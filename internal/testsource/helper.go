// Copyright 2025-2026 Oliver Eikemeier. All Rights Reserved.
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

// Package testsource provides utilities for parsing JavaScript and TypeScript fragments in tests.
//
// It is designed to simplify testing of the optional chaining passes by handling the
// boilerplate of parsing a source fragment and locating the nodes under test.
package testsource

import (
	"context"
	"testing"

	"golang.org/x/tools/txtar"

	"fillmore-labs.com/optchain/internal/jsast"
	"fillmore-labs.com/optchain/internal/jsparse"
)

// Parse parses a JavaScript source fragment.
func Parse(tb testing.TB, src string) *jsast.File {
	tb.Helper()

	return ParseNamed(tb, "test.js", src)
}

// ParseNamed parses a source fragment, selecting the grammar by the extension of filename.
func ParseNamed(tb testing.TB, filename, src string) *jsast.File {
	tb.Helper()

	f, err := jsparse.Parse(context.Background(), filename, []byte(src))
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return f
}

// Member returns the first member expression whose source text is text.
func Member(tb testing.TB, f *jsast.File, text string) *jsast.MemberExpression {
	tb.Helper()

	return find[*jsast.MemberExpression](tb, f, text)
}

// Logical returns the first logical expression whose source text is text.
func Logical(tb testing.TB, f *jsast.File, text string) *jsast.LogicalExpression {
	tb.Helper()

	return find[*jsast.LogicalExpression](tb, f, text)
}

// Node returns the first node of type N whose source text is text.
func Node[N jsast.Node](tb testing.TB, f *jsast.File, text string) N {
	tb.Helper()

	return find[N](tb, f, text)
}

func find[N jsast.Node](tb testing.TB, f *jsast.File, text string) N {
	tb.Helper()

	for n := range jsast.Preorder(f.Program) {
		if node, ok := n.(N); ok && f.NodeText(n) == text {
			return node
		}
	}

	tb.Fatalf("Can't find %T %q", *new(N), text)

	panic("unreachable")
}

// All returns all nodes of type N in source order.
func All[N jsast.Node](f *jsast.File) []N {
	var nodes []N

	for n := range jsast.Preorder(f.Program) {
		if node, ok := n.(N); ok {
			nodes = append(nodes, node)
		}
	}

	return nodes
}

// Archive reads a txtar fixture.
func Archive(tb testing.TB, path string) *txtar.Archive {
	tb.Helper()

	ar, err := txtar.ParseFile(path)
	if err != nil {
		tb.Fatalf("Can't read fixture %s: %v", path, err)
	}

	return ar
}

// Section returns the contents of the named archive file.
func Section(ar *txtar.Archive, name string) (string, bool) {
	for _, f := range ar.Files {
		if f.Name == name {
			return string(f.Data), true
		}
	}

	return "", false
}
