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

package astutil_test

import (
	"strings"
	"testing"

	. "fillmore-labs.com/optchain/internal/astutil"
	"fillmore-labs.com/optchain/internal/jsast"
	"fillmore-labs.com/optchain/internal/testsource"
)

func TestEqualTokens(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name string
		a, b string
		want bool
	}{
		{"same", "a.b", "a.b", true},
		{"whitespace", "a.b", "a . b", true},
		{"parentheses", "a.b", "(a.b)", true},
		{"comment", "a.b", "a./* c */b", true},
		{"property", "a.b", "a.c", false},
		{"computed", "a.b", `a["b"]`, false},
		{"quotes", `a["b"]`, "a['b']", false},
		{"optional", "a.b", "a?.b", false},
		{"call", "f(x)", "f( x )", true},
		{"longer", "a.b", "a.b.c", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := testsource.Parse(t, "["+tt.a+", "+tt.b+"];")
			a, b := elements(t, f)

			if got, want := EqualTokens(f, a, b), tt.want; got != want {
				t.Errorf("Got EqualTokens(%q, %q) = %t, want %t", tt.a, tt.b, got, want)
			}
		})
	}
}

func elements(tb testing.TB, f *jsast.File) (a, b jsast.Node) {
	tb.Helper()

	for _, n := range testsource.All[*jsast.Other](f) {
		if n.Type == "array" && len(n.Children) == 2 {
			return n.Children[0], n.Children[1]
		}
	}

	tb.Fatal("Array literal not found")

	return nil, nil
}

func TestCurrentFile(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		name      string
		filename  string
		src       string
		generated bool
		disabled  bool
	}{
		{"plain", "test.js", "foo.bar;\n", false, false},
		{"generated", "test.js", "// Code generated by tool. DO NOT EDIT.\nfoo.bar;\n", true, false},
		{"generated_tag", "test.js", "/** @generated */\nfoo.bar;\n", true, false},
		{"minified", "bundle.min.js", "foo.bar;\n", true, false},
		{"nolint", "test.js", "// nolint:optchain\nfoo.bar;\n", false, true},
		{"nolint_all", "test.js", "// nolint:all\nfoo.bar;\n", false, true},
		{"nolint_other", "test.js", "// nolint:unused\nfoo.bar;\n", false, false},
		{"eslint", "test.js", "/* eslint-disable */\nfoo.bar;\n", false, true},
		{"eslint_rule", "test.js", "/* eslint-disable auto-optional-chaining */\nfoo.bar;\n", false, true},
		{"eslint_other", "test.js", "/* eslint-disable no-console */\nfoo.bar;\n", false, false},
		{"late", "test.js", "foo.bar;\n// nolint:optchain\n", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := testsource.ParseNamed(t, tt.filename, tt.src)
			c := NewCurrentFile(f)

			if !c.Valid() {
				t.Fatal("Expected valid file")
			}

			if got, want := c.Generated(), tt.generated; got != want {
				t.Errorf("Got Generated() = %t, want %t", got, want)
			}

			if got, want := c.Disabled(), tt.disabled; got != want {
				t.Errorf("Got Disabled() = %t, want %t", got, want)
			}
		})
	}
}

func TestCurrentFileInvalid(t *testing.T) {
	t.Parallel()

	if NewCurrentFile(nil).Valid() {
		t.Error("Expected invalid file")
	}
}

func TestNoLint(t *testing.T) {
	t.Parallel()

	const src = `a.b;
c.d; // nolint:optchain
e.f; // eslint-disable-line auto-optional-chaining
// eslint-disable-next-line
g.h;
i.j; // eslint-disable-line no-console
`

	f := testsource.Parse(t, src)
	c := NewCurrentFile(f)

	tests := [...]struct {
		access string
		want   bool
	}{
		{"a.b", false},
		{"c.d", true},
		{"e.f", true},
		{"g.h", true},
		{"i.j", false},
	}

	for _, tt := range tests {
		offset := strings.Index(src, tt.access)

		if got := c.NoLint(offset); got != tt.want {
			t.Errorf("Got NoLint(%q) = %t, want %t", tt.access, got, tt.want)
		}
	}
}

func TestCommentHasNoLint(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		text string
		want bool
	}{
		{"// nolint:optchain", true},
		{"//nolint:optchain", true},
		{"/* nolint:unused,optchain */", true},
		{"// nolint:OptChain", true},
		{"// nolint:all", true},
		{"// nolint:unused", false},
		{"// nolint", false},
		{"// see nolint:optchain", false},
	}

	for _, tt := range tests {
		if got := CommentHasNoLint(tt.text); got != tt.want {
			t.Errorf("Got CommentHasNoLint(%q) = %t, want %t", tt.text, got, tt.want)
		}
	}
}

func TestEslintDirective(t *testing.T) {
	t.Parallel()

	tests := [...]struct {
		text      string
		directive string
		ok        bool
	}{
		{"// eslint-disable-line", "eslint-disable-line", true},
		{"// eslint-disable-next-line auto-optional-chaining", "eslint-disable-next-line", true},
		{"/* eslint-disable-next-line auto-optional-chaining -- legacy API */", "eslint-disable-next-line", true},
		{"// eslint-disable-line plugin/auto-optional-chaining", "eslint-disable-line", true},
		{"// eslint-disable-line no-console, auto-optional-chaining", "eslint-disable-line", true},
		{"/* eslint-disable */", "eslint-disable", true},
		{"// eslint-disable-line no-console, eqeqeq", "", false},
		{"// eslint-disabled", "", false},
		{"// eslint-enable", "", false},
		{"// disable eslint", "", false},
	}

	for _, tt := range tests {
		directive, ok := EslintDirective(tt.text)
		if directive != tt.directive || ok != tt.ok {
			t.Errorf("Got eslintDirective(%q) = %q, %t, want %q, %t", tt.text, directive, ok, tt.directive, tt.ok)
		}
	}
}

func TestParamNames(t *testing.T) {
	t.Parallel()

	f := testsource.Parse(t, "function f(a, {b}, c = 1, ...d, e) {}")

	fns := testsource.All[*jsast.Function](f)
	if len(fns) != 1 {
		t.Fatalf("Got %d functions, want 1", len(fns))
	}

	var names []string
	for name := range ParamNames(fns[0]) {
		names = append(names, name)
	}

	if got, want := strings.Join(names, ","), "a,e"; got != want {
		t.Errorf("Got parameter names %q, want %q", got, want)
	}
}

func TestImportedNames(t *testing.T) {
	t.Parallel()

	f := testsource.Parse(t, `import a, { b, c as d } from "m";`)

	decls := testsource.All[*jsast.ImportDeclaration](f)
	if len(decls) != 1 {
		t.Fatalf("Got %d imports, want 1", len(decls))
	}

	var names []string
	for name := range ImportedNames(decls[0], jsast.ImportDefault, jsast.ImportNamed) {
		names = append(names, name)
	}

	if got, want := strings.Join(names, ","), "a,b,d"; got != want {
		t.Errorf("Got imported names %q, want %q", got, want)
	}

	names = names[:0]
	for name := range ImportedNames(decls[0], jsast.ImportNamespace) {
		names = append(names, name)
	}

	if len(names) != 0 {
		t.Errorf("Got namespace names %q, want none", names)
	}
}
