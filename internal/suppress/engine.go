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

// Package suppress decides which property accesses must not be rewritten to optional chaining.
//
// The checks are syntactic heuristics: known non-null roots, promise and middleware idioms,
// write positions, framework ref lookups and style sheet imports. No type information is consulted.
package suppress

import (
	"regexp"
	"slices"
	"strings"

	"fillmore-labs.com/optchain/internal/astutil"
	"fillmore-labs.com/optchain/internal/jsast"
)

var (
	// defaultExcludeIdentifiers are roots treated as never null.
	defaultExcludeIdentifiers = []string{
		"axios", "lodash", "moment", "dayjs", "process", "jquery",
		"Object", "Array", "Number", "String", "JSON", "Math", "Reflect", "Symbol",
		"document", "console", "React", "localStorage", "sessionStorage", "module", "import",
	}

	// defaultChainMethods are property names of promise, observable and HTTP client chains.
	defaultChainMethods = []string{
		"then", "catch", "finally", "subscribe",
		"get", "post", "put", "patch", "delete", "use", "all",
	}

	// asyncRoots are methods whose call results are assumed to be defined.
	asyncRoots = set("then", "catch", "finally", "get", "post", "put", "delete", "subscribe")

	// promiseMethods take callbacks receiving a resolved value.
	promiseMethods = set("then", "catch", "finally")

	// styleNames are conventional names of style sheet modules.
	styleNames = set("styles", "css", "classes", "cx", "classNames")

	stylePattern = regexp.MustCompile(`(?i)\.(css|scss|less|styl|sass|module\.css)$`)
)

func set(names ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(names))
	for _, name := range names {
		s[name] = struct{}{}
	}

	return s
}

// DefaultExcludeIdentifiers returns the built-in never-null roots.
func DefaultExcludeIdentifiers() []string { return slices.Clone(defaultExcludeIdentifiers) }

// DefaultChainMethods returns the built-in chain method names.
func DefaultChainMethods() []string { return slices.Clone(defaultChainMethods) }

// Engine holds the per-run state of the heuristics. It must not be shared between files.
type Engine struct {
	exclude      map[string]struct{}
	chainMethods map[string]struct{}
	styles       map[string]struct{}
	memo         map[*jsast.MemberExpression]bool
}

// New creates an [Engine], merging the given names with the built-in defaults.
func New(excludeIdentifiers, excludeChainMethods []string) *Engine {
	return &Engine{
		exclude:      set(append(DefaultExcludeIdentifiers(), excludeIdentifiers...)...),
		chainMethods: set(append(DefaultChainMethods(), excludeChainMethods...)...),
		styles:       make(map[string]struct{}),
		memo:         make(map[*jsast.MemberExpression]bool),
	}
}

// RegisterImport records the default and namespace bindings of a style sheet import.
func (e *Engine) RegisterImport(d *jsast.ImportDeclaration) {
	if d.Source == nil || !stylePattern.MatchString(d.Source.Value) {
		return
	}

	for name := range astutil.ImportedNames(d, jsast.ImportDefault, jsast.ImportNamespace) {
		e.styles[name] = struct{}{}
	}
}

// Check returns why the access m must not be rewritten, or [None].
func (e *Engine) Check(m *jsast.MemberExpression) Reason {
	switch {
	case m.Optional:
		return Optional

	case e.styleModule(m):
		return StyleModule

	case e.KnownRoot(m):
		return KnownRoot

	case syntaxOnly(m):
		return Syntax

	case e.chainMethod(m):
		return ChainMethod

	case asyncCallback(m):
		return AsyncCallback

	case refCurrent(m):
		return RefCurrent

	case writePosition(m):
		return WritePosition

	default:
		return None
	}
}

// styleModule checks the immediate object only.
func (e *Engine) styleModule(m *jsast.MemberExpression) bool {
	id, ok := m.Object.(*jsast.Identifier)
	if !ok {
		return false
	}

	if _, ok := e.styles[id.Name]; ok {
		return true
	}

	_, ok = styleNames[id.Name]

	return ok
}

// KnownRoot reports whether the access chain of m starts at an excluded identifier or
// passes through the result of an async or HTTP method call.
func (e *Engine) KnownRoot(m *jsast.MemberExpression) bool {
	if known, ok := e.memo[m]; ok {
		return known
	}

	known := e.knownRoot(m, true)
	e.memo[m] = known

	return known
}

// knownRoot walks left from the object of m. Results for members on the way are
// taken from the memo when useMemo is set.
func (e *Engine) knownRoot(m *jsast.MemberExpression, useMemo bool) bool {
	var known bool

	jsast.WalkLeft(m.Object, func(n jsast.Node) bool {
		switch n := n.(type) {
		case *jsast.MemberExpression:
			if !useMemo {
				return false
			}

			cached, ok := e.memo[n]
			if ok {
				known = cached
			}

			return ok

		case *jsast.Identifier:
			known = e.excluded(n.Name)

		case *jsast.MetaProperty:
			known = e.excluded(n.Meta)

		case *jsast.CallExpression:
			callee, ok := n.Callee.(*jsast.MemberExpression)
			if !ok {
				return true
			}

			if name, ok := jsast.PropertyName(callee); ok {
				if _, ok := asyncRoots[name]; ok {
					known = true

					return true
				}
			}

			return false // continue with the callee
		}

		return true
	})

	return known
}

func (e *Engine) excluded(name string) bool {
	_, ok := e.exclude[name]

	return ok
}

func (e *Engine) chainMethod(m *jsast.MemberExpression) bool {
	name, ok := jsast.PropertyName(m)
	if !ok {
		return false
	}

	_, ok = e.chainMethods[name]

	return ok
}

// syntaxOnly reports accesses where `?.` is a syntax error: `super` objects and the callee
// spine of `new` expressions and tagged templates.
func syntaxOnly(m *jsast.MemberExpression) bool {
	if _, ok := m.Object.(*jsast.Super); ok {
		return true
	}

	for child, parent := range jsast.Ancestors(m) {
		if child.Outer() != child.Span() {
			return false // parenthesized
		}

		switch p := parent.(type) {
		case *jsast.NewExpression:
			return p.Callee == child

		case *jsast.TaggedTemplate:
			return p.Tag == child

		case *jsast.MemberExpression:
			if p.Object != child {
				return false
			}

		case *jsast.CallExpression:
			if p.Callee != child {
				return false
			}

		default:
			return false
		}
	}

	return false
}

// asyncCallback reports accesses on a parameter of a function passed to `then`, `catch` or `finally`.
func asyncCallback(m *jsast.MemberExpression) bool {
	id, ok := m.Object.(*jsast.Identifier)
	if !ok {
		return false
	}

	for _, parent := range jsast.Ancestors(m) {
		fn, ok := parent.(*jsast.Function)
		if !ok || !promiseCallback(fn) {
			continue
		}

		for name := range astutil.ParamNames(fn) {
			if name == id.Name {
				return true
			}
		}
	}

	return false
}

func promiseCallback(fn *jsast.Function) bool {
	call, ok := fn.Parent().(*jsast.CallExpression)
	if !ok || !slices.Contains(call.Arguments, jsast.Node(fn)) {
		return false
	}

	callee, ok := call.Callee.(*jsast.MemberExpression)
	if !ok {
		return false
	}

	name, ok := jsast.PropertyName(callee)
	if !ok {
		return false
	}

	_, ok = promiseMethods[name]

	return ok
}

// refCurrent matches `fooRef.current` and `refFoo.current`.
func refCurrent(m *jsast.MemberExpression) bool {
	if name, ok := jsast.PropertyName(m); !ok || name != "current" {
		return false
	}

	id, ok := m.Object.(*jsast.Identifier)

	return ok && (strings.HasSuffix(id.Name, "Ref") || strings.HasPrefix(id.Name, "ref"))
}

// writePosition reports whether m lies, at any nesting level, in an assignment target,
// an update operand, a destructuring pattern value or a `for…in`/`for…of` head.
func writePosition(m *jsast.MemberExpression) bool {
	for child, parent := range jsast.Ancestors(m) {
		switch p := parent.(type) {
		case *jsast.AssignmentExpression:
			if p.Left == child {
				return true
			}

		case *jsast.Property:
			if p.Value != child {
				break
			}

			switch p.Parent().(type) {
			case *jsast.ObjectPattern, *jsast.ArrayPattern:
				return true
			}

		case *jsast.UpdateExpression:
			if p.Argument == child {
				return true
			}

		case *jsast.ForInStatement:
			if p.Left == child {
				return true
			}
		}
	}

	return false
}
