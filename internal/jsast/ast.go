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

// Package jsast defines a closed, ESTree-like syntax tree for JavaScript and TypeScript sources.
//
// Only the node kinds the optional chaining rewriter dispatches on have their own type,
// everything else is represented by [Other]. Parentheses are not nodes: a parenthesized
// expression is represented by its inner node, which records the enclosing range in [Base.Paren].
package jsast

// Range is a half-open byte interval [Start, End) in the source.
type Range struct {
	Start, End int
}

// Len returns the number of bytes covered by the range.
func (r Range) Len() int { return r.End - r.Start }

// Contains reports whether o lies within r.
func (r Range) Contains(o Range) bool { return r.Start <= o.Start && o.End <= r.End }

// Node is a syntax tree node. The set of implementations is closed.
type Node interface {
	// Span returns the node range without enclosing parentheses.
	Span() Range
	// Outer returns the node range including enclosing parentheses.
	Outer() Range
	// Parent returns the syntactic parent, nil for the [Program].
	Parent() Node

	base() *Base
}

// Base holds the location and parent link shared by all nodes.
type Base struct {
	// Loc is the node range without enclosing parentheses.
	Loc Range
	// Paren is the range including all enclosing parentheses, zero when there are none.
	Paren Range
	// Parens counts the enclosing parentheses.
	Parens int

	parent Node
}

// Span implements [Node].
func (b *Base) Span() Range { return b.Loc }

// Outer implements [Node].
func (b *Base) Outer() Range {
	if b.Parens == 0 {
		return b.Loc
	}

	return b.Paren
}

// Parent implements [Node].
func (b *Base) Parent() Node { return b.parent }

func (b *Base) base() *Base { return b }

// Wrap records a pair of parentheses spanning outer around n.
func Wrap(n Node, outer Range) {
	b := n.base()
	b.Parens++
	b.Paren = outer
}

// Program is the root of a file.
type Program struct {
	Base
	Body []Node
}

// Identifier is a name in expression, property or binding position.
type Identifier struct {
	Base
	Name string
}

// PrivateName is a `#name` class member reference.
type PrivateName struct {
	Base
	Name string
}

// Literal is a string, number, regular expression, boolean or null literal.
type Literal struct {
	Base
	Raw string
	// Value is the unquoted contents for string literals.
	Value string
}

// TemplateLiteral is a template string with its substitutions.
type TemplateLiteral struct {
	Base
	Expressions []Node
}

// MemberExpression is a property access `object.property` or `object[property]`.
type MemberExpression struct {
	Base
	Object   Node
	Property Node
	Computed bool
	// Optional is set when this access itself uses `?.`.
	Optional bool
}

// CallExpression is a call `callee(arguments)`.
type CallExpression struct {
	Base
	Callee    Node
	Arguments []Node
	Optional  bool
}

// NewExpression is a constructor call `new callee(arguments)`.
type NewExpression struct {
	Base
	Callee    Node
	Arguments []Node
}

// TaggedTemplate is a template literal with a tag expression.
type TaggedTemplate struct {
	Base
	Tag   Node
	Quasi Node
}

// LogicalExpression is a `&&`, `||` or `??` expression.
type LogicalExpression struct {
	Base
	Operator string
	Left     Node
	Right    Node
}

// AssignmentExpression is a simple or compound assignment.
type AssignmentExpression struct {
	Base
	Operator string
	Left     Node
	Right    Node
}

// UpdateExpression is an increment or decrement.
type UpdateExpression struct {
	Base
	Operator string
	Prefix   bool
	Argument Node
}

// Function is a function declaration, function expression, method or arrow function.
type Function struct {
	Base
	Arrow      bool
	Expression bool
	Params     []Node
	Body       Node
}

// ObjectPattern is an object destructuring target.
type ObjectPattern struct {
	Base
	Properties []Node
}

// ArrayPattern is an array destructuring target.
type ArrayPattern struct {
	Base
	Elements []Node
}

// Property is a key/value pair in an object literal or object pattern.
type Property struct {
	Base
	Key      Node
	Value    Node
	Computed bool
}

// AssignmentPattern is a binding with a default value.
type AssignmentPattern struct {
	Base
	Left  Node
	Right Node
}

// RestElement is a `...argument` binding.
type RestElement struct {
	Base
	Argument Node
}

// ForInStatement is a `for…in` or `for…of` loop.
type ForInStatement struct {
	Base
	Of    bool
	Left  Node
	Right Node
	Body  Node
}

// ImportDeclaration is an `import … from "source"` statement.
type ImportDeclaration struct {
	Base
	Source     *Literal
	Specifiers []*ImportSpecifier
}

// SpecifierKind distinguishes import bindings.
type SpecifierKind uint8

const (
	// ImportDefault is `import name from …`.
	ImportDefault SpecifierKind = iota
	// ImportNamespace is `import * as name from …`.
	ImportNamespace
	// ImportNamed is `import { name } from …`.
	ImportNamed
)

// ImportSpecifier is one binding introduced by an [ImportDeclaration].
type ImportSpecifier struct {
	Base
	Kind  SpecifierKind
	Local *Identifier
}

// MetaProperty is `import.meta` or `new.target`.
type MetaProperty struct {
	Base
	Meta     string
	Property string
}

// Super is the `super` keyword.
type Super struct {
	Base
}

// Other is any node kind without a dedicated type.
type Other struct {
	Base
	// Type is the parser's node type name.
	Type     string
	Children []Node
}
