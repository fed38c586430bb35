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

package jsparse

import (
	"fortio.org/safecast"
	sitter "github.com/smacker/go-tree-sitter"

	"fillmore-labs.com/optchain/internal/jsast"
)

// builder converts tree-sitter nodes into [jsast.Node] values.
type builder struct {
	src []byte
	err error
}

// opaque node types are kept as leaves: member accesses in type positions and decorators
// must never be rewritten.
var opaque = map[string]bool{
	"type_annotation":           true,
	"type_arguments":            true,
	"type_parameters":           true,
	"type_alias_declaration":    true,
	"interface_declaration":     true,
	"type_query":                true,
	"ambient_declaration":       true,
	"implements_clause":         true,
	"extends_type_clause":       true,
	"index_signature":           true,
	"asserts_annotation":        true,
	"type_predicate_annotation": true,
	"omitting_type_annotation":  true,
	"opting_type_annotation":    true,
	"adding_type_annotation":    true,
	"abstract_method_signature": true,
	"method_signature":          true,
	"function_signature":        true,
	"property_signature":        true,
	"decorator":                 true,
	"module":                    true,
	"internal_module":           true,
	"import_require_clause":     true,
	"nested_identifier":         true,
	"nested_type_identifier":    true,
	"jsx_namespace_name":        true,
	"string_fragment":           true,
	"regex_pattern":             true,
	"regex_flags":               true,
	"escape_sequence":           true,
	"hash_bang_line":            true,
	"html_comment":              true,
	"predefined_type":           true,
	"literal_type":              true,
	"generic_type":              true,
	"type_identifier":           true,
	"satisfies_type_annotation": true,
	"accessibility_modifier":    true,
	"override_modifier":         true,
}

func (b *builder) offset(n *sitter.Node) int {
	v, err := safecast.Conv[int](n.StartByte())
	if err != nil && b.err == nil {
		b.err = err
	}

	return v
}

func (b *builder) rng(n *sitter.Node) jsast.Range {
	start := b.offset(n)

	end, err := safecast.Conv[int](n.EndByte())
	if err != nil && b.err == nil {
		b.err = err
	}

	return jsast.Range{Start: start, End: end}
}

func (b *builder) base(n *sitter.Node) jsast.Base {
	return jsast.Base{Loc: b.rng(n)}
}

func (b *builder) text(n *sitter.Node) string {
	return n.Content(b.src)
}

// field builds the child stored in the named field, or returns nil.
func (b *builder) field(n *sitter.Node, name string) jsast.Node {
	c := n.ChildByFieldName(name)
	if c == nil {
		return nil
	}

	return b.build(c)
}

// list builds all named children except comments.
func (b *builder) list(n *sitter.Node) []jsast.Node {
	var nodes []jsast.Node

	for i := range int(n.ChildCount()) {
		c := n.Child(i)
		if c == nil || !c.IsNamed() || c.Type() == "comment" {
			continue
		}

		nodes = append(nodes, b.build(c))
	}

	return nodes
}

func (b *builder) other(n *sitter.Node) *jsast.Other {
	return &jsast.Other{Base: b.base(n), Type: n.Type(), Children: b.list(n)}
}

// build converts a tree-sitter node.
func (b *builder) build(n *sitter.Node) jsast.Node {
	typ := n.Type()

	if opaque[typ] {
		return &jsast.Other{Base: b.base(n), Type: typ}
	}

	switch typ {
	case "program":
		return &jsast.Program{Base: b.base(n), Body: b.list(n)}

	case "parenthesized_expression":
		return b.parenthesized(n)

	case "identifier", "property_identifier", "shorthand_property_identifier",
		"shorthand_property_identifier_pattern", "statement_identifier", "undefined", "import":
		return &jsast.Identifier{Base: b.base(n), Name: b.text(n)}

	case "private_property_identifier":
		return &jsast.PrivateName{Base: b.base(n), Name: b.text(n)}

	case "string":
		return b.stringLiteral(n)

	case "number", "regex", "true", "false", "null":
		return &jsast.Literal{Base: b.base(n), Raw: b.text(n)}

	case "template_string":
		return b.template(n)

	case "member_expression":
		return b.member(n, "property", false)

	case "subscript_expression":
		return b.member(n, "index", true)

	case "call_expression":
		return b.call(n)

	case "new_expression":
		return b.newExpression(n)

	case "binary_expression":
		return b.binary(n)

	case "assignment_expression", "augmented_assignment_expression":
		return b.assignment(n)

	case "update_expression":
		return b.update(n)

	case "arrow_function", "function_expression", "function", "function_declaration",
		"generator_function", "generator_function_declaration", "method_definition":
		return b.function(n)

	case "object_pattern":
		return &jsast.ObjectPattern{Base: b.base(n), Properties: b.list(n)}

	case "array_pattern":
		return &jsast.ArrayPattern{Base: b.base(n), Elements: b.list(n)}

	case "pair", "pair_pattern":
		return b.property(n)

	case "assignment_pattern", "object_assignment_pattern":
		left, right := b.field(n, "left"), b.field(n, "right")
		if left == nil || right == nil {
			return b.other(n)
		}

		return &jsast.AssignmentPattern{Base: b.base(n), Left: left, Right: right}

	case "rest_pattern", "rest_element":
		var arg jsast.Node
		if args := b.list(n); len(args) > 0 {
			arg = args[0]
		}

		return &jsast.RestElement{Base: b.base(n), Argument: arg}

	case "for_in_statement", "for_of_statement":
		return b.forIn(n)

	case "import_statement":
		return b.importDeclaration(n)

	case "meta_property":
		return b.metaProperty(n)

	case "super":
		return &jsast.Super{Base: b.base(n)}

	case "required_parameter", "optional_parameter":
		return b.parameter(n)

	case "jsx_opening_element", "jsx_closing_element", "jsx_self_closing_element":
		return b.jsxElement(n)

	default:
		return b.other(n)
	}
}

func (b *builder) parenthesized(n *sitter.Node) jsast.Node {
	inner := b.list(n)
	if len(inner) != 1 {
		return b.other(n)
	}

	expr := inner[0]
	jsast.Wrap(expr, b.rng(n))

	return expr
}

func (b *builder) stringLiteral(n *sitter.Node) *jsast.Literal {
	lit := &jsast.Literal{Base: b.base(n), Raw: b.text(n)}

	for i := range int(n.ChildCount()) {
		c := n.Child(i)
		if c == nil || !c.IsNamed() {
			continue
		}

		lit.Value += b.text(c)
	}

	return lit
}

func (b *builder) template(n *sitter.Node) *jsast.TemplateLiteral {
	t := &jsast.TemplateLiteral{Base: b.base(n)}

	for i := range int(n.ChildCount()) {
		c := n.Child(i)
		if c == nil || c.Type() != "template_substitution" {
			continue
		}

		t.Expressions = append(t.Expressions, b.list(c)...)
	}

	return t
}

// hasOptionalChain reports whether n contains a `?.` separator.
func hasOptionalChain(n *sitter.Node) bool {
	for i := range int(n.ChildCount()) {
		c := n.Child(i)
		if c == nil {
			continue
		}

		if t := c.Type(); t == "optional_chain" || t == "?." {
			return true
		}
	}

	return false
}

func (b *builder) member(n *sitter.Node, property string, computed bool) jsast.Node {
	object, prop := b.field(n, "object"), b.field(n, property)
	if object == nil || prop == nil {
		return b.other(n)
	}

	return &jsast.MemberExpression{
		Base:     b.base(n),
		Object:   object,
		Property: prop,
		Computed: computed,
		Optional: hasOptionalChain(n),
	}
}

func (b *builder) call(n *sitter.Node) jsast.Node {
	callee := b.field(n, "function")
	args := n.ChildByFieldName("arguments")

	if callee == nil || args == nil {
		return b.other(n)
	}

	if args.Type() == "template_string" {
		return &jsast.TaggedTemplate{Base: b.base(n), Tag: callee, Quasi: b.build(args)}
	}

	return &jsast.CallExpression{
		Base:      b.base(n),
		Callee:    callee,
		Arguments: b.list(args),
		Optional:  hasOptionalChain(n),
	}
}

func (b *builder) newExpression(n *sitter.Node) jsast.Node {
	callee := b.field(n, "constructor")
	if callee == nil {
		return b.other(n)
	}

	e := &jsast.NewExpression{Base: b.base(n), Callee: callee}
	if args := n.ChildByFieldName("arguments"); args != nil {
		e.Arguments = b.list(args)
	}

	return e
}

func (b *builder) operator(n *sitter.Node) string {
	if op := n.ChildByFieldName("operator"); op != nil {
		return b.text(op)
	}

	return ""
}

func (b *builder) binary(n *sitter.Node) jsast.Node {
	left, right := b.field(n, "left"), b.field(n, "right")

	switch op := b.operator(n); op {
	case "&&", "||", "??":
		if left == nil || right == nil {
			break
		}

		return &jsast.LogicalExpression{Base: b.base(n), Operator: op, Left: left, Right: right}
	}

	return b.other(n)
}

func (b *builder) assignment(n *sitter.Node) jsast.Node {
	left, right := b.field(n, "left"), b.field(n, "right")
	if left == nil || right == nil {
		return b.other(n)
	}

	op := "="
	if n.Type() == "augmented_assignment_expression" {
		op = b.operator(n)
	}

	return &jsast.AssignmentExpression{Base: b.base(n), Operator: op, Left: left, Right: right}
}

func (b *builder) update(n *sitter.Node) jsast.Node {
	arg := n.ChildByFieldName("argument")
	op := n.ChildByFieldName("operator")

	if arg == nil || op == nil {
		return b.other(n)
	}

	return &jsast.UpdateExpression{
		Base:     b.base(n),
		Operator: b.text(op),
		Prefix:   op.StartByte() < arg.StartByte(),
		Argument: b.build(arg),
	}
}

func (b *builder) function(n *sitter.Node) jsast.Node {
	f := &jsast.Function{Base: b.base(n), Arrow: n.Type() == "arrow_function"}

	if p := n.ChildByFieldName("parameter"); p != nil {
		f.Params = []jsast.Node{b.build(p)}
	} else if ps := n.ChildByFieldName("parameters"); ps != nil {
		f.Params = b.list(ps)
	}

	if body := n.ChildByFieldName("body"); body != nil {
		f.Body = b.build(body)
		f.Expression = body.Type() != "statement_block"
	}

	return f
}

// parameter unwraps TypeScript parameters into their binding pattern.
func (b *builder) parameter(n *sitter.Node) jsast.Node {
	pattern := b.field(n, "pattern")
	if pattern == nil {
		return b.other(n)
	}

	value := b.field(n, "value")
	if value == nil {
		return pattern
	}

	return &jsast.AssignmentPattern{Base: b.base(n), Left: pattern, Right: value}
}

func (b *builder) property(n *sitter.Node) jsast.Node {
	keyNode := n.ChildByFieldName("key")
	value := b.field(n, "value")

	if keyNode == nil || value == nil {
		return b.other(n)
	}

	return &jsast.Property{
		Base:     b.base(n),
		Key:      b.build(keyNode),
		Value:    value,
		Computed: keyNode.Type() == "computed_property_name",
	}
}

func (b *builder) forIn(n *sitter.Node) jsast.Node {
	left, right := b.field(n, "left"), b.field(n, "right")
	if left == nil || right == nil {
		return b.other(n)
	}

	return &jsast.ForInStatement{
		Base:  b.base(n),
		Of:    n.Type() == "for_of_statement" || b.operator(n) == "of",
		Left:  left,
		Right: right,
		Body:  b.field(n, "body"),
	}
}

func (b *builder) importDeclaration(n *sitter.Node) jsast.Node {
	d := &jsast.ImportDeclaration{Base: b.base(n)}

	if source := n.ChildByFieldName("source"); source != nil && source.Type() == "string" {
		d.Source = b.stringLiteral(source)
	}

	for i := range int(n.ChildCount()) {
		c := n.Child(i)
		if c == nil || c.Type() != "import_clause" {
			continue
		}

		d.Specifiers = append(d.Specifiers, b.importClause(c)...)
	}

	return d
}

func (b *builder) importClause(n *sitter.Node) []*jsast.ImportSpecifier {
	var specs []*jsast.ImportSpecifier

	for i := range int(n.ChildCount()) {
		c := n.Child(i)
		if c == nil {
			continue
		}

		switch c.Type() {
		case "identifier":
			specs = append(specs, b.specifier(c, jsast.ImportDefault, c))

		case "namespace_import":
			if id := lastOfType(c, "identifier"); id != nil {
				specs = append(specs, b.specifier(c, jsast.ImportNamespace, id))
			}

		case "named_imports":
			for j := range int(c.ChildCount()) {
				s := c.Child(j)
				if s == nil || s.Type() != "import_specifier" {
					continue
				}

				local := s.ChildByFieldName("alias")
				if local == nil {
					local = s.ChildByFieldName("name")
				}

				if local != nil && local.Type() == "identifier" {
					specs = append(specs, b.specifier(s, jsast.ImportNamed, local))
				}
			}
		}
	}

	return specs
}

func (b *builder) specifier(n *sitter.Node, kind jsast.SpecifierKind, local *sitter.Node) *jsast.ImportSpecifier {
	return &jsast.ImportSpecifier{
		Base:  b.base(n),
		Kind:  kind,
		Local: &jsast.Identifier{Base: b.base(local), Name: b.text(local)},
	}
}

func lastOfType(n *sitter.Node, typ string) *sitter.Node {
	var last *sitter.Node

	for i := range int(n.ChildCount()) {
		if c := n.Child(i); c != nil && c.Type() == typ {
			last = c
		}
	}

	return last
}

func (b *builder) metaProperty(n *sitter.Node) jsast.Node {
	count := int(n.ChildCount())
	if count < 3 {
		return b.other(n)
	}

	return &jsast.MetaProperty{
		Base:     b.base(n),
		Meta:     b.text(n.Child(0)),
		Property: b.text(n.Child(count - 1)),
	}
}

// jsxElement skips the tag name, which looks like a member access but is not an expression.
func (b *builder) jsxElement(n *sitter.Node) jsast.Node {
	o := &jsast.Other{Base: b.base(n), Type: n.Type()}

	for i := range int(n.ChildCount()) {
		c := n.Child(i)
		if c == nil || !c.IsNamed() || c.Type() == "comment" || n.FieldNameForChild(i) == "name" {
			continue
		}

		o.Children = append(o.Children, b.build(c))
	}

	return o
}
