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

// tokenizer collects the leaves of a tree-sitter tree as [jsast.Token] values.
type tokenizer struct {
	src      []byte
	tokens   []jsast.Token
	comments []jsast.Comment
	err      error
}

// atomic node types produce a single token regardless of their inner structure.
var atomic = map[string]jsast.TokenKind{
	"string":   jsast.StringToken,
	"number":   jsast.Numeric,
	"regex":    jsast.RegularExpression,
	"jsx_text": jsast.JSXText,
}

var identifierTypes = map[string]bool{
	"identifier":                            true,
	"property_identifier":                   true,
	"shorthand_property_identifier":         true,
	"shorthand_property_identifier_pattern": true,
	"statement_identifier":                  true,
	"type_identifier":                       true,
	"undefined":                             true,
}

func (t *tokenizer) offset(v uint32) int {
	o, err := safecast.Conv[int](v)
	if err != nil && t.err == nil {
		t.err = err
	}

	return o
}

func (t *tokenizer) rng(n *sitter.Node) jsast.Range {
	return jsast.Range{Start: t.offset(n.StartByte()), End: t.offset(n.EndByte())}
}

func (t *tokenizer) emit(kind jsast.TokenKind, r jsast.Range) {
	if r.Len() <= 0 {
		return
	}

	t.tokens = append(t.tokens, jsast.Token{Kind: kind, Range: r, Value: string(t.src[r.Start:r.End])})
}

// walk appends the tokens and comments of n in source order.
func (t *tokenizer) walk(n *sitter.Node) {
	typ := n.Type()

	switch typ {
	case "comment", "html_comment", "hash_bang_line":
		r := t.rng(n)
		t.comments = append(t.comments, jsast.Comment{Range: r, Text: string(t.src[r.Start:r.End])})

		return

	case "template_string":
		t.template(n)

		return
	}

	if kind, ok := atomic[typ]; ok && n.IsNamed() {
		t.emit(kind, t.rng(n))

		return
	}

	count := int(n.ChildCount())
	if count == 0 {
		if !n.IsMissing() {
			t.emit(t.classify(n), t.rng(n))
		}

		return
	}

	for i := range count {
		if c := n.Child(i); c != nil {
			t.walk(c)
		}
	}
}

// template splits a template string into pieces around its substitutions,
// so that “`a${” and “}b`” become tokens and the substituted expressions are tokenized normally.
func (t *tokenizer) template(n *sitter.Node) {
	r := t.rng(n)
	cur := r.Start

	for i := range int(n.ChildCount()) {
		sub := n.Child(i)
		if sub == nil || sub.Type() != "template_substitution" {
			continue
		}

		s := t.rng(sub)
		t.emit(jsast.TemplateToken, jsast.Range{Start: cur, End: s.Start + 2})

		for j := range int(sub.ChildCount()) {
			c := sub.Child(j)
			if c == nil || !c.IsNamed() && (c.Type() == "${" || c.Type() == "}") {
				continue
			}

			t.walk(c)
		}

		cur = s.End - 1
	}

	t.emit(jsast.TemplateToken, jsast.Range{Start: cur, End: r.End})
}

func (t *tokenizer) classify(n *sitter.Node) jsast.TokenKind {
	typ := n.Type()

	switch {
	case identifierTypes[typ]:
		return jsast.IdentifierToken

	case typ == "private_property_identifier":
		return jsast.PrivateIdentifier

	case typ == "true" || typ == "false":
		return jsast.BooleanToken

	case typ == "null":
		return jsast.NullToken

	case typ == "this" || typ == "super" || typ == "import":
		return jsast.Keyword

	case typ == "optional_chain":
		return jsast.Punctuator
	}

	text := n.Content(t.src)
	if !isWord(text) {
		return jsast.Punctuator
	}

	if n.IsNamed() {
		return jsast.IdentifierToken
	}

	return jsast.Keyword
}

func isWord(s string) bool {
	if s == "" {
		return false
	}

	switch c := s[0]; {
	case c == '_' || c == '$' || c == '#':
		return true

	case 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z':
		return true

	default:
		return c >= 0x80
	}
}
