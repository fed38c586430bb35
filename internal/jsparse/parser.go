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

// Package jsparse parses JavaScript and TypeScript sources with tree-sitter and converts
// the concrete syntax tree into a [jsast.File].
package jsparse

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"runtime/trace"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"

	"fillmore-labs.com/optchain/internal/jsast"
)

var (
	// ErrSyntax is returned for sources the parser cannot parse without errors.
	ErrSyntax = errors.New("syntax error")

	// ErrUnsupportedLanguage is returned for file names without a known source extension.
	ErrUnsupportedLanguage = errors.New("unsupported language")
)

// Language selects the tree-sitter grammar.
type Language uint8

const (
	// JavaScript includes JSX.
	JavaScript Language = iota
	// TypeScript without JSX.
	TypeScript
	// TSX is TypeScript with JSX.
	TSX
)

func (l Language) String() string {
	switch l {
	case JavaScript:
		return "javascript"
	case TypeScript:
		return "typescript"
	case TSX:
		return "tsx"
	default:
		return fmt.Sprintf("Language(%d)", l)
	}
}

func (l Language) grammar() *sitter.Language {
	switch l {
	case TypeScript:
		return typescript.GetLanguage()
	case TSX:
		return tsx.GetLanguage()
	default:
		return javascript.GetLanguage()
	}
}

// Extensions lists the supported file extensions.
var Extensions = map[string]Language{
	".js":  JavaScript,
	".mjs": JavaScript,
	".cjs": JavaScript,
	".jsx": JavaScript,
	".ts":  TypeScript,
	".mts": TypeScript,
	".cts": TypeScript,
	".tsx": TSX,
}

// LanguageFor determines the [Language] by file extension.
func LanguageFor(filename string) (Language, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	if strings.HasSuffix(strings.ToLower(filename), ".d.ts") {
		return TypeScript, fmt.Errorf("%s: declaration file: %w", filename, ErrUnsupportedLanguage)
	}

	l, ok := Extensions[ext]
	if !ok {
		return JavaScript, fmt.Errorf("%s: %w", filename, ErrUnsupportedLanguage)
	}

	return l, nil
}

// Parse parses src, selecting the grammar by the extension of filename.
func Parse(ctx context.Context, filename string, src []byte) (*jsast.File, error) {
	lang, err := LanguageFor(filename)
	if err != nil {
		return nil, err
	}

	return ParseLanguage(ctx, lang, filename, src)
}

// ParseLanguage parses src with the given [Language].
func ParseLanguage(ctx context.Context, lang Language, filename string, src []byte) (*jsast.File, error) {
	defer trace.StartRegion(ctx, "Parse").End()

	parser := sitter.NewParser()
	parser.SetLanguage(lang.grammar())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("%s: tree-sitter parse failed: %w", filename, err)
	}
	defer tree.Close()

	root := tree.RootNode()

	b := builder{src: src}

	if root.HasError() {
		pos := jsast.NewFile(filename, src, nil, nil, nil).Position(b.offset(firstError(root)))

		return nil, fmt.Errorf("%s:%d:%d: %w", filename, pos.Line, pos.Column, ErrSyntax)
	}

	program, ok := b.build(root).(*jsast.Program)
	if !ok {
		return nil, fmt.Errorf("%s: unexpected root node %q: %w", filename, root.Type(), ErrSyntax)
	}

	jsast.Link(program)

	var tokens tokenizer
	tokens.src = src
	tokens.walk(root)

	if err := errors.Join(b.err, tokens.err); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	return jsast.NewFile(filename, src, program, tokens.tokens, tokens.comments), nil
}

// firstError finds the first error or missing node below n.
func firstError(n *sitter.Node) *sitter.Node {
	if n.Type() == "ERROR" || n.IsMissing() {
		return n
	}

	for i := range int(n.ChildCount()) {
		c := n.Child(i)
		if c == nil || !c.HasError() && !c.IsMissing() {
			continue
		}

		return firstError(c)
	}

	return n
}
