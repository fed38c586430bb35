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

package jsast

import (
	"slices"
	"sort"
)

// TokenKind classifies tokens the way ESTree tokenizers do.
type TokenKind uint8

//go:generate go tool stringer -type TokenKind -linecomment
const (
	Punctuator        TokenKind = iota // Punctuator
	Keyword                            // Keyword
	IdentifierToken                    // Identifier
	PrivateIdentifier                  // PrivateIdentifier
	StringToken                        // String
	Numeric                            // Numeric
	BooleanToken                       // Boolean
	NullToken                          // Null
	TemplateToken                      // Template
	RegularExpression                  // RegularExpression
	JSXText                            // JSXText
)

// Token is a lexical token of the source.
type Token struct {
	Kind  TokenKind
	Range Range
	Value string
}

// Comment is a line or block comment.
type Comment struct {
	Range Range
	Text  string
}

// Position is a 1-based line and column, the column counted in bytes.
type Position struct {
	Line, Column int
}

// File is a parsed source file.
type File struct {
	Name     string
	Src      []byte
	Program  *Program
	Tokens   []Token
	Comments []Comment

	lines []int
}

// NewFile creates a [File] for src. Tokens and comments must be sorted by position.
func NewFile(name string, src []byte, program *Program, tokens []Token, comments []Comment) *File {
	lines := []int{0}

	for i, c := range src {
		if c == '\n' {
			lines = append(lines, i+1)
		}
	}

	return &File{
		Name:     name,
		Src:      src,
		Program:  program,
		Tokens:   tokens,
		Comments: comments,
		lines:    lines,
	}
}

// Text returns the source text covered by r.
func (f *File) Text(r Range) string {
	return string(f.Src[r.Start:r.End])
}

// NodeText returns the source text of n without enclosing parentheses.
func (f *File) NodeText(n Node) string {
	return f.Text(n.Span())
}

// Position returns the line and column of a byte offset.
func (f *File) Position(offset int) Position {
	line := sort.SearchInts(f.lines, offset+1) - 1

	return Position{Line: line + 1, Column: offset - f.lines[line] + 1}
}

// Line returns the 1-based line of a byte offset.
func (f *File) Line(offset int) int {
	return f.Position(offset).Line
}

// LineText returns the text of the given 1-based line without its line terminator.
func (f *File) LineText(line int) string {
	if line < 1 || line > len(f.lines) {
		return ""
	}

	start, end := f.lines[line-1], len(f.Src)
	if line < len(f.lines) {
		end = f.lines[line] - 1
	}

	if end > start && f.Src[end-1] == '\r' {
		end--
	}

	return string(f.Src[start:end])
}

// tokenIndex returns the index of the first token starting at or after pos.
func (f *File) tokenIndex(pos int) int {
	i, _ := slices.BinarySearchFunc(f.Tokens, pos, func(t Token, p int) int { return t.Range.Start - p })

	return i
}

// TokenAfter returns the first token starting at or after pos that satisfies match.
func (f *File) TokenAfter(pos int, match func(Token) bool) (Token, bool) {
	for _, t := range f.Tokens[f.tokenIndex(pos):] {
		if match(t) {
			return t, true
		}
	}

	return Token{}, false
}

// TokensBetween returns the tokens lying completely within [start, end).
func (f *File) TokensBetween(start, end int) []Token {
	i := f.tokenIndex(start)

	j := i
	for j < len(f.Tokens) && f.Tokens[j].Range.End <= end {
		j++
	}

	return f.Tokens[i:j]
}

// TokensIn returns the tokens of r.
func (f *File) TokensIn(r Range) []Token {
	return f.TokensBetween(r.Start, r.End)
}

// CommentAt returns the first comment starting at or after pos.
func (f *File) CommentAt(pos int) (Comment, bool) {
	i, _ := slices.BinarySearchFunc(f.Comments, pos, func(c Comment, p int) int { return c.Range.Start - p })
	if i >= len(f.Comments) {
		return Comment{}, false
	}

	return f.Comments[i], true
}

// Value matches tokens with the given text.
func Value(v string) func(Token) bool {
	return func(t Token) bool { return t.Value == v }
}
