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

package astutil

import (
	"regexp"
	"strings"

	"fillmore-labs.com/optchain/internal/jsast"
)

const (
	// optchain is the name of the linter in nolint directives.
	optchain = "optchain"

	// RuleID is the rule name in eslint directives.
	RuleID = "auto-optional-chaining"
)

// CurrentFile holds file information for analysis.
type CurrentFile struct {
	file      *jsast.File
	generated bool
	disabled  bool
	nolint    map[int]struct{}
}

// NewCurrentFile creates a new [CurrentFile] from a parsed [jsast.File].
//
// Comments before the first token are file comments: they mark generated files and can disable
// the whole file. Trailing directives disable their own line or the next one.
func NewCurrentFile(file *jsast.File) CurrentFile {
	if file == nil || file.Program == nil {
		return CurrentFile{}
	}

	c := CurrentFile{
		file:      file,
		generated: strings.HasSuffix(strings.ToLower(file.Name), ".min.js"),
	}

	first := len(file.Src)
	if len(file.Tokens) > 0 {
		first = file.Tokens[0].Range.Start
	}

	for _, comment := range file.Comments {
		line := file.Line(comment.Range.Start)

		switch directive, ok := eslintDirective(comment.Text); {
		case ok && directive == "eslint-disable-line":
			c.disableLine(line)
			continue

		case ok && directive == "eslint-disable-next-line":
			c.disableLine(line + 1)
			continue

		case comment.Range.End <= first:
			if generatedPattern.MatchString(comment.Text) {
				c.generated = true
			}

			if ok || CommentHasNoLint(comment.Text) {
				c.disabled = true
			}

			continue
		}

		if CommentHasNoLint(comment.Text) {
			c.disableLine(line)
		}
	}

	return c
}

func (c *CurrentFile) disableLine(line int) {
	if c.nolint == nil {
		c.nolint = make(map[int]struct{})
	}

	c.nolint[line] = struct{}{}
}

// Valid returns true if the [CurrentFile] was successfully created
// from a parsed file.
func (c CurrentFile) Valid() bool {
	return c.file != nil
}

// Generated returns true if the file is a generated or minified file.
func (c CurrentFile) Generated() bool {
	return c.generated
}

// Disabled returns true if a file comment disables the linter.
func (c CurrentFile) Disabled() bool {
	return c.disabled
}

// NoLint checks if the line containing offset carries a nolint or eslint-disable-line directive.
func (c CurrentFile) NoLint(offset int) bool {
	if c.nolint == nil {
		return false
	}

	_, ok := c.nolint[c.file.Line(offset)]

	return ok
}

var (
	nolintPattern    = regexp.MustCompile(`^/[/*]\s*nolint:([a-zA-Z0-9,_-]+)`)
	eslintPattern    = regexp.MustCompile(`(?s)^/[/*]\s*(eslint-disable(?:-next-line|-line)?)(?:\s+(.*?))?\s*(?:\*/)?$`)
	generatedPattern = regexp.MustCompile(`Code generated .* DO NOT EDIT\.|@generated\b`)
)

// CommentHasNoLint checks if the provided comment contains a `// nolint:optchain` directive.
func CommentHasNoLint(text string) bool {
	matches := nolintPattern.FindStringSubmatch(text)
	if matches == nil {
		return false
	}

	for linter := range strings.SplitSeq(matches[1], ",") {
		if l := strings.ToLower(strings.TrimSpace(linter)); l == optchain || l == "all" {
			return true
		}
	}

	return false
}

// eslintDirective returns the eslint-disable directive of a comment if it applies to this rule.
// A directive without a rule list applies to all rules.
func eslintDirective(text string) (string, bool) {
	matches := eslintPattern.FindStringSubmatch(text)
	if matches == nil {
		return "", false
	}

	rules, _, _ := strings.Cut(matches[2], "--") // description
	if strings.TrimSpace(rules) == "" {
		return matches[1], true
	}

	for rule := range strings.SplitSeq(rules, ",") {
		if r := strings.TrimSpace(rule); r == RuleID || strings.HasSuffix(r, "/"+RuleID) {
			return matches[1], true
		}
	}

	return "", false
}
