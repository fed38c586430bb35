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

// Package astutil provides helpers shared by the optional chaining passes.
package astutil

import (
	"slices"

	"fillmore-labs.com/optchain/internal/jsast"
)

// EqualTokens reports whether a and b consist of the same token sequence.
//
// Tokens are compared by kind and text, so formatting and enclosing parentheses do not matter,
// while syntactically different but equivalent expressions (`a["b"]` and `a.b`) are not equal.
func EqualTokens(f *jsast.File, a, b jsast.Node) bool {
	ta, tb := f.TokensIn(a.Span()), f.TokensIn(b.Span())

	return slices.EqualFunc(ta, tb, func(x, y jsast.Token) bool {
		return x.Kind == y.Kind && x.Value == y.Value
	})
}
