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
	"iter"
	"slices"

	"fillmore-labs.com/optchain/internal/jsast"
)

// ParamNames yields the names of all plain identifier parameters of a function.
func ParamNames(fn *jsast.Function) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, param := range fn.Params {
			id, ok := param.(*jsast.Identifier)
			if !ok {
				continue // destructuring or default value
			}

			if !yield(id.Name) {
				return
			}
		}
	}
}

// ImportedNames yields the local names of all specifiers of the given kinds.
func ImportedNames(decl *jsast.ImportDeclaration, kinds ...jsast.SpecifierKind) iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, spec := range decl.Specifiers {
			if spec.Local == nil || !slices.Contains(kinds, spec.Kind) {
				continue
			}

			if !yield(spec.Local.Name) {
				return
			}
		}
	}
}
