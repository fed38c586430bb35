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

// Package rewrite builds the optional chaining fixes.
//
// A [Rewriter] owns the processed set of one run: accesses folded into a chain
// rewrite or already reported are never reported again.
package rewrite

import (
	"fillmore-labs.com/optchain/internal/jsast"
	"fillmore-labs.com/optchain/internal/report"
)

// Rewriter reports optional chaining diagnostics for one file.
type Rewriter struct {
	file      *jsast.File
	report    *report.Collector
	processed map[*jsast.MemberExpression]struct{}
}

// New creates a [Rewriter] reporting to c.
func New(file *jsast.File, c *report.Collector) *Rewriter {
	return &Rewriter{
		file:      file,
		report:    c,
		processed: make(map[*jsast.MemberExpression]struct{}),
	}
}

// Processed reports whether m was consumed by a chain rewrite or already reported.
func (r *Rewriter) Processed(m *jsast.MemberExpression) bool {
	_, ok := r.processed[m]

	return ok
}

// markProcessed returns false when m was already processed.
func (r *Rewriter) markProcessed(m *jsast.MemberExpression) bool {
	if _, ok := r.processed[m]; ok {
		return false
	}

	r.processed[m] = struct{}{}

	return true
}

// recurse dispatches to the rewriter matching the kind of a plain member object.
func (r *Rewriter) recurse(object jsast.Node) {
	inner, ok := object.(*jsast.MemberExpression)
	if !ok || inner.Optional {
		return
	}

	if _, ok := inner.Object.(*jsast.Super); ok {
		return
	}

	if inner.Computed {
		r.Computed(inner)
	} else {
		r.Member(inner)
	}
}
