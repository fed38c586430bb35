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

package report

import (
	"fillmore-labs.com/optchain/internal/config"
	"fillmore-labs.com/optchain/internal/jsast"
)

// Collector accumulates the diagnostics of one analysis run.
//
// It keeps a ledger of the edit ranges handed out so far: a fix overlapping an earlier one,
// touching ends included, is dropped while its diagnostic is still reported.
type Collector struct {
	file        *jsast.File
	categories  config.Categories
	skip        func(offset int) bool
	diagnostics []Diagnostic
	claimed     []jsast.Range
}

// NewCollector creates a [Collector] for file. Diagnostics starting at an offset for which skip
// returns true are dropped, skip may be nil.
func NewCollector(file *jsast.File, categories config.Categories, skip func(offset int) bool) *Collector {
	return &Collector{file: file, categories: categories, skip: skip}
}

// Enabled reports whether diagnostics of the category are collected.
func (c *Collector) Enabled(category Category) bool {
	flag, ok := category.flag()

	return !ok || c.categories.Enabled(flag)
}

// Report records a diagnostic with the default message of its category.
func (c *Collector) Report(category Category, rng jsast.Range, fix *TextEdit) {
	c.Add(Diagnostic{Category: category, Range: rng, Fix: fix})
}

// Add records a diagnostic, filling in the message and positions when missing.
func (c *Collector) Add(d Diagnostic) {
	if !c.Enabled(d.Category) || c.skip != nil && c.skip(d.Range.Start) {
		return
	}

	if d.Message == "" {
		d.Message = d.Category.Message()
	}

	if c.file != nil {
		d.Pos, d.End = c.file.Position(d.Range.Start), c.file.Position(d.Range.End)
	}

	if d.Fix != nil {
		if c.conflicts(d.Fix.Range()) {
			d.Fix = nil
		} else {
			c.claimed = append(c.claimed, d.Fix.Range())
		}
	}

	c.diagnostics = append(c.diagnostics, d)
}

func (c *Collector) conflicts(r jsast.Range) bool {
	for _, prev := range c.claimed {
		if prev.Start <= r.End && r.Start <= prev.End {
			return true
		}
	}

	return false
}

// Diagnostics returns the collected diagnostics in report order.
func (c *Collector) Diagnostics() []Diagnostic {
	return c.diagnostics
}
