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

// Package run drives the optional chaining passes over a parsed file.
package run

import (
	"context"
	"log/slog"
	"runtime/trace"

	"fillmore-labs.com/optchain/internal/astutil"
	"fillmore-labs.com/optchain/internal/config"
	"fillmore-labs.com/optchain/internal/jsast"
	"fillmore-labs.com/optchain/internal/report"
	"fillmore-labs.com/optchain/internal/rewrite"
	"fillmore-labs.com/optchain/internal/suppress"
)

// Run analyzes a parsed file and returns its diagnostics in report order.
//
// The tree is walked once. Guard chains are matched when their outermost `&&` is entered,
// import declarations register style sheet bindings, and member accesses are checked
// on exit, after all accesses they contain.
func (o *Options) Run(ctx context.Context, file *jsast.File) []report.Diagnostic {
	ctx, task := trace.NewTask(ctx, "OptChain")
	defer task.End()

	trace.Log(ctx, "file", file.Name)

	logger := o.logger()

	currentFile := astutil.NewCurrentFile(file)
	if !currentFile.Valid() {
		logger.LogAttrs(ctx, slog.LevelDebug, "Skipping file without syntax tree", slog.String("file", file.Name))

		return nil
	}

	// Skip generated files
	if currentFile.Generated() && !o.Behavior.Enabled(config.IncludeGenerated) {
		logger.LogAttrs(ctx, slog.LevelDebug, "Skipping generated file", slog.String("file", file.Name))

		return nil
	}

	// Skip files with nolint comment
	if currentFile.Disabled() {
		logger.LogAttrs(ctx, slog.LevelDebug, "Skipping disabled file", slog.String("file", file.Name))

		return nil
	}

	defer trace.StartRegion(ctx, "Traverse").End()

	collector := report.NewCollector(file, o.Categories, currentFile.NoLint)

	d := driver{
		file:     file,
		logger:   logger,
		report:   collector,
		engine:   suppress.New(o.ExcludeIdentifiers, o.ExcludeChainMethods),
		rewriter: rewrite.New(file, collector),
	}

	jsast.Inspect(file.Program, func(n jsast.Node, push bool) bool {
		switch n := n.(type) {
		case *jsast.LogicalExpression:
			if push && rewrite.ChainTop(n) {
				d.rewriter.Chain(n)
			}

		case *jsast.ImportDeclaration:
			if push {
				d.engine.RegisterImport(n)
			}

		case *jsast.MemberExpression:
			if !push {
				d.member(ctx, n)
			}
		}

		return true
	})

	return d.report.Diagnostics()
}

// driver holds the per-run state.
type driver struct {
	file     *jsast.File
	logger   *slog.Logger
	report   *report.Collector
	engine   *suppress.Engine
	rewriter *rewrite.Rewriter
}

// member dispatches a member access on exit.
func (d *driver) member(ctx context.Context, m *jsast.MemberExpression) {
	if d.rewriter.Processed(m) {
		return
	}

	if reason := d.engine.Check(m); reason != suppress.None {
		d.skip(ctx, m, reason)

		return
	}

	if m.Computed {
		d.rewriter.Computed(m)

		return
	}

	if reason := suppress.Deferred(m); reason != suppress.None {
		d.skip(ctx, m, reason)

		return
	}

	d.rewriter.Member(m)
}

func (d *driver) skip(ctx context.Context, m *jsast.MemberExpression, reason suppress.Reason) {
	if !d.logger.Enabled(ctx, slog.LevelDebug) {
		return
	}

	pos := d.file.Position(m.Span().Start)

	d.logger.LogAttrs(ctx, slog.LevelDebug, "Skipping access",
		slog.String("file", d.file.Name),
		slog.Int("line", pos.Line),
		slog.Int("column", pos.Column),
		slog.String("access", d.file.NodeText(m)),
		slog.String("reason", reason.String()),
	)
}
