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

package analyzer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/trace"

	"fillmore-labs.com/optchain/internal/fix"
	"fillmore-labs.com/optchain/internal/jsast"
	"fillmore-labs.com/optchain/internal/jsparse"
	"fillmore-labs.com/optchain/internal/report"
)

type (
	// Diagnostic is a reported finding with at most one fix.
	Diagnostic = report.Diagnostic

	// TextEdit is a single source replacement.
	TextEdit = report.TextEdit

	// Category identifies the kind of a [Diagnostic].
	Category = report.Category
)

// Diagnostic categories.
const (
	PreferChaining   = report.PreferChaining
	PropertyChaining = report.PropertyChaining
	OptionalComputed = report.OptionalComputed
	InternalError    = report.InternalError
)

// ErrNotConverged is returned by [Analyzer.Fix] when fixes remain after the last allowed pass.
var ErrNotConverged = errors.New("fixes did not converge")

// Result holds the diagnostics of a single file.
type Result struct {
	File        *jsast.File
	Diagnostics []Diagnostic
}

// Analyze parses src and reports its diagnostics in source order.
func (a *Analyzer) Analyze(ctx context.Context, filename string, src []byte) (Result, error) {
	file, err := jsparse.Parse(ctx, filename, src)
	if err != nil {
		return Result{}, err
	}

	return Result{File: file, Diagnostics: a.AnalyzeFile(ctx, file)}, nil
}

// AnalyzeFile reports the diagnostics of an already parsed file in source order.
func (a *Analyzer) AnalyzeFile(ctx context.Context, file *jsast.File) []Diagnostic {
	diagnostics := a.options.Run(ctx, file)
	report.Sort(diagnostics)

	return diagnostics
}

// FixResult describes a fix-point run of [Analyzer.Fix].
type FixResult struct {
	Filename string
	Original []byte
	Output   []byte

	// Passes is the number of analysis passes that produced edits.
	Passes int
	// Applied is the total number of applied edits.
	Applied int
	// Remaining are the diagnostics of the final analysis.
	Remaining []Diagnostic
	// Converged is set when the final analysis produced no more edits.
	Converged bool
}

// Changed reports whether the output differs from the original source.
func (r FixResult) Changed() bool { return r.Applied > 0 }

// Fix repeatedly analyzes src and applies all non-conflicting fixes until no fix remains
// or the pass limit is reached.
func (a *Analyzer) Fix(ctx context.Context, filename string, src []byte) (FixResult, error) {
	ctx, task := trace.NewTask(ctx, "Fix")
	defer task.End()

	result := FixResult{Filename: filename, Original: src, Output: src}
	logger := a.options.logger()

	for {
		res, err := a.Analyze(ctx, filename, result.Output)
		if err != nil {
			if result.Passes > 0 {
				return result, fmt.Errorf("after %d passes: %w", result.Passes, err)
			}

			return result, err
		}

		result.Remaining = res.Diagnostics

		edits := report.Edits(res.Diagnostics)
		if len(edits) == 0 {
			result.Converged = true

			return result, nil
		}

		if result.Passes >= a.options.maxPasses {
			return result, fmt.Errorf("%s: %d passes: %w", filename, result.Passes, ErrNotConverged)
		}

		applied, err := fix.Apply(result.Output, edits)
		if err != nil {
			return result, fmt.Errorf("%s: pass %d: %w", filename, result.Passes+1, err)
		}

		result.Passes++
		result.Applied += applied.Applied
		result.Output = applied.Output

		logger.LogAttrs(ctx, slog.LevelDebug, "Applied fixes",
			slog.String("file", filename),
			slog.Int("pass", result.Passes),
			slog.Int("applied", applied.Applied),
			slog.Int("skipped", applied.Skipped),
		)
	}
}
