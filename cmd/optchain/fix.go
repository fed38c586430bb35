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

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"fillmore-labs.com/optchain/internal/driver"
	"fillmore-labs.com/optchain/plugin"
)

func (a *app) fixCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "fix [flags] [paths...]",
		Short: "Rewrite property accesses to optional chaining in place",
		Long: "Fix repeatedly applies all non-conflicting fixes until none remain. " +
			"Remaining diagnostics are reported afterwards.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFix(cmd, args, dryRun)
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "print a diff instead of writing files")

	return cmd
}

func (a *app) runFix(cmd *cobra.Command, args []string, dryRun bool) error {
	ctx := cmd.Context()

	analyzer, severity, err := a.analyzer(cmd)
	if err != nil {
		return err
	}

	if severity == plugin.Off {
		return nil
	}

	files, err := driver.Collect(ctx, paths(args))
	if err != nil {
		return err
	}

	results, err := driver.Run(ctx, analyzer, files, driver.Options{Jobs: a.jobs, Fix: true, Write: !dryRun})
	if err != nil {
		return err
	}

	a.filter(ctx, results, severity)

	p := a.printer()
	p.Severity = severity

	if dryRun {
		counts, err := p.Diff(results)
		if err != nil {
			return err
		}

		if counts.Errors > 0 {
			return errProblems
		}

		return nil
	}

	var changed, applied int

	for _, r := range results {
		if r.Fix != nil && r.Fix.Changed() {
			changed++
			applied += r.Fix.Applied

			a.logger.LogAttrs(ctx, slog.LevelDebug, "Fixed file",
				slog.String("file", r.Path),
				slog.Int("passes", r.Fix.Passes),
				slog.Int("applied", r.Fix.Applied))
		}
	}

	if !a.quiet && changed > 0 {
		fmt.Fprintf(a.stderr, "Applied %d %s to %d %s.\n", applied, plural(applied, "fix", "fixes"), changed, plural(changed, "file", "files"))
	}

	counts, err := p.Text(results)
	if err != nil {
		return err
	}

	if counts.Errors > 0 {
		return errProblems
	}

	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}

	return many
}
