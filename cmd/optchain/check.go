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
	"github.com/spf13/cobra"

	"fillmore-labs.com/optchain/internal/driver"
	"fillmore-labs.com/optchain/internal/output"
	"fillmore-labs.com/optchain/plugin"
)

func (a *app) checkCmd() *cobra.Command {
	var format output.Format

	cmd := &cobra.Command{
		Use:   "check [flags] [paths...]",
		Short: "Report property accesses that should use optional chaining",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runCheck(cmd, args, format)
		},
	}

	cmd.Flags().Var(&format, "format", "output format (text|json|diff)")

	return cmd
}

func (a *app) runCheck(cmd *cobra.Command, args []string, format output.Format) error {
	ctx := cmd.Context()

	analyzer, severity, err := a.analyzer(cmd)
	if err != nil {
		return err
	}

	if severity == plugin.Off {
		a.logger.Debug("Rule is disabled")

		return nil
	}

	files, err := driver.Collect(ctx, paths(args))
	if err != nil {
		return err
	}

	results, err := driver.Run(ctx, analyzer, files, driver.Options{Jobs: a.jobs, Fix: format == output.Diff})
	if err != nil {
		return err
	}

	a.filter(ctx, results, severity)

	p := a.printer()
	p.Severity = severity

	counts, err := p.Print(format, results)
	if err != nil {
		return err
	}

	if counts.Errors > 0 {
		return errProblems
	}

	return nil
}
