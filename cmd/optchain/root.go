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
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	optchain "fillmore-labs.com/optchain/analyzer"
	"fillmore-labs.com/optchain/internal/driver"
	"fillmore-labs.com/optchain/internal/output"
	"fillmore-labs.com/optchain/internal/settings"
	"fillmore-labs.com/optchain/plugin"
)

// errProblems signals that errors were reported, the process exits with status 1.
var errProblems = errors.New("problems found")

// Exit codes.
const (
	exitOK       = 0
	exitProblems = 1
	exitFailure  = 2
)

// app holds the persistent command line state.
type app struct {
	stdout, stderr io.Writer

	color    output.ColorMode
	quiet    bool
	verbose  bool
	config   string
	jobs     int
	severity plugin.Severity

	// flags is the analyzer whose flag set is bound to the command line.
	flags *optchain.Analyzer

	logger *slog.Logger
}

func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)

	switch {
	case err == nil:
		return exitOK

	case errors.Is(err, errProblems):
		return exitProblems

	default:
		fmt.Fprintf(stderr, "optchain: %v\n", err)

		return exitFailure
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, severity: plugin.Warn, flags: optchain.New()}

	root := &cobra.Command{
		Use:           "optchain",
		Short:         "Rewrite unsafe property accesses to optional chaining",
		Long:          a.flags.Doc,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			a.setupLogger()
		},
	}

	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.Var(&a.color, "color", "colorize output (auto|on|off)")
	pf.BoolVarP(&a.quiet, "quiet", "q", false, "report errors only")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	pf.StringVarP(&a.config, "config", "c", "", "configuration file (default: search for .optchain.{json,yaml,yml,toml})")
	pf.IntVarP(&a.jobs, "jobs", "j", 0, "number of files processed in parallel (default GOMAXPROCS)")
	pf.Var(&a.severity, "severity", "rule severity (off|warn|error), overrides the configuration")
	pf.AddGoFlagSet(&a.flags.Flags)

	root.AddCommand(
		a.checkCmd(),
		a.fixCmd(),
		a.watchCmd(),
		a.ruleCmd(),
	)

	return root
}

func (a *app) setupLogger() {
	level := slog.LevelInfo

	switch {
	case a.verbose:
		level = slog.LevelDebug
	case a.quiet:
		level = slog.LevelError
	}

	a.logger = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
}

// analyzer builds the analyzer from the configuration file, then applies the command line flags.
func (a *app) analyzer(cmd *cobra.Command) (*optchain.Analyzer, plugin.Severity, error) {
	config, path, err := settings.Load(a.config, ".")
	if err != nil {
		return nil, plugin.Off, err
	}

	if path != "" {
		a.logger.Debug("Loaded configuration", slog.String("path", path))
	}

	severity := config.Level()
	if cmd.Flags().Changed("severity") {
		severity = a.severity
	}

	analyzer := config.BuildAnalyzer(optchain.WithLogger(a.logger))

	cmd.Flags().Visit(func(f *pflag.Flag) {
		if analyzer.Flags.Lookup(f.Name) == nil {
			return
		}

		if setErr := analyzer.Flags.Set(f.Name, f.Value.String()); setErr != nil {
			err = errors.Join(err, fmt.Errorf("flag -%s: %w", f.Name, setErr))
		}
	})

	return analyzer, severity, err
}

func (a *app) printer() output.Printer {
	return output.Printer{W: a.stdout, Color: a.color.Enabled(a.stdout)}
}

// filter drops warnings in quiet mode and reports fix convergence failures as warnings.
func (a *app) filter(ctx context.Context, results []driver.Result, severity plugin.Severity) {
	for i := range results {
		r := &results[i]

		if errors.Is(r.Err, optchain.ErrNotConverged) {
			a.logger.LogAttrs(ctx, slog.LevelWarn, "Fixes did not converge", slog.String("file", r.Path))

			if !errors.Is(r.Err, driver.ErrWrite) {
				r.Err = nil
			}
		}

		if !a.quiet || severity == plugin.Error {
			continue
		}

		kept := r.Diagnostics[:0:0]
		for _, d := range r.Diagnostics {
			if d.Category == optchain.InternalError {
				kept = append(kept, d)
			}
		}

		r.Diagnostics = kept
	}
}

func paths(args []string) []string {
	if len(args) == 0 {
		return []string{"."}
	}

	return args
}
