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
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"fillmore-labs.com/optchain/internal/driver"
	"fillmore-labs.com/optchain/internal/watch"
	"fillmore-labs.com/optchain/plugin"
)

func (a *app) watchCmd() *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch [flags] [paths...]",
		Short: "Check files again whenever they change",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runWatch(cmd, args, debounce)
		},
	}

	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, "quiet period before changed files are checked")

	return cmd
}

func (a *app) runWatch(cmd *cobra.Command, args []string, debounce time.Duration) error {
	ctx := cmd.Context()

	analyzer, severity, err := a.analyzer(cmd)
	if err != nil {
		return err
	}

	if severity == plugin.Off {
		return nil
	}

	p := a.printer()
	p.Severity = severity

	check := func(ctx context.Context, files []string) error {
		results, err := driver.Run(ctx, analyzer, files, driver.Options{Jobs: a.jobs})
		if err != nil {
			return err
		}

		a.filter(ctx, results, severity)

		_, err = p.Text(results)

		return err
	}

	roots := paths(args)

	files, err := driver.Collect(ctx, roots)
	if err != nil {
		return err
	}

	if len(files) > 0 {
		if err := check(ctx, files); err != nil {
			return err
		}
	}

	w, err := watch.New(roots, debounce, a.logger)
	if err != nil {
		return err
	}
	defer w.Close()

	a.logger.LogAttrs(ctx, slog.LevelInfo, "Watching for changes", slog.Any("paths", roots))

	if err := w.Run(ctx, check); err != nil && ctx.Err() == nil {
		return err
	}

	return nil
}
