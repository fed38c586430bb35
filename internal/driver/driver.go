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

// Package driver collects source files and runs the analyzer over them concurrently.
package driver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	optchain "fillmore-labs.com/optchain/analyzer"
	"fillmore-labs.com/optchain/internal/jsparse"
)

var (
	// ErrNoFiles is returned when the given paths contain no source files.
	ErrNoFiles = errors.New("no source files found")

	// ErrWrite is reported in [Result.Err] when fixes could not be written back.
	ErrWrite = errors.New("can't write fixes")
)

// Options configures a [Run].
type Options struct {
	// Jobs limits the number of files processed concurrently, GOMAXPROCS when not positive.
	Jobs int

	// Fix applies the fixes of each file.
	Fix bool

	// Write stores fixed files. Without it fixes are only computed.
	Write bool
}

// Result is the outcome for a single file.
type Result struct {
	Path string

	// Source is the file content as read.
	Source []byte

	// Diagnostics are the diagnostics of the check, or those remaining after fixing.
	Diagnostics []optchain.Diagnostic

	// Fix is set when fixes were requested.
	Fix *optchain.FixResult

	// Err is a per-file error, such as a syntax error.
	Err error
}

// Collect returns the sorted source files below paths. Directories are walked recursively,
// skipping hidden directories, `node_modules` and TypeScript declaration files.
// Files named explicitly are always included.
func Collect(ctx context.Context, paths []string) ([]string, error) {
	var files []string

	seen := make(map[string]struct{})
	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}

		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			add(p)

			continue
		}

		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if err := ctx.Err(); err != nil {
				return err
			}

			if d.IsDir() {
				if path != p && SkipDir(d.Name()) {
					return filepath.SkipDir
				}

				return nil
			}

			if Source(path) {
				add(path)
			}

			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	slices.Sort(files)

	return files, nil
}

// SkipDir reports whether a directory is excluded from the walk.
func SkipDir(name string) bool {
	return name == "node_modules" || len(name) > 1 && strings.HasPrefix(name, ".")
}

// Source reports whether a file name has a supported source extension.
func Source(path string) bool {
	_, err := jsparse.LanguageFor(path)

	return err == nil
}

// Run analyzes, and optionally fixes, files concurrently. Results are in the order of files.
// Per-file failures are reported in [Result.Err], Run only fails on cancellation.
func Run(ctx context.Context, a *optchain.Analyzer, files []string, opts Options) ([]Result, error) {
	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			results[i] = process(gctx, a, path, opts)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}

	return results, nil
}

// Current returns the source the diagnostics refer to: the fixed output when fixes were applied.
func (r Result) Current() []byte {
	if r.Fix != nil && r.Fix.Output != nil {
		return r.Fix.Output
	}

	return r.Source
}

func process(ctx context.Context, a *optchain.Analyzer, path string, opts Options) Result {
	result := Result{Path: path}

	src, err := os.ReadFile(path)
	if err != nil {
		result.Err = err

		return result
	}

	result.Source = src

	if !opts.Fix {
		res, err := a.Analyze(ctx, path, src)
		result.Diagnostics, result.Err = res.Diagnostics, err

		return result
	}

	fixed, err := a.Fix(ctx, path, src)
	result.Fix, result.Diagnostics, result.Err = &fixed, fixed.Remaining, err

	if !opts.Write || !fixed.Changed() || !writable(err) {
		return result
	}

	if err := write(path, fixed.Output); err != nil {
		result.Err = errors.Join(result.Err, err)
	}

	return result
}

// writable reports whether the output of a fix run may replace the file. Output of a run that
// stopped on a parse or edit failure is discarded, a run that hit the pass limit still counts.
func writable(err error) bool {
	return err == nil || errors.Is(err, optchain.ErrNotConverged)
}

// write replaces the file content, keeping its permissions.
func write(path string, data []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}

	if err := os.WriteFile(path, data, mode.Perm()); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	return nil
}
