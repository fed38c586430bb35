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

// Package watch reports changed source files using OS file notifications.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"

	"fillmore-labs.com/optchain/internal/driver"
)

// DefaultDebounce is the quiet period after the last change before files are reported.
const DefaultDebounce = 100 * time.Millisecond

// Handler processes a batch of changed files.
type Handler func(ctx context.Context, files []string) error

// Watcher reports batches of changed source files.
type Watcher struct {
	w        *fsnotify.Watcher
	dirs     map[string]struct{}
	files    map[string]struct{}
	debounce time.Duration
	logger   *slog.Logger
}

// New watches the given files and directories. Directories are watched recursively,
// except those [driver.SkipDir] excludes.
func New(paths []string, debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("can't create watcher: %w", err)
	}

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	watcher := &Watcher{
		w:        w,
		dirs:     make(map[string]struct{}),
		files:    make(map[string]struct{}),
		debounce: debounce,
		logger:   logger,
	}

	for _, p := range paths {
		if err := watcher.add(filepath.Clean(p)); err != nil {
			return nil, errors.Join(err, w.Close())
		}
	}

	return watcher, nil
}

func (w *Watcher) add(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}

	if !info.IsDir() {
		w.files[path] = struct{}{}

		return w.w.Add(filepath.Dir(path))
	}

	return filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() {
			return nil
		}

		if p != path && driver.SkipDir(d.Name()) {
			return filepath.SkipDir
		}

		w.dirs[p] = struct{}{}

		return w.w.Add(p)
	})
}

// relevant reports whether a changed file is named explicitly or is a source file
// in a recursively watched directory.
func (w *Watcher) relevant(name string) bool {
	if _, ok := w.files[name]; ok {
		return true
	}

	_, ok := w.dirs[filepath.Dir(name)]

	return ok && driver.Source(name)
}

// Run calls handle with the changed files until ctx is done or handle fails.
func (w *Watcher) Run(ctx context.Context, handle Handler) error {
	pending := make(map[string]struct{})

	timer := time.NewTimer(w.debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.w.Events:
			if !ok {
				return nil
			}

			if w.event(ctx, ev, pending) {
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.w.Errors:
			if !ok {
				return nil
			}

			w.logger.LogAttrs(ctx, slog.LevelWarn, "Watch error", slog.Any("error", err))

		case <-timer.C:
			files := make([]string, 0, len(pending))
			for f := range pending {
				if _, err := os.Stat(f); err == nil {
					files = append(files, f)
				}
			}

			clear(pending)

			if len(files) == 0 {
				continue
			}

			slices.Sort(files)

			if err := handle(ctx, files); err != nil {
				return err
			}
		}
	}
}

// event records a relevant change in pending and reports whether it did.
func (w *Watcher) event(ctx context.Context, ev fsnotify.Event, pending map[string]struct{}) bool {
	name := filepath.Clean(ev.Name)

	if ev.Has(fsnotify.Create) {
		_, parent := w.dirs[filepath.Dir(name)]
		if info, err := os.Stat(name); err == nil && info.IsDir() {
			if parent && !driver.SkipDir(info.Name()) {
				if err := w.add(name); err != nil {
					w.logger.LogAttrs(ctx, slog.LevelWarn, "Can't watch directory",
						slog.String("dir", name), slog.Any("error", err))
				}
			}

			return false
		}
	}

	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
		return false
	}

	if !w.relevant(name) {
		return false
	}

	w.logger.LogAttrs(ctx, slog.LevelDebug, "File changed", slog.String("file", name), slog.String("op", ev.Op.String()))
	pending[name] = struct{}{}

	return true
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.w.Close()
}
