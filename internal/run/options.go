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

package run

import (
	"log/slog"

	"fillmore-labs.com/optchain/internal/config"
)

// Options represent the configuration of an optional chaining run.
type Options struct {
	// Categories are the enabled diagnostic categories.
	Categories config.Categories

	// Behavior holds behavioral options.
	Behavior config.Behavior

	// ExcludeIdentifiers are additional roots treated as never null.
	ExcludeIdentifiers []string

	// ExcludeChainMethods are additional property names treated as safe chain endpoints.
	ExcludeChainMethods []string

	// Logger receives debug output, nil discards it.
	Logger *slog.Logger
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Categories: config.DefaultCategories(),
		Behavior:   config.DefaultBehavior(),
	}
}

// LogValue implements [slog.LogValuer].
func (o *Options) LogValue() slog.Value {
	var categories []string

	for flag := range o.Categories.All() {
		switch flag {
		case config.PreferChaining:
			categories = append(categories, "prefer")
		case config.PropertyChaining:
			categories = append(categories, "property")
		case config.OptionalComputed:
			categories = append(categories, "computed")
		}
	}

	return slog.GroupValue(
		slog.Any("categories", categories),
		slog.Bool("generated", o.Behavior.Enabled(config.IncludeGenerated)),
		slog.Any("exclude-identifiers", o.ExcludeIdentifiers),
		slog.Any("exclude-chain-methods", o.ExcludeChainMethods),
	)
}

func (o *Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}

	return o.Logger
}
