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
	"log/slog"
	"slices"

	"fillmore-labs.com/optchain/internal/config"
)

// Option configures specific behavior of a [New] optchain analyzer.
type Option interface {
	apply(r *runOptions)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option] interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *runOptions) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithExcludeIdentifiers is an [Option] adding root identifiers that are treated as never null.
// The names extend the built-in list.
func WithExcludeIdentifiers(names ...string) Option {
	return excludeIdentifiersOption{names: slices.Clone(names)}
}

type excludeIdentifiersOption struct{ names []string }

func (o excludeIdentifiersOption) apply(r *runOptions) {
	r.ExcludeIdentifiers = append(r.ExcludeIdentifiers, o.names...)
}

func (o excludeIdentifiersOption) LogAttr() slog.Attr {
	return slog.Any("exclude-identifiers", o.names)
}

// WithExcludeChainMethods is an [Option] adding property names that end a safe call chain.
// The names extend the built-in list.
func WithExcludeChainMethods(names ...string) Option {
	return excludeChainMethodsOption{names: slices.Clone(names)}
}

type excludeChainMethodsOption struct{ names []string }

func (o excludeChainMethodsOption) apply(r *runOptions) {
	r.ExcludeChainMethods = append(r.ExcludeChainMethods, o.names...)
}

func (o excludeChainMethodsOption) LogAttr() slog.Attr {
	return slog.Any("exclude-chain-methods", o.names)
}

// WithPreferChaining is an [Option] to configure whether `&&` guard chains are collapsed.
func WithPreferChaining(prefer bool) Option {
	return categoryOption{name: "prefer", flag: config.PreferChaining, enabled: prefer}
}

// WithPropertyChaining is an [Option] to configure whether plain property accesses are rewritten.
func WithPropertyChaining(property bool) Option {
	return categoryOption{name: "property", flag: config.PropertyChaining, enabled: property}
}

// WithOptionalComputed is an [Option] to configure whether computed property accesses are rewritten.
func WithOptionalComputed(computed bool) Option {
	return categoryOption{name: "computed", flag: config.OptionalComputed, enabled: computed}
}

type categoryOption struct {
	name    string
	flag    config.CategoryFlags
	enabled bool
}

func (o categoryOption) apply(r *runOptions) {
	r.Categories.Set(o.flag, o.enabled)
}

func (o categoryOption) LogAttr() slog.Attr {
	return slog.Bool(o.name, o.enabled)
}

// WithGenerated is an [Option] to configure diagnostics in generated and minified files.
func WithGenerated(generated bool) Option { return generatedOption{generated: generated} }

type generatedOption struct{ generated bool }

func (o generatedOption) apply(r *runOptions) {
	r.Behavior.Set(config.IncludeGenerated, o.generated)
}

func (o generatedOption) LogAttr() slog.Attr {
	return slog.Bool("generated", o.generated)
}

// WithMaxPasses is an [Option] to configure the maximum number of passes of [Analyzer.Fix].
func WithMaxPasses(maxPasses int) Option { return maxPassesOption{maxPasses: maxPasses} }

type maxPassesOption struct{ maxPasses int }

func (o maxPassesOption) apply(r *runOptions) {
	r.maxPasses = o.maxPasses
}

func (o maxPassesOption) LogAttr() slog.Attr {
	return slog.Int("max-passes", o.maxPasses)
}

// WithLogger is an [Option] to set the logger for debug output.
func WithLogger(logger *slog.Logger) Option { return loggerOption{logger: logger} }

type loggerOption struct{ logger *slog.Logger }

func (o loggerOption) apply(r *runOptions) {
	r.Logger = o.logger
}

func (o loggerOption) LogAttr() slog.Attr {
	return slog.Bool("logger", o.logger != nil)
}
