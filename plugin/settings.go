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

package plugin

import optchain "fillmore-labs.com/optchain/analyzer"

// Settings represents the configuration options of the rule.
type Settings struct {
	// ExcludeIdentifiers are additional roots treated as never null.
	ExcludeIdentifiers []string `json:"excludeIdentifiers,omitzero"`
	// ExcludeChainMethods are additional method names ending a call chain.
	ExcludeChainMethods []string `json:"excludeChainMethods,omitzero"`
	// PreferChaining enables collapsing `&&` guard chains.
	PreferChaining *bool `json:"preferChaining,omitzero"`
	// PropertyChaining enables rewriting plain property accesses.
	PropertyChaining *bool `json:"propertyChaining,omitzero"`
	// OptionalComputed enables rewriting computed property accesses.
	OptionalComputed *bool `json:"optionalComputed,omitzero"`
	// Generated enables checking generated and minified files.
	Generated *bool `json:"generated,omitzero"`
	// MaxPasses sets the maximum number of fix passes.
	MaxPasses *int `json:"maxPasses,omitzero"`
}

// Options converts [Settings] into a list of [optchain.Option] for the optchain analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
func (s Settings) Options() []optchain.Option {
	var opts []optchain.Option

	if len(s.ExcludeIdentifiers) > 0 {
		opts = append(opts, optchain.WithExcludeIdentifiers(s.ExcludeIdentifiers...))
	}

	if len(s.ExcludeChainMethods) > 0 {
		opts = append(opts, optchain.WithExcludeChainMethods(s.ExcludeChainMethods...))
	}

	opts = appendOption(opts, s.PreferChaining, optchain.WithPreferChaining)
	opts = appendOption(opts, s.PropertyChaining, optchain.WithPropertyChaining)
	opts = appendOption(opts, s.OptionalComputed, optchain.WithOptionalComputed)
	opts = appendOption(opts, s.Generated, optchain.WithGenerated)
	opts = appendOption(opts, s.MaxPasses, optchain.WithMaxPasses)

	return opts
}

// appendOption appends a non-nil setting to an [optchain.Option] list.
func appendOption[T any](opts []optchain.Option, value *T, constructor func(T) optchain.Option) []optchain.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
