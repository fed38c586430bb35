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

// Package config holds the flag sets configuring a run.
package config

// CategoryFlags represents the diagnostic categories.
type CategoryFlags uint8

const (
	// PreferChaining enables collapsing `&&` guard chains.
	PreferChaining CategoryFlags = 1 << iota

	// PropertyChaining enables rewriting plain property accesses.
	PropertyChaining

	// OptionalComputed enables rewriting computed property accesses.
	OptionalComputed
)

// Categories is the set of enabled diagnostic categories.
type Categories = BitMask[CategoryFlags]

// DefaultCategories enables all categories.
func DefaultCategories() Categories {
	return NewBitMask(PreferChaining | PropertyChaining | OptionalComputed)
}

// BehaviorFlags represents behavioral options.
type BehaviorFlags uint8

const (
	// IncludeGenerated specifies whether to analyze generated and minified files.
	IncludeGenerated BehaviorFlags = 1 << iota
)

// Behavior holds the enabled behavioral options.
type Behavior = BitMask[BehaviorFlags]

// DefaultBehavior returns the default behavioral options.
func DefaultBehavior() Behavior {
	return Behavior{}
}
