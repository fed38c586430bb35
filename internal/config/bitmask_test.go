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

package config_test

import (
	"slices"
	"testing"

	. "fillmore-labs.com/optchain/internal/config"
)

func TestBitMask(t *testing.T) {
	t.Parallel()

	b := NewBitMask(PreferChaining, OptionalComputed)

	if !b.Enabled(PreferChaining) || !b.Enabled(OptionalComputed) {
		t.Errorf("Expected prefer and computed enabled")
	}

	if b.Enabled(PropertyChaining) {
		t.Errorf("Expected property disabled")
	}

	if !b.Enabled(PropertyChaining | OptionalComputed) {
		t.Errorf("Expected any of property or computed enabled")
	}

	b.Set(PropertyChaining, true)
	b.Set(PreferChaining, false)

	if got, want := slices.Collect(b.All()), []CategoryFlags{PropertyChaining, OptionalComputed}; !slices.Equal(got, want) {
		t.Errorf("Got flags %v, want %v", got, want)
	}

	b.Disable(PropertyChaining | OptionalComputed)

	if got := slices.Collect(b.All()); len(got) != 0 {
		t.Errorf("Got flags %v, want none", got)
	}
}

func TestBitMaskAllBreak(t *testing.T) {
	t.Parallel()

	b := DefaultCategories()

	var first []CategoryFlags
	for flag := range b.All() {
		first = append(first, flag)

		break
	}

	if len(first) != 1 || first[0] != PreferChaining {
		t.Errorf("Got %v, want [PreferChaining]", first)
	}
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	categories := DefaultCategories()
	for _, flag := range []CategoryFlags{PreferChaining, PropertyChaining, OptionalComputed} {
		if !categories.Enabled(flag) {
			t.Errorf("Expected category %d enabled by default", flag)
		}
	}

	if behavior := DefaultBehavior(); behavior.Enabled(IncludeGenerated) {
		t.Error("Expected generated files excluded by default")
	}
}
