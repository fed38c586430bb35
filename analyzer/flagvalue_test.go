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

package analyzer_test

import (
	"flag"
	"strings"
	"testing"

	. "fillmore-labs.com/optchain/analyzer"
	"fillmore-labs.com/optchain/internal/config"
)

func TestFlagValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		initial config.CategoryFlags
		args    []string
		want    bool
	}{
		{
			name:    "Enable",
			initial: config.PreferChaining,
			args:    []string{"-computed"},
			want:    true,
		},
		{
			name:    "Disable",
			initial: config.OptionalComputed,
			args:    []string{"-computed=false"},
			want:    false,
		},
		{
			name:    "Off",
			initial: config.OptionalComputed,
			args:    []string{"-computed=off"},
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var flags config.Categories
			flags.Set(tt.initial, true)

			fs := flag.NewFlagSet("test", flag.ContinueOnError)

			const value = config.OptionalComputed
			fv := NewCategoryValue(&flags, value)
			fs.Var(fv, "computed", "rewrite computed property accesses")

			if err := fs.Parse(tt.args); err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			if fv.Get() != tt.want {
				t.Errorf("Flag get = %v, want %v", fv.Get(), tt.want)
			}

			if flags.Enabled(value) != tt.want {
				t.Errorf("OptionalComputed enabled = %v, want %v", flags.Enabled(value), tt.want)
			}
		})
	}
}

func TestFlagValueInvalid(t *testing.T) {
	t.Parallel()

	var flags config.Categories

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(&strings.Builder{})
	fs.Var(NewCategoryValue(&flags, config.PreferChaining), "prefer", "collapse && guard chains")

	if err := fs.Parse([]string{"-prefer=maybe"}); err == nil {
		t.Error("Expected parse error for invalid boolean")
	}
}

func TestUsage(t *testing.T) {
	t.Parallel()

	var flags config.Categories
	flags.Set(config.PreferChaining, true)

	fs := flag.NewFlagSet("test", flag.ContinueOnError)

	fv := NewCategoryValue(&flags, config.PreferChaining)
	fs.Var(fv, "prefer", "collapse && guard chains")

	const expectedUsage = `
  -prefer
    	collapse && guard chains (default true)
`

	var out strings.Builder
	fs.SetOutput(&out)
	fs.Usage()

	if got, want := out.String(), expectedUsage; !strings.HasSuffix(got, want) {
		t.Errorf("Usage() = %q, want suffix %q", got, want)
	}
}

func TestListValue(t *testing.T) {
	t.Parallel()

	list := []string{"store"}

	fs := flag.NewFlagSet("test", flag.ContinueOnError)

	fv := NewListValue(&list)
	fs.Var(fv, "exclude", "excluded identifiers")

	if err := fs.Parse([]string{"-exclude", "api, store,", "-exclude=router"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	want := []string{"store", "api", "router"}
	if got := fv.Get().([]string); strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("Got %q, want %q", got, want)
	}

	if got, want := fv.String(), "store,api,router"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
