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

package plugin_test

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	optchain "fillmore-labs.com/optchain/analyzer"
	. "fillmore-labs.com/optchain/plugin"
)

const allSettings = `{
	"excludeIdentifiers": ["store"],
	"excludeChainMethods": ["pipe"],
	"preferChaining": true,
	"propertyChaining": true,
	"optionalComputed": false,
	"generated": true,
	"maxPasses": 3
}`

func TestSettings(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name     string
		settings string
		want     int
	}{
		{"all", allSettings, reflect.TypeFor[Settings]().NumField()},
		{"none", `{}`, 0},
		{"empty lists", `{"excludeIdentifiers": []}`, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			dec := json.NewDecoder(strings.NewReader(tc.settings))
			dec.DisallowUnknownFields()

			var s Settings
			if err := dec.Decode(&s); err != nil {
				t.Fatalf("Can't decode settings: %v", err)
			}

			if got := s.Options(); len(got) != tc.want {
				t.Errorf("Got %d options: %s, want %d", len(got), optchain.Options(got).LogValue(), tc.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		name    string
		raw     any
		level   Severity
		wantErr bool
	}{
		{"nil", nil, Warn, false},
		{"map", map[string]any{"severity": "error", "excludeIdentifiers": []any{"store"}}, Error, false},
		{"numeric", map[string]any{"severity": 0}, Off, false},
		{"unknown key", map[string]any{"exclude": []any{"store"}}, Warn, true},
		{"bad severity", map[string]any{"severity": "fatal"}, Warn, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			config, err := New(tc.raw)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Got error %v, want error %t", err, tc.wantErr)
			}

			if got := config.Level(); got != tc.level {
				t.Errorf("Got severity %s, want %s", got, tc.level)
			}
		})
	}
}

func TestBuildAnalyzer(t *testing.T) {
	t.Parallel()

	config, err := New(map[string]any{"excludeIdentifiers": []any{"store"}})
	if err != nil {
		t.Fatalf("Can't decode settings: %v", err)
	}

	a := config.BuildAnalyzer()

	res, err := a.Analyze(t.Context(), "test.js", []byte("store.user;\nother.user;\n"))
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}

	if len(res.Diagnostics) != 1 {
		t.Fatalf("Got %d diagnostics, want 1", len(res.Diagnostics))
	}

	if got := res.Diagnostics[0].Pos.Line; got != 2 {
		t.Errorf("Got diagnostic on line %d, want 2", got)
	}
}
