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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	optchain "fillmore-labs.com/optchain/analyzer"
	"fillmore-labs.com/optchain/internal/driver"
	"fillmore-labs.com/optchain/plugin"
)

type result struct {
	code           int
	stdout, stderr string
}

func run(ctx context.Context, tb testing.TB, args ...string) result {
	tb.Helper()

	var stdout, stderr bytes.Buffer

	code := execute(ctx, append([]string{"--color=off"}, args...), &stdout, &stderr)

	return result{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func source(tb testing.TB, content string) (dir, path string) {
	tb.Helper()

	dir = tb.TempDir()
	path = filepath.Join(dir, "a.js")
	require.NoError(tb, os.WriteFile(path, []byte(content), 0o600))

	return dir, path
}

func TestCheck(t *testing.T) {
	t.Parallel()

	dir, _ := source(t, "foo.bar;\n")

	r := run(t.Context(), t, "check", dir)

	assert.Equal(t, exitOK, r.code, r.stderr)
	assert.Contains(t, r.stdout, "a.js:1:1: warning: ")
	assert.Contains(t, r.stdout, "[usePropertyChaining]")
	assert.Contains(t, r.stdout, "1 problem (0 errors, 1 warning)")
}

func TestCheckSeverity(t *testing.T) {
	t.Parallel()

	dir, _ := source(t, "foo.bar;\n")

	tests := []struct {
		name     string
		severity string
		code     int
	}{
		{"error", "error", exitProblems},
		{"warn", "warn", exitOK},
		{"off", "off", exitOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := run(t.Context(), t, "check", "--severity="+tt.severity, dir)

			assert.Equal(t, tt.code, r.code, r.stderr)

			if tt.severity == "off" {
				assert.Empty(t, r.stdout)
			}
		})
	}
}

func TestCheckQuiet(t *testing.T) {
	t.Parallel()

	dir, _ := source(t, "foo.bar;\n")

	r := run(t.Context(), t, "check", "--quiet", dir)

	assert.Equal(t, exitOK, r.code, r.stderr)
	assert.Empty(t, r.stdout)
}

func TestCheckAnalyzerFlags(t *testing.T) {
	t.Parallel()

	dir, _ := source(t, "foo.bar;\ndata[0];\n")

	r := run(t.Context(), t, "check", "--property=false", dir)

	assert.Equal(t, exitOK, r.code, r.stderr)
	assert.NotContains(t, r.stdout, "[usePropertyChaining]")
	assert.Contains(t, r.stdout, "a.js:2:1: warning: ")
	assert.Contains(t, r.stdout, "[useOptionalComputed]")
}

func TestCheckJSON(t *testing.T) {
	t.Parallel()

	dir, path := source(t, "foo.bar;\n")

	r := run(t.Context(), t, "check", "--format=json", dir)
	require.Equal(t, exitOK, r.code, r.stderr)

	var files []struct {
		FilePath     string `json:"filePath"`
		WarningCount int    `json:"warningCount"`
		Messages     []struct {
			MessageID string `json:"messageId"`
			Line      int    `json:"line"`
			Column    int    `json:"column"`
		} `json:"messages"`
	}
	require.NoError(t, json.Unmarshal([]byte(r.stdout), &files))

	require.Len(t, files, 1)
	assert.Equal(t, path, files[0].FilePath)
	assert.Equal(t, 1, files[0].WarningCount)

	require.Len(t, files[0].Messages, 1)
	assert.Equal(t, "usePropertyChaining", files[0].Messages[0].MessageID)
	assert.Equal(t, 1, files[0].Messages[0].Line)
	assert.Equal(t, 1, files[0].Messages[0].Column)
}

func TestCheckConfig(t *testing.T) {
	t.Parallel()

	dir, _ := source(t, "foo.bar;\n")

	config := filepath.Join(t.TempDir(), "optchain.yaml")
	require.NoError(t, os.WriteFile(config, []byte("severity: error\n"), 0o600))

	r := run(t.Context(), t, "check", "--config", config, dir)

	assert.Equal(t, exitProblems, r.code, r.stderr)
	assert.Contains(t, r.stdout, "a.js:1:1: error: ")
}

func TestCheckConfigOverride(t *testing.T) {
	t.Parallel()

	dir, _ := source(t, "foo.bar;\n")

	config := filepath.Join(t.TempDir(), "optchain.json")
	require.NoError(t, os.WriteFile(config, []byte(`{"propertyChaining": false}`), 0o600))

	r := run(t.Context(), t, "check", "--config", config, dir)
	assert.Equal(t, exitOK, r.code, r.stderr)
	assert.Empty(t, r.stdout)

	r = run(t.Context(), t, "check", "--config", config, "--property", dir)
	assert.Equal(t, exitOK, r.code, r.stderr)
	assert.Contains(t, r.stdout, "[usePropertyChaining]")
}

func TestCheckErrors(t *testing.T) {
	t.Parallel()

	dir, _ := source(t, "foo.bar;\n")

	tests := []struct {
		name string
		args []string
	}{
		{"format", []string{"check", "--format=xml", dir}},
		{"missing", []string{"check", filepath.Join(dir, "missing.js")}},
		{"config", []string{"check", "--config", filepath.Join(dir, "missing.json"), dir}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := run(t.Context(), t, tt.args...)

			assert.Equal(t, exitFailure, r.code)
			assert.Contains(t, r.stderr, "optchain: ")
		})
	}
}

func TestCheckSyntaxError(t *testing.T) {
	t.Parallel()

	dir, _ := source(t, "a.b(\n")

	r := run(t.Context(), t, "check", dir)

	assert.Equal(t, exitProblems, r.code, r.stderr)
	assert.Contains(t, r.stdout, "syntax error")
}

func TestFix(t *testing.T) {
	t.Parallel()

	_, path := source(t, "user && user.profile && user.profile.name;\ndata.items[0];\n")

	r := run(t.Context(), t, "fix", path)

	assert.Equal(t, exitOK, r.code, r.stderr)
	assert.Empty(t, r.stdout)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "user?.profile?.name;\ndata?.items?.[0];\n", string(got))
}

func TestFixDryRun(t *testing.T) {
	t.Parallel()

	_, path := source(t, "foo.bar;\n")

	r := run(t.Context(), t, "fix", "--dry-run", path)

	assert.Equal(t, exitOK, r.code, r.stderr)
	assert.Contains(t, r.stdout, "-foo.bar;\n+foo?.bar;\n")
	assert.Contains(t, r.stdout, "1 file changed, 1 insertion(+), 1 deletion(-)")

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "foo.bar;\n", string(got))
}

func TestFilterNotConverged(t *testing.T) {
	t.Parallel()

	var stderr bytes.Buffer

	a := &app{stderr: &stderr}
	a.setupLogger()

	notConverged := fmt.Errorf("test.js: 1 passes: %w", optchain.ErrNotConverged)
	writeFailed := fmt.Errorf("%w: read-only file system", driver.ErrWrite)

	results := []driver.Result{
		{Path: "partial.js", Err: notConverged},
		{Path: "readonly.js", Err: errors.Join(notConverged, writeFailed)},
	}

	a.filter(t.Context(), results, plugin.Warn)

	require.NoError(t, results[0].Err)
	require.ErrorIs(t, results[1].Err, driver.ErrWrite)
	assert.Contains(t, stderr.String(), "Fixes did not converge")
}

func TestRule(t *testing.T) {
	t.Parallel()

	r := run(t.Context(), t, "rule")
	require.Equal(t, exitOK, r.code, r.stderr)

	var rule map[string]any
	require.NoError(t, json.Unmarshal([]byte(r.stdout), &rule))
	assert.Contains(t, rule, "meta")

	r = run(t.Context(), t, "rule", "--recommended")
	require.Equal(t, exitOK, r.code, r.stderr)
	assert.Contains(t, r.stdout, `"rules"`)
}

func TestWatch(t *testing.T) {
	t.Parallel()

	dir, _ := source(t, "foo.bar;\n")

	ctx, cancel := context.WithTimeout(t.Context(), 500*time.Millisecond)
	defer cancel()

	r := run(ctx, t, "watch", dir)

	assert.Equal(t, exitOK, r.code, r.stderr)
	assert.Contains(t, r.stdout, "[usePropertyChaining]")
}
