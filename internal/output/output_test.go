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

package output_test

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	optchain "fillmore-labs.com/optchain/analyzer"
	"fillmore-labs.com/optchain/internal/driver"
	"fillmore-labs.com/optchain/internal/jsparse"
	. "fillmore-labs.com/optchain/internal/output"
	"fillmore-labs.com/optchain/plugin"
)

func check(tb testing.TB, src string) driver.Result {
	tb.Helper()

	res, err := optchain.New().Analyze(context.Background(), "test.js", []byte(src))
	require.NoError(tb, err)

	return driver.Result{Path: "test.js", Source: []byte(src), Diagnostics: res.Diagnostics}
}

func fixed(tb testing.TB, src string) driver.Result {
	tb.Helper()

	res, err := optchain.New().Fix(context.Background(), "test.js", []byte(src))
	require.NoError(tb, err)

	return driver.Result{Path: "test.js", Source: []byte(src), Diagnostics: res.Remaining, Fix: &res}
}

func TestText(t *testing.T) {
	t.Parallel()

	var out strings.Builder

	p := Printer{W: &out, Severity: plugin.Warn}

	counts, err := p.Text([]driver.Result{check(t, "foo.bar();\n")})
	require.NoError(t, err)

	const want = `test.js:1:1: warning: Use optional chaining instead of regular property access. [usePropertyChaining]
    foo.bar();
    ^~~~~~~
    foo?.bar();

1 problem (0 errors, 1 warning)
1 problem potentially fixable with ` + "`optchain fix`" + `.
`
	assert.Equal(t, want, out.String())
	assert.Equal(t, Counts{Files: 1, Warnings: 1, Fixable: 1}, counts)
}

func TestTextIndent(t *testing.T) {
	t.Parallel()

	var out strings.Builder

	p := Printer{W: &out, Severity: plugin.Error}

	counts, err := p.Text([]driver.Result{check(t, "\tx = \"ü\" + a.b;\n")})
	require.NoError(t, err)

	lines := strings.Split(out.String(), "\n")
	require.GreaterOrEqual(t, len(lines), 4)

	assert.True(t, strings.HasPrefix(lines[0], "test.js:1:13: error: "), "Got %q", lines[0])
	assert.Equal(t, "    \tx = \"ü\" + a.b;", lines[1])
	assert.Equal(t, "    \t          ^~~", lines[2])
	assert.Equal(t, 1, counts.Errors)
}

func TestTextFileError(t *testing.T) {
	t.Parallel()

	var out strings.Builder

	p := Printer{W: &out, Severity: plugin.Warn}

	results := []driver.Result{{Path: "broken.js", Err: fmt.Errorf("broken.js:1:5: %w", jsparse.ErrSyntax)}}

	counts, err := p.Text(results)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "broken.js: error: broken.js:1:5: syntax error\n")
	assert.Equal(t, 1, counts.Errors)
}

func TestJSON(t *testing.T) {
	t.Parallel()

	var out strings.Builder

	p := Printer{W: &out, Severity: plugin.Error}

	counts, err := p.JSON([]driver.Result{check(t, "a && a.b;\n"), check(t, "Math.max(1, 2);\n")})
	require.NoError(t, err)

	var files []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out.String()), &files))
	require.Len(t, files, 2)

	messages, ok := files[0]["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 1)

	m, ok := messages[0].(map[string]any)
	require.True(t, ok)

	assert.Equal(t, "auto-optional-chaining", m["ruleId"])
	assert.Equal(t, "usePreferChaining", m["messageId"])
	assert.InDelta(t, 2, m["severity"], 0)
	assert.Equal(t, map[string]any{"range": []any{0.0, 8.0}, "text": "a?.b"}, m["fix"])
	assert.InDelta(t, 1, files[0]["fixableErrorCount"], 0)

	assert.Empty(t, files[1]["messages"])
	assert.Equal(t, Counts{Files: 1, Errors: 1, Fixable: 1}, counts)
}

func TestDiff(t *testing.T) {
	t.Parallel()

	var out strings.Builder

	p := Printer{W: &out, Severity: plugin.Warn}

	counts, err := p.Diff([]driver.Result{fixed(t, "foo.bar();\n"), fixed(t, "Math.max(1, 2);\n")})
	require.NoError(t, err)

	const want = `--- a/test.js
+++ b/test.js
@@ -1 +1 @@
-foo.bar();
+foo?.bar();
1 file changed, 1 insertion(+), 1 deletion(-)
`
	assert.Equal(t, want, out.String())
	assert.Equal(t, 1, counts.Files)
}

func TestStat(t *testing.T) {
	t.Parallel()

	text, err := UnifiedDiff("x.js", []byte("a\nb\nc\n"), []byte("a\nB\nc\nd\n"))
	require.NoError(t, err)

	stat, err := Stat([]byte(text))
	require.NoError(t, err)

	assert.Equal(t, DiffStat{Files: 1, Insertions: 2, Deletions: 1}, stat)
}

func TestFormatSet(t *testing.T) {
	t.Parallel()

	var f Format
	require.NoError(t, f.Set("json"))
	assert.Equal(t, JSON, f)

	assert.ErrorIs(t, f.Set("xml"), ErrUnknownFormat)
}

func TestColorMode(t *testing.T) {
	t.Parallel()

	var m ColorMode
	require.NoError(t, m.Set("on"))
	assert.True(t, m.Enabled(&strings.Builder{}))

	require.NoError(t, m.Set("off"))
	assert.False(t, m.Enabled(&strings.Builder{}))

	require.NoError(t, m.Set("auto"))
	assert.False(t, m.Enabled(&strings.Builder{}), "non-terminal writers are not colored")

	assert.ErrorIs(t, m.Set("always"), ErrUnknownColorMode)
}
