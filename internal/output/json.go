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

package output

import (
	"encoding/json"

	optchain "fillmore-labs.com/optchain/analyzer"
	"fillmore-labs.com/optchain/internal/driver"
	"fillmore-labs.com/optchain/plugin"
)

// fileResult is the per-file structure of the ESLint JSON formatter.
type fileResult struct {
	FilePath            string    `json:"filePath"`
	Messages            []message `json:"messages"`
	ErrorCount          int       `json:"errorCount"`
	FatalErrorCount     int       `json:"fatalErrorCount"`
	WarningCount        int       `json:"warningCount"`
	FixableErrorCount   int       `json:"fixableErrorCount"`
	FixableWarningCount int       `json:"fixableWarningCount"`
	Output              *string   `json:"output,omitempty"`
}

// message is a single ESLint lint message. Columns count bytes.
type message struct {
	RuleID    *string `json:"ruleId"`
	Severity  int     `json:"severity"`
	Fatal     bool    `json:"fatal,omitempty"`
	Message   string  `json:"message"`
	MessageID string  `json:"messageId,omitempty"`
	Line      int     `json:"line"`
	Column    int     `json:"column"`
	EndLine   int     `json:"endLine,omitempty"`
	EndColumn int     `json:"endColumn,omitempty"`
	Fix       *fix    `json:"fix,omitempty"`
}

type fix struct {
	Range [2]int `json:"range"`
	Text  string `json:"text"`
}

// JSON prints the results in the structure of the ESLint JSON formatter.
func (p Printer) JSON(results []driver.Result) (Counts, error) {
	var counts Counts

	ruleID := plugin.RuleID
	files := make([]fileResult, 0, len(results))

	for _, r := range results {
		f := fileResult{FilePath: r.Path, Messages: []message{}}

		if r.Err != nil {
			f.Messages = append(f.Messages, message{Severity: 2, Fatal: true, Message: r.Err.Error()})
			f.ErrorCount++
			f.FatalErrorCount++
			counts.Errors++
		}

		for _, d := range r.Diagnostics {
			severity := p.severity(d)
			counts.add(severity, d)

			m := message{
				RuleID:    &ruleID,
				Severity:  int(severity),
				Message:   d.Message,
				MessageID: d.Category.String(),
				Line:      d.Pos.Line,
				Column:    d.Pos.Column,
				EndLine:   d.End.Line,
				EndColumn: d.End.Column,
			}

			if d.Fix != nil {
				m.Fix = &fix{Range: [2]int{d.Fix.Start, d.Fix.End}, Text: d.Fix.NewText}
			}

			f.Messages = append(f.Messages, m)
			countFile(&f, severity, d)
		}

		if r.Fix != nil && r.Fix.Changed() {
			output := string(r.Fix.Output)
			f.Output = &output
		}

		if len(f.Messages) > 0 || f.Output != nil {
			counts.Files++
		}

		files = append(files, f)
	}

	enc := json.NewEncoder(p.W)
	enc.SetIndent("", "  ")

	return counts, enc.Encode(files)
}

func countFile(f *fileResult, severity plugin.Severity, d optchain.Diagnostic) {
	switch severity {
	case plugin.Error:
		f.ErrorCount++
		if d.Fix != nil {
			f.FixableErrorCount++
		}

	case plugin.Warn:
		f.WarningCount++
		if d.Fix != nil {
			f.FixableWarningCount++
		}
	}
}
