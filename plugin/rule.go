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

package plugin

import (
	"fillmore-labs.com/optchain/internal/astutil"
	"fillmore-labs.com/optchain/internal/report"
)

// RuleID is the rule name.
const RuleID = astutil.RuleID

// Rule describes the rule the way ESLint plugins publish their rule metadata.
type Rule struct {
	ID   string `json:"id"`
	Meta Meta   `json:"meta"`
}

// Meta is the rule metadata.
type Meta struct {
	Type     string            `json:"type"`
	Docs     Docs              `json:"docs"`
	Fixable  string            `json:"fixable"`
	Schema   []Schema          `json:"schema"`
	Messages map[string]string `json:"messages"`
}

// Docs holds the rule documentation.
type Docs struct {
	Description string `json:"description"`
	Category    string `json:"category"`
	Recommended bool   `json:"recommended"`
	URL         string `json:"url,omitempty"`
}

// Schema is a JSON schema fragment describing the rule options.
type Schema struct {
	Type                 string            `json:"type"`
	Items                *Schema           `json:"items,omitempty"`
	Properties           map[string]Schema `json:"properties,omitempty"`
	AdditionalProperties *bool             `json:"additionalProperties,omitempty"`
	Minimum              *int              `json:"minimum,omitempty"`
}

// Recommended is a shareable configuration enabling the rule.
type Recommended struct {
	Plugins []string            `json:"plugins"`
	Rules   map[string]Severity `json:"rules"`
}

// Descriptor returns the rule metadata.
func Descriptor() Rule {
	names := Schema{Type: "array", Items: &Schema{Type: "string"}}
	boolean := Schema{Type: "boolean"}
	one, closed := 1, false

	return Rule{
		ID: RuleID,
		Meta: Meta{
			Type: "problem",
			Docs: Docs{
				Description: "Fix most possible code errors through optional chaining",
				Category:    "Best Practices",
				URL:         "https://pkg.go.dev/fillmore-labs.com/optchain",
			},
			Fixable: "code",
			Schema: []Schema{{
				Type: "object",
				Properties: map[string]Schema{
					"excludeIdentifiers":  names,
					"excludeChainMethods": names,
					"preferChaining":      boolean,
					"propertyChaining":    boolean,
					"optionalComputed":    boolean,
					"generated":           boolean,
					"maxPasses":           {Type: "integer", Minimum: &one},
				},
				AdditionalProperties: &closed,
			}},
			Messages: report.Messages(),
		},
	}
}

// RecommendedConfig returns the configuration enabling the rule with severity [Warn].
func RecommendedConfig() Recommended {
	return Recommended{
		Plugins: []string{RuleID},
		Rules:   map[string]Severity{RuleID + "/" + RuleID: Warn},
	}
}
