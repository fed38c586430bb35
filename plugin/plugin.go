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

import (
	"fmt"

	"github.com/golangci/plugin-module-register/register"

	optchain "fillmore-labs.com/optchain/analyzer"
)

// Config is a rule configuration: the severity and the rule [Settings].
type Config struct {
	// Severity selects how remaining diagnostics are treated, [Warn] when unset.
	Severity *Severity `json:"severity,omitzero"`

	Settings
}

// New decodes raw settings as read from a JSON, YAML or TOML document.
func New(rawSettings any) (Config, error) {
	config, err := register.DecodeSettings[Config](rawSettings)
	if err != nil {
		return Config{}, fmt.Errorf("optchain: %w", err)
	}

	return config, nil
}

// Level returns the configured severity.
func (c Config) Level() Severity {
	if c.Severity == nil {
		return Warn
	}

	return *c.Severity
}

// BuildAnalyzer returns an [optchain.Analyzer] configured with the settings. The options
// opts are applied last.
func (c Config) BuildAnalyzer(opts ...optchain.Option) *optchain.Analyzer {
	return optchain.New(append(c.Options(), opts...)...)
}
