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

// Package settings loads the rule configuration from JSON, YAML or TOML files.
//
// A file holds either the rule settings at top level or an ESLint style `rules` section:
//
//	rules:
//	  auto-optional-chaining: [error, {excludeIdentifiers: [store]}]
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"fillmore-labs.com/optchain/plugin"
)

var (
	// ErrUnsupportedFormat is returned for configuration files with an unknown extension.
	ErrUnsupportedFormat = errors.New("unsupported configuration format")

	// ErrInvalidRule is returned for a malformed rule entry in a `rules` section.
	ErrInvalidRule = errors.New("invalid rule configuration")
)

// DefaultNames are the configuration file names searched for, in order.
var DefaultNames = []string{".optchain.json", ".optchain.yaml", ".optchain.yml", ".optchain.toml"}

// Load reads the configuration at path. With an empty path the default names are searched
// in dir and its parents; a missing default file is not an error and yields the defaults.
// Load returns the name of the file read, if any.
func Load(path, dir string) (plugin.Config, string, error) {
	if path == "" {
		found, ok := Find(dir)
		if !ok {
			return plugin.Config{}, "", nil
		}

		path = found
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return plugin.Config{}, "", fmt.Errorf("can't read configuration: %w", err)
	}

	config, err := Decode(path, data)
	if err != nil {
		return plugin.Config{}, "", fmt.Errorf("%s: %w", path, err)
	}

	return config, path, nil
}

// Find searches dir and its parents for a file with one of the [DefaultNames].
func Find(dir string) (string, bool) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}

	for {
		for _, name := range DefaultNames {
			path := filepath.Join(dir, name)
			if fi, err := os.Stat(path); err == nil && fi.Mode().IsRegular() {
				return path, true
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}

		dir = parent
	}
}

// Decode parses a configuration document, selecting the format by the extension of name.
func Decode(name string, data []byte) (plugin.Config, error) {
	var raw map[string]any

	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return plugin.Config{}, fmt.Errorf("failed to parse JSON: %w", err)
		}

	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return plugin.Config{}, fmt.Errorf("failed to parse YAML: %w", err)
		}

	case ".toml":
		if _, err := toml.Decode(string(data), &raw); err != nil {
			return plugin.Config{}, fmt.Errorf("failed to parse TOML: %w", err)
		}

	default:
		return plugin.Config{}, fmt.Errorf("%q: %w", ext, ErrUnsupportedFormat)
	}

	settings, err := ruleSettings(raw)
	if err != nil {
		return plugin.Config{}, err
	}

	return plugin.New(settings)
}

// ruleSettings extracts the rule entry of a `rules` section. ESLint accepts a bare severity
// or a `[severity, options]` list.
func ruleSettings(raw map[string]any) (map[string]any, error) {
	rules, ok := raw["rules"]
	if !ok {
		return raw, nil
	}

	if len(raw) > 1 {
		return nil, fmt.Errorf("rules section with additional keys: %w", ErrInvalidRule)
	}

	table, ok := rules.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("rules section is %T: %w", rules, ErrInvalidRule)
	}

	entry, ok := table[plugin.RuleID]
	if !ok {
		if entry, ok = table[plugin.RuleID+"/"+plugin.RuleID]; !ok {
			return map[string]any{}, nil
		}
	}

	switch entry := entry.(type) {
	case []any:
		if len(entry) == 0 || len(entry) > 2 {
			return nil, fmt.Errorf("rule entry with %d elements: %w", len(entry), ErrInvalidRule)
		}

		settings := map[string]any{}

		if len(entry) == 2 {
			options, ok := entry[1].(map[string]any)
			if !ok {
				return nil, fmt.Errorf("rule options are %T: %w", entry[1], ErrInvalidRule)
			}

			maps.Copy(settings, options)
		}

		settings["severity"] = entry[0]

		return settings, nil

	default:
		return map[string]any{"severity": entry}, nil
	}
}
