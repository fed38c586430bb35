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

package analyzer

import (
	"context"
	"flag"
	"log/slog"
)

// Public API constants for the optchain analyzer.
const (
	name = "optchain"
	doc  = `optchain rewrites property accesses unsafe against null or undefined receivers to optional chaining`
	url  = "https://pkg.go.dev/fillmore-labs.com/optchain"
)

// Analyzer checks and fixes JavaScript and TypeScript sources.
//
// An Analyzer is safe for concurrent use once configured: all per-file state lives in a single
// [Analyzer.Analyze] or [Analyzer.Fix] call.
type Analyzer struct {
	// Name of the analyzer.
	Name string

	// Doc is the documentation of the analyzer.
	Doc string

	// URL holds an optional link to a web page with additional documentation.
	URL string

	// Flags defines any flags accepted by the analyzer.
	Flags flag.FlagSet

	options *runOptions
}

// New creates a new instance of the optchain analyzer.
// It allows for programmatic configuration using [Option], which is useful
// for integrating the analyzer into other tools. For command-line use, the
// analyzer's [Analyzer.Flags] can be bound to the program's flags.
func New(opts ...Option) *Analyzer {
	r := makeRunOptions(opts)

	a := &Analyzer{
		Name:    name,
		Doc:     doc,
		URL:     url,
		options: r,
	}

	registerFlags(&a.Flags, r)

	r.logger().LogAttrs(context.Background(), slog.LevelDebug, "Analyzer created", Options(opts).LogAttr())

	return a
}

// Default is a pre-configured [Analyzer] with default options.
var Default = New()
