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

package report

import (
	"fmt"

	"fillmore-labs.com/optchain/internal/config"
)

// Category identifies the kind of a [Diagnostic]. Its string form is the message id.
type Category uint8

//go:generate go tool stringer -type Category -linecomment
const (
	// PreferChaining is a collapsed `&&` guard chain.
	PreferChaining Category = iota // usePreferChaining
	// PropertyChaining is a plain property access.
	PropertyChaining // usePropertyChaining
	// OptionalComputed is a computed property access.
	OptionalComputed // useOptionalComputed
	// InternalError is an inconsistency in the syntax tree, never fixed.
	InternalError // internalError
)

var messages = [...]string{
	PreferChaining:   "Prefer optional chaining.",
	PropertyChaining: "Use optional chaining instead of regular property access.",
	OptionalComputed: "Use optional chaining (?.[]) for computed property access",
	InternalError:    "Internal Error",
}

// Message returns the default message of a category.
func (c Category) Message() string {
	if int(c) >= len(messages) {
		return fmt.Sprintf("Unknown category %d", c)
	}

	return messages[c]
}

// Messages returns the message table keyed by message id.
func Messages() map[string]string {
	m := make(map[string]string, len(messages)-1)
	for c := range InternalError {
		m[c.String()] = c.Message()
	}

	return m
}

// flag maps a category to its toggle. Internal errors can't be disabled.
func (c Category) flag() (config.CategoryFlags, bool) {
	switch c {
	case PreferChaining:
		return config.PreferChaining, true
	case PropertyChaining:
		return config.PropertyChaining, true
	case OptionalComputed:
		return config.OptionalComputed, true
	default:
		return 0, false
	}
}
