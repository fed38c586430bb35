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

package suppress

// Reason explains why an access is not rewritten.
type Reason uint8

//go:generate go tool stringer -type Reason -linecomment
const (
	// None means the access may be rewritten.
	None Reason = iota // none
	// Optional accesses already use `?.`.
	Optional // optional
	// StyleModule accesses are on a style sheet import binding.
	StyleModule // style module
	// KnownRoot accesses are rooted in an excluded identifier or an async call result.
	KnownRoot // known root
	// Syntax accesses can't carry `?.` without producing invalid code.
	Syntax // syntax
	// ChainMethod accesses name an excluded chain method.
	ChainMethod // chain method
	// AsyncCallback accesses use a promise callback parameter directly.
	AsyncCallback // async callback
	// WritePosition accesses are assigned, updated or destructured into.
	WritePosition // write position
	// RefCurrent accesses are framework ref `.current` lookups.
	RefCurrent // ref current
	// OuterAccess accesses are the object of a plain access and are handled there.
	OuterAccess // outer access
	// LogicalChain accesses are operands of a logical expression.
	LogicalChain // logical chain
)
