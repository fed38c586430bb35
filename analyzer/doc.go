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

// Package analyzer implements the optchain check and fix passes.
//
// # Overview
//
// optchain finds property accesses in JavaScript and TypeScript sources that fail when their
// receiver is null or undefined, and rewrites them to optional chaining. Redundant `&&` guard
// chains are collapsed into a single optional chain.
//
// # Example
//
// Before:
//
//	const name = user && user.profile && user.profile.name;
//	const first = data.items[0];
//
// After applying optchain's fixes:
//
//	const name = user?.profile?.name;
//	const first = data?.items?.[0];
//
// # Suppressions
//
// Accesses are left alone when they are already optional, rooted at a well-known global such as
// `process` or `Math`, part of a method chain like `.then()`, assignment targets, or syntactically
// unable to take `?.`. Lines and files can be excluded with `// nolint:optchain` or
// `// eslint-disable-line auto-optional-chaining` comments.
package analyzer
