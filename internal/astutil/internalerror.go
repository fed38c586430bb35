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

package astutil

import (
	"fmt"

	"fillmore-labs.com/optchain/internal/jsast"
	"fillmore-labs.com/optchain/internal/report"
)

// InternalError reports an internal error diagnostic without a fix.
// These errors indicate an inconsistent syntax tree or token stream rather than issues in the user's code.
func InternalError(c *report.Collector, n jsast.Node, format string, args ...any) {
	msg := []byte("Internal Error: ")
	msg = fmt.Appendf(msg, format, args...)

	c.Add(report.Diagnostic{Category: report.InternalError, Message: string(msg), Range: n.Span()})
}
