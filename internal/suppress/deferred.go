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

import "fillmore-labs.com/optchain/internal/jsast"

// Deferred returns why a plain access is left to an enclosing construct, or [None].
//
// The object of a plain access is rewritten together with the outer access. Operands on the
// right of `&&` and `||`, and accesses on them, are left to the guard chain matcher unless they
// already belong to an optional chain, which the matcher never extends.
func Deferred(m *jsast.MemberExpression) Reason {
	if p, ok := m.Parent().(*jsast.MemberExpression); ok && p.Object == m && !p.Optional {
		return OuterAccess
	}

	if !jsast.InChain(m) && logicalOperand(m) {
		return LogicalChain
	}

	return None
}

func logicalOperand(n jsast.Node) bool {
	switch p := n.Parent().(type) {
	case *jsast.LogicalExpression:
		return (p.Operator == "&&" || p.Operator == "||") && p.Right == n

	case *jsast.MemberExpression:
		return p.Object == n && logicalOperand(p)

	default:
		return false
	}
}
