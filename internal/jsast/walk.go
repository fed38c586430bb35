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

package jsast

import (
	"fmt"
	"iter"
)

// Children returns the direct children of n in source order.
func Children(n Node) []Node {
	switch n := n.(type) {
	case *Program:
		return n.Body

	case *Identifier, *PrivateName, *Literal, *MetaProperty, *Super:
		return nil

	case *TemplateLiteral:
		return n.Expressions

	case *MemberExpression:
		return nonNil(n.Object, n.Property)

	case *CallExpression:
		return append(nonNil(n.Callee), n.Arguments...)

	case *NewExpression:
		return append(nonNil(n.Callee), n.Arguments...)

	case *TaggedTemplate:
		return nonNil(n.Tag, n.Quasi)

	case *LogicalExpression:
		return nonNil(n.Left, n.Right)

	case *AssignmentExpression:
		return nonNil(n.Left, n.Right)

	case *UpdateExpression:
		return nonNil(n.Argument)

	case *Function:
		return append(n.Params[:len(n.Params):len(n.Params)], nonNil(n.Body)...)

	case *ObjectPattern:
		return n.Properties

	case *ArrayPattern:
		return n.Elements

	case *Property:
		if n.Key == n.Value { // shorthand
			return nonNil(n.Key)
		}

		return nonNil(n.Key, n.Value)

	case *AssignmentPattern:
		return nonNil(n.Left, n.Right)

	case *RestElement:
		return nonNil(n.Argument)

	case *ForInStatement:
		return nonNil(n.Left, n.Right, n.Body)

	case *ImportDeclaration:
		children := make([]Node, 0, len(n.Specifiers)+1)
		for _, s := range n.Specifiers {
			children = append(children, s)
		}

		if n.Source != nil {
			children = append(children, n.Source)
		}

		return children

	case *ImportSpecifier:
		if n.Local == nil {
			return nil
		}

		return []Node{n.Local}

	case *Other:
		return n.Children

	default:
		panic(fmt.Sprintf("jsast: unexpected node type %T", n))
	}
}

func nonNil(nodes ...Node) []Node {
	result := nodes[:0]

	for _, n := range nodes {
		if n == nil {
			continue
		}

		result = append(result, n)
	}

	return result
}

// Link sets the parent references of all nodes below root.
func Link(root Node) {
	for _, child := range Children(root) {
		child.base().parent = root
		Link(child)
	}
}

// Inspect traverses the tree rooted at root in depth-first order.
// f is called with push set before the children of a node are visited and with push
// unset afterwards. When f returns false on push, the children are skipped and f is
// not called on pop for that node.
func Inspect(root Node, f func(n Node, push bool) bool) {
	if !f(root, true) {
		return
	}

	for _, child := range Children(root) {
		Inspect(child, f)
	}

	f(root, false)
}

// Preorder yields all nodes below and including root in depth-first order.
func Preorder(root Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		preorder(root, yield)
	}
}

func preorder(n Node, yield func(Node) bool) bool {
	if !yield(n) {
		return false
	}

	for _, child := range Children(n) {
		if !preorder(child, yield) {
			return false
		}
	}

	return true
}

// Ancestors yields (child, parent) pairs walking upwards from n to the root.
func Ancestors(n Node) iter.Seq2[Node, Node] {
	return func(yield func(Node, Node) bool) {
		for current, parent := n, n.Parent(); parent != nil; current, parent = parent, parent.Parent() {
			if !yield(current, parent) {
				return
			}
		}
	}
}

// Left returns the next node to the left in an access chain: the object of a
// member expression or the callee of a call. It returns nil for all other nodes.
func Left(n Node) Node {
	switch n := n.(type) {
	case *MemberExpression:
		return n.Object

	case *CallExpression:
		return n.Callee

	default:
		return nil
	}
}

// WalkLeft follows [Left] starting at n and returns the first node for which stop
// returns true. If the chain ends first, it returns the last node reached and false.
func WalkLeft(n Node, stop func(Node) bool) (Node, bool) {
	for {
		if stop(n) {
			return n, true
		}

		next := Left(n)
		if next == nil {
			return n, false
		}

		n = next
	}
}

// Root returns the leftmost base of the access chain containing n.
func Root(n Node) Node {
	root, _ := WalkLeft(n, func(Node) bool { return false })

	return root
}

// PropertyName returns the name of a non-computed identifier property.
func PropertyName(m *MemberExpression) (string, bool) {
	if m.Computed {
		return "", false
	}

	id, ok := m.Property.(*Identifier)
	if !ok {
		return "", false
	}

	return id.Name, true
}

// IsLogicalAnd reports whether n is a `&&` expression.
func IsLogicalAnd(n Node) bool {
	l, ok := n.(*LogicalExpression)

	return ok && l.Operator == "&&"
}

// InChain reports whether the access chain ending in n contains an optional link,
// so that n is part of an optional chain expression. Parentheses end a chain.
func InChain(n Node) bool {
	for start := n; n != nil; n = Left(n) {
		if n != start && n.base().Parens > 0 {
			return false
		}

		switch n := n.(type) {
		case *MemberExpression:
			if n.Optional {
				return true
			}

		case *CallExpression:
			if n.Optional {
				return true
			}
		}
	}

	return false
}
