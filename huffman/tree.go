// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

// Tree is a node of a prefix tree. The set of implementations is closed:
// every Tree is a Leaf, an EndMessage, or a Branch.
//
// Branch holds its children by value, so a tree can neither share subtrees
// nor contain cycles. Trees are immutable and may be compared with ==.
type Tree interface {
	isTree()
}

// Leaf is a terminal node holding a single byte symbol.
type Leaf byte

// EndMessage is the terminal node that marks the end of the encoded data.
type EndMessage struct{}

// Branch is an internal node. The Left child is selected by a 0 bit and the
// Right child by a 1 bit. Both children must be non-nil.
type Branch struct {
	Left, Right Tree
}

func (Leaf) isTree()       {}
func (EndMessage) isTree() {}
func (Branch) isTree()     {}

// Depth reports the length of the longest path from the root to a terminal.
// A tree made of a single terminal has a depth of zero.
func Depth(t Tree) int {
	type item struct {
		node  Tree
		depth int
	}
	var maxDepth int
	stack := []item{{t, 0}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if b, ok := it.node.(Branch); ok {
			stack = append(stack, item{b.Right, it.depth + 1}, item{b.Left, it.depth + 1})
			continue
		}
		if it.depth > maxDepth {
			maxDepth = it.depth
		}
	}
	return maxDepth
}

// NumTerminals reports the number of Leaf and EndMessage nodes in t.
func NumTerminals(t Tree) int {
	var n int
	visitTerminals(t, func(Tree) bool { n++; return true })
	return n
}

// ContainsEndMessage reports whether t has at least one EndMessage terminal.
func ContainsEndMessage(t Tree) bool {
	var found bool
	visitTerminals(t, func(n Tree) bool {
		_, found = n.(EndMessage)
		return !found
	})
	return found
}

// visitTerminals calls fn for every terminal in t, from left to right,
// until fn returns false.
func visitTerminals(t Tree, fn func(Tree) bool) {
	stack := []Tree{t}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if b, ok := n.(Branch); ok {
			stack = append(stack, b.Right, b.Left)
			continue
		}
		if !fn(n) {
			return
		}
	}
}

// validTree reports whether t and all of its descendants are non-nil.
func validTree(t Tree) bool {
	stack := []Tree{t}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch n := n.(type) {
		case Leaf, EndMessage:
		case Branch:
			stack = append(stack, n.Right, n.Left)
		default:
			return false
		}
	}
	return true
}

// walkTerminals calls fn for every terminal in t, from left to right, along
// with the path leading to it. Each path has its own backing array.
func walkTerminals(t Tree, fn func(Tree, Path)) {
	type item struct {
		node Tree
		path Path
	}
	stack := []item{{t, nil}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if b, ok := it.node.(Branch); ok {
			// Cap the slice so that both appends allocate distinct arrays.
			p := it.path[:len(it.path):len(it.path)]
			stack = append(stack,
				item{b.Right, append(p, true)},
				item{b.Left, append(p, false)},
			)
			continue
		}
		fn(it.node, it.path)
	}
}
