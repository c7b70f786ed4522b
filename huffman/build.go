// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import hufftree "github.com/icza/huffman"

// CountFreqs returns the number of occurrences of each byte value in data.
func CountFreqs(data []byte) *[256]int {
	freqs := new([256]int)
	for _, c := range data {
		freqs[c]++
	}
	return freqs
}

// BuildTree constructs a Huffman tree with a Leaf for every symbol that has a
// positive frequency and a single EndMessage terminal with a count of one.
// The result is deterministic for a given set of frequencies.
func BuildTree(freqs *[256]int) Tree {
	leaves := make([]*hufftree.Node, 0, len(freqs)+1)
	for sym, cnt := range freqs {
		if cnt > 0 {
			leaves = append(leaves, &hufftree.Node{Value: hufftree.ValueType(sym), Count: cnt})
		}
	}
	leaves = append(leaves, &hufftree.Node{Value: EOM, Count: 1})
	return convertNode(hufftree.Build(leaves))
}

// convertNode converts a tree of hufftree.Node into a Tree. Children are
// converted before their parent by means of an explicit stack.
func convertNode(root *hufftree.Node) Tree {
	type item struct {
		node    *hufftree.Node
		visited bool // Both children have been converted
	}
	var done []Tree
	stack := []item{{root, false}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch {
		case it.node.Left == nil && it.node.Value == EOM:
			done = append(done, EndMessage{})
		case it.node.Left == nil:
			done = append(done, Leaf(it.node.Value))
		case !it.visited:
			stack = append(stack, item{it.node, true}, item{it.node.Right, false}, item{it.node.Left, false})
		default:
			left, right := done[len(done)-2], done[len(done)-1]
			done = append(done[:len(done)-2], Branch{Left: left, Right: right})
		}
	}
	return done[0]
}
