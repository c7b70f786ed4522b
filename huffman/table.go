// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

// Path is a sequence of branch choices from the root of a tree to one of its
// terminals, where false selects the left child and true the right child.
type Path []bool

// String formats the path as a string of 0 and 1 digits.
func (p Path) String() string {
	b := make([]byte, len(p))
	for i, v := range p {
		b[i] = '0' + byte(btoi(v))
	}
	return string(b)
}

// Table maps every terminal of a tree to its path.
type Table struct {
	syms   [256]Path
	hasSym [256]bool
	eom    Path
	hasEOM bool
}

// NewTable traverses t once and records the path of each terminal.
// If a symbol occurs in more than one Leaf, the left-most one is used.
func NewTable(t Tree) *Table {
	tb := new(Table)
	walkTerminals(t, func(n Tree, p Path) {
		switch n := n.(type) {
		case Leaf:
			if !tb.hasSym[n] {
				tb.syms[n], tb.hasSym[n] = p, true
			}
		case EndMessage:
			if !tb.hasEOM {
				tb.eom, tb.hasEOM = p, true
			}
		}
	})
	return tb
}

// Lookup returns the path for sym and whether the tree contains it.
func (tb *Table) Lookup(sym byte) (Path, bool) {
	return tb.syms[sym], tb.hasSym[sym]
}

// EndMessage returns the path for the EndMessage terminal and whether the
// tree contains one.
func (tb *Table) EndMessage() (Path, bool) {
	return tb.eom, tb.hasEOM
}

func btoi(b bool) int {
	if b {
		return 1
	}
	return 0
}
