// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"fmt"
	"strings"
)

func (l Leaf) String() string {
	if l >= 0x20 && l < 0x7f {
		return fmt.Sprintf("%q", rune(l))
	}
	return fmt.Sprintf("0x%02x", byte(l))
}

func (EndMessage) String() string { return "EOM" }

func (b Branch) String() string { return Format(b) }

// Format formats t as a parenthesized expression, where each Branch is shown
// as "(left right)". For example:
//
//	('A' ('B' EOM))
func Format(t Tree) string {
	var sb strings.Builder
	stack := []interface{}{t} // Either a Tree or a literal string
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch v := v.(type) {
		case string:
			sb.WriteString(v)
		case Branch:
			stack = append(stack, ")", v.Right, " ", v.Left, "(")
		case Leaf:
			sb.WriteString(v.String())
		case EndMessage:
			sb.WriteString(v.String())
		default:
			sb.WriteString("<nil>")
		}
	}
	return sb.String()
}

func padBase10(n interface{}, m int) string {
	s := fmt.Sprintf("%v", n)
	if pad := m - len(s); pad > 0 {
		s = strings.Repeat(" ", pad) + s
	}
	return s
}

func (tb *Table) String() string {
	var maxSym, maxLen int
	var syms []interface{}
	var paths []Path
	for i := range tb.syms {
		if tb.hasSym[i] {
			syms, paths = append(syms, Leaf(i)), append(paths, tb.syms[i])
		}
	}
	if tb.hasEOM {
		syms, paths = append(syms, EndMessage{}), append(paths, tb.eom)
	}
	for i := range syms {
		if n := len(fmt.Sprint(syms[i])); maxSym < n {
			maxSym = n
		}
		if maxLen < len(paths[i]) {
			maxLen = len(paths[i])
		}
	}

	var ss []string
	ss = append(ss, "{")
	for i := range syms {
		ss = append(ss, fmt.Sprintf("\t%s:  %s,",
			padBase10(syms[i], maxSym),
			padBase10(paths[i], maxLen),
		))
	}
	ss = append(ss, "}")
	return strings.Join(ss, "\n")
}
