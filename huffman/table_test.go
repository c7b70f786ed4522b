// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"testing"

	"github.com/dsnet/huffstream/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestTable(t *testing.T) {
	var vectors = []struct {
		tree  Tree
		syms  map[byte]string // Expected path of each symbol present
		eom   string          // Expected path of EndMessage, if any
		noEOM bool
	}{{
		tree: EndMessage{},
		eom:  "",
	}, {
		tree:  Leaf('z'),
		syms:  map[byte]string{'z': ""},
		noEOM: true,
	}, {
		tree: treeABE,
		syms: map[byte]string{'A': "0", 'B': "10"},
		eom:  "11",
	}, {
		tree: treeEX,
		syms: map[byte]string{'x': "1"},
		eom:  "0",
	}, {
		tree: treeABCE,
		syms: map[byte]string{'a': "00", 'b': "01", 'c': "10"},
		eom:  "11",
	}, {
		// Duplicate terminals resolve to the left-most occurrence.
		tree: mustBranch(mustBranch(Leaf('q'), EndMessage{}), mustBranch(Leaf('q'), EndMessage{})),
		syms: map[byte]string{'q': "00"},
		eom:  "01",
	}}

	for i, v := range vectors {
		tb := NewTable(v.tree)
		for c := 0; c < 256; c++ {
			p, ok := tb.Lookup(byte(c))
			want, wantOK := v.syms[byte(c)]
			assert.Equal(t, wantOK, ok, "test %d, symbol %q, mismatching presence", i, c)
			if ok {
				assert.Equal(t, want, p.String(), "test %d, symbol %q, mismatching path", i, c)
			}
		}

		p, ok := tb.EndMessage()
		assert.Equal(t, !v.noEOM, ok, "test %d, mismatching EndMessage presence", i)
		if ok {
			assert.Equal(t, v.eom, p.String(), "test %d, mismatching EndMessage path", i)
		}
	}
}

// TestTablePrefixFree tests that no path in a table is a prefix of another.
func TestTablePrefixFree(t *testing.T) {
	r := testutil.NewRand(1)
	for i := 0; i < 50; i++ {
		tb := NewTable(randTree(r, 2+r.Intn(64)))

		var paths []string
		for c := 0; c < 256; c++ {
			if p, ok := tb.Lookup(byte(c)); ok {
				paths = append(paths, p.String())
			}
		}
		eom, ok := tb.EndMessage()
		assert.True(t, ok, "test %d, missing EndMessage", i)
		paths = append(paths, eom.String())

		for j, p1 := range paths {
			for k, p2 := range paths {
				if j != k && len(p1) <= len(p2) {
					assert.NotEqual(t, p1, p2[:len(p1)], "test %d, path %s is a prefix of %s", i, p1, p2)
				}
			}
		}
	}
}
