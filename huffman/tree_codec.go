// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"io"

	"github.com/pkg/errors"
)

// BitReader reads a stream one bit or a group of bits at a time, where the
// first bit read from each byte is its most-significant bit.
// The *bitio.Reader type from github.com/icza/bitio satisfies this interface.
type BitReader interface {
	ReadBool() (bool, error)
	ReadBits(n uint8) (uint64, error)
}

// BitWriter is the writing counterpart of BitReader.
// The *bitio.Writer type from github.com/icza/bitio satisfies this interface.
type BitWriter interface {
	WriteBool(b bool) error
	WriteBits(r uint64, n uint8) error
}

// ReadTree reads a tree description from br. Upon return, br is positioned
// at the first bit after the description.
//
// It returns ErrMalformedTree if br runs out of bits before the description
// is complete.
func ReadTree(br BitReader) (t Tree, err error) {
	defer errRecover(&err)
	return readTree(br), nil
}

// WriteTree writes the description of t to bw.
// It does not flush or pad bw.
func WriteTree(bw BitWriter, t Tree) (err error) {
	defer errRecover(&err)
	if !validTree(t) {
		return errInvalidTree
	}
	writeTree(bw, t)
	return nil
}

// readTree reads a tree description without recursion. Each Branch tag
// pushes a pending slot for its left subtree; each terminal then completes
// as many pending branches as it can.
// This function panics if an error occurs.
func readTree(br BitReader) Tree {
	var pending []Tree // Left subtrees of open branches; nil until read
	for {
		if readTreeBit(br) {
			pending = append(pending, nil) // Branch: '1'
			continue
		}

		var node Tree
		if readTreeBit(br) {
			node = Leaf(readTreeBits(br, 8)) // Leaf: '01' + symbol
		} else {
			node = EndMessage{} // EndMessage: '00'
		}

		for {
			top := len(pending) - 1
			if top < 0 {
				return node
			}
			if pending[top] == nil {
				pending[top] = node
				break
			}
			node = Branch{Left: pending[top], Right: node}
			pending = pending[:top]
		}
	}
}

// writeTree writes the description of t in pre-order and returns the number
// of bits written.
// This function panics if an error occurs.
func writeTree(bw BitWriter, t Tree) (n int64) {
	stack := []Tree{t}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch node := node.(type) {
		case EndMessage:
			n += writeTreeBits(bw, 0, 2) // Write '00'
		case Leaf:
			n += writeTreeBits(bw, 1<<8|uint64(node), 10) // Write '01' + symbol
		case Branch:
			n += writeTreeBits(bw, 1, 1) // Write '1'
			stack = append(stack, node.Right, node.Left)
		default:
			panic(errInvalidTree)
		}
	}
	return n
}

func readTreeBit(br BitReader) bool {
	b, err := br.ReadBool()
	if err != nil {
		panic(treeReadError(err))
	}
	return b
}

func readTreeBits(br BitReader, n uint8) uint64 {
	v, err := br.ReadBits(n)
	if err != nil {
		panic(treeReadError(err))
	}
	return v
}

func writeTreeBits(bw BitWriter, v uint64, n uint8) int64 {
	if err := bw.WriteBits(v, n); err != nil {
		panic(errors.Wrap(err, "huffman: write tree"))
	}
	return int64(n)
}

func treeReadError(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return ErrMalformedTree
	}
	return errors.Wrap(err, "huffman: read tree")
}
