// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package huffman implements a Huffman-coded stream format.
//
// A stream consists of a description of the prefix tree followed by the input
// bytes encoded as root-to-leaf paths of that tree. The logical end of the
// data is marked by the path of a special EndMessage terminal, after which
// the final byte is padded with zero bits. All bits are packed starting with
// the most-significant bit of each byte.
//
// The tree description uses the following grammar:
//
//	EndMessage    =>  00
//	Leaf(sym)     =>  01 <8 bits of sym>
//	Branch(l, r)  =>  1 <l> <r>
//
// The grammar is self-delimiting, so no length field precedes the payload.
package huffman

import (
	"fmt"
	"runtime"
)

// EOM is the symbol value used for the EndMessage terminal when it needs to
// be distinguished from the 256 byte values.
const EOM = 256

// Error is the wrapper type for errors specific to this package.
type Error string

func (e Error) Error() string { return "huffman: " + string(e) }

var (
	// ErrMalformedTree reports that the tree description is invalid or that
	// the input ended before the description was complete.
	ErrMalformedTree error = Error("malformed tree description")

	// ErrTruncated reports that the input ended before the EndMessage
	// terminal was reached.
	ErrTruncated error = Error("stream is truncated")

	errClosed      error = Error("stream is closed")
	errInvalidTree error = Error("invalid tree")
)

// UnencodableError reports a symbol that has no path in the prefix tree.
// The value is the symbol, or EOM if the tree lacks an EndMessage terminal.
type UnencodableError int

func (e UnencodableError) Error() string {
	if e == EOM {
		return "huffman: tree has no end-of-message terminal"
	}
	return fmt.Sprintf("huffman: symbol 0x%02x has no path in the tree", int(e))
}

// Logger is an optional sink for diagnostic messages.
// The standard library *log.Logger satisfies this interface.
type Logger interface {
	Printf(format string, v ...interface{})
}

func logf(lg Logger, format string, v ...interface{}) {
	if lg != nil {
		lg.Printf(format, v...)
	}
}

func errRecover(err *error) {
	switch ex := recover().(type) {
	case nil:
		// Do nothing.
	case runtime.Error:
		panic(ex)
	case error:
		*err = ex
	default:
		panic(ex)
	}
}
