// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"io"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// WriterConfig configures a Writer. The zero value is valid.
type WriterConfig struct {
	Logger Logger // Optional sink for diagnostic messages
}

// A Writer is an io.WriteCloser that encodes data into the Huffman stream
// format. The tree description is written before the first encoded byte, and
// Close must be called to write the end-of-message path and flush the final
// partial byte.
type Writer struct {
	InputOffset int64 // Total number of bytes accepted by Write
	BitsWritten int64 // Total number of bits written, excluding final padding

	bw   *bitio.Writer
	tree Tree   // Nil until known when building the tree adaptively
	tbl  *Table // Paths of the terminals in tree
	hdr  bool   // Tree description has been written
	buf  []byte // Input held back until Close when building adaptively
	log  Logger
	err  error // Persistent error
}

// NewWriter creates a new Writer that encodes data using the prefix tree t.
//
// If t is nil, then the Writer holds all data in memory until Close, at which
// point it builds a tree from the byte frequencies using BuildTree.
// It reports an UnencodableError if t has no EndMessage terminal.
func NewWriter(w io.Writer, t Tree, conf *WriterConfig) (*Writer, error) {
	zw := new(Writer)
	if conf != nil {
		zw.log = conf.Logger
	}
	if err := zw.Reset(w, t); err != nil {
		return nil, err
	}
	return zw, nil
}

// Reset discards the Writer's state and makes it equivalent to the result
// of a call to NewWriter, but writing to w with the tree t instead.
func (zw *Writer) Reset(w io.Writer, t Tree) error {
	*zw = Writer{
		bw:  bitio.NewWriter(w),
		buf: zw.buf[:0],
		log: zw.log,
	}
	if t != nil {
		zw.err = zw.setTree(t)
	}
	return zw.err
}

func (zw *Writer) setTree(t Tree) error {
	if !validTree(t) {
		return errInvalidTree
	}
	tbl := NewTable(t)
	if _, ok := tbl.EndMessage(); !ok {
		return UnencodableError(EOM)
	}
	zw.tree, zw.tbl = t, tbl
	return nil
}

// Write encodes the bytes of buf. It stops at the first byte that has no
// path in the tree and reports it as an UnencodableError.
func (zw *Writer) Write(buf []byte) (int, error) {
	if zw.err != nil {
		return 0, zw.err
	}
	if zw.tree == nil {
		zw.buf = append(zw.buf, buf...)
		zw.InputOffset += int64(len(buf))
		return len(buf), nil
	}

	var cnt int
	func() {
		defer errRecover(&zw.err)
		zw.writeHeader()
		for _, c := range buf {
			zw.encodeSym(c)
			cnt++
		}
	}()
	zw.InputOffset += int64(cnt)
	return cnt, zw.err
}

// WriteByte encodes a single byte.
func (zw *Writer) WriteByte(c byte) error {
	_, err := zw.Write([]byte{c})
	return err
}

// Close writes the end-of-message path and pads the output to a byte
// boundary. It does not close the underlying io.Writer.
func (zw *Writer) Close() error {
	if zw.err == errClosed {
		return nil
	}
	if zw.err != nil {
		return zw.err
	}

	func() {
		defer errRecover(&zw.err)
		if zw.tree == nil {
			zw.flushAdaptive()
		}
		zw.writeHeader()
		eom, _ := zw.tbl.EndMessage()
		zw.writePath(eom)
		if err := zw.bw.Close(); err != nil {
			panic(errors.Wrap(err, "huffman: flush"))
		}
	}()
	if zw.err != nil {
		return zw.err
	}
	logf(zw.log, "huffman: encoded %d bytes into %d bits", zw.InputOffset, zw.BitsWritten)
	zw.err = errClosed
	return nil
}

// flushAdaptive builds a tree from the buffered input and encodes it.
// This function panics if an error occurs.
func (zw *Writer) flushAdaptive() {
	t := BuildTree(CountFreqs(zw.buf))
	if err := zw.setTree(t); err != nil {
		panic(err)
	}
	logf(zw.log, "huffman: built tree with %d terminals and depth %d", NumTerminals(t), Depth(t))

	zw.writeHeader()
	for _, c := range zw.buf {
		zw.encodeSym(c)
	}
	zw.buf = zw.buf[:0]
}

// This function panics if an error occurs.
func (zw *Writer) writeHeader() {
	if !zw.hdr {
		zw.BitsWritten += writeTree(zw.bw, zw.tree)
		zw.hdr = true
	}
}

// This function panics if an error occurs.
func (zw *Writer) encodeSym(c byte) {
	p, ok := zw.tbl.Lookup(c)
	if !ok {
		panic(UnencodableError(c))
	}
	zw.writePath(p)
}

// writePath packs up to 64 branch choices at a time into a single call to
// WriteBits.
// This function panics if an error occurs.
func (zw *Writer) writePath(p Path) {
	for len(p) > 0 {
		n := len(p)
		if n > 64 {
			n = 64
		}
		var v uint64
		for _, b := range p[:n] {
			v = v<<1 | uint64(btoi(b))
		}
		if err := zw.bw.WriteBits(v, uint8(n)); err != nil {
			panic(errors.Wrap(err, "huffman: write"))
		}
		zw.BitsWritten += int64(n)
		p = p[n:]
	}
}

// Compress writes the encoding of all data read from r to w using the
// prefix tree t. If t is nil, a tree is built from the frequencies of the
// bytes in r.
func Compress(t Tree, r io.Reader, w io.Writer) error {
	zw, err := NewWriter(w, t, nil)
	if err != nil {
		return err
	}
	if _, err := io.Copy(zw, r); err != nil {
		if zw.err != nil {
			return zw.err
		}
		return errors.Wrap(err, "huffman: read input")
	}
	return zw.Close()
}
