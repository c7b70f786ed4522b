// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"io"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// ReaderConfig configures a Reader. The zero value is valid.
type ReaderConfig struct {
	Logger Logger // Optional sink for diagnostic messages
}

// A Reader is an io.ReadCloser that decodes the Huffman stream format.
// Read returns io.EOF once the EndMessage terminal has been decoded; any bits
// that follow it in the underlying stream are left unread.
type Reader struct {
	OutputOffset int64 // Total number of bytes emitted from Read

	rd   *bitio.Reader
	tree Tree // Nil until the tree description is read
	log  Logger
	err  error // Persistent error
}

// NewReader creates a new Reader reading from r.
//
// If r does not implement io.ByteReader, then it is wrapped in a
// bufio.Reader and the decoder may read past the end of the stream.
func NewReader(r io.Reader, conf *ReaderConfig) *Reader {
	zr := new(Reader)
	if conf != nil {
		zr.log = conf.Logger
	}
	zr.Reset(r)
	return zr
}

// Reset discards the Reader's state and makes it equivalent to the result
// of a call to NewReader, but reading from r instead.
func (zr *Reader) Reset(r io.Reader) {
	*zr = Reader{
		rd:  bitio.NewReader(r),
		log: zr.log,
	}
}

// Tree returns the prefix tree of the stream.
// It returns nil until the first call to Read or ReadByte.
func (zr *Reader) Tree() Tree { return zr.tree }

// Read decodes up to len(buf) bytes.
func (zr *Reader) Read(buf []byte) (int, error) {
	if zr.err != nil {
		return 0, zr.err
	}

	var cnt int
	func() {
		defer errRecover(&zr.err)
		zr.readHeader()
		for cnt < len(buf) {
			buf[cnt] = zr.decodeSym()
			cnt++
		}
	}()
	zr.OutputOffset += int64(cnt)
	if zr.err == io.EOF {
		logf(zr.log, "huffman: decoded %d bytes", zr.OutputOffset)
	}
	return cnt, zr.err
}

// ReadByte decodes a single byte.
func (zr *Reader) ReadByte() (byte, error) {
	var b [1]byte
	if _, err := zr.Read(b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// Close ends the stream. It does not close the underlying io.Reader.
func (zr *Reader) Close() error {
	if zr.err == nil || zr.err == io.EOF || zr.err == errClosed {
		zr.err = errClosed
		return nil
	}
	return zr.err // Return the persistent error
}

// readHeader reads the tree description if it has not been read yet.
// A tree without an EndMessage terminal cannot end a stream, so it is
// treated as malformed.
// This function panics if an error occurs.
func (zr *Reader) readHeader() {
	if zr.tree != nil {
		return
	}
	t := readTree(zr.rd)
	if !ContainsEndMessage(t) {
		panic(ErrMalformedTree)
	}
	zr.tree = t
	logf(zr.log, "huffman: read tree with %d terminals and depth %d", NumTerminals(t), Depth(t))
}

// decodeSym walks the tree from the root one bit at a time until it reaches
// a terminal. It panics with io.EOF upon reaching EndMessage.
// This function panics if an error occurs.
func (zr *Reader) decodeSym() byte {
	node := zr.tree
	for {
		switch n := node.(type) {
		case Leaf:
			return byte(n)
		case EndMessage:
			panic(io.EOF)
		case Branch:
			bit, err := zr.rd.ReadBool()
			if err != nil {
				if err == io.EOF || err == io.ErrUnexpectedEOF {
					panic(ErrTruncated)
				}
				panic(errors.Wrap(err, "huffman: read"))
			}
			if bit {
				node = n.Right
			} else {
				node = n.Left
			}
		default:
			panic(errInvalidTree)
		}
	}
}

// Decompress decodes the stream read from r and writes the result to w.
// It stops reading after the EndMessage terminal.
func Decompress(r io.Reader, w io.Writer) error {
	zr := NewReader(r, nil)
	if _, err := io.Copy(w, zr); err != nil {
		if zr.err != nil && zr.err != io.EOF {
			return zr.err
		}
		return errors.Wrap(err, "huffman: write output")
	}
	return zr.Close()
}
