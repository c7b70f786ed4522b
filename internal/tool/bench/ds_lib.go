// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !no_ds_lib
// +build !no_ds_lib

package bench

import (
	"io"

	"github.com/dsnet/huffstream/huffman"
)

func init() {
	// The Huffman stream format has no compression levels; the tree is
	// always built from the byte frequencies of the whole input.
	RegisterEncoder(FormatHuffman, "ds",
		func(w io.Writer, lvl int) io.WriteCloser {
			zw, err := huffman.NewWriter(w, nil, nil)
			if err != nil {
				panic(err)
			}
			return zw
		})
	RegisterDecoder(FormatHuffman, "ds",
		func(r io.Reader) io.ReadCloser {
			return huffman.NewReader(r, nil)
		})
}
