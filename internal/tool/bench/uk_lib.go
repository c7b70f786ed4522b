// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

//go:build !no_uk_lib
// +build !no_uk_lib

package bench

import (
	"io"

	"github.com/ulikunitz/xz"
)

func init() {
	// Levels select the dictionary size, from 128KiB at level 1 to 32MiB
	// at level 9.
	RegisterEncoder(FormatXZ, "uk",
		func(w io.Writer, lvl int) io.WriteCloser {
			if lvl < 1 || lvl > 9 {
				lvl = 6
			}
			zw, err := xz.WriterConfig{DictCap: 1 << uint(16+lvl)}.NewWriter(w)
			if err != nil {
				panic(err)
			}
			return zw
		})
	RegisterDecoder(FormatXZ, "uk",
		func(r io.Reader) io.ReadCloser {
			zr, err := xz.NewReader(r)
			if err != nil {
				panic(err)
			}
			return io.NopCloser(zr)
		})
}
