// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
)

// Rand implements a deterministic pseudo-random number generator.
// This differs from the math.Rand in that the exact output will be consistent
// across different versions of Go, so that generated test inputs and the
// trees built from them never change.
type Rand struct {
	cipher.Block
	blk [aes.BlockSize]byte
}

// NewRand returns a generator whose output depends only on seed.
func NewRand(seed int) *Rand {
	var key [aes.BlockSize]byte
	binary.LittleEndian.PutUint64(key[:], uint64(seed))
	r, _ := aes.NewCipher(key[:])
	return &Rand{Block: r}
}

// Int returns a non-negative pseudo-random 62-bit integer.
func (r *Rand) Int() int {
	r.Encrypt(r.blk[:], r.blk[:])
	return int(binary.LittleEndian.Uint64(r.blk[:]) & (1<<62 - 1))
}

// Intn returns a pseudo-random integer in [0, n). It panics if n <= 0.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		panic("testutil: invalid argument to Intn")
	}
	return r.Int() % n
}

// Bytes returns n pseudo-random bytes.
func (r *Rand) Bytes(n int) []byte {
	b := make([]byte, n)
	for bb := b; len(bb) > 0; {
		r.Encrypt(r.blk[:], r.blk[:])
		bb = bb[copy(bb, r.blk[:]):]
	}
	return b
}
