// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeBitGen(t *testing.T) {
	var vectors = []struct {
		input  string
		output string // Expected output in hex; empty on error
		err    bool
	}{
		{"", "", false},
		{"1", "80", false},
		{"0 1", "40", false},
		{"C:A", "41", false},
		{"H8:a5 D4:3", "a530", false},
		{"<<< 1", "01", false},
		{"<<< D4:3", "0c", false},
		{"<<< <D4:3", "03", false},
		{">1101 <1101", "db", false},
		{"1*9", "ff80", false},
		{"X:dead 1", "dead80", false},
		{"1 01 C:A 1 01 C:B 00 # tree\n0 0 10 11 # payload", "a835082c", false},
		{"1 X:00", "", true},
		{"D4:16", "", true},
		{"Z:1", "", true},
	}

	for i, v := range vectors {
		b, err := DecodeBitGen(v.input)
		if v.err {
			assert.NotNil(t, err, "test %d, expected error", i)
			continue
		}
		assert.Nil(t, err, "test %d, unexpected error", i)
		assert.Equal(t, v.output, hex.EncodeToString(b), "test %d, mismatching output", i)
	}
}

func TestResizeData(t *testing.T) {
	assert.Equal(t, []byte("abc"), ResizeData([]byte("abcdef"), 3))
	assert.Equal(t, []byte("abcdef"), ResizeData([]byte("abcdef"), -1))
	assert.Equal(t, []byte{'a', 'b', 'a' ^ 1, 'b' ^ 1, 'a' ^ 2}, ResizeData([]byte("ab"), 5))
}

func TestRand(t *testing.T) {
	r1, r2 := NewRand(5), NewRand(5)
	assert.Equal(t, r1.Bytes(37), r2.Bytes(37))
	for i := 0; i < 100; i++ {
		n := r1.Intn(10)
		assert.True(t, n >= 0 && n < 10)
		assert.Equal(t, n, r2.Intn(10))
	}
	assert.NotEqual(t, NewRand(5).Bytes(16), NewRand(6).Bytes(16))
}
