// Copyright 2016, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package testutil

import (
	"encoding/hex"
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/dsnet/huffstream/internal"
)

var (
	reBin = regexp.MustCompile("^[01]{1,64}$")
	reDec = regexp.MustCompile("^D[0-9]+:[0-9]+$")
	reHex = regexp.MustCompile("^H[0-9]+:[0-9a-fA-F]{1,16}$")
	reChr = regexp.MustCompile("^C:.$")
	reRaw = regexp.MustCompile("^X:[0-9a-fA-F]+$")
	reQnt = regexp.MustCompile("[*][0-9]+$")
)

// DecodeBitGen decodes a BitGen formatted string.
//
// The BitGen format allows bit-streams to be scripted by hand from a series of
// whitespace separated tokens. The '#' character starts a comment that runs
// to the end of the line.
//
// The first token may be ">>>" (big-endian) or "<<<" (little-endian) and
// selects whether bits are packed starting with the most-significant or the
// least-significant bit of each byte. If absent, big-endian packing is used,
// which is the packing of the Huffman stream format.
//
// A standalone ">" or "<" token sets the bit-parsing mode of the tokens that
// follow, and may also prefix a single token to affect that token only.
// In big-endian parsing mode (the default), the left-most digit of a binary
// token and the most-significant bit of a numeric token are written first.
//
// The tokens are:
//
//	[01]{1,64}                  a literal bit-string, such as 1101
//	D<n>:<decimal>              an n-bit unsigned decimal value
//	H<n>:<hex>                  an n-bit unsigned hexadecimal value
//	C:<char>                    the 8 bits of a single ASCII character
//	X:<hex>                     literal bytes; the stream must be byte-aligned
//
// Any token may be followed by a quantifier "*<count>" to repeat it.
// If the stream does not end on a byte boundary, it is padded with 0 bits.
//
// Example BitGen string for the tree ('A' ('B' EOM)) and the payload "AAB":
//
//	1 01 C:A      # Branch, Leaf('A')
//	1 01 C:B 00   # Branch, Leaf('B'), EndMessage
//	0 0 10 11     # 'A', 'A', 'B', EndMessage
//
// Generated output stream (in hexadecimal):
//
//	"a835082c"
func DecodeBitGen(str string) ([]byte, error) {
	// Tokenize the input string by removing comments and superfluous spaces.
	var toks []string
	for _, s := range strings.Split(str, "\n") {
		if i := strings.IndexByte(s, '#'); i >= 0 {
			s = s[:i]
		}
		toks = append(toks, strings.Fields(s)...)
	}

	packMode := true // Bit-packing mode: false is LE, true is BE
	if len(toks) > 0 && (toks[0] == "<<<" || toks[0] == ">>>") {
		packMode = toks[0] == ">>>"
		toks = toks[1:]
	}

	var bw bitBuffer
	parseMode := true // Bit-parsing mode: false is LE, true is BE
	for _, t := range toks {
		// Check for local and global bit-parsing mode modifiers.
		pm := parseMode
		if t[0] == '<' || t[0] == '>' {
			pm = t[0] == '>'
			t = t[1:]
			if len(t) == 0 {
				parseMode = pm // This is a global modifier, so remember it
				continue
			}
		}

		// Check for quantifier decorators.
		rep := 1
		if reQnt.MatchString(t) {
			i := strings.LastIndexByte(t, '*')
			n, err := strconv.Atoi(t[i+1:])
			if err != nil {
				return nil, errors.New("testutil: invalid quantified token: " + t)
			}
			t, rep = t[:i], n
		}

		var v uint64
		var n uint
		switch {
		case reBin.MatchString(t):
			for _, b := range t {
				v = v<<1 | uint64(b-'0')
			}
			n = uint(len(t))
		case reChr.MatchString(t):
			v, n = uint64(t[2]), 8
		case reDec.MatchString(t) || reHex.MatchString(t):
			i := strings.IndexByte(t, ':')
			base := 10
			if t[0] == 'H' {
				base = 16
			}
			nb, err1 := strconv.Atoi(t[1:i])
			nv, err2 := strconv.ParseUint(t[i+1:], base, 64)
			if err1 != nil || err2 != nil || nb > 64 {
				return nil, errors.New("testutil: invalid numeric token: " + t)
			}
			if nb < 64 && nv&((1<<uint(nb))-1) != nv {
				return nil, errors.New("testutil: integer overflow on token: " + t)
			}
			v, n = nv, uint(nb)
		case reRaw.MatchString(t):
			b, err := hex.DecodeString(t[2:])
			if err != nil {
				return nil, errors.New("testutil: invalid raw bytes token: " + t)
			}
			for i := 0; i < rep; i++ {
				if err := bw.WriteBytes(b, packMode); err != nil {
					return nil, err
				}
			}
			continue
		default:
			return nil, errors.New("testutil: invalid token: " + t)
		}

		// The bit buffer writes the least-significant bit first.
		if pm {
			v = internal.ReverseUint64N(v, n)
		}
		for i := 0; i < rep; i++ {
			bw.WriteBits64(v, n)
		}
	}

	// Apply packing bit-ordering.
	buf := bw.Bytes()
	if packMode {
		for i, b := range buf {
			buf[i] = internal.ReverseLUT[b]
		}
	}
	return buf, nil
}

// bitBuffer is a minimal little-endian bit writer.
type bitBuffer struct {
	b []byte
	m byte
}

// WriteBytes appends literal bytes. The bytes are pre-reversed when the
// stream uses big-endian packing, since all bytes are reversed at the end.
func (b *bitBuffer) WriteBytes(buf []byte, bigEndian bool) error {
	if b.m != 0x00 {
		return errors.New("testutil: unaligned write")
	}
	for _, c := range buf {
		if bigEndian {
			c = internal.ReverseLUT[c]
		}
		b.b = append(b.b, c)
	}
	return nil
}

func (b *bitBuffer) WriteBits64(v uint64, n uint) {
	for i := uint(0); i < n; i++ {
		if b.m == 0x00 {
			b.m = 0x01
			b.b = append(b.b, 0x00)
		}
		if v&(1<<i) != 0 {
			b.b[len(b.b)-1] |= b.m
		}
		b.m <<= 1
	}
}

func (b *bitBuffer) Bytes() []byte {
	return b.b
}
