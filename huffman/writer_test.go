// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package huffman

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/dsnet/huffstream/internal/testutil"
	"github.com/stretchr/testify/assert"
)

// TestWriter tests that the encoded output matches the expected output exactly.
func TestWriter(t *testing.T) {
	var vectors = []struct {
		desc   string // Description of the test
		tree   Tree   // Prefix tree to encode with
		input  string // Test input string
		output string // Expected output string in hex
		bits   int64  // Expected number of bits written, excluding padding
		err    error  // Expected error
	}{{
		desc:   "single EndMessage tree with empty input",
		tree:   EndMessage{},
		input:  "",
		output: "00",
		bits:   2,
	}, {
		desc:   "two-level tree with empty input",
		tree:   treeABE,
		input:  "",
		output: "a83508c0",
		bits:   26,
	}, {
		desc:   "two-level tree with the input 'AAB'",
		tree:   treeABE,
		input:  "AAB",
		output: "a835082c",
		bits:   30,
	}, {
		desc:   "two-level tree with the input 'A'*8",
		tree:   treeABE,
		input:  strings.Repeat("A", 8),
		output: "a8350800c0",
		bits:   34,
	}, {
		desc:   "EndMessage on the left with the input 'xx'",
		tree:   treeEX,
		input:  "xx",
		output: "8bc6",
		bits:   16,
	}, {
		desc:   "balanced tree with the input 'abcabc'",
		tree:   treeABCE,
		input:  "abcabc",
		output: "d6158ab1830d80",
		bits:   49,
	}, {
		desc:   "extreme symbol values",
		tree:   mustBranch(Leaf(0x00), mustBranch(Leaf(0xff), EndMessage{})),
		input:  "\x00\xff\x00",
		output: "a017fc4c",
		bits:   30,
	}, {
		desc:  "symbol missing from the tree",
		tree:  treeABE,
		input: "ABC",
		err:   UnencodableError('C'),
	}}

	for i, v := range vectors {
		var b bytes.Buffer
		zw, err := NewWriter(&b, v.tree, nil)
		assert.Nil(t, err, "test %d (%s), unexpected error", i, v.desc)

		_, err = io.WriteString(zw, v.input)
		if err == nil {
			err = zw.Close()
		}
		assert.Equal(t, v.err, err, "test %d (%s), mismatching error", i, v.desc)
		if err != nil {
			continue
		}

		assert.Equal(t, v.output, hex.EncodeToString(b.Bytes()), "test %d (%s), mismatching output", i, v.desc)
		assert.Equal(t, v.bits, zw.BitsWritten, "test %d (%s), mismatching bit count", i, v.desc)
		assert.Equal(t, int64(len(v.input)), zw.InputOffset, "test %d (%s), mismatching offset", i, v.desc)
	}
}

func TestWriterInvalidTree(t *testing.T) {
	var vectors = []struct {
		tree Tree
		err  error
	}{
		{Leaf('A'), UnencodableError(EOM)},
		{mustBranch(Leaf('A'), Leaf('B')), UnencodableError(EOM)},
		{Branch{Right: EndMessage{}}, errInvalidTree},
	}

	for i, v := range vectors {
		var b bytes.Buffer
		zw, err := NewWriter(&b, v.tree, nil)
		assert.Nil(t, zw, "test %d, unexpected writer", i)
		assert.Equal(t, v.err, err, "test %d, mismatching error", i)
		assert.Equal(t, 0, b.Len(), "test %d, unexpected output", i)

		err = Compress(v.tree, strings.NewReader("A"), &b)
		assert.Equal(t, v.err, err, "test %d, mismatching error", i)
		assert.Equal(t, 0, b.Len(), "test %d, unexpected output", i)
	}
}

func TestWriterUnencodable(t *testing.T) {
	var b bytes.Buffer
	zw, err := NewWriter(&b, treeABE, nil)
	assert.Nil(t, err)

	n, err := zw.Write([]byte("ABBAZAA"))
	assert.Equal(t, 4, n)
	assert.Equal(t, UnencodableError('Z'), err)
	assert.Equal(t, "huffman: symbol 0x5a has no path in the tree", err.Error())
	assert.Equal(t, int64(4), zw.InputOffset)

	// The error is persistent.
	assert.Equal(t, UnencodableError('Z'), zw.WriteByte('A'))
	assert.Equal(t, UnencodableError('Z'), zw.Close())
}

func TestWriterClose(t *testing.T) {
	var b bytes.Buffer
	zw, err := NewWriter(&b, treeABE, nil)
	assert.Nil(t, err)
	assert.Nil(t, zw.WriteByte('A'))
	assert.Nil(t, zw.Close())
	assert.Nil(t, zw.Close())

	_, err = zw.Write([]byte("A"))
	assert.Equal(t, errClosed, err)

	// Reset makes the Writer usable again.
	var b2 bytes.Buffer
	assert.Nil(t, zw.Reset(&b2, treeEX))
	assert.Nil(t, zw.WriteByte('x'))
	assert.Nil(t, zw.WriteByte('x'))
	assert.Nil(t, zw.Close())
	assert.Equal(t, "8bc6", hex.EncodeToString(b2.Bytes()))
}

func TestWriterAdaptive(t *testing.T) {
	var vectors = []string{
		"",
		"A",
		"AAB",
		strings.Repeat("abracadabra", 100),
		string(testutil.NewRand(0).Bytes(4096)),
	}

	for i, input := range vectors {
		var b bytes.Buffer
		assert.Nil(t, Compress(nil, strings.NewReader(input), &b), "test %d, unexpected error", i)

		zr := NewReader(&b, nil)
		output, err := io.ReadAll(zr)
		assert.Nil(t, err, "test %d, unexpected error", i)
		assert.Equal(t, input, string(output), "test %d, mismatching output", i)

		want := BuildTree(CountFreqs([]byte(input)))
		assert.True(t, zr.Tree() == want, "test %d, mismatching tree", i)
	}

	// An empty input produces a tree with only the EndMessage terminal.
	var b bytes.Buffer
	assert.Nil(t, Compress(nil, strings.NewReader(""), &b))
	assert.Equal(t, []byte{0x00}, b.Bytes())
}

func TestWriterErrors(t *testing.T) {
	errBroken := errors.New("broken")
	input := testutil.NewRand(0).Bytes(1 << 16)
	tree := BuildTree(CountFreqs(input))

	// Failing sink.
	for _, n := range []int64{0, 1, 100, 1000} {
		wr := &testutil.BuggyWriter{W: io.Discard, N: n, Err: errBroken}
		err := Compress(tree, bytes.NewReader(input), wr)
		assert.NotNil(t, err, "N=%d, expected error", n)
		assert.True(t, strings.HasSuffix(fmt.Sprint(err), "broken"), "N=%d, unexpected error: %v", n, err)
	}

	// Failing source.
	rd := &testutil.BuggyReader{R: bytes.NewReader(input), N: 100, Err: errBroken}
	err := Compress(tree, rd, io.Discard)
	assert.Equal(t, "huffman: read input: broken", fmt.Sprint(err))
}

type testLogger struct{ lines []string }

func (l *testLogger) Printf(format string, v ...interface{}) {
	l.lines = append(l.lines, fmt.Sprintf(format, v...))
}

func TestWriterLogger(t *testing.T) {
	lg := new(testLogger)
	zw, err := NewWriter(io.Discard, nil, &WriterConfig{Logger: lg})
	assert.Nil(t, err)
	io.WriteString(zw, "AAB")
	assert.Nil(t, zw.Close())
	assert.Equal(t, []string{
		"huffman: built tree with 3 terminals and depth 2",
		"huffman: encoded 3 bytes into 30 bits",
	}, lg.lines)
}

func BenchmarkWriter(b *testing.B) {
	input := testutil.ResizeData(testutil.NewRand(0).Bytes(1<<12), 1<<20)
	tree := BuildTree(CountFreqs(input))
	zw, _ := NewWriter(io.Discard, tree, nil)

	b.SetBytes(int64(len(input)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		zw.Reset(io.Discard, tree)
		zw.Write(input)
		zw.Close()
	}
}
