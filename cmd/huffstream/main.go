// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command huffstream compresses or decompresses data in the Huffman stream
// format.
//
// Example usage:
//
//	$ huffstream -o data.huff data.txt
//	$ huffstream -d < data.huff > data.txt
//
// When compressing, the prefix tree is built from the byte frequencies of
// the whole input, so the input is held in memory until it ends.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dsnet/huffstream/huffman"
	"github.com/pkg/errors"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("huffstream", flag.ContinueOnError)
	fs.SetOutput(stderr)
	decomp := fs.Bool("d", false, "Decompress the input instead of compressing it")
	output := fs.String("o", "", "Write to the named file instead of standard output")
	verbose := fs.Bool("v", false, "Log stream statistics to standard error")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: huffstream [-d] [-o out] [-v] [in]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return 2
	}

	var lg huffman.Logger
	if *verbose {
		lg = log.New(stderr, "", 0)
	}
	if err := process(fs.Arg(0), *output, *decomp, stdin, stdout, lg); err != nil {
		fmt.Fprintf(stderr, "huffstream: %v\n", err)
		return 1
	}
	return 0
}

func process(inPath, outPath string, decomp bool, stdin io.Reader, stdout io.Writer, lg huffman.Logger) (err error) {
	rd := stdin
	if inPath != "" && inPath != "-" {
		f, err := os.Open(inPath)
		if err != nil {
			return errors.Wrap(err, "open input")
		}
		defer f.Close()
		rd = f
	}

	wr := stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return errors.Wrap(err, "create output")
		}
		defer func() {
			if cerr := f.Close(); err == nil && cerr != nil {
				err = errors.Wrap(cerr, "close output")
			}
		}()
		wr = f
	}
	bw := bufio.NewWriter(wr)

	if decomp {
		err = decompress(bufio.NewReader(rd), bw, lg)
	} else {
		err = compress(rd, bw, lg)
	}
	if err != nil {
		return err
	}
	return errors.Wrap(bw.Flush(), "write output")
}

func compress(r io.Reader, w io.Writer, lg huffman.Logger) error {
	zw, err := huffman.NewWriter(w, nil, &huffman.WriterConfig{Logger: lg})
	if err != nil {
		return err
	}
	if _, err := io.Copy(zw, r); err != nil {
		return err
	}
	return zw.Close()
}

func decompress(r io.Reader, w io.Writer, lg huffman.Logger) error {
	zr := huffman.NewReader(r, &huffman.ReaderConfig{Logger: lg})
	if _, err := io.Copy(w, zr); err != nil {
		return err
	}
	if lg != nil {
		lg.Printf("huffman: tree %v", huffman.Format(zr.Tree()))
	}
	return zr.Close()
}
