// unicodeseg - a Unicode text-segmentation and case-folding engine
// Copyright (C) 2026  unicodeseg contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command unicodeseg is a small demonstration CLI over the unicodeseg
// package: it prints the grapheme, word, or sentence boundaries of its
// input, or its case-folded form.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gosqlite-fts/unicodeseg"
)

func main() {
	mode := flag.String("mode", "grapheme", "one of: grapheme, word, sentence, fold")
	inputFile := flag.String("in", "", "input file to read (default: stdin)")
	flag.Parse()

	var r io.Reader = os.Stdin
	if *inputFile != "" {
		f, err := os.Open(*inputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening input file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(bufio.NewReader(r))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
	// Trim exactly one trailing newline so piping `echo` output through
	// doesn't report a spurious trailing empty segment.
	text := unicodeseg.NewStringText(strings.TrimSuffix(string(data), "\n"))

	if *mode == "fold" {
		fmt.Println(unicodeseg.Casefold(text))
		return
	}

	next, err := breakFuncFor(*mode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		flag.PrintDefaults()
		os.Exit(1)
	}

	offset := 0
	n := text.Len()
	count := 0
	for offset < n {
		end, err := next(text, offset)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error segmenting at offset %d: %v\n", offset, err)
			os.Exit(1)
		}
		fmt.Printf("%d: %q\n", count, text.Slice(offset, end))
		offset = end
		count++
	}
	fmt.Printf("%d segments\n", count)
}

func breakFuncFor(mode string) (func(unicodeseg.Text, int) (int, error), error) {
	switch mode {
	case "grapheme":
		return unicodeseg.NextGraphemeBreak, nil
	case "word":
		return unicodeseg.NextWordBreak, nil
	case "sentence":
		return unicodeseg.NextSentenceBreak, nil
	default:
		return nil, fmt.Errorf("unknown -mode %q", mode)
	}
}
