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

// Command ucdgen reads the Unicode Character Database property files that
// classify grapheme, word, and sentence boundaries, plus CaseFolding.txt,
// and emits a Go source file for package ucd holding maskRange tables
// (rrGrapheme, rrEmoji, rrIncb, rrWord, rrSentence) and a fold expansion
// map with an init function that loads it into foldExpansions.
//
// Usage:
//
//	go run ./internal/ucdgen -ucd-dir testdata/ucd -out internal/ucd/tables.go
//
// The -ucd-dir directory must hold (from https://unicode.org/Public/<version>/ucd/):
// GraphemeBreakProperty.txt, WordBreakProperty.txt, SentenceBreakProperty.txt,
// emoji/emoji-data.txt, DerivedCoreProperties.txt, and CaseFolding.txt. This
// tool is not wired into any build; it is invoked by hand, or via
// internal/ucd/doc.go's go:generate directive, against a checked-out copy of
// those files.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var (
	ucdDir  = flag.String("ucd-dir", "testdata/ucd", "directory holding the UCD property files")
	outFile = flag.String("out", "tables.go", "output file path")
)

// propertyLine matches one data line of a UCD …Property.txt file:
//
//	0000..001F    ; Control # Cc  [32] <control-0000>..<control-001F>
//	0085          ; Control # Cc       <control-0085>
var propertyLine = regexp.MustCompile(`^([0-9A-Fa-f]{4,6})(?:\.\.([0-9A-Fa-f]{4,6}))?\s*;\s*([^#]*?)\s*(?:#|$)`)

// caseFoldLine matches one data line of CaseFolding.txt:
//
//	00DF; F; 0073 0073; # LATIN SMALL LETTER SHARP S
var caseFoldLine = regexp.MustCompile(`^([0-9A-Fa-f]{4,6});\s*([CFST]);\s*([0-9A-Fa-f ]+);`)

// ucdRange is one (inclusive) codepoint span carrying a single named
// property value, as parsed from a property file.
type ucdRange struct {
	lo, hi rune
	value  string
}

func main() {
	flag.Parse()
	if err := run(*ucdDir, *outFile); err != nil {
		log.Fatal(err)
	}
}

func run(dir, out string) error {
	grapheme, err := readProperty(filepath.Join(dir, "GraphemeBreakProperty.txt"))
	if err != nil {
		return err
	}
	emoji, err := readProperty(filepath.Join(dir, "emoji", "emoji-data.txt"))
	if err != nil {
		return err
	}
	incb, err := readProperty(filepath.Join(dir, "DerivedCoreProperties.txt"))
	if err != nil {
		return err
	}
	word, err := readProperty(filepath.Join(dir, "WordBreakProperty.txt"))
	if err != nil {
		return err
	}
	sentence, err := readProperty(filepath.Join(dir, "SentenceBreakProperty.txt"))
	if err != nil {
		return err
	}
	folds, err := readCaseFolding(filepath.Join(dir, "CaseFolding.txt"))
	if err != nil {
		return err
	}

	f, err := os.Create(out)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	writeHeader(w)
	writeRangeTable(w, "rrGrapheme", grapheme, graphemeBitName)
	writeRangeTable(w, "rrEmoji", filterValue(emoji, "Extended_Pictographic"), func(string) string { return "gcExtendedPictographic" })
	writeRangeTable(w, "rrIncb", filterPrefix(incb, "InCB"), incbBitName)
	writeRangeTable(w, "rrWord", word, wordBitName)
	writeRangeTable(w, "rrSentence", sentence, sentenceBitName)
	writeFoldTable(w, folds)
	return w.Flush()
}

func readProperty(path string) ([]ucdRange, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []ucdRange
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		m := propertyLine.FindStringSubmatch(sc.Text())
		if m == nil {
			continue
		}
		lo, err := strconv.ParseInt(m[1], 16, 32)
		if err != nil {
			return nil, err
		}
		hi := lo
		if m[2] != "" {
			hi, err = strconv.ParseInt(m[2], 16, 32)
			if err != nil {
				return nil, err
			}
		}
		out = append(out, ucdRange{lo: rune(lo), hi: rune(hi), value: m[3]})
	}
	return out, sc.Err()
}

// readCaseFolding keeps only the "C" (common) and "F" (full) status lines;
// "S" (simple, superseded by a same-length "F" entry) and "T" (Turkic,
// locale-specific) are excluded per the locale-independent fold this module
// implements.
func readCaseFolding(path string) (map[rune][]rune, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	out := make(map[rune][]rune)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		m := caseFoldLine.FindStringSubmatch(sc.Text())
		if m == nil {
			continue
		}
		if m[2] != "C" && m[2] != "F" {
			continue
		}
		cp, err := strconv.ParseInt(m[1], 16, 32)
		if err != nil {
			return nil, err
		}
		var repl []rune
		for _, f := range strings.Fields(m[3]) {
			v, err := strconv.ParseInt(f, 16, 32)
			if err != nil {
				return nil, err
			}
			repl = append(repl, rune(v))
		}
		out[rune(cp)] = repl
	}
	return out, sc.Err()
}

func filterValue(rs []ucdRange, value string) []ucdRange {
	var out []ucdRange
	for _, r := range rs {
		if r.value == value {
			out = append(out, r)
		}
	}
	return out
}

func filterPrefix(rs []ucdRange, prefix string) []ucdRange {
	var out []ucdRange
	for _, r := range rs {
		if strings.HasPrefix(r.value, prefix) {
			out = append(out, r)
		}
	}
	return out
}

// graphemeBitName, wordBitName, sentenceBitName, and incbBitName map a UCD
// property value (e.g. "Regional_Indicator") to the bit constant name
// tables.go declares for it (e.g. "gcRegionalIndicator"). Unrecognized
// values return "" and are skipped, so property files can carry values this
// module does not classify (e.g. Word_Break's "Other") without failing the
// generation.
func graphemeBitName(value string) string {
	names := map[string]string{
		"CR": "gcCR", "LF": "gcLF", "Control": "gcControl", "Extend": "gcExtend",
		"ZWJ": "gcZWJ", "Regional_Indicator": "gcRegionalIndicator", "Prepend": "gcPrepend",
		"SpacingMark": "gcSpacingMark", "L": "gcL", "V": "gcV", "T": "gcT", "LV": "gcLV", "LVT": "gcLVT",
	}
	return names[value]
}

func wordBitName(value string) string {
	names := map[string]string{
		"CR": "wcCR", "LF": "wcLF", "Newline": "wcNewline", "Extend": "wcExtend", "ZWJ": "wcZWJ",
		"Regional_Indicator": "wcRegionalIndicator", "Format": "wcFormat", "Katakana": "wcKatakana",
		"Hebrew_Letter": "wcHebrewLetter", "ALetter": "wcALetter", "Single_Quote": "wcSingleQuote",
		"Double_Quote": "wcDoubleQuote", "MidNumLet": "wcMidNumLet", "MidLetter": "wcMidLetter",
		"MidNum": "wcMidNum", "Numeric": "wcNumeric", "ExtendNumLet": "wcExtendNumLet", "WSegSpace": "wcWSegSpace",
	}
	return names[value]
}

func sentenceBitName(value string) string {
	names := map[string]string{
		"CR": "scCR", "LF": "scLF", "Extend": "scExtend", "Sep": "scSep", "Format": "scFormat", "Sp": "scSp",
		"Lower": "scLower", "Upper": "scUpper", "OLetter": "scOLetter", "Numeric": "scNumeric",
		"ATerm": "scATerm", "SContinue": "scSContinue", "STerm": "scSTerm", "Close": "scClose",
	}
	return names[value]
}

func incbBitName(value string) string {
	names := map[string]string{
		"InCB; Linker": "gcInCBLinker", "InCB; Consonant": "gcInCBConsonant", "InCB; Extend": "gcInCBExtend",
	}
	return names[value]
}

func writeHeader(w *bufio.Writer) {
	fmt.Fprint(w, `// Code generated by internal/ucdgen from the Unicode Character Database. DO NOT EDIT.

package ucd

`)
}

func writeRangeTable(w *bufio.Writer, varName string, ranges []ucdRange, bitName func(string) string) {
	fmt.Fprintf(w, "var %s = []maskRange{\n", varName)
	for _, r := range ranges {
		bit := bitName(r.value)
		if bit == "" {
			continue
		}
		fmt.Fprintf(w, "\t{lo: 0x%X, hi: 0x%X, mask: %s},\n", r.lo, r.hi, bit)
	}
	fmt.Fprint(w, "}\n\n")
}

func writeFoldTable(w *bufio.Writer, folds map[rune][]rune) {
	cps := make([]rune, 0, len(folds))
	for cp := range folds {
		cps = append(cps, cp)
	}
	sort.Slice(cps, func(i, j int) bool { return cps[i] < cps[j] })

	fmt.Fprint(w, "func init() {\n\tfoldExpansions = make(map[rune][]rune, len(generatedFolds))\n\tfor cp, repl := range generatedFolds {\n\t\tfoldExpansions[cp] = repl\n\t}\n}\n\n")
	fmt.Fprint(w, "var generatedFolds = map[rune][]rune{\n")
	for _, cp := range cps {
		repl := folds[cp]
		parts := make([]string, len(repl))
		for i, r := range repl {
			parts[i] = fmt.Sprintf("0x%X", r)
		}
		fmt.Fprintf(w, "\t0x%X: {%s},\n", cp, strings.Join(parts, ", "))
	}
	fmt.Fprint(w, "}\n")
}
