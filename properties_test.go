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

package unicodeseg

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// propertyCorpus is the fixed set of representative strings the property
// tests below are checked against, spanning the scripts and sequences this
// module's tables classify: ASCII, Latin-1 accents, Hangul jamo/syllables,
// ZWJ emoji sequences, Hebrew, and regional indicator flags.
var propertyCorpus = []string{
	"",
	"hello, world!",
	"The quick brown fox jumps over 12.5 dogs.",
	"café au lait",
	"각 syllable",
	"\U0001F468‍\U0001F469‍\U0001F467 family emoji",
	"\U0001F1E9\U0001F1EA\U0001F1EB\U0001F1F7 two flags",
	"אב׳ hebrew",
	"Straße MICRO µ",
	"Mr. Smith? Yes! Go home.\r\n\r\nNext paragraph.",
}

// allBreaks repeatedly calls next from 0 and returns every boundary,
// including the final one at text.Len().
func allBreaks(t *testing.T, text Text, next func(Text, int) (int, error)) []int {
	t.Helper()
	var got []int
	offset := 0
	for offset < text.Len() {
		n, err := next(text, offset)
		if err != nil {
			t.Fatalf("unexpected error at offset %d: %v", offset, err)
		}
		got = append(got, n)
		offset = n
	}
	return got
}

// Property 1: next_break always moves strictly forward and never past the
// end of the text.
func TestPropertyBreaksAreMonotonicAndBounded(t *testing.T) {
	engines := map[string]func(Text, int) (int, error){
		"grapheme": NextGraphemeBreak,
		"word":     NextWordBreak,
		"sentence": NextSentenceBreak,
	}
	for _, s := range propertyCorpus {
		text := RuneText([]rune(s))
		n := text.Len()
		for name, next := range engines {
			for i := 0; i < n; i++ {
				got, err := next(text, i)
				if err != nil {
					t.Fatalf("%s: next(%q, %d): %v", name, s, i, err)
				}
				if !(got > i && got <= n) {
					t.Errorf("%s: next(%q, %d) = %d, want i < result <= %d", name, s, i, got, n)
				}
			}
		}
	}
}

// Property 2: repeatedly calling next_break from 0 partitions the text into
// contiguous, non-overlapping half-open ranges covering [0, len(T)).
func TestPropertyBreaksPartitionText(t *testing.T) {
	engines := map[string]func(Text, int) (int, error){
		"grapheme": NextGraphemeBreak,
		"word":     NextWordBreak,
		"sentence": NextSentenceBreak,
	}
	for _, s := range propertyCorpus {
		text := RuneText([]rune(s))
		for name, next := range engines {
			breaks := allBreaks(t, text, next)
			prev := 0
			for _, b := range breaks {
				if b <= prev {
					t.Fatalf("%s: %q: non-increasing boundary sequence %v", name, s, breaks)
				}
				prev = b
			}
			if len(breaks) > 0 && breaks[len(breaks)-1] != text.Len() {
				t.Errorf("%s: %q: final boundary %d != text length %d", name, s, breaks[len(breaks)-1], text.Len())
			}
		}
	}
}

// Property 3: for the grapheme and sentence algorithms, truncating the text
// at a boundary does not change earlier boundaries.
func TestPropertyPrefixStableGraphemeAndSentence(t *testing.T) {
	engines := map[string]func(Text, int) (int, error){
		"grapheme": NextGraphemeBreak,
		"sentence": NextSentenceBreak,
	}
	for _, s := range propertyCorpus {
		full := RuneText([]rune(s))
		for name, next := range engines {
			breaks := allBreaks(t, full, next)
			for _, k := range breaks {
				prefix := RuneText([]rune(s)[:k])
				prefixBreaks := allBreaks(t, prefix, next)
				for i, b := range prefixBreaks {
					if i >= len(breaks) || breaks[i] > k {
						break
					}
					if b != breaks[i] {
						t.Errorf("%s: %q truncated at %d: boundary %d = %d, want %d", name, s, k, i, b, breaks[i])
					}
				}
			}
		}
	}
}

// Property 4: casefold is idempotent.
func TestPropertyCasefoldIdempotent(t *testing.T) {
	for _, s := range propertyCorpus {
		once := Casefold(RuneText([]rune(s)))
		twice := Casefold(RuneText([]rune(once)))
		if once != twice {
			t.Errorf("Casefold not idempotent for %q: once=%q twice=%q", s, once, twice)
		}
	}
}

// Property 5: on ASCII-only text, casefold matches strings.ToLower.
func TestPropertyCasefoldASCIIMatchesByteLowercase(t *testing.T) {
	asciiCases := []string{"Hello, World!", "ABCxyz123", "", "MIXED Case 42"}
	for _, s := range asciiCases {
		got := Casefold(RuneText([]rune(s)))
		want := strings.ToLower(s)
		if got != want {
			t.Errorf("Casefold(%q) = %q, want %q", s, got, want)
		}
	}
}

// Property 6: GraphemeLength matches the number of iterations of
// NextGraphemeBreak needed to reach the end of the text.
func TestPropertyGraphemeLengthMatchesIterationCount(t *testing.T) {
	for _, s := range propertyCorpus {
		text := RuneText([]rune(s))
		want := len(allBreaks(t, text, NextGraphemeBreak))
		got, err := GraphemeLength(text, 0)
		if err != nil {
			t.Fatalf("GraphemeLength(%q): %v", s, err)
		}
		if got != want {
			t.Errorf("GraphemeLength(%q) = %d, want %d", s, got, want)
		}
	}
}

// Property 7: grapheme_substr(T, i, j) + grapheme_substr(T, j, k) ==
// grapheme_substr(T, i, k) for valid non-negative i <= j <= k.
func TestPropertyGraphemeSubstrConcatenates(t *testing.T) {
	for _, s := range propertyCorpus {
		text := RuneText([]rune(s))
		n, err := GraphemeLength(text, 0)
		if err != nil {
			t.Fatalf("GraphemeLength(%q): %v", s, err)
		}
		for i := 0; i <= n; i++ {
			for j := i; j <= n; j++ {
				for k := j; k <= n; k++ {
					left, err := GraphemeSubstr(text, i, j)
					if err != nil {
						t.Fatalf("GraphemeSubstr(%q, %d, %d): %v", s, i, j, err)
					}
					right, err := GraphemeSubstr(text, j, k)
					if err != nil {
						t.Fatalf("GraphemeSubstr(%q, %d, %d): %v", s, j, k, err)
					}
					whole, err := GraphemeSubstr(text, i, k)
					if err != nil {
						t.Fatalf("GraphemeSubstr(%q, %d, %d): %v", s, i, k, err)
					}
					if diff := cmp.Diff(whole, left+right); diff != "" {
						t.Errorf("%q: substr(%d,%d)+substr(%d,%d) != substr(%d,%d) (-want +got):\n%s",
							s, i, j, j, k, i, k, diff)
					}
				}
			}
		}
	}
}
