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

import "testing"

var graphemeBreakTests = []struct {
	name string
	text string
	from int
	want int
}{
	{"ascii pair", "ab", 0, 1},
	{"combining acute", "áb", 0, 2},
	{"crlf", "\r\n", 0, 2},
	{"cr alone", "\rx", 0, 1},
	// Decomposed Hangul jamo L V T forms a single grapheme cluster (GB6-GB8).
	{"hangul jamo l+v+t", "\u1100\u1161\u11a8x", 0, 3},
	// A precomposed LV syllable is already one scalar value.
	{"hangul precomposed lv syllable", "\uac00x", 0, 1},
	{"flag sequence", "\U0001F1E9\U0001F1EA", 0, 2},
	{"flag then letter", "\U0001F1E9\U0001F1EAx", 0, 2},
	{"control breaks alone", "a\tb", 1, 2},
	{"zwj emoji family", "\U0001F468\u200d\U0001F469\u200d\U0001F467", 0, 5},
}

func TestNextGraphemeBreak(t *testing.T) {
	for _, tc := range graphemeBreakTests {
		t.Run(tc.name, func(t *testing.T) {
			text := RuneText([]rune(tc.text))
			got, err := NextGraphemeBreak(text, tc.from)
			if err != nil {
				t.Fatalf("NextGraphemeBreak: %v", err)
			}
			if got != tc.want {
				t.Errorf("NextGraphemeBreak(%q, %d) = %d, want %d", tc.text, tc.from, got, tc.want)
			}
		})
	}
}

func TestNextGraphemeBreakPartitionsText(t *testing.T) {
	texts := []string{
		"hello, world!",
		"áb́c",
		"\U0001F468\u200d\U0001F469\u200d\U0001F467 family",
		"\r\n\r\n",
	}
	for _, s := range texts {
		text := RuneText([]rune(s))
		n := text.Len()
		offset := 0
		for offset < n {
			next, err := NextGraphemeBreak(text, offset)
			if err != nil {
				t.Fatalf("NextGraphemeBreak: %v", err)
			}
			if next <= offset || next > n {
				t.Fatalf("boundary out of range: offset=%d next=%d n=%d", offset, next, n)
			}
			offset = next
		}
		if offset != n {
			t.Fatalf("did not reach end of text: offset=%d n=%d", offset, n)
		}
	}
}

func TestNextGraphemeBreakBadOffset(t *testing.T) {
	text := RuneText([]rune("abc"))
	for _, offset := range []int{-1, 3, 4} {
		if _, err := NextGraphemeBreak(text, offset); err == nil {
			t.Errorf("NextGraphemeBreak(%d): expected error, got nil", offset)
		}
	}
}
