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

func TestNextWordBreak(t *testing.T) {
	text := RuneText([]rune("hello world"))
	steps := []struct {
		from, want int
	}{
		{0, 5},
		{5, 6},
		{6, 11},
	}
	for _, step := range steps {
		got, err := NextWordBreak(text, step.from)
		if err != nil {
			t.Fatalf("NextWordBreak: %v", err)
		}
		if got != step.want {
			t.Errorf("NextWordBreak(%d) = %d, want %d", step.from, got, step.want)
		}
	}
}

var wordBreakTests = []struct {
	name string
	text string
	from int
	want int
}{
	{"number with decimal point", "3.14", 0, 4},
	{"contraction", "don't", 0, 5},
	{"numeric midnum comma", "1,000", 0, 5},
	{"hebrew geresh", "א׳", 0, 2},
	{"katakana run", "カタカナ", 0, 4},
	{"extendnumlet underscore", "a_b", 0, 3},
	{"regional indicator flag", "\U0001F1E9\U0001F1EA", 0, 2},
	{"newline breaks immediately", "a\nb", 1, 2},
}

func TestNextWordBreakTable(t *testing.T) {
	for _, tc := range wordBreakTests {
		t.Run(tc.name, func(t *testing.T) {
			text := RuneText([]rune(tc.text))
			got, err := NextWordBreak(text, tc.from)
			if err != nil {
				t.Fatalf("NextWordBreak: %v", err)
			}
			if got != tc.want {
				t.Errorf("NextWordBreak(%q, %d) = %d, want %d", tc.text, tc.from, got, tc.want)
			}
		})
	}
}

func TestNextWordBreakPartitionsText(t *testing.T) {
	s := "The quick brown fox, jumps over 12.5 dogs!"
	text := RuneText([]rune(s))
	n := text.Len()
	offset := 0
	for offset < n {
		next, err := NextWordBreak(text, offset)
		if err != nil {
			t.Fatalf("NextWordBreak: %v", err)
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

func TestNextWordBreakBadOffset(t *testing.T) {
	text := RuneText([]rune("go"))
	if _, err := NextWordBreak(text, 2); err == nil {
		t.Error("expected error for offset == len(text)")
	}
	if _, err := NextWordBreak(text, -1); err == nil {
		t.Error("expected error for negative offset")
	}
}
