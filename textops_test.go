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

func TestGraphemeLength(t *testing.T) {
	cases := []struct {
		text string
		want int
	}{
		{"café", 4},
		{"hello", 5},
		{"", 0},
		{"\U0001F468‍\U0001F469‍\U0001F467", 1},
	}
	for _, tc := range cases {
		text := RuneText([]rune(tc.text))
		got, err := GraphemeLength(text, 0)
		if err != nil {
			t.Fatalf("GraphemeLength(%q): %v", tc.text, err)
		}
		if got != tc.want {
			t.Errorf("GraphemeLength(%q) = %d, want %d", tc.text, got, tc.want)
		}
	}
}

func TestGraphemeSubstr(t *testing.T) {
	text := RuneText([]rune("café"))
	cases := []struct {
		name        string
		start, stop int
		want        string
	}{
		{"forward prefix", 0, 3, "caf"},
		{"last cluster by negative index", -1, text.Len(), "é"},
		{"whole string", 0, text.Len(), "café"},
		{"empty when start==stop", 1, 1, ""},
		{"empty when stop is zero", 0, 0, ""},
		{"start past end clamps empty", 10, text.Len(), ""},
		{"negative start and stop", -2, -1, "f"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := GraphemeSubstr(text, tc.start, tc.stop)
			if err != nil {
				t.Fatalf("GraphemeSubstr: %v", err)
			}
			if got != tc.want {
				t.Errorf("GraphemeSubstr(%d, %d) = %q, want %q", tc.start, tc.stop, got, tc.want)
			}
		})
	}
}

func TestHasCategory(t *testing.T) {
	text := RuneText([]rune("abc123"))
	cases := []struct {
		name string
		mask GeneralCategory
		want bool
	}{
		{"has decimal digit", CatNd, true},
		{"no uppercase letter", CatLu, false},
		{"has lowercase letter", CatLl, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := HasCategory(text, 0, text.Len(), tc.mask)
			if err != nil {
				t.Fatalf("HasCategory: %v", err)
			}
			if got != tc.want {
				t.Errorf("HasCategory(mask=%v) = %v, want %v", tc.mask, got, tc.want)
			}
		})
	}
}

func TestHasCategoryBadArgs(t *testing.T) {
	text := RuneText([]rune("abc"))
	if _, err := HasCategory(text, -1, 3, CatLl); err == nil {
		t.Error("expected error for negative start")
	}
	if _, err := HasCategory(text, 0, 4, CatLl); err == nil {
		t.Error("expected error for end beyond text length")
	}
	if _, err := HasCategory(text, 0, 3, 0); err == nil {
		t.Error("expected error for zero mask")
	}
}

func TestGeneralCategoryOf(t *testing.T) {
	cases := []struct {
		cp   rune
		want GeneralCategory
	}{
		{'a', CatLl},
		{'A', CatLu},
		{'3', CatNd},
		{' ', CatZs},
	}
	for _, tc := range cases {
		got, err := GeneralCategoryOf(tc.cp)
		if err != nil {
			t.Fatalf("GeneralCategoryOf(%q): %v", tc.cp, err)
		}
		if got != tc.want {
			t.Errorf("GeneralCategoryOf(%q) = %v, want %v", tc.cp, got, tc.want)
		}
	}
}

func TestGeneralCategoryOfBadCodepoint(t *testing.T) {
	if _, err := GeneralCategoryOf(-1); err == nil {
		t.Error("expected error for negative codepoint")
	}
	if _, err := GeneralCategoryOf(0x110000); err == nil {
		t.Error("expected error for codepoint beyond 0x10FFFF")
	}
	if _, err := GeneralCategoryOf(0xD800); err == nil {
		t.Error("expected error for surrogate codepoint")
	}
}

func TestCategoryName(t *testing.T) {
	names, err := CategoryName(Grapheme, '\r')
	if err != nil {
		t.Fatalf("CategoryName: %v", err)
	}
	if len(names) != 1 || names[0] != "CR" {
		t.Errorf("CategoryName(Grapheme, CR) = %v, want [CR]", names)
	}

	names, err = CategoryName(Word, '\'')
	if err != nil {
		t.Fatalf("CategoryName: %v", err)
	}
	if len(names) != 1 || names[0] != "Single_Quote" {
		t.Errorf("CategoryName(Word, ') = %v, want [Single_Quote]", names)
	}
}

func TestCategoryNameBadArgs(t *testing.T) {
	if _, err := CategoryName(Grapheme, -1); err == nil {
		t.Error("expected error for negative codepoint")
	}
	if _, err := CategoryName(Algorithm("nonsense"), 'a'); err == nil {
		t.Error("expected error for unknown algorithm")
	}
}
