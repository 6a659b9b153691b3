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

var casefoldTests = []struct {
	name string
	text string
	want string
}{
	{"ascii", "Hello World", "hello world"},
	{"already lower", "hello", "hello"},
	{"sharp s expands to ss", "Straße", "strasse"},
	{"micro sign folds to greek mu", "MICRO SIGN: µ", "micro sign: μ"},
	{"capital sharp s expands to ss", "ẞta", "ssta"},
	{"final sigma folds to sigma", "Σς", "σσ"},
	{"ligature ffi expands", "ﬃsh", "ffish"},
	{"empty string", "", ""},
}

func TestCasefold(t *testing.T) {
	for _, tc := range casefoldTests {
		t.Run(tc.name, func(t *testing.T) {
			text := RuneText([]rune(tc.text))
			got := Casefold(text)
			if got != tc.want {
				t.Errorf("Casefold(%q) = %q, want %q", tc.text, got, tc.want)
			}
		})
	}
}

func TestCasefoldIdempotent(t *testing.T) {
	for _, tc := range casefoldTests {
		once := Casefold(RuneText([]rune(tc.text)))
		twice := Casefold(RuneText([]rune(once)))
		if once != twice {
			t.Errorf("Casefold not idempotent for %q: once=%q twice=%q", tc.text, once, twice)
		}
	}
}

func TestCasefoldEqual(t *testing.T) {
	cases := []struct {
		a, b string
		want bool
	}{
		{"Hello", "hello", true},
		{"Straße", "STRASSE", true},
		{"µ", "μ", true},
		{"foo", "bar", false},
		{"", "", true},
	}
	for _, tc := range cases {
		got := CasefoldEqual(RuneText([]rune(tc.a)), RuneText([]rune(tc.b)))
		if got != tc.want {
			t.Errorf("CasefoldEqual(%q, %q) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestCasefoldReturnsUnchangedText(t *testing.T) {
	text := RuneText([]rune("already lowercase, no change here"))
	got := Casefold(text)
	if got != "already lowercase, no change here" {
		t.Errorf("Casefold(%q) = %q", "already lowercase, no change here", got)
	}
}
