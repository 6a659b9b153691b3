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

import "unicode/utf8"

// Text is a finite, read-only, randomly-indexable sequence of Unicode scalar
// values. It is the only representation every function in this package
// needs; callers are free to back it with anything that can answer these
// three questions in the given complexity.
type Text interface {
	// Len returns the number of scalar values in the text.
	Len() int
	// At returns the scalar value at index i, which must satisfy
	// 0 <= i < Len().
	At(i int) rune
	// Slice returns the substring spanning scalar indices [start, stop).
	// start and stop must satisfy 0 <= start <= stop <= Len().
	Slice(start, stop int) string
}

// RuneText adapts a []rune to [Text] with O(1) At and O(stop-start) Slice.
type RuneText []rune

// Len implements [Text].
func (t RuneText) Len() int { return len(t) }

// At implements [Text].
func (t RuneText) At(i int) rune { return t[i] }

// Slice implements [Text].
func (t RuneText) Slice(start, stop int) string { return string(t[start:stop]) }

// StringText adapts a string to [Text]. Construction is O(n) in the number
// of runes (it builds a rune-boundary index so At and Slice afterwards don't
// re-scan from the start of the string); use [RuneText] instead if the text
// is already decoded and construction cost matters more than memory.
type StringText struct {
	s       string
	offsets []int // rune i starts at byte offsets[i]; offsets[len] == len(s)
}

// NewStringText builds a [StringText] over s.
func NewStringText(s string) StringText {
	offsets := make([]int, 0, len(s)+1)
	for i := range s {
		offsets = append(offsets, i)
	}
	offsets = append(offsets, len(s))
	return StringText{s: s, offsets: offsets}
}

// Len implements [Text].
func (t StringText) Len() int { return len(t.offsets) - 1 }

// At implements [Text].
func (t StringText) At(i int) rune {
	r, _ := utf8.DecodeRuneInString(t.s[t.offsets[i]:])
	return r
}

// Slice implements [Text].
func (t StringText) Slice(start, stop int) string {
	return t.s[t.offsets[start]:t.offsets[stop]]
}
