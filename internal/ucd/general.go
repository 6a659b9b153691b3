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

package ucd

import (
	"sync"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// generalCategoryBits assigns each two-letter UCD general category to the
// same bit position unicodeseg.GeneralCategory uses (unicodeseg/version.go):
// "Lu" here is bit 0 there as CatLu, and so on in the same order. The two
// files must be kept in sync by hand.
var generalCategoryBits = []struct {
	name string
	bit  uint32
}{
	{"Lu", 1 << 0}, {"Ll", 1 << 1}, {"Lt", 1 << 2}, {"Lm", 1 << 3}, {"Lo", 1 << 4},
	{"Mn", 1 << 5}, {"Mc", 1 << 6}, {"Me", 1 << 7},
	{"Nd", 1 << 8}, {"Nl", 1 << 9}, {"No", 1 << 10},
	{"Pc", 1 << 11}, {"Pd", 1 << 12}, {"Ps", 1 << 13}, {"Pe", 1 << 14}, {"Pi", 1 << 15}, {"Pf", 1 << 16}, {"Po", 1 << 17},
	{"Sm", 1 << 18}, {"Sc", 1 << 19}, {"Sk", 1 << 20}, {"So", 1 << 21},
	{"Zs", 1 << 22}, {"Zl", 1 << 23}, {"Zp", 1 << 24},
	{"Cc", 1 << 25}, {"Cf", 1 << 26}, {"Cs", 1 << 27}, {"Co", 1 << 28},
}

// catCn is the "unassigned" default bit, assigned to any codepoint not
// claimed by one of the categories above (UCD's default general category).
const catCn uint32 = 1 << 29

var (
	generalTrieOnce sync.Once
	generalTrie     *maskTrie
)

// buildGeneralTrie flattens the standard library's own *unicode.RangeTable
// data (already versioned to the Go toolchain's bundled UCD) into our
// [maskTrie] shape, using golang.org/x/text/unicode/rangetable to walk each
// category's ranges. This is the one piece of classifier data this package
// does not need to regenerate from raw UCD files, since the stdlib ships it
// pre-parsed and correct.
func buildGeneralTrie() *maskTrie {
	dense := newDense()
	for i := range dense {
		dense[i] = catCn
	}
	for _, cb := range generalCategoryBits {
		rt, ok := unicode.Categories[cb.name]
		if !ok {
			continue
		}
		bit := cb.bit
		rangetable.Visit(rt, func(r rune) {
			dense[r] = bit
		})
	}
	return compress(dense)
}

// GeneralCategory returns the general-category bitmask for cp. The caller
// must ensure 0 <= cp <= 0x10FFFF. Like the grapheme/word/sentence tables,
// the table is built lazily on first use rather than at package init, so
// callers that only segment text never pay for walking every range of every
// stdlib category.
func GeneralCategory(cp rune) uint32 {
	generalTrieOnce.Do(func() {
		generalTrie = buildGeneralTrie()
	})
	return generalTrie.lookup(cp)
}
