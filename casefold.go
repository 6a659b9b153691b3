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

	"github.com/gosqlite-fts/unicodeseg/internal/ucd"
)

// Casefold returns t case-folded for caseless comparison, using Unicode
// CaseFolding.txt's common and full mappings (internal/ucd.FoldOne).
//
// This runs the same two-phase algorithm as the rest of this package's
// allocation-conscious operations: a first pass over t decides whether
// folding would change anything at all, and if not, t.Slice(0, t.Len()) is
// returned with no folded copy built. Only when a change is found does a
// second pass build the folded result.
func Casefold(t Text) string {
	n := t.Len()

	changed := false
	for i := 0; i < n; i++ {
		cp := t.At(i)
		if cp >= 'A' && cp <= 'Z' {
			changed = true
			continue
		}
		if expansion := ucd.FoldOne(cp); len(expansion) != 1 || expansion[0] != cp {
			changed = true
		}
	}
	if !changed {
		return t.Slice(0, n)
	}

	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		cp := t.At(i)
		if cp >= 'A' && cp <= 'Z' {
			b.WriteRune(cp + 32)
			continue
		}
		for _, r := range ucd.FoldOne(cp) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CasefoldEqual reports whether a and b compare equal under case folding.
func CasefoldEqual(a, b Text) bool {
	return Casefold(a) == Casefold(b)
}
