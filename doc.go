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

// Package unicodeseg implements Unicode text segmentation (UAX #29 grapheme,
// word, and sentence boundaries) and case folding as a set of pure,
// stateless functions over a random-access sequence of Unicode scalar
// values.
//
// The package is deliberately independent of any particular string
// representation: callers supply a [Text] implementation, and [RuneText]
// and [StringText] adapters are provided for the two common cases. It holds
// no state beyond its read-only classification and fold tables (the fold
// table built at init, each classification table built once, under a
// sync.Once, on first use), making every exported function safe to call
// concurrently from any number of goroutines with no coordination.
//
// The package does not perform normalization, collation, locale-sensitive
// case mapping, line breaking (UAX #14), or bidi (UAX #9).
package unicodeseg
