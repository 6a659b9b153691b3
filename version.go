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

// UnicodeVersion is the dotted Unicode Character Database version that
// internal/ucd's tables were generated from. Callers that persist tokens
// across upgrades of this module can compare UnicodeVersion to detect a
// table generation that might change segmentation or fold results.
const UnicodeVersion = "15.1.0"

// Algorithm selects which UAX #29 segmentation algorithm's category bits
// [CategoryName] should report.
type Algorithm string

// The three algorithm selectors accepted by [CategoryName].
const (
	Grapheme Algorithm = "grapheme"
	Word     Algorithm = "word"
	Sentence Algorithm = "sentence"
)

// GeneralCategory is a bitmask of Unicode general categories (Lu, Ll, Nd,
// ...). Exactly one bit is set for any single codepoint's category; callers
// combine bits with bitwise OR to build a mask for [HasCategory].
type GeneralCategory uint32

// General category bits, in the order the UCD lists them.
const (
	CatLu GeneralCategory = 1 << iota // uppercase letter
	CatLl                             // lowercase letter
	CatLt                             // titlecase letter
	CatLm                             // modifier letter
	CatLo                             // other letter
	CatMn                             // nonspacing mark
	CatMc                             // spacing combining mark
	CatMe                             // enclosing mark
	CatNd                             // decimal number
	CatNl                             // letter number
	CatNo                             // other number
	CatPc                             // connector punctuation
	CatPd                             // dash punctuation
	CatPs                             // open punctuation
	CatPe                             // close punctuation
	CatPi                             // initial punctuation
	CatPf                             // final punctuation
	CatPo                             // other punctuation
	CatSm                             // math symbol
	CatSc                             // currency symbol
	CatSk                             // modifier symbol
	CatSo                             // other symbol
	CatZs                             // space separator
	CatZl                             // line separator
	CatZp                             // paragraph separator
	CatCc                             // control
	CatCf                             // format
	CatCs                             // surrogate
	CatCo                             // private use
	CatCn                             // unassigned
)

var generalCategoryNames = map[GeneralCategory]string{
	CatLu: "Lu", CatLl: "Ll", CatLt: "Lt", CatLm: "Lm", CatLo: "Lo",
	CatMn: "Mn", CatMc: "Mc", CatMe: "Me",
	CatNd: "Nd", CatNl: "Nl", CatNo: "No",
	CatPc: "Pc", CatPd: "Pd", CatPs: "Ps", CatPe: "Pe", CatPi: "Pi", CatPf: "Pf", CatPo: "Po",
	CatSm: "Sm", CatSc: "Sc", CatSk: "Sk", CatSo: "So",
	CatZs: "Zs", CatZl: "Zl", CatZp: "Zp",
	CatCc: "Cc", CatCf: "Cf", CatCs: "Cs", CatCo: "Co", CatCn: "Cn",
}

// allGeneralCategories is the OR of every bit [GeneralCategory] defines, used
// to validate masks passed to [HasCategory].
const allGeneralCategories = CatLu | CatLl | CatLt | CatLm | CatLo |
	CatMn | CatMc | CatMe |
	CatNd | CatNl | CatNo |
	CatPc | CatPd | CatPs | CatPe | CatPi | CatPf | CatPo |
	CatSm | CatSc | CatSk | CatSo |
	CatZs | CatZl | CatZp |
	CatCc | CatCf | CatCs | CatCo | CatCn
