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

// GraphemeCategory is a bitmask of the grapheme-cluster-break properties
// used by rules GB1-GB999 (UAX #29 §3.1). InCB_Extend always also carries
// the GCExtend bit (spec note in spec.md §9), so the generic GB9/absorb
// rules still fire when a more specific rule rolls back.
type GraphemeCategory uint32

// Grapheme-cluster-break category bits.
const (
	GCCR GraphemeCategory = 1 << iota
	GCLF
	GCControl
	GCExtend
	GCZWJ
	GCRegionalIndicator
	GCPrepend
	GCSpacingMark
	GCL
	GCV
	GCT
	GCLV
	GCLVT
	GCExtendedPictographic
	GCInCBLinker
	GCInCBConsonant
	GCInCBExtend
)

var graphemeCategoryNames = map[GraphemeCategory]string{
	GCCR: "CR", GCLF: "LF", GCControl: "Control", GCExtend: "Extend", GCZWJ: "ZWJ",
	GCRegionalIndicator: "Regional_Indicator", GCPrepend: "Prepend", GCSpacingMark: "SpacingMark",
	GCL: "L", GCV: "V", GCT: "T", GCLV: "LV", GCLVT: "LVT",
	GCExtendedPictographic: "Extended_Pictographic",
	GCInCBLinker:           "InCB_Linker", GCInCBConsonant: "InCB_Consonant", GCInCBExtend: "InCB_Extend",
}

// WordCategory is a bitmask of the word-break properties used by rules
// WB1-WB999 (UAX #29 §4.1).
type WordCategory uint32

// Word-break category bits.
const (
	WCCR WordCategory = 1 << iota
	WCLF
	WCNewline
	WCExtend
	WCZWJ
	WCRegionalIndicator
	WCFormat
	WCKatakana
	WCHebrewLetter
	WCALetter
	WCSingleQuote
	WCDoubleQuote
	WCMidNumLet
	WCMidLetter
	WCMidNum
	WCNumeric
	WCExtendNumLet
	WCWSegSpace
	WCExtendedPictographic
)

// wcAHLetter is the ALetter|Hebrew_Letter alias used throughout WB5-WB13b.
const wcAHLetter = WCALetter | WCHebrewLetter

// wcMidNumLetQ is the MidNumLet|Single_Quote alias used in WB6/7 and WB11/12.
const wcMidNumLetQ = WCMidNumLet | WCSingleQuote

var wordCategoryNames = map[WordCategory]string{
	WCCR: "CR", WCLF: "LF", WCNewline: "Newline", WCExtend: "Extend", WCZWJ: "ZWJ",
	WCRegionalIndicator: "Regional_Indicator", WCFormat: "Format", WCKatakana: "Katakana",
	WCHebrewLetter: "Hebrew_Letter", WCALetter: "ALetter",
	WCSingleQuote: "Single_Quote", WCDoubleQuote: "Double_Quote",
	WCMidNumLet: "MidNumLet", WCMidLetter: "MidLetter", WCMidNum: "MidNum",
	WCNumeric: "Numeric", WCExtendNumLet: "ExtendNumLet", WCWSegSpace: "WSegSpace",
	WCExtendedPictographic: "Extended_Pictographic",
}

// SentenceCategory is a bitmask of the sentence-break properties used by
// rules SB1-SB999 (UAX #29 §5.1).
type SentenceCategory uint32

// Sentence-break category bits.
const (
	SCCR SentenceCategory = 1 << iota
	SCLF
	SCExtend
	SCSep
	SCFormat
	SCSp
	SCLower
	SCUpper
	SCOLetter
	SCNumeric
	SCATerm
	SCSContinue
	SCSTerm
	SCClose
)

// scParaSep is the Sep|CR|LF alias used by SB3/SB4.
const scParaSep = SCSep | SCCR | SCLF

// scSATerm is the STerm|ATerm alias used by SB7-SB11.
const scSATerm = SCSTerm | SCATerm

var sentenceCategoryNames = map[SentenceCategory]string{
	SCCR: "CR", SCLF: "LF", SCExtend: "Extend", SCSep: "Sep", SCFormat: "Format", SCSp: "Sp",
	SCLower: "Lower", SCUpper: "Upper", SCOLetter: "OLetter", SCNumeric: "Numeric",
	SCATerm: "ATerm", SCSContinue: "SContinue", SCSTerm: "STerm", SCClose: "Close",
}
