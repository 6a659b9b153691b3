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

import "github.com/gosqlite-fts/unicodeseg/internal/ucd"

// sc*Mask are uint32 copies of the SC* category bits (categories.go), needed
// because [textIterator.curchar]/[textIterator.lookahead] hold the bare
// uint32 classify() returns: SentenceCategory is a distinct named type, so
// masking a uint32 with an untyped-constant-free SentenceCategory value
// would not compile.
const (
	scCRMask        = uint32(SCCR)
	scLFMask        = uint32(SCLF)
	scUpperMask     = uint32(SCUpper)
	scLowerMask     = uint32(SCLower)
	scNumericMask   = uint32(SCNumeric)
	scATermMask     = uint32(SCATerm)
	scSContinueMask = uint32(SCSContinue)
	scCloseMask     = uint32(SCClose)
	scSpMask        = uint32(SCSp)

	scParaSepMask   = uint32(scParaSep)
	scSATermMask    = uint32(scSATerm)
	scFormatExtend  = uint32(SCFormat | SCExtend)
	scNotOLetterEtc = ^uint32(SCOLetter|SCUpper|SCLower) & ^scParaSepMask & ^scSATermMask
)

func sentenceClassify(r rune) uint32 {
	return ucd.SentenceCategory(r)
}

// NextSentenceBreak returns the index of the first sentence boundary
// strictly after offset, implementing UAX #29 rules SB1-SB999.
func NextSentenceBreak(t Text, offset int) (int, error) {
	if offset < 0 || offset >= t.Len() {
		return 0, badOffset(offset, t.Len())
	}

	it := newTextIterator(t, offset, sentenceClassify)
	end := t.Len()

	for it.pos < end {
		it.advance()

		// SB3: do not break within CRLF; the LF is consumed and ends the
		// sentence along with it.
		if it.curchar&scCRMask != 0 && it.lookahead&scLFMask != 0 {
			it.advance()
			break
		}

		// SB4: break after any paragraph separator.
		if it.curchar&scParaSepMask != 0 {
			break
		}

		// SB5: every following rule treats Format/Extend as transparent.
		it.absorb(scFormatExtend, 0)

		// SB6: do not break an ATerm from a digit that directly follows it
		// (as in "3.14" or ".5").
		if it.curchar&scATermMask != 0 && it.lookahead&scNumericMask != 0 {
			continue
		}

		// SB7: do not break an ATerm between two letters when the first is
		// upper- or lower-case and the second is upper-case (initials like
		// "U.S." inside a name).
		if it.curchar&(scUpperMask|scLowerMask) != 0 && it.lookahead&scATermMask != 0 {
			it.begin()
			it.advance()
			it.absorb(scFormatExtend, 0)
			if it.lookahead&scUpperMask != 0 {
				it.commit()
				continue
			}
			it.rollback()
		}

		// SB8: do not break an ATerm that is followed, after optional
		// Close/Sp and then any run of characters that are not themselves
		// OLetter/Upper/Lower/ParaSep/SATerm, by a lowercase letter.
		if it.curchar&scATermMask != 0 {
			it.begin()
			it.absorb(scCloseMask, scFormatExtend)
			it.absorb(scSpMask, scFormatExtend)
			it.absorb(scNotOLetterEtc, 0)
			it.absorb(scFormatExtend, 0)
			if it.lookahead&scLowerMask != 0 {
				it.absorb(scFormatExtend, 0)
				it.commit()
				continue
			}
			it.rollback()
		}

		// SB8a: do not break a sentence terminator from a following
		// SContinue or another sentence terminator, each after optional
		// Close/Sp.
		if it.curchar&scSATermMask != 0 {
			it.begin()
			it.absorb(scCloseMask, scFormatExtend)
			it.absorb(scSpMask, scFormatExtend)
			if it.lookahead&(scSContinueMask|scSATermMask) != 0 {
				it.advance()
				it.absorb(scFormatExtend, 0)
				it.commit()
				continue
			}
			it.rollback()
		}

		// SB9/SB10/SB11: a sentence terminator, followed by zero or more
		// Close then zero or more Sp, ends the sentence; a following
		// paragraph separator is left for SB3/SB4 to consume on the next
		// iteration.
		if it.curchar&scSATermMask != 0 {
			it.absorb(scCloseMask, scFormatExtend)
			it.absorb(scSpMask, scFormatExtend)
			if it.lookahead&scParaSepMask != 0 {
				continue
			}
			break
		}

		// SB999: otherwise, do not break.
	}

	return it.pos, nil
}
