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

// wc*Mask are uint32 copies of the WC* category bits (categories.go), needed
// because [textIterator.curchar]/[textIterator.lookahead] hold the bare
// uint32 classify() returns: WordCategory is a distinct named type, so
// masking a uint32 with an untyped-constant-free WordCategory value would
// not compile.
const (
	wcCRMask                   = uint32(WCCR)
	wcLFMask                   = uint32(WCLF)
	wcNewlineMask              = uint32(WCNewline)
	wcExtendMask               = uint32(WCExtend)
	wcZWJMask                  = uint32(WCZWJ)
	wcRegionalIndicatorMask    = uint32(WCRegionalIndicator)
	wcFormatMask               = uint32(WCFormat)
	wcKatakanaMask             = uint32(WCKatakana)
	wcHebrewLetterMask         = uint32(WCHebrewLetter)
	wcALetterMask              = uint32(WCALetter)
	wcSingleQuoteMask          = uint32(WCSingleQuote)
	wcDoubleQuoteMask          = uint32(WCDoubleQuote)
	wcMidNumLetMask            = uint32(WCMidNumLet)
	wcMidLetterMask            = uint32(WCMidLetter)
	wcMidNumMask               = uint32(WCMidNum)
	wcNumericMask              = uint32(WCNumeric)
	wcExtendNumLetMask         = uint32(WCExtendNumLet)
	wcWSegSpaceMask            = uint32(WCWSegSpace)
	wcExtendedPictographicMask = uint32(WCExtendedPictographic)

	wcAHLetterMask    = wcALetterMask | wcHebrewLetterMask
	wcMidNumLetQMask  = wcMidNumLetMask | wcSingleQuoteMask
	wcExtendFormatZWJ = wcExtendMask | wcFormatMask | wcZWJMask
)

func wordClassify(r rune) uint32 {
	return ucd.WordCategory(r)
}

// NextWordBreak returns the index of the first word boundary strictly after
// offset, implementing UAX #29 rules WB1-WB999.
func NextWordBreak(t Text, offset int) (int, error) {
	if offset < 0 || offset >= t.Len() {
		return 0, badOffset(offset, t.Len())
	}

	it := newTextIterator(t, offset, wordClassify)
	end := t.Len()

loop:
	for it.pos < end {
		it.advance()

		// WB3: do not break within CRLF.
		if it.curchar&wcCRMask != 0 && it.lookahead&wcLFMask != 0 {
			it.pos++
			break
		}

		// WB3a/WB3b: break before/after Newline, CR, LF.
		if it.curchar&(wcNewlineMask|wcCRMask|wcLFMask) != 0 {
			if it.hasAccepted() {
				it.pos--
			}
			break
		}

		// WB3c: do not break within emoji zwj sequences.
		if it.curchar&wcZWJMask != 0 && it.lookahead&wcExtendedPictographicMask != 0 {
			continue
		}
		if it.lookahead&wcZWJMask != 0 {
			it.begin()
			it.advance()
			if it.lookahead&wcExtendedPictographicMask != 0 {
				it.commit()
				continue
			}
			it.rollback()
		}

		// WB3d: do not break within sequences of whitespace used to
		// delimit words in some East Asian layouts.
		if it.curchar&wcWSegSpaceMask != 0 && it.lookahead&wcWSegSpaceMask != 0 {
			continue
		}

		// WB4: ignore Format, Extend, and ZWJ when applying WB5-WB13b,
		// except that a ZWJ immediately preceding Extended_Pictographic
		// re-triggers WB3c from the top of the loop instead.
		if it.lookahead&(wcExtendMask|wcZWJMask|wcFormatMask) != 0 {
			saved := it.curchar
			for it.lookahead&(wcExtendMask|wcZWJMask|wcFormatMask) != 0 {
				if it.lookahead&wcZWJMask != 0 {
					it.advance()
					if it.lookahead&wcExtendedPictographicMask != 0 {
						continue loop
					}
				} else {
					it.advance()
				}
			}
			it.curchar = saved
		}

		// WB5: do not break between most letters.
		if it.curchar&wcAHLetterMask != 0 && it.lookahead&wcAHLetterMask != 0 {
			continue
		}

		// WB6/WB7: do not break letters across a single mid-letter
		// punctuation mark that is itself surrounded by letters.
		if it.curchar&wcAHLetterMask != 0 && it.lookahead&(wcMidLetterMask|wcMidNumLetQMask) != 0 {
			it.begin()
			it.advance()
			it.absorb(wcExtendFormatZWJ, 0)
			if it.lookahead&wcAHLetterMask != 0 {
				it.commit()
				continue
			}
			it.rollback()
		}

		// WB7a: do not break Hebrew letters from a following Single_Quote.
		if it.curchar&wcHebrewLetterMask != 0 && it.lookahead&wcSingleQuoteMask != 0 {
			continue
		}

		// WB7b/WB7c: do not break Hebrew letters across a Double_Quote
		// that is itself surrounded by Hebrew letters.
		if it.curchar&wcHebrewLetterMask != 0 && it.lookahead&wcDoubleQuoteMask != 0 {
			it.begin()
			it.advance()
			if it.lookahead&wcHebrewLetterMask != 0 {
				it.commit()
				continue
			}
			it.rollback()
		}

		// WB8: do not break between digits.
		if it.curchar&wcNumericMask != 0 && it.lookahead&wcNumericMask != 0 {
			continue
		}
		// WB9: do not break letters followed by digits.
		if it.curchar&wcAHLetterMask != 0 && it.lookahead&wcNumericMask != 0 {
			continue
		}
		// WB10: do not break digits followed by letters.
		if it.curchar&wcNumericMask != 0 && it.lookahead&wcAHLetterMask != 0 {
			continue
		}

		// WB11/WB12: do not break digits across a single mid-numeric
		// punctuation mark that is itself surrounded by digits.
		if it.curchar&wcNumericMask != 0 && it.lookahead&(wcMidNumMask|wcMidNumLetQMask) != 0 {
			it.begin()
			it.advance()
			it.absorb(wcExtendFormatZWJ, 0)
			if it.lookahead&wcNumericMask != 0 {
				it.commit()
				continue
			}
			it.rollback()
		}

		// WB13: do not break between Katakana.
		if it.curchar&wcKatakanaMask != 0 && it.lookahead&wcKatakanaMask != 0 {
			continue
		}

		// WB13a/WB13b: do not break letters, digits, or Katakana from an
		// adjoining ExtendNumLet connector.
		if it.curchar&(wcAHLetterMask|wcNumericMask|wcKatakanaMask|wcExtendNumLetMask) != 0 && it.lookahead&wcExtendNumLetMask != 0 {
			continue
		}
		if it.curchar&wcExtendNumLetMask != 0 && it.lookahead&(wcAHLetterMask|wcNumericMask|wcKatakanaMask) != 0 {
			continue
		}

		// WB15/WB16: do not break within emoji flag sequences.
		if it.curchar&wcRegionalIndicatorMask != 0 && it.lookahead&wcRegionalIndicatorMask != 0 {
			it.advance()
			it.absorb(wcExtendFormatZWJ, 0)
			break
		}

		// WB999: break everywhere else.
		break
	}

	return it.pos, nil
}
