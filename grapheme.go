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

func graphemeClassify(r rune) uint32 {
	return ucd.GraphemeCategory(r)
}

// gc*Mask are uint32 copies of the GC* category bits (categories.go), needed
// because [textIterator.curchar]/[textIterator.lookahead] hold the bare
// uint32 classify() returns: GraphemeCategory is a distinct named type, so
// masking a uint32 with an untyped-constant-free GraphemeCategory value
// would not compile.
const (
	gcCRMask                   = uint32(GCCR)
	gcLFMask                   = uint32(GCLF)
	gcControlMask              = uint32(GCControl)
	gcExtendMask               = uint32(GCExtend)
	gcZWJMask                  = uint32(GCZWJ)
	gcRegionalIndicatorMask    = uint32(GCRegionalIndicator)
	gcPrependMask              = uint32(GCPrepend)
	gcSpacingMarkMask          = uint32(GCSpacingMark)
	gcLMask                    = uint32(GCL)
	gcVMask                    = uint32(GCV)
	gcTMask                    = uint32(GCT)
	gcLVMask                   = uint32(GCLV)
	gcLVTMask                  = uint32(GCLVT)
	gcExtendedPictographicMask = uint32(GCExtendedPictographic)
	gcInCBLinkerMask           = uint32(GCInCBLinker)
	gcInCBConsonantMask        = uint32(GCInCBConsonant)
	gcInCBExtendMask           = uint32(GCInCBExtend)
)

// NextGraphemeBreak returns the index of the first grapheme-cluster boundary
// strictly after offset, implementing UAX #29 rules GB1-GB999. offset must
// satisfy 0 <= offset < t.Len(); when offset == t.Len()-1 the only possible
// answer is t.Len() (GB2, end of text).
func NextGraphemeBreak(t Text, offset int) (int, error) {
	if offset < 0 || offset >= t.Len() {
		return 0, badOffset(offset, t.Len())
	}

	it := newTextIterator(t, offset, graphemeClassify)
	end := t.Len()

	for it.pos < end {
		it.advance()

		// GB3: do not break within CRLF. The LF is consumed without being
		// reclassified as curchar, since we're about to return pos anyway.
		if it.curchar&gcCRMask != 0 && it.lookahead&gcLFMask != 0 {
			it.pos++
			break
		}

		// GB4/GB5: break after/before Control, CR, LF.
		if it.curchar&(gcControlMask|gcCRMask|gcLFMask) != 0 {
			if it.hasAccepted() {
				it.pos--
			}
			break
		}

		// GB6: do not break Hangul L x (L|V|LV|LVT).
		if it.curchar&gcLMask != 0 && it.lookahead&(gcLMask|gcVMask|gcLVMask|gcLVTMask) != 0 {
			continue
		}
		// GB7: do not break Hangul (LV|V) x (V|T).
		if it.curchar&(gcLVMask|gcVMask) != 0 && it.lookahead&(gcVMask|gcTMask) != 0 {
			continue
		}
		// GB8: do not break Hangul (LVT|T) x T.
		if it.curchar&(gcLVTMask|gcTMask) != 0 && it.lookahead&gcTMask != 0 {
			continue
		}

		// GB9a: do not break before SpacingMark.
		if it.lookahead&gcSpacingMarkMask != 0 {
			continue
		}
		// GB9b: do not break after Prepend.
		if it.curchar&gcPrependMask != 0 {
			continue
		}

		// GB9c: do not break within a grapheme cluster that uses
		// Indic_Conjunct_Break: Consonant [Extend Linker]* Linker [Extend
		// Linker]* x Consonant.
		if it.curchar&gcInCBConsonantMask != 0 {
			it.begin()
			sawLinker := false
			for it.lookahead&(gcInCBExtendMask|gcInCBLinkerMask) != 0 {
				if it.lookahead&gcInCBLinkerMask != 0 {
					sawLinker = true
				}
				it.advance()
			}
			if sawLinker && it.lookahead&gcInCBConsonantMask != 0 {
				it.commit()
				continue
			}
			it.rollback()
		}

		// GB11: do not break within emoji zwj sequences:
		// Extended_Pictographic Extend* ZWJ x Extended_Pictographic.
		if it.curchar&gcExtendedPictographicMask != 0 && it.lookahead&(gcExtendMask|gcZWJMask) != 0 {
			it.begin()
			for it.lookahead&gcExtendMask != 0 {
				it.advance()
			}
			if it.lookahead&gcZWJMask != 0 {
				it.advance()
				if it.lookahead&gcExtendedPictographicMask != 0 {
					it.commit()
					continue
				}
			}
			it.rollback()
		}

		// GB9: do not break before Extend or ZWJ. Must come after GB9c and
		// GB11: every InCB_Linker and InCB_Extend codepoint also carries the
		// Extend bit, so checking this first would let GB9 swallow one
		// codepoint at a time from a run GB9c/GB11 need to see whole.
		if it.lookahead&(gcExtendMask|gcZWJMask) != 0 {
			continue
		}

		// GB12/GB13: do not break within emoji flag sequences. By the time
		// control reaches here, curchar being Regional_Indicator means it is
		// the first of a pair (an odd-positioned one would already have been
		// consumed as the second half of a previous pair below), so the pair
		// is always exactly two: consume the second half and stop.
		if it.curchar&gcRegionalIndicatorMask != 0 && it.lookahead&gcRegionalIndicatorMask != 0 {
			it.advance()
			if it.lookahead&(gcExtendMask|gcZWJMask|gcInCBExtendMask) != 0 {
				continue
			}
			break
		}

		// GB999: break everywhere else.
		break
	}

	return it.pos, nil
}
