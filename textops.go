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

func validCodepoint(cp rune) bool {
	return cp >= 0 && cp <= 0x10FFFF && !(cp >= 0xD800 && cp <= 0xDFFF)
}

// GeneralCategoryOf returns cp's Unicode general category.
func GeneralCategoryOf(cp rune) (GeneralCategory, error) {
	if !validCodepoint(cp) {
		return 0, badCodepoint(cp)
	}
	return GeneralCategory(ucd.GeneralCategory(cp)), nil
}

// GraphemeLength counts the grapheme clusters in t from offset to the end,
// by repeatedly calling [NextGraphemeBreak].
func GraphemeLength(t Text, offset int) (int, error) {
	n := t.Len()
	if offset < 0 || offset > n {
		return 0, badOffset(offset, n)
	}
	count := 0
	for offset < n {
		next, err := NextGraphemeBreak(t, offset)
		if err != nil {
			return 0, err
		}
		offset = next
		count++
	}
	return count, nil
}

// GraphemeSubstr returns the substring of t spanning grapheme clusters
// [start, stop), addressed the way Python slices are: non-negative indices
// count clusters from the beginning, negative indices count back from the
// total number of clusters in t. Out-of-range indices clamp rather than
// error, matching the slicing semantics this operation is modeled on; it
// never returns a non-nil error, but keeps one in its signature for
// consistency with the rest of this package's range-taking operations.
func GraphemeSubstr(t Text, start, stop int) (string, error) {
	n := t.Len()

	if start > n || start == stop || stop == 0 || (start > 0 && stop >= 0 && start >= stop) {
		return "", nil
	}

	if start < 0 || stop < 0 {
		return graphemeSubstrNegative(t, start, stop), nil
	}
	return graphemeSubstrForward(t, start, stop), nil
}

// graphemeSubstrForward handles the common case of two non-negative bounds
// with a single pass over the clusters, per spec.md's note that the
// boundary-list construction the original always performs is not required
// when neither index is negative.
func graphemeSubstrForward(t Text, start, stop int) string {
	n := t.Len()

	startOffset, stopOffset := n, n
	if start == 0 {
		startOffset = 0
	}

	count, offset := 0, 0
	for offset < n {
		offset, _ = NextGraphemeBreak(t, offset)
		count++
		if count == start {
			startOffset = offset
		}
		if count == stop {
			stopOffset = offset
			break
		}
	}

	if stopOffset <= startOffset {
		return ""
	}
	return t.Slice(startOffset, stopOffset)
}

// graphemeSubstrNegative handles a negative start or stop by building the
// full list of cluster boundaries, then resolving both indices against the
// resulting cluster count the way a Python slice would.
func graphemeSubstrNegative(t Text, start, stop int) string {
	n := t.Len()

	boundaries := []int{0}
	for offset := 0; offset < n; {
		offset, _ = NextGraphemeBreak(t, offset)
		boundaries = append(boundaries, offset)
	}
	count := len(boundaries) - 1

	start = clampSliceIndex(start, count)
	stop = clampSliceIndex(stop, count)
	if start >= stop {
		return ""
	}
	return t.Slice(boundaries[start], boundaries[stop])
}

// clampSliceIndex resolves a signed, possibly out-of-range Python-style
// slice index against a sequence of length n.
func clampSliceIndex(i, n int) int {
	if i < 0 {
		i += n
		if i < 0 {
			i = 0
		}
		return i
	}
	if i > n {
		return n
	}
	return i
}

// HasCategory reports whether any scalar in t[start:end) belongs to one of
// the general categories set in mask.
func HasCategory(t Text, start, end int, mask GeneralCategory) (bool, error) {
	n := t.Len()
	if start < 0 || start > n {
		return false, badOffset(start, n)
	}
	if end < 0 || end > n {
		return false, badOffset(end, n)
	}
	if mask&allGeneralCategories == 0 {
		return false, badMask(mask)
	}
	for i := start; i < end; i++ {
		if GeneralCategory(ucd.GeneralCategory(t.At(i)))&mask != 0 {
			return true, nil
		}
	}
	return false, nil
}

var graphemeCategoryOrder = []GraphemeCategory{
	GCCR, GCLF, GCControl, GCExtend, GCZWJ, GCRegionalIndicator, GCPrepend, GCSpacingMark,
	GCL, GCV, GCT, GCLV, GCLVT, GCExtendedPictographic,
	GCInCBLinker, GCInCBConsonant, GCInCBExtend,
}

var wordCategoryOrder = []WordCategory{
	WCCR, WCLF, WCNewline, WCExtend, WCZWJ, WCRegionalIndicator, WCFormat, WCKatakana,
	WCHebrewLetter, WCALetter, WCSingleQuote, WCDoubleQuote, WCMidNumLet, WCMidLetter, WCMidNum,
	WCNumeric, WCExtendNumLet, WCWSegSpace, WCExtendedPictographic,
}

var sentenceCategoryOrder = []SentenceCategory{
	SCCR, SCLF, SCExtend, SCSep, SCFormat, SCSp, SCLower, SCUpper, SCOLetter,
	SCNumeric, SCATerm, SCSContinue, SCSTerm, SCClose,
}

// CategoryName returns the ordered list of category names whose bits are
// set in cp's mask for the chosen algorithm.
func CategoryName(which Algorithm, cp rune) ([]string, error) {
	if !validCodepoint(cp) {
		return nil, badCodepoint(cp)
	}

	var names []string
	switch which {
	case Grapheme:
		mask := GraphemeCategory(ucd.GraphemeCategory(cp))
		for _, bit := range graphemeCategoryOrder {
			if mask&bit != 0 {
				names = append(names, graphemeCategoryNames[bit])
			}
		}
	case Word:
		mask := WordCategory(ucd.WordCategory(cp))
		for _, bit := range wordCategoryOrder {
			if mask&bit != 0 {
				names = append(names, wordCategoryNames[bit])
			}
		}
	case Sentence:
		mask := SentenceCategory(ucd.SentenceCategory(cp))
		for _, bit := range sentenceCategoryOrder {
			if mask&bit != 0 {
				names = append(names, sentenceCategoryNames[bit])
			}
		}
	default:
		return nil, badWhich(which)
	}
	return names, nil
}
