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

// textIterator is a one-level-undo cursor over a [Text], used by the three
// segmentation engines. It carries exactly three pieces of state -- pos,
// curchar, and lookahead -- plus the single save slot needed for rule
// backtracking (spec.md §4.3, §9: "nothing else" must be preserved across a
// transaction).
type textIterator struct {
	text      Text
	classify  func(rune) uint32
	start     int // construction offset, for hasAccepted
	pos       int // next index to read
	curchar   uint32
	lookahead uint32

	inTransaction bool
	saved         struct {
		pos       int
		curchar   uint32
		lookahead uint32
	}
}

func newTextIterator(t Text, offset int, classify func(rune) uint32) *textIterator {
	it := &textIterator{text: t, classify: classify, start: offset, pos: offset}
	it.lookahead = it.classifyAt(offset)
	return it
}

func (it *textIterator) classifyAt(pos int) uint32 {
	if pos >= it.text.Len() {
		return 0
	}
	return it.classify(it.text.At(pos))
}

// advance accepts the lookahead as the new curchar and refreshes lookahead
// from the next position.
func (it *textIterator) advance() {
	it.curchar = it.lookahead
	it.pos++
	it.lookahead = it.classifyAt(it.pos)
}

// hasAccepted reports whether more than the engine's single mandatory
// opening advance (which implements UAX #29's "start of text is a
// boundary" rule) has happened. It is deliberately pos > start+1, not
// pos > start: right after that first advance nothing has been accepted
// into the current cluster yet, which is what GB4/5 and WB3a/b use it to
// distinguish "break before" (nothing accepted: this is the very first
// character) from "break after" (something precedes it).
func (it *textIterator) hasAccepted() bool {
	return it.pos > it.start+1
}

// absorb advances while lookahead matches match, and after each such
// advance additionally advances while lookahead matches extend. curchar is
// restored to its pre-absorb value on exit: UAX #29 treats the whole
// absorbed run as transparent to the identity of the character that
// preceded it.
func (it *textIterator) absorb(match, extend uint32) {
	if it.lookahead&match == 0 {
		return
	}
	saved := it.curchar
	for it.lookahead&match != 0 {
		it.advance()
		for it.lookahead&extend != 0 {
			it.advance()
		}
	}
	it.curchar = saved
}

// begin snapshots (pos, curchar, lookahead) for a later rollback. Nested
// transactions are a programming error: every UAX #29 rule that needs
// lookahead either commits on match or rolls back exactly once before the
// next rule runs.
func (it *textIterator) begin() {
	if it.inTransaction {
		panic("unicodeseg: nested TextIterator transaction")
	}
	it.saved.pos, it.saved.curchar, it.saved.lookahead = it.pos, it.curchar, it.lookahead
	it.inTransaction = true
}

func (it *textIterator) commit() {
	if !it.inTransaction {
		panic("unicodeseg: commit without a matching begin")
	}
	it.inTransaction = false
}

func (it *textIterator) rollback() {
	if !it.inTransaction {
		panic("unicodeseg: rollback without a matching begin")
	}
	it.pos, it.curchar, it.lookahead = it.saved.pos, it.saved.curchar, it.saved.lookahead
	it.inTransaction = false
}
