// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package ndlz

import "bytes"

// Match searcher: for a single non-padded cell, searches in priority
// order — whole-cell equality, all-bytes-equal RLE, six-row, triple(s),
// pair(s) — and stops at the first class that accepts. Every table entry
// this package stores is the absolute byte position (within the output
// buffer built so far) of the start of the referenced run, so a match's
// back-distance is always `anchor - storedPos`, uniformly across every
// class. This sidesteps the reference encoder's row-adjusted offset
// arithmetic, which is inconsistent between encoder and decoder in the
// original; see DESIGN.md for the redesign rationale.

type matchClass int

const (
	classLiteral matchClass = iota
	classCellRLE
	classCellMatch
	classSixRow
	classOneTriple
	classTwoTriples
	classOnePair
	classTwoPairs
	classThreePairs
)

// refGroup is one back-reference: the rows (increasing order) it fills and
// the 16-bit back-distance to replay them from.
type refGroup struct {
	rows   []int
	offset uint16
}

// matchPlan is the outcome of searching one cell: either a literal/RLE
// cell, or a sequence of reference groups plus the rows left over as
// inline literals.
type matchPlan struct {
	class       matchClass
	rleValue    byte
	groups      []refGroup
	literalRows []int
}

// pendingInsert is a deferred hash-table candidate: applied only if the
// current cell is ultimately emitted as a literal or as cell-RLE. table
// always points at one of the live *fingerprintIndex's four tables.
type pendingInsert struct {
	table *[hashTableLen]uint32
	key   uint32
	pos   int
}

// toStored converts an absolute byte position to the table's 1-based
// sentinel-safe representation (0 means unused).
func toStored(pos int) uint32 { return uint32(pos + 1) }

// fromStored converts a stored table value back to an absolute position.
func fromStored(v uint32) (int, bool) {
	if v == 0 {
		return 0, false
	}
	return int(v) - 1, true
}

// searcher bundles the state the match search needs: the fingerprint
// tables, the output bytes written so far (to verify hash hits against),
// and this cell's anchor (output position before any of its token bytes).
type searcher struct {
	idx    *fingerprintIndex
	out    []byte
	anchor int
}

// tryMatch looks up key in table, verifies the referenced bytes equal want,
// and checks the resulting distance lies in (0, maxDistance). Returns the
// encoded offset on success.
func (s *searcher) tryMatch(table *[hashTableLen]uint32, key uint32, want []byte) (offset uint16, ok bool) {
	pos, present := fromStored(lookup(table, key))
	if !present {
		return 0, false
	}
	if pos < 0 || pos+len(want) > len(s.out) {
		return 0, false
	}
	if !bytes.Equal(s.out[pos:pos+len(want)], want) {
		return 0, false
	}
	dist := s.anchor - pos
	if dist <= 0 || dist >= maxDistance {
		return 0, false
	}
	return uint16(dist), true
}

// tryCellMatch is tryMatch specialized for the cell table. A stored cell
// position can name either a literal cell (64 raw bytes at pos) or a
// cell-RLE cell (one repeated byte at pos, recognized by the tokenCellRLE
// marker immediately before it) — the cell table accepts entries from both
// outcomes (see DESIGN.md, "cell table and cell-RLE"), so verification
// branches on that marker instead of always comparing 64 literal bytes.
func (s *searcher) tryCellMatch(key uint32, want []byte) (offset uint16, ok bool) {
	pos, present := fromStored(lookup(&s.idx.cell, key))
	if !present || pos <= 0 || pos >= len(s.out) {
		return 0, false
	}

	switch s.out[pos-1] {
	case tokenLiteral:
		if pos+len(want) > len(s.out) || !bytes.Equal(s.out[pos:pos+len(want)], want) {
			return 0, false
		}
	case tokenCellRLE:
		if !allBytesEqual(want) || want[0] != s.out[pos] {
			return 0, false
		}
	default:
		return 0, false
	}

	dist := s.anchor - pos
	if dist <= 0 || dist >= maxDistance {
		return 0, false
	}
	return uint16(dist), true
}

// rowSet builds a fixed membership mask from a row-index list, replacing
// the reference's pointer-comparison `valueinarray` defect.
func rowSet(rows ...int) [cellShape]bool {
	var set [cellShape]bool
	for _, r := range rows {
		set[r] = true
	}
	return set
}

// literalRowsExcluding returns the rows absent from every given set, in
// increasing order.
func literalRowsExcluding(sets ...[cellShape]bool) []int {
	var out []int
	for r := 0; r < cellShape; r++ {
		used := false
		for _, s := range sets {
			if s[r] {
				used = true
				break
			}
		}
		if !used {
			out = append(out, r)
		}
	}
	return out
}

// searchCell runs the full priority search for one non-padded cell and
// returns the winning plan plus the deferred hash-table candidates the
// caller should apply: the full set for a literal outcome, the single
// cell-table entry for a cell-RLE outcome, and nil otherwise.
func searchCell(idx *fingerprintIndex, out []byte, anchor int, cell []byte) (*matchPlan, []pendingInsert) {
	s := &searcher{idx: idx, out: out, anchor: anchor}

	// Cell match is checked ahead of cell RLE: a second occurrence of a
	// uniform-byte cell prefers the 3-byte cell-match token over
	// re-emitting a 2-byte RLE token, even though the reference C
	// encoder's control flow checks all-equal first unconditionally.
	// See DESIGN.md.
	cellKey := fingerprint(cell)
	if offset, ok := s.tryCellMatch(cellKey, cell); ok {
		return &matchPlan{class: classCellMatch, groups: []refGroup{{offset: offset}}}, nil
	}

	if allBytesEqual(cell) {
		// A cell-RLE cell also earns the cell table a candidate, pointing
		// at its single payload byte rather than 64 literal bytes; see
		// tryCellMatch and DESIGN.md.
		return &matchPlan{class: classCellRLE, rleValue: cell[0]},
			[]pendingInsert{{table: &idx.cell, key: cellKey, pos: anchor + 1}}
	}

	for i := 0; i < cellShape-1; i++ {
		for j := i + 1; j < cellShape; j++ {
			buf := buildSixRowBuf(cell, i, j)
			key := fingerprint(buf)
			if offset, ok := s.tryMatch(&idx.six, key, buf); ok {
				return &matchPlan{
					class:       classSixRow,
					groups:      []refGroup{{rows: literalRowsExcluding(rowSet(i, j)), offset: offset}},
					literalRows: []int{i, j},
				}, nil
			}
		}
	}

	if plan := searchTriples(s, cell); plan != nil {
		return plan, nil
	}

	if plan := searchPairs(s, cell); plan != nil {
		return plan, nil
	}

	return &matchPlan{class: classLiteral}, deferredCandidates(idx, cell, anchor)
}

// searchTriples finds the first matching triple (i<j<k), then looks for a
// second, row-disjoint, matching triple. If triple search finds anything
// at all, pair search is never attempted.
func searchTriples(s *searcher, cell []byte) *matchPlan {
	for i := 0; i < cellShape-2; i++ {
		for j := i + 1; j < cellShape-1; j++ {
			for k := j + 1; k < cellShape; k++ {
				buf := buildTripleBuf(cell, i, j, k)
				key := fingerprint(buf)
				offset, ok := s.tryMatch(&s.idx.triple, key, buf)
				if !ok {
					continue
				}

				first := refGroup{rows: []int{i, j, k}, offset: offset}
				used := rowSet(i, j, k)

				for i2 := i + 1; i2 < cellShape-2; i2++ {
					if used[i2] {
						continue
					}
					for j2 := i2 + 1; j2 < cellShape-1; j2++ {
						if used[j2] {
							continue
						}
						for k2 := j2 + 1; k2 < cellShape; k2++ {
							if used[k2] {
								continue
							}
							buf2 := buildTripleBuf(cell, i2, j2, k2)
							key2 := fingerprint(buf2)
							offset2, ok2 := s.tryMatch(&s.idx.triple, key2, buf2)
							if !ok2 {
								continue
							}
							second := refGroup{rows: []int{i2, j2, k2}, offset: offset2}
							literal := literalRowsExcluding(used, rowSet(i2, j2, k2))
							return &matchPlan{
								class:       classTwoTriples,
								groups:      []refGroup{first, second},
								literalRows: literal,
							}
						}
					}
				}

				return &matchPlan{
					class:       classOneTriple,
					groups:      []refGroup{first},
					literalRows: literalRowsExcluding(used),
				}
			}
		}
	}
	return nil
}

// searchPairs cascades from one to two to three pairwise-disjoint matching
// pairs.
func searchPairs(s *searcher, cell []byte) *matchPlan {
	for i := 0; i < cellShape-1; i++ {
		for j := i + 1; j < cellShape; j++ {
			buf := buildPairBuf(cell, i, j)
			key := fingerprint(buf)
			offset, ok := s.tryMatch(&s.idx.pair, key, buf)
			if !ok {
				continue
			}

			first := refGroup{rows: []int{i, j}, offset: offset}
			used := rowSet(i, j)

			second, used2, ok2 := findDisjointPair(s, cell, used)
			if !ok2 {
				return &matchPlan{
					class:       classOnePair,
					groups:      []refGroup{first},
					literalRows: literalRowsExcluding(used),
				}
			}

			third, used3, ok3 := findDisjointPair(s, cell, used2)
			if !ok3 {
				return &matchPlan{
					class:       classTwoPairs,
					groups:      []refGroup{first, second},
					literalRows: literalRowsExcluding(used2),
				}
			}

			return &matchPlan{
				class:       classThreePairs,
				groups:      []refGroup{first, second, third},
				literalRows: literalRowsExcluding(used3),
			}
		}
	}
	return nil
}

// findDisjointPair searches for a matching pair whose two rows are absent
// from used, returning the updated membership mask on success.
func findDisjointPair(s *searcher, cell []byte, used [cellShape]bool) (refGroup, [cellShape]bool, bool) {
	for i := 0; i < cellShape-1; i++ {
		if used[i] {
			continue
		}
		for j := i + 1; j < cellShape; j++ {
			if used[j] {
				continue
			}
			buf := buildPairBuf(cell, i, j)
			key := fingerprint(buf)
			offset, ok := s.tryMatch(&s.idx.pair, key, buf)
			if !ok {
				continue
			}
			next := used
			next[i] = true
			next[j] = true
			return refGroup{rows: []int{i, j}, offset: offset}, next, true
		}
	}
	return refGroup{}, used, false
}

// deferredCandidates computes the adjacency-restricted six/triple/pair hash
// candidates for a cell about to be emitted as a literal, plus the cell
// table's own entry. anchor is the output position of this cell's token
// byte; its 64 literal bytes begin one past it.
func deferredCandidates(idx *fingerprintIndex, cell []byte, anchor int) []pendingInsert {
	dataStart := anchor + 1
	var out []pendingInsert

	out = append(out, pendingInsert{table: &idx.cell, key: fingerprint(cell), pos: dataStart})

	// six-row: only the three adjacency patterns whose excluded pair leaves
	// a contiguous run (excluding (0,1), (0,7), (6,7) leaves a run starting
	// at row 2, 1, 0 respectively).
	sixCandidates := []struct{ i, j, runStart int }{
		{0, 1, 2},
		{0, 7, 1},
		{6, 7, 0},
	}
	for _, c := range sixCandidates {
		buf := buildSixRowBuf(cell, c.i, c.j)
		out = append(out, pendingInsert{table: &idx.six, key: fingerprint(buf), pos: dataStart + c.runStart*cellShape})
	}

	for i := 0; i < cellShape-2; i++ {
		buf := buildTripleBuf(cell, i, i+1, i+2)
		out = append(out, pendingInsert{table: &idx.triple, key: fingerprint(buf), pos: dataStart + i*cellShape})
	}

	for i := 0; i < cellShape-1; i++ {
		buf := buildPairBuf(cell, i, i+1)
		out = append(out, pendingInsert{table: &idx.pair, key: fingerprint(buf), pos: dataStart + i*cellShape})
	}

	return out
}

// applyPendingInserts commits deferred candidates into their tables, called
// only when a cell ends up literal or cell-RLE.
func applyPendingInserts(inserts []pendingInsert) {
	for _, ins := range inserts {
		insert(ins.table, ins.key, toStored(ins.pos))
	}
}
