// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package ndlz

// Token encoder/decoder: the nine wire layouts for a single cell's
// emission. Row-index fields are always 3 bits (0-7).
//
// Packed multi-byte TOKEN fields (the class-tag + row-index values below)
// are serialized most-significant-byte first ("token bits, MSB first
// within the indicated width"): the decoder's dispatch reads a single
// leading byte and right-shifts it to recover the class tag, which only
// lands on the tag bits when the packed value's high byte is written
// first. This is a narrower exception to the general little-endian rule
// that governs the plain u16 offset fields and the block header — see
// DESIGN.md.
//
// Back-reference offsets are `anchor - storedPos`, computed uniformly for
// every class (cell match, six-row, triple(s), pair(s)) against the single
// per-cell anchor — not the reference's row-anchored, per-class "+3"
// scheme, which is confusing and inconsistent in the original. See
// DESIGN.md for the rationale.

func sixRowToken(i, j int) uint16 {
	return uint16(matchTypeSixRow<<10 | i<<7 | j<<4)
}

func oneTripleToken(i, j, k int) uint16 {
	return uint16(matchTypeOneTriple<<10 | i<<7 | j<<4 | k<<1)
}

func onePairToken(i, j int) uint16 {
	return uint16(matchTypeOnePair<<10 | i<<7 | j<<4)
}

func twoPairsToken(i, j, i2, j2 int) uint16 {
	return uint16(matchTypeTwoPairs<<12 | i<<9 | j<<6 | i2<<3 | j2)
}

func twoTriplesToken(i, j, k, i2, j2, k2 int) uint32 {
	return uint32(9<<20 | i<<15 | j<<12 | k<<9 | i2<<6 | j2<<3 | k2)
}

func threePairsToken(i, j, i2, j2, i3, j3 int) uint32 {
	return uint32(matchTypeThreePairs<<18 | i<<15 | j<<12 | i2<<9 | j2<<6 | i3<<3 | j3)
}

// writeLiteralRows writes the rows of cell named by rows, in the order
// given, as raw bytes.
func writeLiteralRows(out *outCursor, cell []byte, rows []int) bool {
	for _, r := range rows {
		if !out.writeBytes(cellRow(cell, r)) {
			return false
		}
	}
	return true
}

// encodeToken serializes plan's token and payload for cell into out.
func encodeToken(out *outCursor, cell []byte, plan *matchPlan) bool {
	switch plan.class {
	case classLiteral:
		return out.writeU8(tokenLiteral) && out.writeBytes(cell)

	case classCellRLE:
		return out.writeU8(tokenCellRLE) && out.writeU8(plan.rleValue)

	case classCellMatch:
		return out.writeU8(tokenCellMatch) && out.writeU16LE(plan.groups[0].offset)

	case classSixRow:
		i, j := plan.literalRows[0], plan.literalRows[1]
		return out.writeU16BE(sixRowToken(i, j)) &&
			out.writeU16LE(plan.groups[0].offset) &&
			writeLiteralRows(out, cell, plan.literalRows)

	case classOneTriple:
		rows := plan.groups[0].rows
		return out.writeU16BE(oneTripleToken(rows[0], rows[1], rows[2])) &&
			out.writeU16LE(plan.groups[0].offset) &&
			writeLiteralRows(out, cell, plan.literalRows)

	case classTwoTriples:
		r1, r2 := plan.groups[0].rows, plan.groups[1].rows
		return out.writeU24BE(twoTriplesToken(r1[0], r1[1], r1[2], r2[0], r2[1], r2[2])) &&
			out.writeU16LE(plan.groups[0].offset) &&
			out.writeU16LE(plan.groups[1].offset) &&
			writeLiteralRows(out, cell, plan.literalRows)

	case classOnePair:
		rows := plan.groups[0].rows
		return out.writeU16BE(onePairToken(rows[0], rows[1])) &&
			out.writeU16LE(plan.groups[0].offset) &&
			writeLiteralRows(out, cell, plan.literalRows)

	case classTwoPairs:
		r1, r2 := plan.groups[0].rows, plan.groups[1].rows
		return out.writeU16BE(twoPairsToken(r1[0], r1[1], r2[0], r2[1])) &&
			out.writeU16LE(plan.groups[0].offset) &&
			out.writeU16LE(plan.groups[1].offset) &&
			writeLiteralRows(out, cell, plan.literalRows)

	case classThreePairs:
		r1, r2, r3 := plan.groups[0].rows, plan.groups[1].rows, plan.groups[2].rows
		return out.writeU24BE(threePairsToken(r1[0], r1[1], r2[0], r2[1], r3[0], r3[1])) &&
			out.writeU16LE(plan.groups[0].offset) &&
			out.writeU16LE(plan.groups[1].offset) &&
			out.writeU16LE(plan.groups[2].offset) &&
			writeLiteralRows(out, cell, plan.literalRows)
	}
	return false
}

// decodeToken reads one cell's token and payload header (everything except
// literal row bytes and back-referenced row bytes, which decode.go copies
// directly into the scratch cell) and returns the plan describing it.
// padded selects the padded-edge literal-only path; padRows/padCols are
// not read here.
func decodeToken(in *inCursor, padded bool, padRows, padCols int) (*matchPlan, error) {
	first, ok := in.readU8()
	if !ok {
		return nil, ErrTruncated
	}

	if padded {
		if first != tokenLiteral {
			return nil, ErrBadToken
		}
		return &matchPlan{class: classLiteral}, nil
	}

	switch first {
	case tokenLiteral:
		return &matchPlan{class: classLiteral}, nil
	case tokenCellRLE:
		v, ok := in.readU8()
		if !ok {
			return nil, ErrTruncated
		}
		return &matchPlan{class: classCellRLE, rleValue: v}, nil
	case tokenCellMatch:
		offset, ok := in.readU16LE()
		if !ok {
			return nil, ErrTruncated
		}
		return &matchPlan{class: classCellMatch, groups: []refGroup{{offset: offset}}}, nil
	}

	matchType := first >> 2
	switch {
	case matchType == matchTypeSixRow:
		return decodeSixRow(in)
	case matchType == matchTypeTwoTriples:
		return decodeTwoTriples(in)
	case matchType == matchTypeOneTriple:
		return decodeOneTriple(in)
	case matchType == matchTypeThreePairs:
		return decodeThreePairs(in)
	case matchType>>2 == matchTypeTwoPairs:
		return decodeTwoPairs(in)
	case matchType == matchTypeOnePair:
		return decodeOnePair(in)
	}
	return nil, ErrBadToken
}

func decodeSixRow(in *inCursor) (*matchPlan, error) {
	in.rewind(1)
	token, ok := in.readU16BE()
	if !ok {
		return nil, ErrTruncated
	}
	i := int(token>>7) & 0x7
	j := int(token>>4) & 0x7
	offset, ok := in.readU16LE()
	if !ok {
		return nil, ErrTruncated
	}
	return &matchPlan{
		class:       classSixRow,
		groups:      []refGroup{{rows: literalRowsExcluding(rowSet(i, j)), offset: offset}},
		literalRows: []int{i, j},
	}, nil
}

func decodeOneTriple(in *inCursor) (*matchPlan, error) {
	in.rewind(1)
	token, ok := in.readU16BE()
	if !ok {
		return nil, ErrTruncated
	}
	i := int(token>>7) & 0x7
	j := int(token>>4) & 0x7
	k := int(token>>1) & 0x7
	offset, ok := in.readU16LE()
	if !ok {
		return nil, ErrTruncated
	}
	used := rowSet(i, j, k)
	return &matchPlan{
		class:       classOneTriple,
		groups:      []refGroup{{rows: []int{i, j, k}, offset: offset}},
		literalRows: literalRowsExcluding(used),
	}, nil
}

func decodeTwoTriples(in *inCursor) (*matchPlan, error) {
	in.rewind(1)
	token, ok := in.readU24BE()
	if !ok {
		return nil, ErrTruncated
	}
	i := int(token>>15) & 0x7
	j := int(token>>12) & 0x7
	k := int(token>>9) & 0x7
	i2 := int(token>>6) & 0x7
	j2 := int(token>>3) & 0x7
	k2 := int(token) & 0x7
	off1, ok := in.readU16LE()
	if !ok {
		return nil, ErrTruncated
	}
	off2, ok := in.readU16LE()
	if !ok {
		return nil, ErrTruncated
	}
	used := rowSet(i, j, k, i2, j2, k2)
	return &matchPlan{
		class: classTwoTriples,
		groups: []refGroup{
			{rows: []int{i, j, k}, offset: off1},
			{rows: []int{i2, j2, k2}, offset: off2},
		},
		literalRows: literalRowsExcluding(used),
	}, nil
}

func decodeOnePair(in *inCursor) (*matchPlan, error) {
	in.rewind(1)
	token, ok := in.readU16BE()
	if !ok {
		return nil, ErrTruncated
	}
	i := int(token>>7) & 0x7
	j := int(token>>4) & 0x7
	offset, ok := in.readU16LE()
	if !ok {
		return nil, ErrTruncated
	}
	used := rowSet(i, j)
	return &matchPlan{
		class:       classOnePair,
		groups:      []refGroup{{rows: []int{i, j}, offset: offset}},
		literalRows: literalRowsExcluding(used),
	}, nil
}

func decodeTwoPairs(in *inCursor) (*matchPlan, error) {
	in.rewind(1)
	token, ok := in.readU16BE()
	if !ok {
		return nil, ErrTruncated
	}
	i := int(token>>9) & 0x7
	j := int(token>>6) & 0x7
	i2 := int(token>>3) & 0x7
	j2 := int(token) & 0x7
	off1, ok := in.readU16LE()
	if !ok {
		return nil, ErrTruncated
	}
	off2, ok := in.readU16LE()
	if !ok {
		return nil, ErrTruncated
	}
	used := rowSet(i, j, i2, j2)
	return &matchPlan{
		class: classTwoPairs,
		groups: []refGroup{
			{rows: []int{i, j}, offset: off1},
			{rows: []int{i2, j2}, offset: off2},
		},
		literalRows: literalRowsExcluding(used),
	}, nil
}

func decodeThreePairs(in *inCursor) (*matchPlan, error) {
	in.rewind(1)
	token, ok := in.readU24BE()
	if !ok {
		return nil, ErrTruncated
	}
	i := int(token>>15) & 0x7
	j := int(token>>12) & 0x7
	i2 := int(token>>9) & 0x7
	j2 := int(token>>6) & 0x7
	i3 := int(token>>3) & 0x7
	j3 := int(token) & 0x7
	off1, ok := in.readU16LE()
	if !ok {
		return nil, ErrTruncated
	}
	off2, ok := in.readU16LE()
	if !ok {
		return nil, ErrTruncated
	}
	off3, ok := in.readU16LE()
	if !ok {
		return nil, ErrTruncated
	}
	used := rowSet(i, j, i2, j2, i3, j3)
	return &matchPlan{
		class: classThreePairs,
		groups: []refGroup{
			{rows: []int{i, j}, offset: off1},
			{rows: []int{i2, j2}, offset: off2},
			{rows: []int{i3, j3}, offset: off3},
		},
		literalRows: literalRowsExcluding(used),
	}, nil
}
