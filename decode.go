// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package ndlz

// Decoder: reads the header, zeros the destination, and
// walks the same row-major cell grid the encoder used, replaying each
// cell's token into a 64-byte scratch buffer before scattering it into the
// destination (honoring padding on the last row/column of cells).

// readHeader reads the 9-byte prelude and returns the declared block shape.
func readHeader(in *inCursor) (ndim int, shape [2]int32, ok bool) {
	b, ok := in.readU8()
	if !ok {
		return 0, shape, false
	}
	rows, ok := in.readU32LE()
	if !ok {
		return 0, shape, false
	}
	cols, ok := in.readU32LE()
	if !ok {
		return 0, shape, false
	}
	return int(b), [2]int32{int32(rows), int32(cols)}, true
}

// fillRow copies a referenced row from the compressed stream built so far
// into one row of scratch.
func fillRow(scratch []byte, row int, out []byte, storedPos int) bool {
	return copyRange(scratch, out, row*cellShape, storedPos, cellShape)
}

// replayGroups reconstructs scratch's referenced rows from plan's groups,
// each offset resolved against anchor (this cell's token-byte position),
// then fills the remaining literalRows by reading them inline from in.
func replayGroups(in *inCursor, out []byte, anchor int, scratch []byte, plan *matchPlan) bool {
	for _, g := range plan.groups {
		storedPos := anchor - int(g.offset)
		for i, r := range g.rows {
			if !fillRow(scratch, r, out, storedPos+i*cellShape) {
				return false
			}
		}
	}
	for _, r := range plan.literalRows {
		row, ok := in.readBytes(cellShape)
		if !ok {
			return false
		}
		copy(cellRow(scratch, r), row)
	}
	return true
}

// decodeCell reconstructs one non-padded cell's 64 bytes into scratch.
func decodeCell(in *inCursor, out []byte, anchor int, scratch []byte) error {
	plan, err := decodeToken(in, false, 0, 0)
	if err != nil {
		return err
	}

	switch plan.class {
	case classLiteral:
		row, ok := in.readBytes(cellSize)
		if !ok {
			return ErrTruncated
		}
		copy(scratch, row)
	case classCellRLE:
		for i := range scratch {
			scratch[i] = plan.rleValue
		}
	case classCellMatch:
		storedPos := anchor - int(plan.groups[0].offset)
		if storedPos <= 0 || storedPos >= len(out) {
			return ErrTruncated
		}
		// storedPos names either a literal predecessor (64 raw bytes) or a
		// cell-RLE predecessor (one payload byte); the marker byte just
		// before it disambiguates (mirrors tryCellMatch in match.go).
		switch out[storedPos-1] {
		case tokenLiteral:
			if !copyRange(scratch, out, 0, storedPos, cellSize) {
				return ErrTruncated
			}
		case tokenCellRLE:
			v := out[storedPos]
			for i := range scratch {
				scratch[i] = v
			}
		default:
			return ErrBadToken
		}
	default:
		if !replayGroups(in, out, anchor, scratch, plan) {
			return ErrTruncated
		}
	}
	return nil
}

// scatterCell writes scratch's live padRows x padCols region into dst at
// cell (gi, gj), row by row, honoring the padding contract.
func scatterCell(dst []byte, blockshape [2]int32, gi, gj, padRows, padCols int, scratch []byte) {
	origin := cellOrigin(blockshape, gi, gj)
	stride := int(blockshape[1])
	for r := 0; r < padRows; r++ {
		off := origin + r*stride
		copy(dst[off:off+padCols], scratch[r*cellShape:r*cellShape+padCols])
	}
}

// decodeBlock decodes the cell grid from in (already positioned past the
// header) into dst, which must already be zeroed and sized for
// blockshape[0]*blockshape[1] bytes. Back-references resolve against src,
// the full compressed stream including its header, since encodeBlock's
// anchors are absolute positions over that same buffer.
func decodeBlock(in *inCursor, src, dst []byte, blockshape [2]int32) (int, error) {
	gridRows, gridCols := gridShape(blockshape)

	for gi := 0; gi < gridRows; gi++ {
		for gj := 0; gj < gridCols; gj++ {
			anchor := in.pos
			padded, padRows, padCols := isPaddedCell(blockshape, gi, gj, gridRows, gridCols)

			var scratch [cellSize]byte
			if padded {
				plan, err := decodeToken(in, true, padRows, padCols)
				if err != nil {
					return 0, err
				}
				if plan.class != classLiteral {
					return 0, ErrBadToken
				}
				for r := 0; r < padRows; r++ {
					row, ok := in.readBytes(padCols)
					if !ok {
						return 0, ErrTruncated
					}
					copy(scratch[r*cellShape:r*cellShape+padCols], row)
				}
			} else {
				if err := decodeCell(in, src, anchor, scratch[:]); err != nil {
					return 0, err
				}
			}

			scatterCell(dst, blockshape, gi, gj, padRows, padCols, scratch[:])
		}
	}

	return len(dst), nil
}

