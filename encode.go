// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package ndlz

// Encoder driver: walks the cell grid in row-major
// order, extracting each cell, running the match searcher, and emitting
// its token. Padded-edge cells skip matching entirely and go out as raw
// literals of their live extent.

// encodeBlock writes the full block (header + every cell) into dst and
// returns the number of bytes written, or false if dst ran out of room or
// the output grew past len(src).
func encodeBlock(ctx *Context, src, dst []byte) (int, bool) {
	out := newOutCursor(dst)
	if !writeHeader(out, ctx) {
		return 0, false
	}

	idx := &fingerprintIndex{}
	gridRows, gridCols := gridShape(ctx.BlockShape)

	for gi := 0; gi < gridRows; gi++ {
		for gj := 0; gj < gridCols; gj++ {
			padded, padRows, padCols := isPaddedCell(ctx.BlockShape, gi, gj, gridRows, gridCols)
			if padded {
				cell := extractPaddedCell(src, ctx.BlockShape, gi, gj, padRows, padCols)
				if !out.writeU8(tokenLiteral) || !out.writeBytes(cell) {
					return 0, false
				}
				if out.pos-out.base > len(src) {
					return 0, false
				}
				continue
			}

			anchor := out.pos
			cell := extractCell(src, ctx.BlockShape, gi, gj)
			plan, pending := searchCell(idx, dst, anchor, cell)

			if !encodeToken(out, cell, plan) {
				return 0, false
			}
			// Literal cells defer a full set of candidates (cell, six-row,
			// triple, pair); cell-RLE cells defer just the cell-table
			// candidate pointing at their payload byte (see searchCell).
			// Every other class leaves pending nil: it has nothing at a
			// fixed, independently-verifiable position to index.
			if pending != nil {
				applyPendingInserts(pending)
			}

			if out.pos-out.base > len(src) {
				return 0, false
			}
		}
	}

	return out.pos, true
}

// writeHeader emits the 9-byte prelude: ndim, rows, cols.
func writeHeader(out *outCursor, ctx *Context) bool {
	return out.writeU8(byte(ctx.Ndim)) &&
		out.writeU32LE(uint32(ctx.BlockShape[0])) &&
		out.writeU32LE(uint32(ctx.BlockShape[1]))
}
