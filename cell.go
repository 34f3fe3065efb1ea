// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package ndlz

// Cell extractor: copies an 8x8 cell out of the 2-D source
// into a contiguous 64-byte scratch buffer, and builds the row-subset
// buffers the match searcher hashes (six rows, triples, pairs).

// gridShape returns the cell-grid dimensions for a rows x cols block:
// ceil(rows/8) x ceil(cols/8).
func gridShape(blockshape [2]int32) (gridRows, gridCols int) {
	gridRows = int((blockshape[0] + cellShape - 1) / cellShape)
	gridCols = int((blockshape[1] + cellShape - 1) / cellShape)
	return
}

// cellOrigin returns the flat index of the top-left byte of cell (gi, gj)
// within the row-major block.
func cellOrigin(blockshape [2]int32, gi, gj int) int {
	return gi*cellShape*int(blockshape[1]) + gj*cellShape
}

// isPaddedCell reports whether cell (gi, gj) falls on a padded edge, and if
// so its live row/col extent.
func isPaddedCell(blockshape [2]int32, gi, gj, gridRows, gridCols int) (padded bool, padRows, padCols int) {
	padRows, padCols = cellShape, cellShape
	rightEdge := blockshape[1]%cellShape != 0 && gj == gridCols-1
	bottomEdge := blockshape[0]%cellShape != 0 && gi == gridRows-1
	if !rightEdge && !bottomEdge {
		return false, cellShape, cellShape
	}
	if bottomEdge {
		padRows = int(blockshape[0] % cellShape)
	}
	if rightEdge {
		padCols = int(blockshape[1] % cellShape)
	}
	return true, padRows, padCols
}

// extractCell copies the live bytes of cell (gi, gj) into a fresh 64-byte
// buffer, row by row, given the cell is known not to be padded.
func extractCell(src []byte, blockshape [2]int32, gi, gj int) []byte {
	buf := make([]byte, cellSize)
	origin := cellOrigin(blockshape, gi, gj)
	stride := int(blockshape[1])
	for r := 0; r < cellShape; r++ {
		off := origin + r*stride
		copy(buf[r*cellShape:(r+1)*cellShape], src[off:off+cellShape])
	}
	return buf
}

// extractPaddedCell copies only the live padRows x padCols region of cell
// (gi, gj), row by row, for the literal-only padded-edge path.
func extractPaddedCell(src []byte, blockshape [2]int32, gi, gj, padRows, padCols int) []byte {
	buf := make([]byte, padRows*padCols)
	origin := cellOrigin(blockshape, gi, gj)
	stride := int(blockshape[1])
	for r := 0; r < padRows; r++ {
		off := origin + r*stride
		copy(buf[r*padCols:(r+1)*padCols], src[off:off+padCols])
	}
	return buf
}

// cellRow returns row i (0-7) of an extracted 64-byte cell buffer.
func cellRow(cell []byte, i int) []byte {
	return cell[i*cellShape : (i+1)*cellShape]
}

// buildSixRowBuf assembles the 48-byte buffer of the six rows of cell
// excluding rows i and j, in increasing index order.
func buildSixRowBuf(cell []byte, i, j int) []byte {
	buf := make([]byte, sixRowBufLen)
	idx := 0
	for k := 0; k < cellShape; k++ {
		if k == i || k == j {
			continue
		}
		copy(buf[idx*cellShape:(idx+1)*cellShape], cellRow(cell, k))
		idx++
	}
	return buf
}

// buildTripleBuf assembles the 24-byte buffer of rows i, j, k in increasing
// index order.
func buildTripleBuf(cell []byte, i, j, k int) []byte {
	buf := make([]byte, tripleBufLen)
	copy(buf[0:cellShape], cellRow(cell, i))
	copy(buf[cellShape:2*cellShape], cellRow(cell, j))
	copy(buf[2*cellShape:3*cellShape], cellRow(cell, k))
	return buf
}

// buildPairBuf assembles the 16-byte buffer of rows i, j in increasing index
// order.
func buildPairBuf(cell []byte, i, j int) []byte {
	buf := make([]byte, pairBufLen)
	copy(buf[0:cellShape], cellRow(cell, i))
	copy(buf[cellShape:2*cellShape], cellRow(cell, j))
	return buf
}

// allBytesEqual reports whether every byte of cell equals its first byte.
func allBytesEqual(cell []byte) bool {
	for i := 1; i < len(cell); i++ {
		if cell[i] != cell[0] {
			return false
		}
	}
	return true
}
