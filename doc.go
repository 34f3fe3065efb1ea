// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

/*
Package ndlz implements the NDLZ8 block codec: a lossless compressor for a
single 2-D byte block, operating on 8x8-byte cells and matching against
four parallel fingerprint tables (whole-cell, six-row, triple-row,
pair-row).

# Compress

	ctx := ndlz.DefaultContext(rows, cols)
	dst := make([]byte, len(src)) // or any buffer at least as large
	n, err := ndlz.Compress(ctx, src, dst)
	if err != nil {
		// argument error: ErrInvalidNdim, ErrLengthMismatch, ...
	}
	if n == 0 {
		// block did not shrink; store src verbatim
	}

# Decompress

	dst := make([]byte, rows*cols)
	n, err := ndlz.Decompress(compressed, dst)

From an io.Reader, sizing the destination from the stream's own header:

	out, err := ndlz.DecompressFromReader(r)
*/
package ndlz
