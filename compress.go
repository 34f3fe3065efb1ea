// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package ndlz

// Compress encodes src (a row-major ctx.BlockShape[0] x ctx.BlockShape[1]
// byte block) into dst.
//
// Returns (0, nil) when the block does not compress — the encoded form
// would be longer than src, or dst ran out of room (including a dst shorter
// than the 9-byte header) — which is not a caller error. Returns (0, err)
// for argument errors:
// ErrInvalidNdim, ErrLeftoverUnsupported, ErrEmptyInput, ErrLengthMismatch,
// ErrOutputTooSmall. On success, returns the number of bytes written to
// dst and a nil error.
func Compress(ctx *Context, src, dst []byte) (int, error) {
	if ctx == nil || ctx.Ndim != 2 {
		return 0, ErrInvalidNdim
	}
	if len(src) == 0 {
		return 0, ErrEmptyInput
	}
	if ctx.Leftover != 0 && ctx.Leftover == len(src) {
		return 0, ErrLeftoverUnsupported
	}
	wantLen := int(ctx.BlockShape[0]) * int(ctx.BlockShape[1])
	if len(src) != wantLen {
		return 0, ErrLengthMismatch
	}
	// The original's absolute floor: a buffer too small to even hold the
	// block header can never produce output. This is "does not fit", the
	// same silent (0, nil) signal as declining mid-encode, not a caller
	// argument error.
	if len(dst) < headerSize {
		ctx.logger().WithField("block_shape", ctx.BlockShape).Debug("ndlz: output buffer too small to hold even the header, declining")
		return 0, nil
	}

	// The original's separate overhead guard: out_cap must be at least 17
	// bytes plus 2 bytes for every cell after the first — anything short
	// of that is rejected up front as a caller argument error, distinct
	// from the floor above.
	gridRows, gridCols := gridShape(ctx.BlockShape)
	numCells := gridRows * gridCols
	overhead := 17 + (numCells-1)*2
	if len(dst) < overhead {
		return 0, ErrOutputTooSmall
	}

	n, ok := encodeBlock(ctx, src, dst)
	if !ok {
		ctx.logger().WithField("block_shape", ctx.BlockShape).Debug("ndlz: block did not fit destination buffer")
		return 0, nil
	}
	if n > len(src) {
		ctx.logger().WithField("compressed_size", n).Debug("ndlz: block did not shrink, declining")
		return 0, nil
	}
	return n, nil
}
