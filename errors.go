// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package ndlz

import "errors"

// Sentinel errors for compression and decompression.
//
// Compress distinguishes caller-bug errors (returned alongside n == 0) from
// the "did not fit / would not shrink" signal, which is n == 0, err == nil.
// Decompress collapses every failure to n == 0, err != nil; it is only ever
// expected to run on streams produced by a matching Compress call.
var (
	// ErrInvalidNdim is returned when ctx.Ndim != 2.
	ErrInvalidNdim = errors.New("ndlz: ndim must be 2")
	// ErrLeftoverUnsupported is returned when the input is a chunk's leftover
	// (ragged tail) block; NDLZ8 has no sub-block tail semantics.
	ErrLeftoverUnsupported = errors.New("ndlz: leftover block is not supported")
	// ErrLengthMismatch is returned when len(src) != blockshape[0]*blockshape[1].
	ErrLengthMismatch = errors.New("ndlz: input length does not match block shape")
	// ErrOutputTooSmall is returned when dst holds at least the 9-byte header
	// but is shorter than 17 bytes plus 2 bytes per cell after the first. A
	// dst shorter than the header is not an error: Compress returns (0, nil).
	ErrOutputTooSmall = errors.New("ndlz: output buffer too small")
	// ErrEmptyInput is returned when src is empty.
	ErrEmptyInput = errors.New("ndlz: empty input")
	// ErrTruncated is returned when the decoder reads past the end of the
	// compressed stream.
	ErrTruncated = errors.New("ndlz: truncated input")
	// ErrBadToken is returned when a cell's token byte does not match any
	// known class.
	ErrBadToken = errors.New("ndlz: invalid token")
	// ErrSizeMismatch is returned when the decoded byte count does not equal
	// blockshape[0]*blockshape[1], or would overrun the caller's buffer.
	ErrSizeMismatch = errors.New("ndlz: decoded size does not match block shape")
)

// There is no "does not fit" error value: that outcome is signaled as
// (0, nil) — "data did not compress" is not a caller bug.

