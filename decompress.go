// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package ndlz

// Decompress decodes src (produced by Compress) into dst. dst must be at
// least blockshape[0]*blockshape[1] bytes; Decompress zeroes it first.
//
// Returns the number of decoded bytes and a nil error on success. Returns
// (0, err) for any malformed token, truncated input, or header/shape
// mismatch: ErrEmptyInput, ErrTruncated, ErrBadToken, ErrInvalidNdim,
// ErrSizeMismatch.
func Decompress(src, dst []byte) (int, error) {
	if len(src) == 0 {
		return 0, ErrEmptyInput
	}
	in := newInCursor(src)
	ndim, shape, ok := readHeader(in)
	if !ok {
		return 0, ErrTruncated
	}
	if ndim != 2 {
		return 0, ErrInvalidNdim
	}
	if shape[0] <= 0 || shape[1] <= 0 {
		return 0, ErrSizeMismatch
	}
	wantLen := int(shape[0]) * int(shape[1])
	if len(dst) < wantLen {
		return 0, ErrSizeMismatch
	}

	for i := range dst[:wantLen] {
		dst[i] = 0
	}

	n, err := decodeBlock(in, src, dst[:wantLen], shape)
	if err != nil {
		return 0, err
	}
	if n != wantLen {
		return 0, ErrSizeMismatch
	}
	return n, nil
}

// DecompressedShape peeks a compressed stream's header without decoding,
// returning the block shape Decompress would require dst to hold.
func DecompressedShape(src []byte) (shape [2]int32, err error) {
	if len(src) < headerSize {
		return shape, ErrTruncated
	}
	in := newInCursor(src)
	ndim, shape, ok := readHeader(in)
	if !ok {
		return shape, ErrTruncated
	}
	if ndim != 2 {
		return shape, ErrInvalidNdim
	}
	return shape, nil
}
