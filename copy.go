// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package ndlz

// copyRange copies length bytes from src[srcPos:srcPos+length] into
// dst[dstPos:dstPos+length], bounds-checking both ends first. NDLZ8's
// back-references always name a fully-written earlier region of a
// distinct buffer (the compressed stream, read into the decoder's
// per-cell scratch) rather than an overlapping tail of the same buffer,
// so this skips the forward-expansion doubling an LZ77-style decoder
// needs for self-overlapping copies — that case cannot arise here.
func copyRange(dst, src []byte, dstPos, srcPos, length int) bool {
	if srcPos < 0 || srcPos+length > len(src) {
		return false
	}
	if dstPos < 0 || dstPos+length > len(dst) {
		return false
	}
	copy(dst[dstPos:dstPos+length], src[srcPos:srcPos+length])
	return true
}
