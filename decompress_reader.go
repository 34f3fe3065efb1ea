// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package ndlz

import "io"

// DecompressFromReader reads a full compressed stream from r, sizes the
// destination from the embedded header via DecompressedShape, and calls
// Decompress. No decoding logic of its own.
func DecompressFromReader(r io.Reader) ([]byte, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	shape, err := DecompressedShape(src)
	if err != nil {
		return nil, err
	}
	dst := make([]byte, int(shape[0])*int(shape[1]))
	n, err := Decompress(src, dst)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}
