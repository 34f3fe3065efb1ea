// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package ndlz

import "github.com/sirupsen/logrus"

// Context carries the per-call shape parameters the original C codec reads
// off blosc2_context (context->ndim, context->blockshape) plus a few
// ambient knobs a Go caller can tune. A Context is not mutated and not
// shared across concurrent calls in a way that matters — Compress does not
// write to it.
type Context struct {
	// Ndim must be 2; any other value is rejected with ErrInvalidNdim.
	Ndim int
	// BlockShape is [rows, cols] of the block being compressed.
	BlockShape [2]int32
	// Leftover, if non-zero and equal to len(src), marks the input as a
	// chunk's ragged tail block. NDLZ8 has no leftover-block semantics:
	// Compress rejects it rather than guessing at partial-block behavior.
	Leftover int
	// Logger receives block-boundary diagnostics (block declined to
	// compress, output guard tripped); argument errors are returned, not
	// logged. Never consulted from the per-cell hot path. Defaults to a
	// discard logger.
	Logger logrus.FieldLogger
}

// DefaultContext returns a Context for a 2-D block of the given shape, with
// logging disabled.
func DefaultContext(rows, cols int32) *Context {
	return &Context{
		Ndim:       2,
		BlockShape: [2]int32{rows, cols},
		Logger:     discardLogger(),
	}
}

func (c *Context) logger() logrus.FieldLogger {
	if c == nil || c.Logger == nil {
		return discardLogger()
	}
	return c.Logger
}

// DecompressOptions holds decompression settings. No function in this
// package takes it: Decompress, DecompressedShape and DecompressFromReader
// all read the block shape from the stream header.
type DecompressOptions struct {
	// BlockShape is the expected [rows, cols] of the decoded block.
	BlockShape [2]int32
}
