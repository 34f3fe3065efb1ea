// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package ndlz

// NDLZ8 format constants: cell geometry, token markers, fingerprint
// parameters, and the back-reference distance ceiling.

// Cell geometry. NDLZ8 only ever operates on 8x8 byte cells.
const (
	cellShape = 8  // rows/cols per cell
	cellSize  = 64 // bytes per cell (cellShape * cellShape)
)

// maxDistance is the largest back-reference distance a 16-bit offset field
// can encode; matches at or beyond this distance are rejected.
const maxDistance = 65535

// headerSize is the block prelude: 1 byte ndim, two 4-byte LE dimensions.
const headerSize = 1 + 4 + 4

// Token markers for the single-byte-token classes.
const (
	tokenLiteral   = 0x00 // literal cell, 64 raw bytes follow
	tokenCellRLE   = 0x40 // 01 000000, one repeated byte follows
	tokenCellMatch = 0xC0 // 11 000000, u16 offset follows
)

// matchType values, i.e. token>>2 for the multi-byte token classes.
const (
	matchTypeSixRow     = 38 // (38<<10)|(i<<7)|(j<<4), 2-byte token
	matchTypeTwoTriples = 36 // (9<<20)|..., 3-byte token, token>>2 == 36
	matchTypeOneTriple  = 35 // (35<<10)|..., 2-byte token
	matchTypeThreePairs = 33 // (33<<18)|..., 3-byte token, token>>2 == 33
	matchTypeTwoPairs   = 11 // (11<<12)|..., 2-byte token, (token>>2)>>2 == 11
	matchTypeOnePair    = 34 // (34<<10)|..., 2-byte token
)

// Fingerprint hashing parameters.
const (
	hashLog      = 12           // table index width in bits
	hashTableLen = 1 << hashLog // 4096 entries per table
	hashSeed     = 1            // fixed seed, consistent within a single encode
)

// Row-subset buffer sizes.
const (
	sixRowBufLen = 48 // 6 rows * 8 bytes
	tripleBufLen = 24 // 3 rows * 8 bytes
	pairBufLen   = 16 // 2 rows * 8 bytes
)
