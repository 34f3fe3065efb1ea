// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo

package ndlz

import "github.com/cespare/xxhash/v2"

// fingerprintIndex holds the four parallel hash tables: cell, six-row,
// triple, and pair. Each maps a 12-bit fingerprint to a 1-based offset into
// the compressed output seen so far; 0 means "unused". A fresh index is
// created per block and discarded when the block completes.
type fingerprintIndex struct {
	cell   [hashTableLen]uint32
	six    [hashTableLen]uint32
	triple [hashTableLen]uint32
	pair   [hashTableLen]uint32
}

// fingerprint folds a 32-bit seeded hash of data down to a hashLog-bit table
// index: the high 12 bits of a 32-bit hash, seeded.
//
// The reference implementation hard-codes XXH32; this port uses
// github.com/cespare/xxhash/v2 (already present in the retrieval pack via
// ethereum-go-ethereum, grafana-k6, and moby-moby) seeded by hashing a
// leading seed byte ahead of data. The hash is a swappable black box as
// long as the encoder never shares tables with the decoder — the decoder
// does no hashing at all, it only replays offsets.
func fingerprint(data []byte) uint32 {
	var seeded [1 + 64]byte // data is never larger than a cell (64B)
	seeded[0] = hashSeed
	n := copy(seeded[1:], data)
	h := xxhash.Sum64(seeded[:1+n])
	return uint32(h>>32) >> (32 - hashLog)
}

// lookup returns the stored offset for key, or 0 if unused.
func lookup(table *[hashTableLen]uint32, key uint32) uint32 {
	return table[key]
}

// insert unconditionally stores pos (a 1-based output offset) at key. Last
// insert wins, matching the reference's unconditional array assignment.
func insert(table *[hashTableLen]uint32, key, pos uint32) {
	table[key] = pos
}
