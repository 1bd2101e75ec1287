// Package block prepares messages for the 64-byte compression engines.
//
// SHA-1 and SHA-256 share the same FIPS 180-4 message layout: the input,
// a 0x80 marker byte, a zero fill, and the message length in bits as a
// big-endian 64-bit integer closing the final block.
package block

import (
	"encoding/binary"

	pool "github.com/libp2p/go-buffer-pool"
)

// Size is the compression block size shared by SHA-1 and SHA-256.
const Size = 64

// Pad returns bz laid out for block compression: the input bytes, the 0x80
// marker, zero fill, and the bit length of bz in the trailing 8 bytes. The
// result length is always a multiple of Size.
//
// The buffer comes from a shared pool; callers must release it with Put once
// the last block has been compressed.
func Pad(bz []byte) []byte {
	n := len(bz)
	padded := (n + 9 + Size - 1) / Size * Size

	buf := pool.Get(padded)
	copy(buf, bz)
	buf[n] = 0x80
	// Pooled buffers are dirty; the fill region must be cleared by hand.
	for i := n + 1; i < padded-8; i++ {
		buf[i] = 0
	}
	binary.BigEndian.PutUint64(buf[padded-8:], uint64(n)<<3)
	return buf
}

// Put releases a buffer obtained from Pad back to the pool.
func Put(buf []byte) {
	pool.Put(buf)
}
