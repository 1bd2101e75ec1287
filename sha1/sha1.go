// Package sha1 implements the SHA-1 hash algorithm as defined in FIPS 180-4.
//
// revlog addresses legacy repository objects by SHA-1, so this
// implementation must stay bit-exact with the standard; identifiers already
// persisted by hosts depend on it.
package sha1

import (
	"encoding/binary"
	"math/bits"

	"github.com/revlog/digest/internal/block"
)

const (
	// Size is the size of a SHA-1 digest in bytes.
	Size = 20
	// BlockSize is the block size of SHA-1 in bytes.
	BlockSize = block.Size
)

// Round constants, one per 20-round span.
const (
	k0 = 0x5a827999
	k1 = 0x6ed9eba1
	k2 = 0x8f1bbcdc
	k3 = 0xca62c1d6
)

// Sum returns the SHA-1 digest of bz.
func Sum(bz []byte) [Size]byte {
	st := [5]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476, 0xc3d2e1f0}

	buf := block.Pad(bz)
	for off := 0; off < len(buf); off += BlockSize {
		compress(&st, buf[off:off+BlockSize])
	}
	block.Put(buf)

	var out [Size]byte
	for i, v := range st {
		binary.BigEndian.PutUint32(out[i*4:], v)
	}
	return out
}

// compress folds one 64-byte block into st.
func compress(st *[5]uint32, p []byte) {
	var w [80]uint32
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(p[i*4:])
	}
	for i := 16; i < 80; i++ {
		w[i] = bits.RotateLeft32(w[i-3]^w[i-8]^w[i-14]^w[i-16], 1)
	}

	a, b, c, d, e := st[0], st[1], st[2], st[3], st[4]
	for i := 0; i < 80; i++ {
		var f, k uint32
		switch {
		case i < 20:
			f = (b & c) | (^b & d)
			k = k0
		case i < 40:
			f = b ^ c ^ d
			k = k1
		case i < 60:
			f = (b & c) | (b & d) | (c & d)
			k = k2
		default:
			f = b ^ c ^ d
			k = k3
		}
		t := bits.RotateLeft32(a, 5) + f + e + k + w[i]
		a, b, c, d, e = t, a, bits.RotateLeft32(b, 30), c, d
	}

	st[0] += a
	st[1] += b
	st[2] += c
	st[3] += d
	st[4] += e
}
