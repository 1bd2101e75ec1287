// Package crc32 implements the IEEE 802.3 CRC-32 checksum in the zlib
// convention: all-ones preconditioning, reversed polynomial, final
// complement. revlog uses it as a cheap integrity check on index and pack
// records, not as a content address.
package crc32

// Poly is the reversed form of the IEEE 802.3 generator polynomial.
const Poly = 0xedb88320

var table = makeTable()

func makeTable() *[256]uint32 {
	var t [256]uint32
	for i := range t {
		crc := uint32(i)
		for j := 0; j < 8; j++ {
			if crc&1 == 1 {
				crc = crc>>1 ^ Poly
			} else {
				crc >>= 1
			}
		}
		t[i] = crc
	}
	return &t
}

// Checksum returns the CRC-32 of bz. The table-driven loop is an
// optimization over the bit-serial definition; the two must agree exactly
// (see the tests, which cross-check against checksumBitwise).
func Checksum(bz []byte) uint32 {
	crc := ^uint32(0)
	for _, b := range bz {
		crc = table[byte(crc)^b] ^ crc>>8
	}
	return ^crc
}

// checksumBitwise is the defining bit-serial form, one polynomial step per
// input bit. Kept as the reference the table-driven Checksum is verified
// against.
func checksumBitwise(bz []byte) uint32 {
	crc := ^uint32(0)
	for _, b := range bz {
		crc ^= uint32(b)
		for j := 0; j < 8; j++ {
			if crc&1 == 1 {
				crc = crc>>1 ^ Poly
			} else {
				crc >>= 1
			}
		}
	}
	return ^crc
}
