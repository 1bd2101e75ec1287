package digest

import (
	"encoding/hex"
	"strconv"
)

// Hex renders bz as lowercase hexadecimal, two characters per byte: 40
// characters for a SHA-1 digest, 64 for SHA-256.
func Hex(bz []byte) string {
	return hex.EncodeToString(bz)
}

// Decimal renders a CRC-32 checksum as an unsigned decimal string of up to
// 10 digits. revlog has always displayed checksums in decimal; the two
// renderings are deliberately separate operations, and callers wanting hex
// for a checksum can feed the big-endian bytes from Sum to Hex.
func Decimal(sum uint32) string {
	return strconv.FormatUint(uint64(sum), 10)
}
