// Package digest derives the content identifiers used throughout revlog.
//
// Repository objects (blobs, diffs, commit records) are addressed by SHA-1
// or SHA-256 digests; index and pack records carry CRC-32 integrity
// checksums. The engines are bit-exact implementations of FIPS 180-4 and
// IEEE 802.3, so identifiers persisted by one host remain valid on any
// other.
//
// The host chooses one algorithm per object class; see SetDefault.
package digest

import (
	"fmt"
	"os"

	"github.com/revlog/digest/crc32"
	"github.com/revlog/digest/sha1"
	"github.com/revlog/digest/sha256"
)

// Bytes is a digest that prints as lowercase hex.
type Bytes []byte

func (bz Bytes) String() string {
	return Hex(bz)
}

// Sha1 returns the 20-byte SHA-1 digest of bz.
func Sha1(bz []byte) []byte {
	h := sha1.Sum(bz)
	return h[:]
}

// Sha256 returns the 32-byte SHA-256 digest of bz.
func Sha256(bz []byte) []byte {
	h := sha256.Sum(bz)
	return h[:]
}

// Crc32 returns the IEEE CRC-32 checksum of bz.
func Crc32(bz []byte) uint32 {
	return crc32.Checksum(bz)
}

// Sum returns the digest of bz under algo. A CRC-32 checksum is returned as
// its 4 bytes in big-endian order; use Decimal on the uint32 from Crc32 for
// the traditional rendering.
func Sum(algo Algorithm, bz []byte) (Bytes, error) {
	switch algo {
	case SHA1:
		return Sha1(bz), nil
	case SHA256:
		return Sha256(bz), nil
	case CRC32:
		sum := Crc32(bz)
		return Bytes{byte(sum >> 24), byte(sum >> 16), byte(sum >> 8), byte(sum)}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, algo)
	}
}

// SumFile returns the digest of the named file's contents under algo.
func SumFile(algo Algorithm, path string) (Bytes, error) {
	bz, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Sum(algo, bz)
}
