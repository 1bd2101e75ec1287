package digest

import (
	"errors"
	"fmt"
	"strings"
)

// Algorithm selects the digest used for a class of repository objects.
type Algorithm uint8

const (
	SHA1 Algorithm = iota + 1
	SHA256
	CRC32
)

// ErrUnknownAlgorithm is returned when an Algorithm value or name is not one
// of SHA1, SHA256 or CRC32.
var ErrUnknownAlgorithm = errors.New("unknown digest algorithm")

func (a Algorithm) String() string {
	switch a {
	case SHA1:
		return "sha1"
	case SHA256:
		return "sha256"
	case CRC32:
		return "crc32"
	default:
		return fmt.Sprintf("Algorithm(%d)", uint8(a))
	}
}

// Size returns the digest length in bytes, or 0 for an unknown algorithm.
func (a Algorithm) Size() int {
	switch a {
	case SHA1:
		return 20
	case SHA256:
		return 32
	case CRC32:
		return 4
	default:
		return 0
	}
}

// ParseAlgorithm maps a case-insensitive algorithm name to its Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(s) {
	case "sha1":
		return SHA1, nil
	case "sha256":
		return SHA256, nil
	case "crc32":
		return CRC32, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Algorithm used for object classes that do not specify one.
var defaultAlgo = SHA256

// SetDefault changes the algorithm used when the host does not name one.
//
// A repository is expected to agree on its addressing algorithm before the
// first object is written and stick to it; digests computed under different
// algorithms do not mix. Call this once during host start-up.
func SetDefault(a Algorithm) error {
	switch a {
	case SHA1, SHA256, CRC32:
		defaultAlgo = a
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrUnknownAlgorithm, a)
	}
}

// Default returns the algorithm used when the host does not name one.
func Default() Algorithm {
	return defaultAlgo
}
