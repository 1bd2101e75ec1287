package digest

import (
	"errors"
	"fmt"

	"github.com/revlog/digest/sha1"
	"github.com/revlog/digest/sha256"
)

// ValidateSha1 checks if the given string is a syntactically valid SHA-1
// digest: a hex-encoded 40-character string. If it isn't, an error explains
// why.
func ValidateSha1(digest string) error {
	return validateHex(digest, 2*sha1.Size)
}

// ValidateSha256 checks if the given string is a syntactically valid SHA-256
// digest: a hex-encoded 64-character string. If it isn't, an error explains
// why.
func ValidateSha256(digest string) error {
	return validateHex(digest, 2*sha256.Size)
}

func validateHex(digest string, want int) error {
	if len(digest) != want {
		return fmt.Errorf("expected %d characters, but have %d", want, len(digest))
	}
	for _, c := range digest {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return errors.New("contains non-hexadecimal characters")
		}
	}
	return nil
}
