package sha1_test

import (
	stdsha1 "crypto/sha1"
	"fmt"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revlog/digest/sha1"
)

// FIPS 180-4 test vectors, plus the well-known empty-string digest.
func TestVectors(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", "da39a3ee5e6b4b0d3255bfef95601890afd80709"},
		{"abc", "a9993e364706816aba3e25717850c26c9cd0d89d"},
		{"abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq", "84983e441c3bd26ebaae4aa1f95129e5e54670f1"},
		{"The quick brown fox jumps over the lazy dog", "2fd4e1c67a2d28fced849ee1bb76e7391b93eb12"},
	}

	for _, tc := range tests {
		sum := sha1.Sum([]byte(tc.in))
		assert.Equal(t, tc.want, fmt.Sprintf("%x", sum), "input %q", tc.in)
		assert.Len(t, sum, sha1.Size)
	}
}

// Inputs straddling the 56-byte padding threshold and the 64-byte block
// boundary must match the reference implementation exactly.
func TestMatchesStdlib(t *testing.T) {
	for _, n := range []int{0, 1, 31, 54, 55, 56, 57, 63, 64, 65, 127, 128, 129, 1000} {
		bz := make([]byte, n)
		for i := range bz {
			bz[i] = byte(i * 131)
		}

		got := sha1.Sum(bz)
		want := stdsha1.Sum(bz)
		require.Equal(t, want, got, "length %d", n)
	}
}

func TestDeterminism(t *testing.T) {
	bz := []byte("the same bytes, twice")
	assert.Equal(t, sha1.Sum(bz), sha1.Sum(bz))
}

// Flipping a single input bit must flip a large share of the 160 output
// bits.
func TestSingleBitSensitivity(t *testing.T) {
	base := make([]byte, 64)
	for i := range base {
		base[i] = byte(i)
	}
	baseSum := sha1.Sum(base)

	for bit := 0; bit < 8; bit++ {
		flipped := make([]byte, len(base))
		copy(flipped, base)
		flipped[7] ^= 1 << bit

		sum := sha1.Sum(flipped)
		require.NotEqual(t, baseSum, sum)

		dist := 0
		for i := range sum {
			dist += bits.OnesCount8(baseSum[i] ^ sum[i])
		}
		assert.Greater(t, dist, 40, "bit %d: only %d of 160 output bits changed", bit, dist)
	}
}
