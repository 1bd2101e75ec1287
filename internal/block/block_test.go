package block_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revlog/digest/internal/block"
)

func TestPadLayout(t *testing.T) {
	for _, n := range []int{0, 1, 54, 55, 56, 57, 63, 64, 65, 119, 120, 1000} {
		bz := make([]byte, n)
		for i := range bz {
			bz[i] = 0xaa
		}

		buf := block.Pad(bz)

		wantLen := (n + 9 + block.Size - 1) / block.Size * block.Size
		require.Len(t, buf, wantLen, "input length %d", n)
		require.Zero(t, len(buf)%block.Size)

		assert.Equal(t, bz, buf[:n])
		assert.EqualValues(t, 0x80, buf[n])
		for i := n + 1; i < len(buf)-8; i++ {
			require.Zero(t, buf[i], "offset %d for input length %d", i, n)
		}
		assert.Equal(t, uint64(n)*8, binary.BigEndian.Uint64(buf[len(buf)-8:]))

		block.Put(buf)
	}
}

// A buffer returned to the pool is dirty; a later Pad reusing it must still
// produce a clean zero-fill region.
func TestPadReusedBuffer(t *testing.T) {
	big := make([]byte, 120)
	for i := range big {
		big[i] = 0xff
	}
	block.Put(block.Pad(big))

	buf := block.Pad([]byte("abc"))
	defer block.Put(buf)

	require.Len(t, buf, 64)
	for i := 4; i < 56; i++ {
		require.Zero(t, buf[i], "offset %d", i)
	}
	assert.Equal(t, uint64(24), binary.BigEndian.Uint64(buf[56:]))
}
