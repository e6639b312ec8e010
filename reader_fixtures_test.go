package cdr

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

// TF2 message fixture from spec.md §8: a ROS tf2 TransformStamped-shaped
// payload (sequence_length=1, two uint32 stamps, two strings, and a
// 7-element double transform), 100 bytes end-to-end. The float64 array
// aligns to 8 relative to origin=4, landing at offset 44 after a 2-byte
// pad.
const tf2FixtureHex = "0001000001000000cce0d158f08cf9060a000000626173655f6c696e6b000000060000007261646172000000ae47e17a14ae0e4000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000f03f"

func TestTF2MessageFixtureRead(t *testing.T) {
	buf := mustHex(t, tf2FixtureHex)
	require.Len(t, buf, 100)
	require.Equal(t, "0001000001000000cce0d158f08cf906", hexPrefix(buf, 16))
	require.Equal(t, "f03f", hexSuffix(buf, 2))

	r, err := NewReader(buf)
	require.NoError(t, err)

	n, err := r.SequenceLength()
	require.NoError(t, err)
	require.Equal(t, uint32(1), n)

	a, err := r.Uint32()
	require.NoError(t, err)
	require.Equal(t, uint32(1490149580), a)

	b, err := r.Uint32()
	require.NoError(t, err)
	require.Equal(t, uint32(117017840), b)

	frameID, err := r.String()
	require.NoError(t, err)
	require.Equal(t, "base_link", frameID)

	childID, err := r.String()
	require.NoError(t, err)
	require.Equal(t, "radar", childID)

	want := []float64{3.835, 0, 0, 0, 0, 0, 1}
	for i, w := range want {
		got, err := r.Float64()
		require.NoError(t, err)
		require.Equal(t, w, got, "float64 #%d", i)
	}
	require.True(t, r.IsAtEnd())
}

func TestBigEndianReadsFixture(t *testing.T) {
	buf := mustHex(t, "000100001234000056789abcdef0000000000000")
	r, err := NewReader(buf)
	require.NoError(t, err)

	u16, err := r.Uint16BE()
	require.NoError(t, err)
	require.Equal(t, uint16(0x1234), u16)

	u32, err := r.Uint32BE()
	require.NoError(t, err)
	require.Equal(t, uint32(0x56789ABC), u32)

	u64, err := r.Uint64BE()
	require.NoError(t, err)
	require.Equal(t, uint64(0xDEF0000000000000), u64)

	require.True(t, r.IsAtEnd())
}

func hexPrefix(b []byte, n int) string {
	s := hex.EncodeToString(b)
	if len(s) < n*2 {
		return s
	}
	return s[:n*2]
}

func hexSuffix(b []byte, n int) string {
	s := hex.EncodeToString(b)
	if len(s) < n*2 {
		return s
	}
	return s[len(s)-n*2:]
}
