package hostend

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

// TestIsBigEndianMatchesRuntimeProbe cross-checks the x/sys/cpu-backed
// answer against a classic byte-order probe, so the test doesn't just
// assert the function returns whatever x/sys/cpu says.
func TestIsBigEndianMatchesRuntimeProbe(t *testing.T) {
	var x uint16 = 1
	b := (*[2]byte)(unsafe.Pointer(&x))[:]
	probedBigEndian := binary.BigEndian.Uint16(b) == 1

	require.Equal(t, probedBigEndian, IsBigEndian())
}
