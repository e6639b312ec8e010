package cdr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundTripMemberHeaderXCDR1Short(t *testing.T) {
	w := NewWriter(WithKind(KindPLCDRLE))
	require.NoError(t, w.EMHeader(true, 5, 8))
	require.NoError(t, w.Uint64(0x0F))

	r, err := NewReader(w.Data())
	require.NoError(t, err)

	hdr, err := r.EMHeader()
	require.NoError(t, err)
	require.Equal(t, MemberHeader{ID: 5, ObjectSize: 8, MustUnderstand: true}, hdr)

	v, err := r.Uint64()
	require.NoError(t, err)
	require.Equal(t, uint64(0x0F), v)
}

func TestRoundTripMemberHeaderXCDR1Extended(t *testing.T) {
	w := NewWriter(WithKind(KindPLCDRLE))
	// object_size beyond 16 bits forces the extended form.
	require.NoError(t, w.EMHeader(true, 100, 70000))

	r, err := NewReader(w.Data())
	require.NoError(t, err)

	hdr, err := r.EMHeader()
	require.NoError(t, err)
	require.Equal(t, MemberHeader{ID: 100, ObjectSize: 70000, MustUnderstand: true}, hdr)
}

func TestExtendedPIDFixture(t *testing.T) {
	buf := mustHex(t, "00030000017f0800640000004000000000")
	r, err := NewReader(buf)
	require.NoError(t, err)

	hdr, err := r.EMHeader()
	require.NoError(t, err)
	require.Equal(t, uint32(100), hdr.ID)
	require.Equal(t, uint32(64), hdr.ObjectSize)
	require.True(t, hdr.MustUnderstand)
	require.Equal(t, r.offset, r.origin, "origin must reset to the offset right after the header")
}

func TestSentinelContractXCDR1(t *testing.T) {
	w := NewWriter(WithKind(KindPLCDRLE))
	require.NoError(t, w.SentinelHeader())

	r, err := NewReader(w.Data())
	require.NoError(t, err)

	hdr, err := r.EMHeader()
	require.NoError(t, err)
	require.True(t, hdr.ReadSentinelHeader)
	require.Equal(t, uint32(SentinelPID), hdr.ID)
	require.True(t, r.IsAtEnd())
}

func TestSentinelMismatchFails(t *testing.T) {
	w := NewWriter(WithKind(KindPLCDRLE))
	require.NoError(t, w.Uint32(123))

	r, err := NewReader(w.Data())
	require.NoError(t, err)

	err = r.SentinelHeader()
	require.Error(t, err)
	require.ErrorIs(t, err, ErrExpectedSentinel)
}

func TestReservedPidFails(t *testing.T) {
	w := NewWriter(WithKind(KindPLCDRLE))
	// 0x7FFF: low 14 bits 0x3FFF lie above SentinelPID, a reserved PID.
	require.NoError(t, w.Uint16(0x7FFF))
	require.NoError(t, w.Uint16(0))

	r, err := NewReader(w.Data())
	require.NoError(t, err)
	_, err = r.EMHeader()
	require.Error(t, err)
	require.ErrorIs(t, err, ErrReservedPid)
}

func TestRoundTripMemberHeaderXCDR2ExplicitLengthCodes(t *testing.T) {
	cases := []struct {
		name       string
		objectSize uint32
		code       uint8
	}{
		{"implied-1", 1, 0},
		{"implied-2", 2, 1},
		{"implied-4", 4, 2},
		{"implied-8", 8, 3},
		{"explicit-32", 17, 5},
		{"multiple-of-4", 12, 6},
		{"multiple-of-8", 24, 7},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWriter(WithKind(KindPLCDR2LE))
			require.NoError(t, w.EMHeader(false, 42, c.objectSize, c.code))

			r, err := NewReader(w.Data())
			require.NoError(t, err)
			hdr, err := r.EMHeader()
			require.NoError(t, err)
			require.Equal(t, c.objectSize, hdr.ObjectSize)
			require.Equal(t, c.code, hdr.LengthCode)
			require.Equal(t, uint32(42), hdr.ID)
		})
	}
}

func TestEMHeaderXCDR2InferredLengthCode(t *testing.T) {
	w := NewWriter(WithKind(KindPLCDR2LE))
	require.NoError(t, w.EMHeader(true, 1, 4)) // no explicit code: infer 2 (implied size 4)

	r, err := NewReader(w.Data())
	require.NoError(t, err)
	hdr, err := r.EMHeader()
	require.NoError(t, err)
	require.Equal(t, uint8(2), hdr.LengthCode)
	require.Equal(t, uint32(4), hdr.ObjectSize)
}

func TestEMHeaderXCDR2InvalidLengthCodeSizeFails(t *testing.T) {
	w := NewWriter(WithKind(KindPLCDR2LE))
	err := w.EMHeader(false, 1, 3, 0) // code 0 implies size 1, not 3
	require.Error(t, err)
	require.ErrorIs(t, err, ErrMalformedHeader)
}

func TestSentinelNoOpUnderXCDR2(t *testing.T) {
	w := NewWriter(WithKind(KindPLCDR2LE))
	require.NoError(t, w.SentinelHeader())
	require.Equal(t, 4, w.Size())
}

func TestPLCDRSentinelFixture(t *testing.T) {
	w := NewWriter(WithKind(KindPLCDRLE))
	require.NoError(t, w.Uint8(0x42))
	require.NoError(t, w.SentinelHeader())
	require.Equal(t, mustHex(t, "0003000042000000023f0000"), w.Data())
}
