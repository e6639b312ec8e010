package cdr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSizeCalculatorStartsAfterHeader(t *testing.T) {
	sc := NewSizeCalculator()
	require.Equal(t, 4, sc.Offset())
}

func TestSizeCalculatorMatchesWriterAcrossPrimitives(t *testing.T) {
	sc := NewSizeCalculator()
	sc.Uint8()
	sc.Uint16()
	sc.Uint32()
	sc.Uint64()
	sc.String(3)
	sc.Int8Array(5)
	sc.Uint16Array(2)

	w := NewWriter(WithKind(KindCDRLE))
	require.NoError(t, w.Uint8(1))
	require.NoError(t, w.Uint16(2))
	require.NoError(t, w.Uint32(3))
	require.NoError(t, w.Uint64(4))
	require.NoError(t, w.String("abc"))
	require.NoError(t, w.Int8Array([]int8{1, 2, 3, 4, 5}, false))
	require.NoError(t, w.Uint16Array([]uint16{1, 2}, false))

	require.Equal(t, w.Size(), sc.Offset())
}

func TestSizeCalculatorXCDR2EMHeaderMatchesWriter(t *testing.T) {
	sc := NewSizeCalculator(WithKind(KindPLCDR2LE))
	_, err := sc.EMHeader(1, 4)
	require.NoError(t, err)

	w := NewWriter(WithKind(KindPLCDR2LE))
	require.NoError(t, w.EMHeader(false, 1, 4))

	require.Equal(t, w.Size(), sc.Offset())
}

func TestSizeCalculatorXCDR1EMHeaderExtendedPID(t *testing.T) {
	sc := NewSizeCalculator(WithKind(KindPLCDRLE))
	_, err := sc.EMHeader(0x12345, 10)
	require.NoError(t, err)

	w := NewWriter(WithKind(KindPLCDRLE))
	require.NoError(t, w.EMHeader(false, 0x12345, 10))

	require.Equal(t, w.Size(), sc.Offset())
}

func TestSizeCalculatorRejectsEMHeaderOnPlainEncapsulation(t *testing.T) {
	sc := NewSizeCalculator(WithKind(KindCDRLE))
	_, err := sc.EMHeader(1, 4)
	require.Error(t, err)
}

func TestSizeCalculatorSentinelHeader(t *testing.T) {
	sc := NewSizeCalculator(WithKind(KindPLCDRLE))
	before := sc.Offset()
	after := sc.SentinelHeader()
	require.Equal(t, before+4, after)

	sc2 := NewSizeCalculator(WithKind(KindPLCDR2LE))
	beforeXCDR2 := sc2.Offset()
	afterXCDR2 := sc2.SentinelHeader()
	require.Equal(t, beforeXCDR2, afterXCDR2)
}

func TestSizeCalculatorStringArraySumsEachString(t *testing.T) {
	sc := NewSizeCalculator()
	got := sc.StringArray([]int{3, 0, 5})

	want := NewSizeCalculator()
	want.String(3)
	want.String(0)
	want.String(5)

	require.Equal(t, want.Offset(), got)
}
