package cdr

// Kind is a one-byte encapsulation tag carried in byte 1 of the 4-byte
// encapsulation header. It selects endianness and which of the XCDR1/
// XCDR2 header conventions a stream uses.
type Kind uint8

// The closed set of encapsulation kinds this package understands.
const (
	KindCDRBE Kind = 0
	KindCDRLE Kind = 1

	KindPLCDRBE Kind = 2
	KindPLCDRLE Kind = 3

	KindCDR2BE Kind = 6
	KindCDR2LE Kind = 7

	KindPLCDR2BE Kind = 8
	KindPLCDR2LE Kind = 9

	KindDelimitedCDR2BE Kind = 10
	KindDelimitedCDR2LE Kind = 11

	KindRTPSCDRBE           Kind = 16
	KindRTPSCDRLE           Kind = 17
	KindRTPSPLCDRBE         Kind = 18
	KindRTPSPLCDRLE         Kind = 19
	KindRTPSCDR2BE          Kind = 20
	KindRTPSCDR2LE          Kind = 21
	KindRTPSPLCDR2BE        Kind = 22
	KindRTPSPLCDR2LE        Kind = 23
	KindRTPSDelimitedCDR2BE Kind = 26
	KindRTPSDelimitedCDR2LE Kind = 27
)

// capabilities holds the four booleans an encapsulation kind resolves to.
type capabilities struct {
	littleEndian        bool
	isCDR2              bool
	usesDelimiterHeader bool
	usesMemberHeader    bool
}

// capabilityTable maps every supported Kind to its capabilities. It is the
// "pure function" of spec.md §4.1, lowered to a static table as the spec
// permits.
var capabilityTable = map[Kind]capabilities{
	KindCDRBE: {littleEndian: false, isCDR2: false, usesDelimiterHeader: false, usesMemberHeader: false},
	KindCDRLE: {littleEndian: true, isCDR2: false, usesDelimiterHeader: false, usesMemberHeader: false},

	KindPLCDRBE: {littleEndian: false, isCDR2: false, usesDelimiterHeader: false, usesMemberHeader: true},
	KindPLCDRLE: {littleEndian: true, isCDR2: false, usesDelimiterHeader: false, usesMemberHeader: true},

	KindCDR2BE: {littleEndian: false, isCDR2: true, usesDelimiterHeader: false, usesMemberHeader: false},
	KindCDR2LE: {littleEndian: true, isCDR2: true, usesDelimiterHeader: false, usesMemberHeader: false},

	KindPLCDR2BE: {littleEndian: false, isCDR2: true, usesDelimiterHeader: false, usesMemberHeader: true},
	KindPLCDR2LE: {littleEndian: true, isCDR2: true, usesDelimiterHeader: false, usesMemberHeader: true},

	KindDelimitedCDR2BE: {littleEndian: false, isCDR2: true, usesDelimiterHeader: true, usesMemberHeader: false},
	KindDelimitedCDR2LE: {littleEndian: true, isCDR2: true, usesDelimiterHeader: true, usesMemberHeader: false},

	KindRTPSCDRBE:   {littleEndian: false, isCDR2: false, usesDelimiterHeader: false, usesMemberHeader: false},
	KindRTPSCDRLE:   {littleEndian: true, isCDR2: false, usesDelimiterHeader: false, usesMemberHeader: false},
	KindRTPSPLCDRBE: {littleEndian: false, isCDR2: false, usesDelimiterHeader: false, usesMemberHeader: true},
	KindRTPSPLCDRLE: {littleEndian: true, isCDR2: false, usesDelimiterHeader: false, usesMemberHeader: true},

	KindRTPSCDR2BE:   {littleEndian: false, isCDR2: true, usesDelimiterHeader: false, usesMemberHeader: false},
	KindRTPSCDR2LE:   {littleEndian: true, isCDR2: true, usesDelimiterHeader: false, usesMemberHeader: false},
	KindRTPSPLCDR2BE: {littleEndian: false, isCDR2: true, usesDelimiterHeader: false, usesMemberHeader: true},
	KindRTPSPLCDR2LE: {littleEndian: true, isCDR2: true, usesDelimiterHeader: false, usesMemberHeader: true},

	KindRTPSDelimitedCDR2BE: {littleEndian: false, isCDR2: true, usesDelimiterHeader: true, usesMemberHeader: false},
	KindRTPSDelimitedCDR2LE: {littleEndian: true, isCDR2: true, usesDelimiterHeader: true, usesMemberHeader: false},
}

func capabilitiesFor(k Kind) (capabilities, error) {
	c, ok := capabilityTable[k]
	if !ok {
		return capabilities{}, unsupportedEncapsulationErr(k)
	}
	return c, nil
}

// eightByteAlignment returns the alignment unit used for 8-byte primitives:
// 8 for classic CDR v1, 4 for any XCDR2 variant. This is the only
// alignment rule that differs between the two CDR major versions.
func (c capabilities) eightByteAlignment() int {
	if c.isCDR2 {
		return 4
	}
	return 8
}
