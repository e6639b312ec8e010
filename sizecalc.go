package cdr

// SizeCalculator is a writer-shaped skeleton that advances an offset
// without allocating, used to pre-compute the exact serialized byte size
// of a write sequence before running it through a Writer. Every method
// mirrors Writer's alignment discipline and returns the identical
// post-operation offset a Writer applying the same sequence would reach.
//
// There is no encapsulation kind selector by default: SizeCalculator uses
// CDR v1 alignment (eightByteAlignment = 8) unless constructed with
// WithKind to opt into XCDR2 alignment and header shapes.
type SizeCalculator struct {
	cursor
}

// NewSizeCalculator constructs a SizeCalculator. Without options it mirrors
// plain CDR v1 (CDR_LE) alignment and header rules; pass WithKind to match
// a different encapsulation's alignment and member-header shape.
func NewSizeCalculator(opts ...Option) *SizeCalculator {
	cfg := writerConfig{kind: KindCDRLE}
	for _, o := range opts {
		o(&cfg)
	}
	caps, err := capabilitiesFor(cfg.kind)
	if err != nil {
		panic(err)
	}
	return &SizeCalculator{cursor: cursor{offset: 4, origin: 4, capabilities: caps}}
}

// Int8 advances by 1 byte, unaligned.
func (s *SizeCalculator) Int8() int { s.offset++; return s.offset }

// Uint8 advances by 1 byte, unaligned.
func (s *SizeCalculator) Uint8() int { s.offset++; return s.offset }

// Int16 advances by the alignment pad plus 2 bytes.
func (s *SizeCalculator) Int16() int { return s.advance(2, 2) }

// Uint16 advances by the alignment pad plus 2 bytes.
func (s *SizeCalculator) Uint16() int { return s.advance(2, 2) }

// Int32 advances by the alignment pad plus 4 bytes.
func (s *SizeCalculator) Int32() int { return s.advance(4, 4) }

// Uint32 advances by the alignment pad plus 4 bytes.
func (s *SizeCalculator) Uint32() int { return s.advance(4, 4) }

// Float32 advances by the alignment pad plus 4 bytes.
func (s *SizeCalculator) Float32() int { return s.advance(4, 4) }

// Int64 advances by the alignment pad plus 8 bytes.
func (s *SizeCalculator) Int64() int { return s.advance(s.eightByteAlignment(), 8) }

// Uint64 advances by the alignment pad plus 8 bytes.
func (s *SizeCalculator) Uint64() int { return s.advance(s.eightByteAlignment(), 8) }

// Float64 advances by the alignment pad plus 8 bytes.
func (s *SizeCalculator) Float64() int { return s.advance(s.eightByteAlignment(), 8) }

// Uint16BE advances identically to Uint16; endianness never affects size.
func (s *SizeCalculator) Uint16BE() int { return s.advance(2, 2) }

// Uint32BE advances identically to Uint32; endianness never affects size.
func (s *SizeCalculator) Uint32BE() int { return s.advance(4, 4) }

// Uint64BE advances identically to Uint64; endianness never affects size.
func (s *SizeCalculator) Uint64BE() int { return s.advance(s.eightByteAlignment(), 8) }

func (s *SizeCalculator) advance(unit, size int) int {
	s.align(unit)
	s.offset += size
	return s.offset
}

// String advances by the alignment pad for the length prefix, plus
// 4 + byteLength + 1 (length prefix, UTF-8 bytes, null terminator).
func (s *SizeCalculator) String(byteLength int) int {
	s.align(4)
	s.offset += 4 + byteLength + 1
	return s.offset
}

// DHeader advances like Uint32.
func (s *SizeCalculator) DHeader() int { return s.Uint32() }

// EMHeader advances by the size of an XCDR1 parameter-list header or an
// XCDR2 EMHEADER, mirroring Writer.EMHeader's shape-selection exactly so
// CdrSizeCalculator(S) always equals CdrWriter(S).Size() (spec.md §8,
// property 5).
func (s *SizeCalculator) EMHeader(pid uint32, objectSize uint32, lengthCode ...uint8) (int, error) {
	if !s.usesMemberHeader {
		return 0, malformedHeaderErr("encapsulation does not use member headers")
	}
	if s.isCDR2 {
		return s.emHeaderXCDR2(pid, objectSize, lengthCode...)
	}
	return s.emHeaderXCDR1(pid, objectSize), nil
}

func (s *SizeCalculator) emHeaderXCDR1(pid, objectSize uint32) int {
	s.align(4)
	if pid <= 0x3FFF && objectSize <= 0xFFFF && pid != ExtendedPID && pid != SentinelPID {
		s.offset += 4
	} else {
		s.offset += 12
	}
	s.origin = s.offset
	return s.offset
}

func (s *SizeCalculator) emHeaderXCDR2(pid, objectSize uint32, lengthCodeArg ...uint8) (int, error) {
	var lengthCode uint8
	if len(lengthCodeArg) > 0 {
		lengthCode = lengthCodeArg[0]
	} else if code, ok := lengthCodeForSize(objectSize); ok {
		lengthCode = code
	} else {
		lengthCode = 5
	}

	switch lengthCode {
	case 0, 1, 2, 3:
		if objectSize != lengthCodeImpliedSize[lengthCode] {
			return 0, malformedHeaderErr("object size does not match implied size for length code")
		}
		s.offset += 4
	case 4, 5:
		s.offset += 8
	case 6:
		if objectSize%4 != 0 {
			return 0, malformedHeaderErr("length code 6 requires a size divisible by 4")
		}
		s.offset += 8
	case 7:
		if objectSize%8 != 0 {
			return 0, malformedHeaderErr("length code 7 requires a size divisible by 8")
		}
		s.offset += 8
	default:
		return 0, malformedHeaderErr("length code out of range")
	}
	return s.offset, nil
}

// SentinelHeader advances by 4 bytes under XCDR1, or not at all under XCDR2.
func (s *SizeCalculator) SentinelHeader() int {
	if s.isCDR2 {
		return s.offset
	}
	s.align(4)
	s.offset += 4
	s.origin = 4
	return s.offset
}

// SequenceLength advances like Uint32.
func (s *SizeCalculator) SequenceLength() int { return s.Uint32() }

// Int8Array advances by n bytes, unaligned.
func (s *SizeCalculator) Int8Array(n int) int { s.offset += n; return s.offset }

// Uint8Array advances by n bytes, unaligned.
func (s *SizeCalculator) Uint8Array(n int) int { s.offset += n; return s.offset }

// Int16Array advances by the alignment pad plus n*2 bytes.
func (s *SizeCalculator) Int16Array(n int) int { return s.advanceArray(2, 2, n) }

// Uint16Array advances by the alignment pad plus n*2 bytes.
func (s *SizeCalculator) Uint16Array(n int) int { return s.advanceArray(2, 2, n) }

// Int32Array advances by the alignment pad plus n*4 bytes.
func (s *SizeCalculator) Int32Array(n int) int { return s.advanceArray(4, 4, n) }

// Uint32Array advances by the alignment pad plus n*4 bytes.
func (s *SizeCalculator) Uint32Array(n int) int { return s.advanceArray(4, 4, n) }

// Float32Array advances by the alignment pad plus n*4 bytes.
func (s *SizeCalculator) Float32Array(n int) int { return s.advanceArray(4, 4, n) }

// Int64Array advances by the alignment pad plus n*8 bytes.
func (s *SizeCalculator) Int64Array(n int) int { return s.advanceArray(s.eightByteAlignment(), 8, n) }

// Uint64Array advances by the alignment pad plus n*8 bytes.
func (s *SizeCalculator) Uint64Array(n int) int { return s.advanceArray(s.eightByteAlignment(), 8, n) }

// Float64Array advances by the alignment pad plus n*8 bytes.
func (s *SizeCalculator) Float64Array(n int) int { return s.advanceArray(s.eightByteAlignment(), 8, n) }

func (s *SizeCalculator) advanceArray(unit, elemSize, n int) int {
	s.align(unit)
	s.offset += n * elemSize
	return s.offset
}

// StringArray advances by the sum of each string's String() cost.
func (s *SizeCalculator) StringArray(byteLengths []int) int {
	for _, l := range byteLengths {
		s.String(l)
	}
	return s.offset
}

// Offset returns the current offset, equivalent to a Writer's Size.
func (s *SizeCalculator) Offset() int { return s.offset }
