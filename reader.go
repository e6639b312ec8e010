package cdr

import (
	"encoding/binary"
	"math"
	"unicode/utf8"
)

// Reader is a stateful cursor over an immutable byte buffer. It produces
// primitives, strings, and typed arrays in the order the caller's schema
// prescribes, honouring the alignment and encapsulation rules of the kind
// parsed from the 4-byte header at construction.
//
// A Reader borrows its backing buffer for its lifetime; Clone produces an
// independent cursor over the same bytes.
type Reader struct {
	cursor
	buf   []byte // full backing buffer
	limit int    // exclusive upper bound of the visible range
}

// NewReader parses the 4-byte encapsulation header at the start of buf and
// returns a Reader positioned just past it. buf must be at least 4 bytes.
func NewReader(buf []byte) (*Reader, error) {
	if len(buf) < 4 {
		return nil, shortHeaderErr(len(buf))
	}
	if buf[0] != 0x00 {
		return nil, unsupportedEncapsulationErr(Kind(buf[1]))
	}
	caps, err := capabilitiesFor(Kind(buf[1]))
	if err != nil {
		return nil, err
	}
	return &Reader{
		cursor: cursor{offset: 4, origin: 4, capabilities: caps},
		buf:    buf,
		limit:  len(buf),
	}, nil
}

func (r *Reader) byteOrder() binary.ByteOrder {
	if r.littleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

func (r *Reader) ensure(n int) error {
	if r.offset < 0 || r.offset+n > r.limit {
		return outOfBoundsErr(r.offset, r.limit)
	}
	return nil
}

// Int8 reads a single byte with no alignment.
func (r *Reader) Int8() (int8, error) {
	v, err := r.Uint8()
	return int8(v), err
}

// Uint8 reads a single byte with no alignment.
func (r *Reader) Uint8() (uint8, error) {
	if err := r.ensure(1); err != nil {
		return 0, err
	}
	v := r.buf[r.offset]
	r.offset++
	return v, nil
}

// Int16 reads a 2-byte value aligned to 2, honouring the stream's endianness.
func (r *Reader) Int16() (int16, error) {
	v, err := r.Uint16()
	return int16(v), err
}

// Uint16 reads a 2-byte value aligned to 2, honouring the stream's endianness.
func (r *Reader) Uint16() (uint16, error) {
	r.align(2)
	if err := r.ensure(2); err != nil {
		return 0, err
	}
	v := r.byteOrder().Uint16(r.buf[r.offset:])
	r.offset += 2
	return v, nil
}

// Int32 reads a 4-byte value aligned to 4, honouring the stream's endianness.
func (r *Reader) Int32() (int32, error) {
	v, err := r.Uint32()
	return int32(v), err
}

// Uint32 reads a 4-byte value aligned to 4, honouring the stream's endianness.
func (r *Reader) Uint32() (uint32, error) {
	r.align(4)
	if err := r.ensure(4); err != nil {
		return 0, err
	}
	v := r.byteOrder().Uint32(r.buf[r.offset:])
	r.offset += 4
	return v, nil
}

// Float32 reads a 4-byte IEEE-754 value aligned to 4.
func (r *Reader) Float32() (float32, error) {
	v, err := r.Uint32()
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// Int64 reads an 8-byte value aligned to eightByteAlignment (8 for CDR v1, 4 for CDR v2).
func (r *Reader) Int64() (int64, error) {
	v, err := r.Uint64()
	return int64(v), err
}

// Uint64 reads an 8-byte value aligned to eightByteAlignment.
func (r *Reader) Uint64() (uint64, error) {
	r.align(r.eightByteAlignment())
	if err := r.ensure(8); err != nil {
		return 0, err
	}
	v := r.byteOrder().Uint64(r.buf[r.offset:])
	r.offset += 8
	return v, nil
}

// Float64 reads an 8-byte IEEE-754 value aligned to eightByteAlignment.
func (r *Reader) Float64() (float64, error) {
	v, err := r.Uint64()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// Uint16BE reads a 2-byte big-endian value aligned to 2, regardless of the
// stream's encapsulation endianness.
func (r *Reader) Uint16BE() (uint16, error) {
	r.align(2)
	if err := r.ensure(2); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint16(r.buf[r.offset:])
	r.offset += 2
	return v, nil
}

// Uint32BE reads a 4-byte big-endian value aligned to 4, regardless of the
// stream's encapsulation endianness.
func (r *Reader) Uint32BE() (uint32, error) {
	r.align(4)
	if err := r.ensure(4); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint32(r.buf[r.offset:])
	r.offset += 4
	return v, nil
}

// Uint64BE reads an 8-byte big-endian value aligned to eightByteAlignment,
// regardless of the stream's encapsulation endianness.
func (r *Reader) Uint64BE() (uint64, error) {
	r.align(r.eightByteAlignment())
	if err := r.ensure(8); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint64(r.buf[r.offset:])
	r.offset += 8
	return v, nil
}

// String reads a length-prefixed, null-terminated UTF-8 string. If
// prereadLength is supplied, that length is used instead of reading a
// 4-byte prefix (the caller has already consumed it, e.g. via an XCDR2
// DHEADER-adjacent inline length).
func (r *Reader) String(prereadLength ...uint32) (string, error) {
	var length uint32
	if len(prereadLength) > 0 {
		length = prereadLength[0]
	} else {
		l, err := r.Uint32()
		if err != nil {
			return "", err
		}
		length = l
	}

	if length <= 1 {
		if err := r.ensure(int(length)); err != nil {
			return "", err
		}
		r.offset += int(length)
		return "", nil
	}

	if err := r.ensure(int(length)); err != nil {
		return "", err
	}
	body := r.buf[r.offset : r.offset+int(length)-1]
	if !utf8.Valid(body) {
		return "", encodingErr(r.offset, errInvalidUTF8)
	}
	s := string(body)
	r.offset += int(length)
	return s, nil
}

// DHeader reads an XCDR2 delimiter header: a 4-byte unsigned integer
// giving the byte length of the object that follows.
func (r *Reader) DHeader() (uint32, error) {
	return r.Uint32()
}

// EMHeader reads an XCDR1 parameter-list header or an XCDR2 EMHEADER,
// dispatching on the capability resolved from the stream's encapsulation
// kind at construction.
func (r *Reader) EMHeader() (MemberHeader, error) {
	if !r.usesMemberHeader {
		return MemberHeader{}, malformedHeaderErr("encapsulation does not use member headers")
	}
	if r.isCDR2 {
		return r.emHeaderXCDR2()
	}
	return r.emHeaderXCDR1()
}

func (r *Reader) emHeaderXCDR1() (MemberHeader, error) {
	r.align(4)
	idHeader, err := r.Uint16()
	if err != nil {
		return MemberHeader{}, err
	}

	mustUnderstand := idHeader&0x4000 != 0
	implementationSpecific := idHeader&0x8000 != 0
	pid := uint32(idHeader & 0x3FFF)

	if pid == uint32(SentinelPID) {
		// Consume the trailing 16 reserved bits that normally carry size.
		if _, err := r.Uint16(); err != nil {
			return MemberHeader{}, err
		}
		return MemberHeader{ID: SentinelPID, ReadSentinelHeader: true}, nil
	}
	if implementationSpecific || pid > uint32(SentinelPID) {
		return MemberHeader{}, reservedPidErr(pid)
	}

	var hdr MemberHeader
	hdr.MustUnderstand = mustUnderstand
	if pid == uint32(ExtendedPID) {
		if _, err := r.Uint16(); err != nil { // reserved padding
			return MemberHeader{}, err
		}
		id, err := r.Uint32()
		if err != nil {
			return MemberHeader{}, err
		}
		size, err := r.Uint32()
		if err != nil {
			return MemberHeader{}, err
		}
		hdr.ID = id
		hdr.ObjectSize = size
	} else {
		size, err := r.Uint16()
		if err != nil {
			return MemberHeader{}, err
		}
		hdr.ID = pid
		hdr.ObjectSize = uint32(size)
	}

	r.origin = r.offset
	return hdr, nil
}

func (r *Reader) emHeaderXCDR2() (MemberHeader, error) {
	raw, err := r.Uint32()
	if err != nil {
		return MemberHeader{}, err
	}

	hdr := MemberHeader{
		MustUnderstand: raw&0x80000000 != 0,
		LengthCode:     uint8((raw >> 28) & 0x7),
		HasLengthCode:  true,
		ID:             raw & 0x0FFFFFFF,
	}

	switch hdr.LengthCode {
	case 0, 1, 2, 3:
		hdr.ObjectSize = lengthCodeImpliedSize[hdr.LengthCode]
	case 4, 5:
		size, err := r.Uint32()
		if err != nil {
			return MemberHeader{}, err
		}
		hdr.ObjectSize = size
	case 6:
		n, err := r.Uint32()
		if err != nil {
			return MemberHeader{}, err
		}
		hdr.ObjectSize = n * 4
	case 7:
		n, err := r.Uint32()
		if err != nil {
			return MemberHeader{}, err
		}
		hdr.ObjectSize = n * 8
	default:
		return MemberHeader{}, malformedHeaderErr("length code out of range")
	}

	return hdr, nil
}

// SentinelHeader consumes an XCDR1 sentinel (a no-op under XCDR2).
func (r *Reader) SentinelHeader() error {
	if r.isCDR2 {
		return nil
	}
	r.align(4)
	idHeader, err := r.Uint16()
	if err != nil {
		return err
	}
	if uint32(idHeader&0x3FFF) != uint32(SentinelPID) {
		return expectedSentinelErr(r.offset-2, idHeader)
	}
	if _, err := r.Uint16(); err != nil {
		return err
	}
	r.origin = 4
	return nil
}

// SequenceLength reads the uint32 element count prefixing a sequence.
func (r *Reader) SequenceLength() (uint32, error) {
	return r.Uint32()
}

// Seek adjusts offset by delta. The target must remain within [4, len(buf)).
func (r *Reader) Seek(delta int) error {
	return r.SeekTo(r.offset + delta)
}

// SeekTo sets offset to an absolute position. The target must remain
// within [4, len(buf)).
func (r *Reader) SeekTo(absolute int) error {
	if absolute < 4 || absolute >= len(r.buf) {
		return outOfBoundsErr(absolute, r.limit)
	}
	r.offset = absolute
	return nil
}

// Clone returns an independent Reader sharing the same backing bytes but
// with its own offset and origin, so reads on the clone never affect the
// original.
func (r *Reader) Clone() *Reader {
	clone := *r
	return &clone
}

// Limit shrinks the visible byte range to offset+n. It can only shrink;
// attempts to grow the visible range fail with ErrLimitExceeded.
func (r *Reader) Limit(n int) error {
	newLimit := r.offset + n
	if newLimit > r.limit {
		return limitExceededErr(r.limit, newLimit)
	}
	if newLimit < r.offset {
		return limitExceededErr(r.limit, newLimit)
	}
	r.limit = newLimit
	return nil
}

// IsAtEnd reports whether offset has reached the visible end of the buffer.
func (r *Reader) IsAtEnd() bool {
	return r.offset >= r.limit
}
