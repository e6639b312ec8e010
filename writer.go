package cdr

import (
	"encoding/binary"
	"math"
)

// Option configures a Writer at construction time. Grounded on the
// functional-options pattern the teacher uses for CAR traversal
// (options.go's Option func(*options)).
type Option func(*writerConfig)

type writerConfig struct {
	kind     Kind
	buffer   []byte
	sizeHint int
}

// WithKind selects the encapsulation kind emitted in the 4-byte header.
// Defaults to KindCDRLE.
func WithKind(kind Kind) Option {
	return func(c *writerConfig) { c.kind = kind }
}

// WithBuffer supplies a pre-allocated buffer for the writer to grow into.
// Its existing contents are discarded; only its capacity is reused.
func WithBuffer(buf []byte) Option {
	return func(c *writerConfig) { c.buffer = buf }
}

// WithSizeHint pre-allocates capacity for sizeHint bytes when no buffer was
// supplied via WithBuffer.
func WithSizeHint(sizeHint int) Option {
	return func(c *writerConfig) { c.sizeHint = sizeHint }
}

// Writer is a stateful cursor over a growable byte buffer. It mirrors
// Reader's grammar: typed primitive writes, strings, member/delimiter
// headers, and typed array writes, auto-growing its buffer on demand.
//
// A Writer owns its buffer exclusively from construction until Data is
// harvested; concurrent use is undefined.
type Writer struct {
	cursor
	buf []byte // len(buf) is always >= offset; bytes past offset are unused capacity
}

// NewWriter constructs a Writer and immediately emits the 4-byte
// encapsulation header for the configured kind.
func NewWriter(opts ...Option) *Writer {
	cfg := writerConfig{kind: KindCDRLE}
	for _, o := range opts {
		o(&cfg)
	}
	caps, err := capabilitiesFor(cfg.kind)
	if err != nil {
		// Kind is caller-controlled and validated against a closed
		// enumeration; an unknown Option-supplied kind is a programmer
		// error, not a runtime condition to recover from.
		panic(err)
	}

	w := &Writer{cursor: cursor{offset: 0, origin: 4, capabilities: caps}}
	switch {
	case cfg.buffer != nil:
		w.buf = cfg.buffer[:0]
	case cfg.sizeHint > 0:
		w.buf = make([]byte, 0, cfg.sizeHint)
	default:
		w.buf = make([]byte, 0, 64)
	}

	w.growTo(4)
	w.buf[0] = 0x00
	w.buf[1] = byte(cfg.kind)
	w.buf[2] = 0x00
	w.buf[3] = 0x00
	w.offset = 4
	return w
}

func (w *Writer) byteOrder() binary.ByteOrder {
	if w.littleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// growTo ensures len(w.buf) >= n, growing capacity by at least doubling.
func (w *Writer) growTo(n int) {
	if len(w.buf) >= n {
		return
	}
	if cap(w.buf) >= n {
		w.buf = w.buf[:n]
		return
	}
	newCap := cap(w.buf) * 2
	if newCap < n {
		newCap = n
	}
	grown := make([]byte, n, newCap)
	copy(grown, w.buf)
	w.buf = grown
}

// align advances offset by the padding required for unit, growing the
// buffer to cover the padding and zero-filling it, so padding reads back as
// zero even when WithBuffer supplied capacity with old contents.
func (w *Writer) align(unit int) int {
	n := w.cursor.align(unit)
	w.growTo(w.offset)
	for i := w.offset - n; i < w.offset; i++ {
		w.buf[i] = 0
	}
	return n
}

// reserve grows the buffer to hold n more bytes at the current offset and
// returns the slice to write into. Padding before it was already
// zero-filled by align.
func (w *Writer) reserve(n int) []byte {
	w.growTo(w.offset + n)
	return w.buf[w.offset : w.offset+n]
}

// Int8 writes a single byte with no alignment.
func (w *Writer) Int8(v int8) error {
	return w.Uint8(uint8(v))
}

// Uint8 writes a single byte with no alignment.
func (w *Writer) Uint8(v uint8) error {
	w.growTo(w.offset + 1)
	w.buf[w.offset] = v
	w.offset++
	return nil
}

// Int16 writes a 2-byte value aligned to 2, honouring the stream's endianness.
func (w *Writer) Int16(v int16) error {
	return w.Uint16(uint16(v))
}

// Uint16 writes a 2-byte value aligned to 2, honouring the stream's endianness.
func (w *Writer) Uint16(v uint16) error {
	w.align(2)
	dst := w.reserve(2)
	w.byteOrder().PutUint16(dst, v)
	w.offset += 2
	return nil
}

// Int32 writes a 4-byte value aligned to 4, honouring the stream's endianness.
func (w *Writer) Int32(v int32) error {
	return w.Uint32(uint32(v))
}

// Uint32 writes a 4-byte value aligned to 4, honouring the stream's endianness.
func (w *Writer) Uint32(v uint32) error {
	w.align(4)
	dst := w.reserve(4)
	w.byteOrder().PutUint32(dst, v)
	w.offset += 4
	return nil
}

// Float32 writes a 4-byte IEEE-754 value aligned to 4.
func (w *Writer) Float32(v float32) error {
	return w.Uint32(math.Float32bits(v))
}

// Int64 writes an 8-byte value aligned to eightByteAlignment.
func (w *Writer) Int64(v int64) error {
	return w.Uint64(uint64(v))
}

// Uint64 writes an 8-byte value aligned to eightByteAlignment.
func (w *Writer) Uint64(v uint64) error {
	w.align(w.eightByteAlignment())
	dst := w.reserve(8)
	w.byteOrder().PutUint64(dst, v)
	w.offset += 8
	return nil
}

// Float64 writes an 8-byte IEEE-754 value aligned to eightByteAlignment.
func (w *Writer) Float64(v float64) error {
	return w.Uint64(math.Float64bits(v))
}

// Uint16BE writes a 2-byte big-endian value aligned to 2, regardless of the
// stream's encapsulation endianness.
func (w *Writer) Uint16BE(v uint16) error {
	w.align(2)
	dst := w.reserve(2)
	binary.BigEndian.PutUint16(dst, v)
	w.offset += 2
	return nil
}

// Uint32BE writes a 4-byte big-endian value aligned to 4, regardless of the
// stream's encapsulation endianness.
func (w *Writer) Uint32BE(v uint32) error {
	w.align(4)
	dst := w.reserve(4)
	binary.BigEndian.PutUint32(dst, v)
	w.offset += 4
	return nil
}

// Uint64BE writes an 8-byte big-endian value aligned to eightByteAlignment,
// regardless of the stream's encapsulation endianness.
func (w *Writer) Uint64BE(v uint64) error {
	w.align(w.eightByteAlignment())
	dst := w.reserve(8)
	binary.BigEndian.PutUint64(dst, v)
	w.offset += 8
	return nil
}

// String writes s as a 4-byte length prefix (byte count plus the trailing
// null), its UTF-8 bytes, and a terminating 0x00.
func (w *Writer) String(s string) error {
	n := len(s)
	if err := w.Uint32(uint32(n + 1)); err != nil {
		return err
	}
	w.growTo(w.offset + n + 1)
	copy(w.buf[w.offset:], s)
	w.buf[w.offset+n] = 0x00
	w.offset += n + 1
	return nil
}

// DHeader writes an XCDR2 delimiter header.
func (w *Writer) DHeader(length uint32) error {
	return w.Uint32(length)
}

// EMHeader emits an XCDR1 parameter-list header or an XCDR2 EMHEADER,
// dispatching on the capability resolved from the writer's encapsulation
// kind. lengthCode is only meaningful (and optional) for XCDR2; when
// omitted, the smallest valid code for objectSize is inferred.
func (w *Writer) EMHeader(mustUnderstand bool, pid uint32, objectSize uint32, lengthCode ...uint8) error {
	if !w.usesMemberHeader {
		return malformedHeaderErr("encapsulation does not use member headers")
	}
	if w.isCDR2 {
		return w.emHeaderXCDR2(mustUnderstand, pid, objectSize, lengthCode...)
	}
	return w.emHeaderXCDR1(mustUnderstand, pid, objectSize)
}

func (w *Writer) emHeaderXCDR1(mustUnderstand bool, pid, objectSize uint32) error {
	w.align(4)

	muBit := uint16(0)
	if mustUnderstand {
		muBit = 0x4000
	}

	if pid <= 0x3FFF && objectSize <= 0xFFFF && pid != ExtendedPID && pid != SentinelPID {
		if err := w.Uint16(muBit | uint16(pid)); err != nil {
			return err
		}
		if err := w.Uint16(uint16(objectSize)); err != nil {
			return err
		}
	} else {
		if err := w.Uint16(uint16(ExtendedPID) | muBit); err != nil {
			return err
		}
		if err := w.Uint16(8); err != nil {
			return err
		}
		if err := w.Uint32(pid); err != nil {
			return err
		}
		if err := w.Uint32(objectSize); err != nil {
			return err
		}
	}

	w.origin = w.offset
	return nil
}

func (w *Writer) emHeaderXCDR2(mustUnderstand bool, pid, objectSize uint32, lengthCodeArg ...uint8) error {
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
			return malformedHeaderErr("object size does not match implied size for length code")
		}
	case 6:
		if objectSize%4 != 0 {
			return malformedHeaderErr("length code 6 requires a size divisible by 4")
		}
	case 7:
		if objectSize%8 != 0 {
			return malformedHeaderErr("length code 7 requires a size divisible by 8")
		}
	case 4, 5:
		// no constraint beyond the inline uint32 written below.
	default:
		return malformedHeaderErr("length code out of range")
	}

	muBit := uint32(0)
	if mustUnderstand {
		muBit = 0x80000000
	}
	raw := muBit | (uint32(lengthCode) << 28) | (pid & 0x0FFFFFFF)
	if err := w.Uint32(raw); err != nil {
		return err
	}

	switch lengthCode {
	case 4, 5:
		// Both codes carry an explicit inline uint32 on read (spec.md
		// §4.3's em_header treats 4 and 5 identically); code 4 exists so a
		// caller can choose it to signal "this size also matches the
		// following field's own length prefix", but we always emit the
		// inline length so a plain EMHeader/em_header round-trip needs no
		// cooperation from the body encoding.
		return w.Uint32(objectSize)
	case 6:
		return w.Uint32(objectSize / 4)
	case 7:
		return w.Uint32(objectSize / 8)
	}
	return nil
}

// SentinelHeader emits an XCDR1 sentinel (a no-op under XCDR2).
func (w *Writer) SentinelHeader() error {
	if w.isCDR2 {
		return nil
	}
	w.align(4)
	if err := w.Uint16(uint16(SentinelPID)); err != nil {
		return err
	}
	if err := w.Uint16(0); err != nil {
		return err
	}
	w.origin = 4
	return nil
}

// SequenceLength writes the uint32 element count prefixing a sequence.
func (w *Writer) SequenceLength(n uint32) error {
	return w.Uint32(n)
}

// Data returns exactly the bytes written so far.
func (w *Writer) Data() []byte {
	return w.buf[:w.offset]
}

// Size returns the number of bytes written so far.
func (w *Writer) Size() int {
	return w.offset
}
