package cdr

import (
	"math"
	"unsafe"

	"github.com/dskkato/cdr/hostend"
)

// elementCount resolves the element count for an array read: the explicit
// count if supplied, else a 4-byte sequence length read from the stream.
func (r *Reader) elementCount(count []uint32) (int, error) {
	if len(count) > 0 {
		return int(count[0]), nil
	}
	n, err := r.SequenceLength()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// canAliasElement reports whether a wide-element array starting at the
// current offset may be returned as a zero-copy view: the stream's
// endianness must match the host's, and the byte offset must be naturally
// aligned for elemSize. Per spec.md §9's open question, this is checked
// at the element level, not against the (possibly differently-endian)
// sequence-length prefix that preceded it.
func (r *Reader) canAliasElement(elemSize, n int) bool {
	nativeBigEndian := hostend.IsBigEndian()
	endianMatches := r.littleEndian != nativeBigEndian
	if !endianMatches {
		return false
	}
	if r.offset%elemSize != 0 {
		return false
	}
	if n == 0 {
		return true
	}
	addr := uintptr(unsafe.Pointer(&r.buf[r.offset]))
	return addr%uintptr(elemSize) == 0
}

// Int8Array returns a zero-copy view of n (or sequence-length-prefixed)
// signed bytes. 8-bit arrays never need an endianness or alignment check.
func (r *Reader) Int8Array(count ...uint32) ([]int8, error) {
	n, err := r.elementCount(count)
	if err != nil {
		return nil, err
	}
	if err := r.ensure(n); err != nil {
		return nil, err
	}
	var view []int8
	if n > 0 {
		view = unsafe.Slice((*int8)(unsafe.Pointer(&r.buf[r.offset])), n)
	}
	r.offset += n
	return view, nil
}

// Uint8Array returns a zero-copy view of n (or sequence-length-prefixed)
// unsigned bytes.
func (r *Reader) Uint8Array(count ...uint32) ([]uint8, error) {
	n, err := r.elementCount(count)
	if err != nil {
		return nil, err
	}
	if err := r.ensure(n); err != nil {
		return nil, err
	}
	view := r.buf[r.offset : r.offset+n]
	r.offset += n
	return view, nil
}

// Int16Array reads n (or sequence-length-prefixed) 2-byte values, aligned
// once to 2. Returns a zero-copy view when the underlying bytes can be
// legally aliased, else a materialized slice decoded per the declared
// endianness.
func (r *Reader) Int16Array(count ...uint32) ([]int16, bool, error) {
	n, err := r.elementCount(count)
	if err != nil {
		return nil, false, err
	}
	r.align(2)
	if err := r.ensure(n * 2); err != nil {
		return nil, false, err
	}
	if r.canAliasElement(2, n) {
		var view []int16
		if n > 0 {
			view = unsafe.Slice((*int16)(unsafe.Pointer(&r.buf[r.offset])), n)
		}
		r.offset += n * 2
		return view, true, nil
	}
	out := make([]int16, n)
	bo := r.byteOrder()
	for i := 0; i < n; i++ {
		out[i] = int16(bo.Uint16(r.buf[r.offset:]))
		r.offset += 2
	}
	return out, false, nil
}

// Uint16Array mirrors Int16Array for unsigned values.
func (r *Reader) Uint16Array(count ...uint32) ([]uint16, bool, error) {
	n, err := r.elementCount(count)
	if err != nil {
		return nil, false, err
	}
	r.align(2)
	if err := r.ensure(n * 2); err != nil {
		return nil, false, err
	}
	if r.canAliasElement(2, n) {
		var view []uint16
		if n > 0 {
			view = unsafe.Slice((*uint16)(unsafe.Pointer(&r.buf[r.offset])), n)
		}
		r.offset += n * 2
		return view, true, nil
	}
	out := make([]uint16, n)
	bo := r.byteOrder()
	for i := 0; i < n; i++ {
		out[i] = bo.Uint16(r.buf[r.offset:])
		r.offset += 2
	}
	return out, false, nil
}

// Int32Array mirrors Int16Array for 4-byte signed values.
func (r *Reader) Int32Array(count ...uint32) ([]int32, bool, error) {
	n, err := r.elementCount(count)
	if err != nil {
		return nil, false, err
	}
	r.align(4)
	if err := r.ensure(n * 4); err != nil {
		return nil, false, err
	}
	if r.canAliasElement(4, n) {
		var view []int32
		if n > 0 {
			view = unsafe.Slice((*int32)(unsafe.Pointer(&r.buf[r.offset])), n)
		}
		r.offset += n * 4
		return view, true, nil
	}
	out := make([]int32, n)
	bo := r.byteOrder()
	for i := 0; i < n; i++ {
		out[i] = int32(bo.Uint32(r.buf[r.offset:]))
		r.offset += 4
	}
	return out, false, nil
}

// Uint32Array mirrors Int32Array for unsigned values.
func (r *Reader) Uint32Array(count ...uint32) ([]uint32, bool, error) {
	n, err := r.elementCount(count)
	if err != nil {
		return nil, false, err
	}
	r.align(4)
	if err := r.ensure(n * 4); err != nil {
		return nil, false, err
	}
	if r.canAliasElement(4, n) {
		var view []uint32
		if n > 0 {
			view = unsafe.Slice((*uint32)(unsafe.Pointer(&r.buf[r.offset])), n)
		}
		r.offset += n * 4
		return view, true, nil
	}
	out := make([]uint32, n)
	bo := r.byteOrder()
	for i := 0; i < n; i++ {
		out[i] = bo.Uint32(r.buf[r.offset:])
		r.offset += 4
	}
	return out, false, nil
}

// Float32Array mirrors Int32Array, reinterpreting each 4-byte group as IEEE-754.
func (r *Reader) Float32Array(count ...uint32) ([]float32, bool, error) {
	n, err := r.elementCount(count)
	if err != nil {
		return nil, false, err
	}
	r.align(4)
	if err := r.ensure(n * 4); err != nil {
		return nil, false, err
	}
	if r.canAliasElement(4, n) {
		var view []float32
		if n > 0 {
			view = unsafe.Slice((*float32)(unsafe.Pointer(&r.buf[r.offset])), n)
		}
		r.offset += n * 4
		return view, true, nil
	}
	out := make([]float32, n)
	bo := r.byteOrder()
	for i := 0; i < n; i++ {
		out[i] = math.Float32frombits(bo.Uint32(r.buf[r.offset:]))
		r.offset += 4
	}
	return out, false, nil
}

// Int64Array mirrors Int16Array for 8-byte signed values, aligned to
// eightByteAlignment.
func (r *Reader) Int64Array(count ...uint32) ([]int64, bool, error) {
	n, err := r.elementCount(count)
	if err != nil {
		return nil, false, err
	}
	r.align(r.eightByteAlignment())
	if err := r.ensure(n * 8); err != nil {
		return nil, false, err
	}
	if r.canAliasElement(8, n) {
		var view []int64
		if n > 0 {
			view = unsafe.Slice((*int64)(unsafe.Pointer(&r.buf[r.offset])), n)
		}
		r.offset += n * 8
		return view, true, nil
	}
	out := make([]int64, n)
	bo := r.byteOrder()
	for i := 0; i < n; i++ {
		out[i] = int64(bo.Uint64(r.buf[r.offset:]))
		r.offset += 8
	}
	return out, false, nil
}

// Uint64Array mirrors Int64Array for unsigned values.
func (r *Reader) Uint64Array(count ...uint32) ([]uint64, bool, error) {
	n, err := r.elementCount(count)
	if err != nil {
		return nil, false, err
	}
	r.align(r.eightByteAlignment())
	if err := r.ensure(n * 8); err != nil {
		return nil, false, err
	}
	if r.canAliasElement(8, n) {
		var view []uint64
		if n > 0 {
			view = unsafe.Slice((*uint64)(unsafe.Pointer(&r.buf[r.offset])), n)
		}
		r.offset += n * 8
		return view, true, nil
	}
	out := make([]uint64, n)
	bo := r.byteOrder()
	for i := 0; i < n; i++ {
		out[i] = bo.Uint64(r.buf[r.offset:])
		r.offset += 8
	}
	return out, false, nil
}

// Float64Array mirrors Int64Array, reinterpreting each 8-byte group as IEEE-754.
func (r *Reader) Float64Array(count ...uint32) ([]float64, bool, error) {
	n, err := r.elementCount(count)
	if err != nil {
		return nil, false, err
	}
	r.align(r.eightByteAlignment())
	if err := r.ensure(n * 8); err != nil {
		return nil, false, err
	}
	if r.canAliasElement(8, n) {
		var view []float64
		if n > 0 {
			view = unsafe.Slice((*float64)(unsafe.Pointer(&r.buf[r.offset])), n)
		}
		r.offset += n * 8
		return view, true, nil
	}
	out := make([]float64, n)
	bo := r.byteOrder()
	for i := 0; i < n; i++ {
		out[i] = math.Float64frombits(bo.Uint64(r.buf[r.offset:]))
		r.offset += 8
	}
	return out, false, nil
}

// StringArray materializes a list of decoded strings; strings are never
// eligible for zero-copy since they require null-terminator trimming and
// UTF-8 validation.
func (r *Reader) StringArray(count ...uint32) ([]string, error) {
	n, err := r.elementCount(count)
	if err != nil {
		return nil, err
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		s, err := r.String()
		if err != nil {
			return nil, err
		}
		out[i] = s
	}
	return out, nil
}
