package cdr

// Int8Array writes values with no per-element alignment. When writeLength
// is true, a uint32 sequence length is written first.
func (w *Writer) Int8Array(values []int8, writeLength bool) error {
	if writeLength {
		if err := w.SequenceLength(uint32(len(values))); err != nil {
			return err
		}
	}
	for _, v := range values {
		if err := w.Int8(v); err != nil {
			return err
		}
	}
	return nil
}

// Uint8Array writes values with no per-element alignment. When writeLength
// is true, a uint32 sequence length is written first.
func (w *Writer) Uint8Array(values []uint8, writeLength bool) error {
	if writeLength {
		if err := w.SequenceLength(uint32(len(values))); err != nil {
			return err
		}
	}
	w.growTo(w.offset + len(values))
	copy(w.buf[w.offset:], values)
	w.offset += len(values)
	return nil
}

// Int16Array writes values aligned once to 2 before the first element, so
// the reader's view matches even for an empty array.
func (w *Writer) Int16Array(values []int16, writeLength bool) error {
	if writeLength {
		if err := w.SequenceLength(uint32(len(values))); err != nil {
			return err
		}
	}
	w.align(2)
	for _, v := range values {
		if err := w.Int16(v); err != nil {
			return err
		}
	}
	return nil
}

// Uint16Array mirrors Int16Array for unsigned values.
func (w *Writer) Uint16Array(values []uint16, writeLength bool) error {
	if writeLength {
		if err := w.SequenceLength(uint32(len(values))); err != nil {
			return err
		}
	}
	w.align(2)
	for _, v := range values {
		if err := w.Uint16(v); err != nil {
			return err
		}
	}
	return nil
}

// Int32Array mirrors Int16Array for 4-byte signed values.
func (w *Writer) Int32Array(values []int32, writeLength bool) error {
	if writeLength {
		if err := w.SequenceLength(uint32(len(values))); err != nil {
			return err
		}
	}
	w.align(4)
	for _, v := range values {
		if err := w.Int32(v); err != nil {
			return err
		}
	}
	return nil
}

// Uint32Array mirrors Int32Array for unsigned values.
func (w *Writer) Uint32Array(values []uint32, writeLength bool) error {
	if writeLength {
		if err := w.SequenceLength(uint32(len(values))); err != nil {
			return err
		}
	}
	w.align(4)
	for _, v := range values {
		if err := w.Uint32(v); err != nil {
			return err
		}
	}
	return nil
}

// Float32Array mirrors Int32Array for IEEE-754 values.
func (w *Writer) Float32Array(values []float32, writeLength bool) error {
	if writeLength {
		if err := w.SequenceLength(uint32(len(values))); err != nil {
			return err
		}
	}
	w.align(4)
	for _, v := range values {
		if err := w.Float32(v); err != nil {
			return err
		}
	}
	return nil
}

// Int64Array mirrors Int16Array, aligned to eightByteAlignment.
func (w *Writer) Int64Array(values []int64, writeLength bool) error {
	if writeLength {
		if err := w.SequenceLength(uint32(len(values))); err != nil {
			return err
		}
	}
	w.align(w.eightByteAlignment())
	for _, v := range values {
		if err := w.Int64(v); err != nil {
			return err
		}
	}
	return nil
}

// Uint64Array mirrors Int64Array for unsigned values.
func (w *Writer) Uint64Array(values []uint64, writeLength bool) error {
	if writeLength {
		if err := w.SequenceLength(uint32(len(values))); err != nil {
			return err
		}
	}
	w.align(w.eightByteAlignment())
	for _, v := range values {
		if err := w.Uint64(v); err != nil {
			return err
		}
	}
	return nil
}

// Float64Array mirrors Int64Array for IEEE-754 values.
func (w *Writer) Float64Array(values []float64, writeLength bool) error {
	if writeLength {
		if err := w.SequenceLength(uint32(len(values))); err != nil {
			return err
		}
	}
	w.align(w.eightByteAlignment())
	for _, v := range values {
		if err := w.Float64(v); err != nil {
			return err
		}
	}
	return nil
}

// StringArray writes each value as a length-prefixed, null-terminated
// string. When writeLength is true, a uint32 sequence length is written
// first.
func (w *Writer) StringArray(values []string, writeLength bool) error {
	if writeLength {
		if err := w.SequenceLength(uint32(len(values))); err != nil {
			return err
		}
	}
	for _, v := range values {
		if err := w.String(v); err != nil {
			return err
		}
	}
	return nil
}
