package cdr

// lengthCodeImpliedSize maps XCDR2 EMHEADER length codes 0..3 to the
// object size they imply without any further bytes on the wire. Codes
// 4..7 instead signal that an inline uint32 follows (see
// Reader.emHeaderXCDR2 and Writer.emHeaderXCDR2).
var lengthCodeImpliedSize = [4]uint32{1, 2, 4, 8}

// lengthCodeForSize returns the smallest length code (0..3) whose implied
// size equals objectSize, or false if none matches.
func lengthCodeForSize(objectSize uint32) (uint8, bool) {
	for code, size := range lengthCodeImpliedSize {
		if size == objectSize {
			return uint8(code), true
		}
	}
	return 0, false
}
