package cdr

// Reserved parameter IDs, per spec.md §3.
const (
	SentinelPID uint32 = 0x3F02
	ExtendedPID uint32 = 0x3F01
)

// MemberHeader is the decoded form of an XCDR1 parameter-list header or an
// XCDR2 EMHEADER, as returned by Reader.EMHeader. Writer.EMHeader takes
// the same fields as separate arguments.
type MemberHeader struct {
	ID                 uint32
	ObjectSize         uint32
	MustUnderstand     bool
	LengthCode         uint8 // XCDR2 only; meaningless when ReadSentinelHeader is true
	HasLengthCode      bool  // true when LengthCode was set (XCDR2 path)
	ReadSentinelHeader bool  // true when a sentinel was consumed instead of a member (XCDR1 only)
}
