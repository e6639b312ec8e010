package cdr

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Callers match them with errors.Is; every error
// returned by this package wraps one of these via %w so the wrapping
// (which adds offset/value context) never breaks the match.
var (
	ErrShortHeader              = errors.New("cdr: buffer shorter than the 4-byte encapsulation header")
	ErrUnsupportedEncapsulation = errors.New("cdr: unsupported encapsulation kind")
	ErrOutOfBounds              = errors.New("cdr: offset out of bounds")
	ErrLimitExceeded            = errors.New("cdr: limit can only shrink the visible range")
	ErrEncoding                 = errors.New("cdr: invalid UTF-8 in string")
	ErrReservedPid              = errors.New("cdr: reserved or implementation-specific PID")
	ErrExpectedSentinel         = errors.New("cdr: expected sentinel header")
	ErrMalformedHeader          = errors.New("cdr: malformed member header")

	errInvalidUTF8 = errors.New("invalid UTF-8")
)

func shortHeaderErr(n int) error {
	return fmt.Errorf("%w: got %d bytes", ErrShortHeader, n)
}

func unsupportedEncapsulationErr(kind Kind) error {
	return fmt.Errorf("%w: 0x%02x", ErrUnsupportedEncapsulation, uint8(kind))
}

func outOfBoundsErr(offset, limit int) error {
	return fmt.Errorf("%w: offset %d, limit %d", ErrOutOfBounds, offset, limit)
}

func limitExceededErr(current, requested int) error {
	return fmt.Errorf("%w: current %d, requested %d", ErrLimitExceeded, current, requested)
}

func encodingErr(offset int, err error) error {
	return fmt.Errorf("%w: at offset %d: %s", ErrEncoding, offset, err)
}

func reservedPidErr(pid uint32) error {
	return fmt.Errorf("%w: 0x%04x", ErrReservedPid, pid)
}

func expectedSentinelErr(offset int, got uint16) error {
	return fmt.Errorf("%w: at offset %d, got 0x%04x", ErrExpectedSentinel, offset, got)
}

func malformedHeaderErr(reason string) error {
	return fmt.Errorf("%w: %s", ErrMalformedHeader, reason)
}
