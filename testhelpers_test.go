package cdr

import (
	"encoding/hex"
	"testing"
)

// mustHex decodes a hex string fixture, failing the test on malformed input.
func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("invalid hex fixture %q: %s", s, err)
	}
	return b
}
