// Package hostend is the trivial host-endianness oracle spec.md §6 allows
// the codec to depend on: "a host-endianness oracle returning
// is_big_endian()... the codec is otherwise standalone."
package hostend

import "golang.org/x/sys/cpu"

// IsBigEndian reports whether the running GOARCH is big-endian.
func IsBigEndian() bool {
	return cpu.IsBigEndian
}
