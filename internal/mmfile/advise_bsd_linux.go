//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package mmfile

import "golang.org/x/sys/unix"

// adviseSequential hints that the mapping is read front to back, which is how
// both decoders consume it. Failure is ignored.
func adviseSequential(data []byte) {
	_ = unix.Madvise(data, unix.MADV_SEQUENTIAL)
}
