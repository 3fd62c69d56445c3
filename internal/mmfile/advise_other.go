//go:build unix && !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package mmfile

func adviseSequential([]byte) {}
