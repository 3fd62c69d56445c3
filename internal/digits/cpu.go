package digits

import "golang.org/x/sys/cpu"

// Best returns the widest kernel worth running on this CPU.
func Best() Kernel {
	switch {
	case cpu.X86.HasAVX2:
		return Vec256
	case cpu.X86.HasSSE41 || cpu.ARM64.HasASIMD:
		return Vec128
	default:
		return SWAR
	}
}

// Default is the kernel chosen for this process at startup.
var Default = Best()
