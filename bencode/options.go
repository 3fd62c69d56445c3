package bencode

import (
	"github.com/joshuapare/bencodekit/internal/digits"
	"github.com/joshuapare/bencodekit/pkg/types"
)

// Kernel selects the digit-parsing algorithm used for integers and string
// lengths. All kernels produce identical results.
type Kernel = digits.Kernel

const (
	KernelSerial = digits.Serial
	KernelSWAR   = digits.SWAR
	KernelVec128 = digits.Vec128
	KernelVec256 = digits.Vec256
)

// ParseKernel maps "serial", "swar", "vec128", "vec256", or "auto" to a Kernel.
func ParseKernel(name string) (Kernel, error) {
	return digits.ParseKernel(name)
}

// StringMode controls how the push parser hands string bytes to a consumer.
type StringMode uint8

const (
	// StringCopy passes a fresh copy of every string.
	StringCopy StringMode = iota
	// StringBorrow passes sub-slices of the input buffer. The consumer must
	// not modify them or retain them past the lifetime of the input.
	StringBorrow
)

// Options configures decoding. The zero value is usable; DefaultOptions
// additionally selects the fastest digit kernel for the running CPU.
type Options struct {
	// Limits bounds nesting depth and token count.
	// Non-positive fields fall back to types.DefaultLimits().
	Limits types.Limits

	// Strings selects copied or borrowed string events for Parse.
	// Default: StringCopy
	Strings StringMode

	// Kernel selects the digit parser.
	// Default: the widest kernel the CPU supports.
	Kernel Kernel
}

// DefaultOptions returns sensible defaults for decoding.
func DefaultOptions() Options {
	return Options{
		Limits:  types.DefaultLimits(),
		Strings: StringCopy,
		Kernel:  digits.Default,
	}
}

func (o Options) normalize() Options {
	o.Limits = o.Limits.Normalize()
	return o
}
