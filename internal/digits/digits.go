// Package digits converts ASCII decimal digit runs to integers.
//
// Four interchangeable kernels implement the same contract:
//
//   - Serial: one digit per step, overflow-checked near the uint64 digit budget.
//   - SWAR: eight digits per machine word, reduced with a multiply/shift network.
//   - Vec128, Vec256: 16 and 32 byte lanes, a shuffle table that left-aligns the
//     digit run, and a pairwise multiply-add reduction.
//
// Every kernel returns identical (value, consumed, code) for every input; the
// shared tests in this package enforce that. Kernels fall back to a narrower
// one when fewer bytes remain than their block width, and Serial is always
// available.
//
// A code of zero means success. Otherwise consumed is the offset of the error
// relative to the start of b:
//
//   - UnexpectedEOF: b is empty (or holds only a minus sign).
//   - ExpectedDigit: the first byte after an optional sign is not a digit.
//   - LeadingZero, ResultOutOfRange, NegativeZero: the full run was consumed.
package digits

import (
	"fmt"
	"math"

	"github.com/joshuapare/bencodekit/pkg/types"
)

// Kernel selects a digit-parsing algorithm.
type Kernel uint8

const (
	Serial Kernel = iota
	SWAR
	Vec128
	Vec256
)

// Kernels lists every kernel, narrowest first.
var Kernels = [...]Kernel{Serial, SWAR, Vec128, Vec256}

func (k Kernel) String() string {
	switch k {
	case Serial:
		return "serial"
	case SWAR:
		return "swar"
	case Vec128:
		return "vec128"
	case Vec256:
		return "vec256"
	default:
		return fmt.Sprintf("kernel(%d)", uint8(k))
	}
}

// ParseKernel maps a kernel name to its Kernel. "auto" and "" select Best().
func ParseKernel(name string) (Kernel, error) {
	switch name {
	case "", "auto":
		return Best(), nil
	case "serial":
		return Serial, nil
	case "swar":
		return SWAR, nil
	case "vec128":
		return Vec128, nil
	case "vec256":
		return Vec256, nil
	}
	return 0, fmt.Errorf("digits: unknown kernel %q", name)
}

// ParseUint64 parses an unsigned 64-bit decimal at the start of b.
func ParseUint64(b []byte, k Kernel) (uint64, int, types.ParsingErrc) {
	return parseMagnitude(b, math.MaxUint64, k)
}

// ParseUint32 parses an unsigned 32-bit decimal at the start of b.
func ParseUint32(b []byte, k Kernel) (uint32, int, types.ParsingErrc) {
	v, n, code := parseMagnitude(b, math.MaxUint32, k)
	return uint32(v), n, code
}

// ParseInt64 parses an optionally negative 64-bit decimal at the start of b.
func ParseInt64(b []byte, k Kernel) (int64, int, types.ParsingErrc) {
	return parseSigned(b, math.MaxInt64, k)
}

// ParseInt32 parses an optionally negative 32-bit decimal at the start of b.
func ParseInt32(b []byte, k Kernel) (int32, int, types.ParsingErrc) {
	v, n, code := parseSigned(b, math.MaxInt32, k)
	return int32(v), n, code
}

func parseSigned(b []byte, max uint64, k Kernel) (int64, int, types.ParsingErrc) {
	if len(b) == 0 || b[0] != '-' {
		v, n, code := parseMagnitude(b, max, k)
		return int64(v), n, code
	}
	v, n, code := parseMagnitude(b[1:], max+1, k)
	n++
	if code != 0 {
		return 0, n, code
	}
	if v == 0 {
		return 0, n, types.NegativeZero
	}
	// v may be max+1, which wraps to the minimum of the signed type.
	return -int64(v), n, 0
}

func parseMagnitude(b []byte, limit uint64, k Kernel) (uint64, int, types.ParsingErrc) {
	if len(b) == 0 {
		return 0, 0, types.UnexpectedEOF
	}
	run, v, overflow := scan(b, k)
	switch {
	case run == 0:
		return 0, 0, types.ExpectedDigit
	case run > 1 && b[0] == '0':
		return 0, run, types.LeadingZero
	case overflow || v > limit:
		return 0, run, types.ResultOutOfRange
	}
	return v, run, 0
}

// scan measures the digit run at the start of b and computes its value.
// When overflow is set the value exceeded uint64 and v is meaningless.
func scan(b []byte, k Kernel) (run int, v uint64, overflow bool) {
	switch k {
	case Vec256:
		return scanVec256(b)
	case Vec128:
		return scanVec128(b)
	case SWAR:
		return scanSWAR(b)
	default:
		return scanSerial(b)
	}
}
