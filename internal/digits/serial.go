package digits

import "math/bits"

// maxSafeDigits is the longest run whose value always fits in a uint64.
const maxSafeDigits = 19

var pow10 = [...]uint64{
	1,
	10,
	100,
	1_000,
	10_000,
	100_000,
	1_000_000,
	10_000_000,
	100_000_000,
	1_000_000_000,
	10_000_000_000,
	100_000_000_000,
	1_000_000_000_000,
	10_000_000_000_000,
	100_000_000_000_000,
	1_000_000_000_000_000,
	10_000_000_000_000_000,
	100_000_000_000_000_000,
	1_000_000_000_000_000_000,
	10_000_000_000_000_000_000,
}

func scanSerial(b []byte) (int, uint64, bool) {
	return accumulate(b, 0, 0, false)
}

// accumulate continues a digit run at b[run:], where v is the value of the
// run digits already consumed.
func accumulate(b []byte, run int, v uint64, overflow bool) (int, uint64, bool) {
	for ; run < len(b); run++ {
		d := b[run] - '0'
		if d > 9 {
			break
		}
		switch {
		case overflow:
		case run < maxSafeDigits:
			v = v*10 + uint64(d)
		default:
			v, overflow = mulAdd(v, 10, uint64(d))
		}
	}
	return run, v, overflow
}

// mulAdd returns v*m + a and whether the result overflowed.
func mulAdd(v, m, a uint64) (uint64, bool) {
	hi, lo := bits.Mul64(v, m)
	sum, carry := bits.Add64(lo, a, 0)
	return sum, hi != 0 || carry != 0
}
