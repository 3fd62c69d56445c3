package digits

import (
	"math/bits"

	"github.com/joshuapare/bencodekit/internal/buf"
)

const (
	swarWidth = 8

	asciiZeros = 0x3030303030303030
	highBits   = 0x8080808080808080
	// Adding 0x46 pushes any byte above '9' into the high bit.
	aboveNine = 0x4646464646464646
)

func scanSWAR(b []byte) (int, uint64, bool) {
	var (
		run      int
		v        uint64
		overflow bool
	)
	for len(b)-run >= swarWidth {
		w := buf.U64LE(b[run:])
		n := swarDigitCount(w)
		if n == 0 {
			return run, v, overflow
		}
		chunk := swarParseEight(swarAlign(w, n))
		switch {
		case overflow:
		case run+n <= maxSafeDigits:
			v = v*pow10[n] + chunk
		default:
			v, overflow = mulAdd(v, pow10[n], chunk)
		}
		run += n
		if n < swarWidth {
			return run, v, overflow
		}
	}
	return accumulate(b, run, v, overflow)
}

// swarDigitCount returns how many leading bytes of the little-endian word w
// are ASCII digits. Carries and borrows only propagate out of non-digit bytes,
// so every byte before the first non-digit is classified correctly.
func swarDigitCount(w uint64) int {
	above := w + aboveNine
	below := w - asciiZeros
	return bits.TrailingZeros64((above|below)&highBits) / 8
}

// swarAlign moves the n digit bytes of w to the top of the word and fills
// the vacated low bytes with '0', so the eight-digit reduction sees n digits
// preceded by leading zeros.
func swarAlign(w uint64, n int) uint64 {
	s := uint(8 * (swarWidth - n))
	return w<<s | asciiZeros>>(64-s)
}

// swarParseEight reduces eight ASCII digits, most significant in the lowest
// byte, to their value.
func swarParseEight(w uint64) uint64 {
	const (
		mask = 0x000000FF000000FF
		mul1 = 100 + 1_000_000<<32
		mul2 = 1 + 10_000<<32
	)
	w -= asciiZeros
	w = w*10 + w>>8
	return ((w&mask)*mul1 + (w>>16&mask)*mul2) >> 32
}
