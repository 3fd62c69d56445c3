package digits

import "math/bits"

const (
	width128 = 16
	width256 = 32

	// Longest run that can still fit in a uint64 when it has no leading zero.
	maxUint64Digits = 20
)

// Shuffle tables: row n reverses the first n bytes of a block (least
// significant digit first) and zeroes every other lane.
var (
	shuffle128 [width128 + 1][width128]byte
	shuffle256 [width256 + 1][width256]byte
)

func init() {
	for n := range shuffle128 {
		fillShuffle(shuffle128[n][:], n)
	}
	for n := range shuffle256 {
		fillShuffle(shuffle256[n][:], n)
	}
}

func fillShuffle(row []byte, n int) {
	for i := range row {
		if i < n {
			row[i] = byte(n - 1 - i)
		} else {
			row[i] = 0xff
		}
	}
}

func scanVec128(b []byte) (int, uint64, bool) {
	if len(b) < width128 {
		return scanSWAR(b)
	}
	var block, lanes [width128]byte
	copy(block[:], b)
	run := bits.TrailingZeros32(^uint32(laneDigitMask(block[:])))
	if run == 0 {
		return 0, 0, false
	}
	shuffle(lanes[:], block[:], shuffle128[run][:])
	v, overflow := reduceLanes(lanes[:], run)
	if run == width128 {
		return accumulate(b, run, v, overflow)
	}
	return run, v, overflow
}

func scanVec256(b []byte) (int, uint64, bool) {
	if len(b) < width256 {
		return scanVec128(b)
	}
	var block, lanes [width256]byte
	copy(block[:], b)
	run := bits.TrailingZeros64(^laneDigitMask(block[:]))
	if run == 0 {
		return 0, 0, false
	}
	shuffle(lanes[:], block[:], shuffle256[run][:])
	v, overflow := reduceLanes(lanes[:], run)
	if run == width256 {
		return accumulate(b, run, v, overflow)
	}
	return run, v, overflow
}

// laneDigitMask sets bit i when block[i] is an ASCII digit. Adding 70 maps
// exactly '0'..'9' onto the signed range 118..127.
func laneDigitMask(block []byte) uint64 {
	var m uint64
	for i, c := range block {
		if int8(c+70) > 117 {
			m |= 1 << uint(i)
		}
	}
	return m
}

// shuffle writes src[mask[i]] to dst[i], or zero when the mask byte has its
// high bit set.
func shuffle(dst, src, mask []byte) {
	for i, idx := range mask {
		if idx&0x80 != 0 {
			dst[i] = 0
		} else {
			dst[i] = src[idx]
		}
	}
}

// reduceLanes folds reversed ASCII digit lanes into one value: adjacent lanes
// combine ×10, then ×100, then ×10000 into eight-digit groups, and the groups
// combine ×10^8.
func reduceLanes(lanes []byte, run int) (uint64, bool) {
	if run > maxUint64Digits {
		return 0, true
	}
	var (
		pairs  [width256 / 2]uint64
		quads  [width256 / 4]uint64
		groups [width256 / 8]uint64
	)
	n := len(lanes)
	for i := range n / 2 {
		pairs[i] = laneDigit(lanes[2*i]) + 10*laneDigit(lanes[2*i+1])
	}
	for i := range n / 4 {
		quads[i] = pairs[2*i] + 100*pairs[2*i+1]
	}
	for i := range n / 8 {
		groups[i] = quads[2*i] + 10_000*quads[2*i+1]
	}
	var v uint64
	for i := n/8 - 1; i >= 0; i-- {
		var overflow bool
		if v, overflow = mulAdd(v, pow10[8], groups[i]); overflow {
			return 0, true
		}
	}
	return v, false
}

// laneDigit is a saturating subtract of '0'; zeroed lanes stay zero.
func laneDigit(c byte) uint64 {
	if c < '0' {
		return 0
	}
	return uint64(c - '0')
}
