package format

import (
	"strconv"

	"github.com/joshuapare/bencodekit/internal/digits"
	"github.com/joshuapare/bencodekit/pkg/types"
)

// ParseInteger decodes the integer token starting at b[pos].
//
// On success it returns the value and the offset just past the closing 'e'.
// On failure the returned offset is the position of the offending byte.
func ParseInteger(b []byte, pos int, k digits.Kernel) (int64, int, types.ParsingErrc) {
	if pos >= len(b) {
		return 0, pos, types.UnexpectedEOF
	}
	if b[pos] != IntegerBegin {
		return 0, pos, types.ExpectedIntegerStart
	}
	pos++
	v, n, code := digits.ParseInt64(b[pos:], k)
	pos += n
	if code != 0 {
		return 0, pos, code
	}
	if pos >= len(b) {
		return 0, pos, types.UnexpectedEOF
	}
	if b[pos] != End {
		return 0, pos, types.ExpectedEnd
	}
	return v, pos + 1, 0
}

// AppendInteger appends the integer token for v to dst.
func AppendInteger(dst []byte, v int64) []byte {
	dst = append(dst, IntegerBegin)
	dst = strconv.AppendInt(dst, v, 10)
	return append(dst, End)
}

// IntegerLen returns the encoded length of the integer token for v.
func IntegerLen(v int64) int {
	n := 3 // 'i', one digit, 'e'
	if v < 0 {
		n++
	}
	for v >= 10 || v <= -10 {
		v /= 10
		n++
	}
	return n
}
