package format

import (
	"math"
	"strconv"

	"github.com/joshuapare/bencodekit/internal/buf"
	"github.com/joshuapare/bencodekit/internal/digits"
	"github.com/joshuapare/bencodekit/pkg/types"
)

// ParseString decodes the string token starting at b[pos].
//
// On success it returns the offset of the string data relative to pos, the
// data length, and the offset just past the data. On failure the third
// result is the position of the offending byte.
func ParseString(b []byte, pos int, k digits.Kernel) (off, size, next int, code types.ParsingErrc) {
	if pos >= len(b) {
		return 0, 0, pos, types.UnexpectedEOF
	}
	if b[pos] == Minus {
		return 0, 0, pos, types.NegativeStringLength
	}
	length, n, code := digits.ParseUint64(b[pos:], k)
	p := pos + n
	if code != 0 {
		return 0, 0, p, code
	}
	if p >= len(b) {
		return 0, 0, p, types.UnexpectedEOF
	}
	if b[p] != Colon {
		return 0, 0, p, types.ExpectedColon
	}
	p++
	if length > math.MaxInt || !buf.Has(b, p, int(length)) {
		return 0, 0, len(b), types.UnexpectedEOF
	}
	return p - pos, int(length), p + int(length), 0
}

// AppendString appends the string token for s to dst.
func AppendString(dst, s []byte) []byte {
	dst = strconv.AppendInt(dst, int64(len(s)), 10)
	dst = append(dst, Colon)
	return append(dst, s...)
}

// StringLen returns the encoded length of the string token for n bytes.
func StringLen(n int) int {
	return IntegerLen(int64(n)) - 1 + n
}
