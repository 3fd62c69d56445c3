package digits

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/bencodekit/pkg/types"
)

// padding forces the wide kernels onto their block paths.
var padding = "e" + strings.Repeat("x", 40)

type int64Case struct {
	name  string
	in    string
	value int64
	n     int
	code  types.ParsingErrc
	pad   bool
}

func TestParseInt64_Rules(t *testing.T) {
	tests := []int64Case{
		{name: "zero", in: "0", value: 0, n: 1, pad: true},
		{name: "single digit", in: "7", value: 7, n: 1, pad: true},
		{name: "negative", in: "-7", value: -7, n: 2, pad: true},
		{name: "terminated", in: "123e", value: 123, n: 3, pad: true},
		{name: "double zero", in: "00", n: 2, code: types.LeadingZero, pad: true},
		{name: "leading zero", in: "01", n: 2, code: types.LeadingZero, pad: true},
		{name: "negative zero", in: "-0", n: 2, code: types.NegativeZero, pad: true},
		{name: "negative leading zero", in: "-00", n: 3, code: types.LeadingZero, pad: true},
		{name: "empty", in: "", n: 0, code: types.UnexpectedEOF},
		{name: "sign only", in: "-", n: 1, code: types.UnexpectedEOF},
		{name: "not a digit", in: "x", n: 0, code: types.ExpectedDigit, pad: true},
		{name: "sign then letter", in: "-x", n: 1, code: types.ExpectedDigit, pad: true},
		{name: "max", in: "9223372036854775807", value: math.MaxInt64, n: 19, pad: true},
		{name: "max+1", in: "9223372036854775808", n: 19, code: types.ResultOutOfRange, pad: true},
		{name: "min", in: "-9223372036854775808", value: math.MinInt64, n: 20, pad: true},
		{name: "min-1", in: "-9223372036854775809", n: 20, code: types.ResultOutOfRange, pad: true},
		{name: "max*10", in: "92233720368547758070", n: 20, code: types.ResultOutOfRange, pad: true},
		{name: "forty digits", in: strings.Repeat("9", 40), n: 40, code: types.ResultOutOfRange, pad: true},
		{name: "sixteen digits", in: "1234567890123456", value: 1234567890123456, n: 16, pad: true},
		{name: "eight digits", in: "12345678", value: 12345678, n: 8, pad: true},
	}

	for _, k := range Kernels {
		for _, tt := range tests {
			inputs := []string{tt.in}
			if tt.pad {
				inputs = append(inputs, tt.in+padding)
			}
			for _, in := range inputs {
				t.Run(k.String()+"/"+tt.name, func(t *testing.T) {
					v, n, code := ParseInt64([]byte(in), k)
					require.Equal(t, tt.code, code, "input %q", in)
					require.Equal(t, tt.n, n, "input %q", in)
					require.Equal(t, tt.value, v, "input %q", in)
				})
			}
		}
	}
}

func TestParseUint64_Boundaries(t *testing.T) {
	for _, k := range Kernels {
		t.Run(k.String(), func(t *testing.T) {
			v, n, code := ParseUint64([]byte("18446744073709551615"+padding), k)
			require.Zero(t, code)
			require.Equal(t, 20, n)
			require.Equal(t, uint64(math.MaxUint64), v)

			_, n, code = ParseUint64([]byte("18446744073709551616"), k)
			require.Equal(t, types.ResultOutOfRange, code)
			require.Equal(t, 20, n)

			_, _, code = ParseUint64([]byte("184467440737095516150"+padding), k)
			require.Equal(t, types.ResultOutOfRange, code)

			_, n, code = ParseUint64([]byte("-1"), k)
			require.Equal(t, types.ExpectedDigit, code)
			require.Equal(t, 0, n)
		})
	}
}

func TestParse32_Boundaries(t *testing.T) {
	for _, k := range Kernels {
		t.Run(k.String(), func(t *testing.T) {
			u, _, code := ParseUint32([]byte("4294967295"+padding), k)
			require.Zero(t, code)
			require.Equal(t, uint32(math.MaxUint32), u)

			_, _, code = ParseUint32([]byte("4294967296"+padding), k)
			require.Equal(t, types.ResultOutOfRange, code)

			i, _, code := ParseInt32([]byte("2147483647"), k)
			require.Zero(t, code)
			require.Equal(t, int32(math.MaxInt32), i)

			i, n, code := ParseInt32([]byte("-2147483648"+padding), k)
			require.Zero(t, code)
			require.Equal(t, 11, n)
			require.Equal(t, int32(math.MinInt32), i)

			_, _, code = ParseInt32([]byte("2147483648"), k)
			require.Equal(t, types.ResultOutOfRange, code)

			_, _, code = ParseInt32([]byte("-2147483649"+padding), k)
			require.Equal(t, types.ResultOutOfRange, code)
		})
	}
}

func TestParseKernel(t *testing.T) {
	for _, k := range Kernels {
		got, err := ParseKernel(k.String())
		require.NoError(t, err)
		require.Equal(t, k, got)
	}

	auto, err := ParseKernel("auto")
	require.NoError(t, err)
	require.Equal(t, Best(), auto)

	_, err = ParseKernel("avx512")
	require.Error(t, err)
}

func TestSWARDigitCount(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"12345678", 8},
		{"1234567e", 7},
		{"1:abcdef", 1},
		{"e1234567", 0},
		{"123/4567", 3},
		{"12\xff45678", 2},
		{"9\xba345678", 1},
	}
	for _, tt := range tests {
		w := uint64(0)
		for i := 7; i >= 0; i-- {
			w = w<<8 | uint64(tt.in[i])
		}
		require.Equal(t, tt.want, swarDigitCount(w), "input %q", tt.in)
	}
}

func TestSWARParseEight(t *testing.T) {
	w := uint64(0)
	for i := 7; i >= 0; i-- {
		w = w<<8 | uint64("12345678"[i])
	}
	require.Equal(t, uint64(12345678), swarParseEight(w))
	require.Equal(t, uint64(123), swarParseEight(swarAlign(w, 3)))
	require.Equal(t, uint64(1), swarParseEight(swarAlign(w, 1)))
}

func TestShuffleTable(t *testing.T) {
	require.Equal(t, [width128]byte{
		2, 1, 0, 0xff, 0xff, 0xff, 0xff, 0xff,
		0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	}, shuffle128[3])
	require.Equal(t, byte(31), shuffle256[32][0])
	require.Equal(t, byte(0), shuffle256[32][31])
	for _, c := range shuffle128[0] {
		require.Equal(t, byte(0xff), c)
	}
}
