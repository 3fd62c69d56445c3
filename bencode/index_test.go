package bencode

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/bencodekit/pkg/types"
)

func TestDecodeIndex_Descriptors(t *testing.T) {
	tbl := mustIndex(t, "d3:fool1:xi42eee")
	descs := tbl.Descriptors()
	require.Len(t, descs, 7)

	assert.True(t, descs[0].IsDict())
	assert.True(t, descs[0].IsBegin())
	assert.Equal(t, 6, descs[0].Offset())
	assert.Equal(t, 1, descs[0].Size())

	assert.True(t, descs[1].IsDictKey())
	assert.Equal(t, 1, descs[1].Position())
	assert.Equal(t, 2, descs[1].Offset())
	assert.Equal(t, 3, descs[1].Size())

	assert.True(t, descs[2].IsList())
	assert.True(t, descs[2].IsDictValue())
	assert.Equal(t, 3, descs[2].Offset())
	assert.Equal(t, 2, descs[2].Size())

	assert.True(t, descs[3].IsString())
	assert.True(t, descs[3].IsListValue())

	assert.True(t, descs[4].IsInteger())
	assert.Equal(t, int64(42), descs[4].Value())

	assert.True(t, descs[5].IsEnd())
	assert.True(t, descs[5].IsList())
	assert.False(t, descs[5].IsBegin())
	assert.Equal(t, 3, descs[5].Offset())
	assert.Equal(t, 14, descs[5].Position())

	assert.True(t, descs[6].IsEnd())
	assert.True(t, descs[6].IsDict())
	assert.True(t, descs[6].IsStop())
	assert.Equal(t, 6, descs[6].Offset())
	assert.Equal(t, 15, descs[6].Position())

	for _, d := range descs[:6] {
		assert.False(t, d.IsStop(), d.String())
	}
}

func TestDecodeIndex_SampleShape(t *testing.T) {
	tbl := mustIndex(t, sampleTorrent)
	assert.Equal(t, 23, tbl.Len())
	assert.Equal(t, 1, tbl.Roots())
	assert.Equal(t, []byte(sampleTorrent), tbl.Buffer())
}

func TestDecodeIndexStream(t *testing.T) {
	tbl, err := DecodeIndexStream([]byte("i1eli2eei3e"))
	require.NoError(t, err)
	assert.Equal(t, 3, tbl.Roots())

	var got []int64
	for v := range tbl.Values() {
		if v.IsInteger() {
			got = append(got, v.MustInteger().Value())
		} else {
			got = append(got, -1)
		}
	}
	assert.Equal(t, []int64{1, -1, 3}, got)

	tbl, err = DecodeIndexStream(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.Len())
	assert.False(t, tbl.Root().Valid())
	assert.Empty(t, slices.Collect(tbl.Values()))
}

func TestDecodeIndex_StopOnSingleScalar(t *testing.T) {
	tbl := mustIndex(t, "4:spam")
	require.Equal(t, 1, tbl.Len())
	d := tbl.Descriptors()[0]
	assert.True(t, d.IsString())
	assert.True(t, d.IsStop())
	assert.Equal(t, types.String, d.Type())
}

func TestDescriptorType_String(t *testing.T) {
	assert.Equal(t, "none", DescriptorType(0).String())
	assert.Equal(t, "list|dict_value|end", (DescList | DescDictValue | DescEnd).String())
}
