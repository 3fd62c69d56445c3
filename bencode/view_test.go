package bencode

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/bencodekit/pkg/types"
)

func TestView_DictAccess(t *testing.T) {
	root := mustIndex(t, sampleTorrent).Root()
	require.True(t, root.IsDict())

	d := root.MustDict()
	assert.Equal(t, 3, d.Len())
	assert.False(t, d.Empty())

	var keys []string
	for k := range d.Keys() {
		keys = append(keys, k.String())
	}
	assert.Equal(t, []string{"announce", "info", "list"}, keys)

	announce, err := d.At("announce")
	require.NoError(t, err)
	text, err := announce.Text()
	require.NoError(t, err)
	assert.Equal(t, "localhost", text)

	assert.True(t, d.Contains("info"))
	assert.Equal(t, 1, d.Count("info"))
	assert.Equal(t, 0, d.Count("missing"))

	_, err = d.At("missing")
	require.ErrorIs(t, err, types.ErrOutOfRange)

	info, ok := d.Find("info")
	require.True(t, ok)
	assert.Equal(t, sampleInfo, string(info.BencodedView()))

	length, err := info.MustDict().At("length")
	require.NoError(t, err)
	n, err := length.Int()
	require.NoError(t, err)
	assert.Equal(t, int64(1024), n)
}

func TestView_DictDuplicateKeys(t *testing.T) {
	d := mustIndex(t, "d1:ai1e1:ai2ee").Root().MustDict()
	assert.Equal(t, 2, d.Count("a"))
	v, ok := d.Find("a")
	require.True(t, ok)
	assert.Equal(t, int64(1), v.MustInteger().Value())
}

func TestView_ListAccess(t *testing.T) {
	list, err := mustIndex(t, sampleTorrent).Root().MustDict().At("list")
	require.NoError(t, err)
	l, err := list.AsList()
	require.NoError(t, err)
	assert.Equal(t, 5, l.Len())

	front, err := l.Front()
	require.NoError(t, err)
	assert.Equal(t, int64(1), front.MustInteger().Value())

	back, err := l.Back()
	require.NoError(t, err)
	assert.True(t, back.IsDict())
	assert.True(t, back.MustDict().Empty())

	second, err := l.At(1)
	require.NoError(t, err)
	assert.Equal(t, int64(-2), second.MustInteger().Value())

	third, err := l.At(2)
	require.NoError(t, err)
	assert.Equal(t, "abc", third.MustString().String())
	assert.Equal(t, "3:abc", string(third.BencodedView()))

	fourth, err := l.At(3)
	require.NoError(t, err)
	assert.True(t, fourth.MustList().Empty())

	_, err = l.At(5)
	require.ErrorIs(t, err, types.ErrOutOfRange)
	_, err = l.At(-1)
	require.ErrorIs(t, err, types.ErrOutOfRange)

	kinds := []types.Type{}
	for v := range l.Values() {
		kinds = append(kinds, v.Type())
	}
	assert.Equal(t, []types.Type{types.Integer, types.Integer, types.String, types.List, types.Dict}, kinds)
}

func TestView_BackSkipsNestedContainer(t *testing.T) {
	l := mustIndex(t, "li1eli2ei3eee").Root().MustList()
	back, err := l.Back()
	require.NoError(t, err)
	require.True(t, back.IsList())
	assert.Equal(t, "li2ei3ee", string(back.BencodedView()))
	assert.Equal(t, 2, back.MustList().Len())
}

func TestView_EmptyList(t *testing.T) {
	l := mustIndex(t, "le").Root().MustList()
	_, err := l.Front()
	require.ErrorIs(t, err, types.ErrOutOfRange)
	_, err = l.Back()
	require.ErrorIs(t, err, types.ErrOutOfRange)
	assert.Empty(t, slices.Collect(l.Values()))
}

func TestView_BadAccess(t *testing.T) {
	root := mustIndex(t, "i5e").Root()

	_, err := root.AsDict()
	require.ErrorIs(t, err, types.ErrBadAccess)
	assert.EqualError(t, err, "expected dict, found integer: bad access")

	_, err = root.Text()
	require.ErrorIs(t, err, types.ErrBadAccess)

	var terr *types.Error
	require.True(t, errors.As(err, &terr))
	assert.Equal(t, types.ErrKindType, terr.Kind)

	assert.Panics(t, func() { root.MustList() })
	assert.NotPanics(t, func() { root.MustInteger() })
}

func TestView_StringBytesAreZeroCopy(t *testing.T) {
	buf := []byte("4:spam")
	tbl, err := DecodeIndex(buf)
	require.NoError(t, err)
	b := tbl.Root().MustString().Bytes()
	assert.Equal(t, "spam", string(b))
	assert.Equal(t, 4, cap(b))
	assert.Same(t, &buf[2], &b[0])
}

func TestView_Compare(t *testing.T) {
	docs := []string{"i-1e", "i2e", "0:", "1:a", "le", "li1ee", "li2ee", "de", "d1:ai1ee"}
	for i := range docs {
		for j := range docs {
			a := mustIndex(t, docs[i]).Root()
			b := mustIndex(t, docs[j]).Root()
			want := 0
			switch {
			case i < j:
				want = -1
			case i > j:
				want = 1
			}
			assert.Equal(t, want, a.Compare(b), "%s vs %s", docs[i], docs[j])
			assert.Equal(t, want, Compare(a.ToValue(), b.ToValue()), "%s vs %s", docs[i], docs[j])
		}
	}
}

func TestView_ZeroValue(t *testing.T) {
	var v View
	assert.False(t, v.Valid())
	assert.Equal(t, types.Uninitialized, v.Type())
	assert.Nil(t, v.BencodedView())
	assert.Equal(t, -1, v.Position())
}
