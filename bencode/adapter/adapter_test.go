package adapter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/bencodekit/bencode"
	"github.com/joshuapare/bencodekit/pkg/types"
)

type fileEntry struct {
	Length int64
	Path   []string
}

var fileAdapter = Func(types.Dict,
	func(v bencode.Value) (fileEntry, error) {
		length, err := v.At("length")
		if err != nil {
			return fileEntry{}, err
		}
		n, err := Int64.Decode(*length)
		if err != nil {
			return fileEntry{}, err
		}
		path, err := v.At("path")
		if err != nil {
			return fileEntry{}, err
		}
		parts, err := Slice(String).Decode(*path)
		if err != nil {
			return fileEntry{}, err
		}
		return fileEntry{Length: n, Path: parts}, nil
	},
	func(f fileEntry) bencode.Value {
		return bencode.DictOf(
			bencode.Entry{Key: "length", Value: bencode.Int(f.Length)},
			bencode.Entry{Key: "path", Value: Slice(String).ToValue(f.Path)},
		)
	},
)

func TestScalars(t *testing.T) {
	n, err := Int64.DecodeBytes([]byte("i-12e"))
	require.NoError(t, err)
	assert.Equal(t, int64(-12), n)

	i, err := Int.Decode(bencode.Int(7))
	require.NoError(t, err)
	assert.Equal(t, 7, i)

	s, err := String.DecodeBytes([]byte("4:spam"))
	require.NoError(t, err)
	assert.Equal(t, "spam", s)

	b, err := Bytes.Decode(bencode.Str("ab"))
	require.NoError(t, err)
	assert.Equal(t, []byte("ab"), b)

	assert.Equal(t, "i5e", string(Int.Encode(5)))
	assert.Equal(t, "3:abc", string(String.Encode("abc")))
	assert.Equal(t, "2:xy", string(Bytes.Encode([]byte("xy"))))
}

func TestKindMismatch(t *testing.T) {
	tests := []struct {
		name string
		run  func() error
		code types.ConversionErrc
	}{
		{"int from string", func() error { _, err := Int64.Decode(bencode.Str("x")); return err }, types.NotIntegerType},
		{"string from int", func() error { _, err := String.Decode(bencode.Int(1)); return err }, types.NotStringType},
		{"slice from dict", func() error { _, err := Slice(Int).Decode(bencode.NewDict()); return err }, types.NotListType},
		{"map from list", func() error { _, err := Map(Int).Decode(bencode.NewList()); return err }, types.NotDictType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run()
			require.ErrorIs(t, err, tt.code)
			var cerr *types.ConversionError
			require.ErrorAs(t, err, &cerr)
			assert.Equal(t, tt.code, cerr.Code)
		})
	}
}

func TestFixed(t *testing.T) {
	digest := Fixed(4)
	b, err := digest.Decode(bencode.Str("abcd"))
	require.NoError(t, err)
	assert.Equal(t, []byte("abcd"), b)

	_, err = digest.Decode(bencode.Str("abc"))
	require.ErrorIs(t, err, types.SizeMismatch)
	assert.EqualError(t, err, "conversion error: size mismatch between value and destination type")
}

func TestSliceAndMap(t *testing.T) {
	xs, err := Slice(Int64).DecodeBytes([]byte("li1ei2ei3ee"))
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, xs)
	assert.Equal(t, "li1ei2ei3ee", string(Slice(Int64).Encode(xs)))

	m, err := Map(String).DecodeBytes([]byte("d1:a1:x1:b1:ye"))
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"a": "x", "b": "y"}, m)

	// Keys come out sorted regardless of map order.
	out := Map(Int).Encode(map[string]int{"zeta": 1, "alpha": 2, "mid": 3})
	assert.Equal(t, "d5:alphai2e3:midi3e4:zetai1ee", string(out))
}

// pair emits its keys in field order, which is not sorted.
type pair struct{ Z, A int64 }

func pairAdapter(sorted bool) Adapter[pair] {
	return Adapter[pair]{
		Kind: types.Dict,
		FromValue: func(v bencode.Value) (pair, error) {
			z, err := v.At("z")
			if err != nil {
				return pair{}, err
			}
			a, err := v.At("a")
			if err != nil {
				return pair{}, err
			}
			zn, err := z.AsInt()
			if err != nil {
				return pair{}, err
			}
			an, err := a.AsInt()
			if err != nil {
				return pair{}, err
			}
			return pair{Z: zn, A: an}, nil
		},
		Produce: func(p pair, c bencode.Consumer) {
			c.DictBegin(2)
			c.String([]byte("z"))
			c.DictKey()
			c.Integer(p.Z)
			c.DictValue()
			c.String([]byte("a"))
			c.DictKey()
			c.Integer(p.A)
			c.DictValue()
			c.DictEnd(2)
		},
		Sorted: sorted,
	}
}

func TestUnsortedDictProducer(t *testing.T) {
	p := pair{Z: 1, A: 2}
	assert.Equal(t, "d1:ai2e1:zi1ee", string(pairAdapter(false).Encode(p)))
	assert.Equal(t, "ld1:ai2e1:zi1eee", string(Slice(pairAdapter(false)).Encode([]pair{p})))

	// A producer that claims to be sorted is passed through untouched.
	assert.Equal(t, "d1:zi1e1:ai2ee", string(pairAdapter(true).Encode(p)))

	back, err := pairAdapter(false).DecodeBytes(pairAdapter(false).Encode(p))
	require.NoError(t, err)
	assert.Equal(t, p, back)
}

func TestNestedErrors(t *testing.T) {
	_, err := Slice(Int64).DecodeBytes([]byte("li1e1:xe"))
	require.ErrorIs(t, err, types.ListValueTypeConstructionError)
	require.ErrorIs(t, err, types.NotIntegerType)

	_, err = Map(Int64).DecodeBytes([]byte("d1:a1:xe"))
	require.ErrorIs(t, err, types.DictMappedTypeConstructionError)
	require.ErrorIs(t, err, types.NotIntegerType)

	_, err = Slice(Int64).DecodeBytes([]byte("li1e"))
	var perr *types.ParsingError
	require.True(t, errors.As(err, &perr))
}

func TestFunc(t *testing.T) {
	in := []byte("d6:lengthi42e4:pathl1:a5:b.txtee")
	f, err := fileAdapter.DecodeBytes(in)
	require.NoError(t, err)
	assert.Equal(t, fileEntry{Length: 42, Path: []string{"a", "b.txt"}}, f)
	assert.Equal(t, string(in), string(fileAdapter.Encode(f)))

	_, err = fileAdapter.DecodeBytes([]byte("d6:lengthi42ee"))
	require.ErrorIs(t, err, types.ConstructionError)
	require.ErrorIs(t, err, types.ErrOutOfRange)

	files, err := Slice(fileAdapter).DecodeBytes([]byte("l" + string(in) + "e"))
	require.NoError(t, err)
	require.Len(t, files, 1)
}

func TestAdapterWithComposer(t *testing.T) {
	enc := bencode.NewEncoder(nil)
	c := bencode.NewComposer(enc)
	require.NoError(t, c.BeginDict())
	require.NoError(t, c.Str("files"))
	require.NoError(t, c.Value(Slice(fileAdapter).Producer([]fileEntry{{Length: 1, Path: []string{"x"}}})))
	require.NoError(t, c.EndDict())
	assert.Equal(t, "d5:filesld6:lengthi1e4:pathl1:xeeee", string(enc.Bytes()))
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	n, err := Decode[int64](r, bencode.Int(9))
	require.NoError(t, err)
	assert.Equal(t, int64(9), n)

	out, err := Encode(r, "hi")
	require.NoError(t, err)
	assert.Equal(t, "2:hi", string(out))

	_, err = Decode[fileEntry](r, bencode.NewDict())
	require.ErrorIs(t, err, types.UndefinedConversion)
	_, err = Encode(r, fileEntry{})
	require.ErrorIs(t, err, types.UndefinedConversion)

	Register(r, fileAdapter)
	a, ok := Lookup[fileEntry](r)
	require.True(t, ok)
	assert.Equal(t, types.Dict, a.Kind)

	v, err := ToValue(r, fileEntry{Length: 3, Path: []string{"p"}})
	require.NoError(t, err)
	assert.True(t, v.Contains("length"))

	var zero Registry
	Register(&zero, Int)
	_, ok = Lookup[int](&zero)
	assert.True(t, ok)
}
