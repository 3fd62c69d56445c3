// Package adapter converts between bencode values and Go types.
//
// An Adapter pairs a decoding function with an event producer for one Go
// type. Built-in adapters cover integers, strings, byte strings, lists, and
// string-keyed maps; Func builds adapters for anything else. A Registry
// looks adapters up by Go type for callers that only know T.
package adapter

import (
	"maps"
	"slices"

	"github.com/joshuapare/bencodekit/bencode"
	"github.com/joshuapare/bencodekit/pkg/types"
)

// Adapter converts between a bencode value and T.
type Adapter[T any] struct {
	// Kind is the bencode kind T maps to. Decode rejects other kinds
	// before calling FromValue.
	Kind types.Type

	// FromValue builds a T from a value already known to be of Kind.
	FromValue func(v bencode.Value) (T, error)

	// Produce replays x as bencode events.
	Produce func(x T, c bencode.Consumer)

	// Sorted reports that Produce already emits dict keys in increasing
	// byte order. Dict adapters without it are buffered and re-sorted
	// before their events reach a consumer. Ignored for other kinds.
	Sorted bool
}

// emit replays x, sorting dict keys first unless Produce already does.
func (a Adapter[T]) emit(x T, c bencode.Consumer) {
	if a.Kind != types.Dict || a.Sorted {
		a.Produce(x, c)
		return
	}
	b := bencode.NewValueBuilder()
	a.Produce(x, b)
	b.Value().Produce(c)
}

func conversionError(code types.ConversionErrc, err error) error {
	return &types.ConversionError{Code: code, Err: err}
}

// Decode converts v to T.
func (a Adapter[T]) Decode(v bencode.Value) (T, error) {
	if v.Type() != a.Kind {
		var zero T
		return zero, conversionError(types.NotTypeErrc(a.Kind), nil)
	}
	return a.FromValue(v)
}

// DecodeView converts the value under v to T.
func (a Adapter[T]) DecodeView(v bencode.View) (T, error) {
	return a.Decode(v.ToValue())
}

// DecodeBytes decodes a single bencoded document into T.
func (a Adapter[T]) DecodeBytes(b []byte) (T, error) {
	v, err := bencode.Decode(b)
	if err != nil {
		var zero T
		return zero, err
	}
	return a.Decode(v)
}

// Producer wraps x so it can be passed to bencode.Encode or a Composer.
func (a Adapter[T]) Producer(x T) bencode.Producer {
	return producer[T]{a: a, x: x}
}

// Encode returns the bencoded form of x.
func (a Adapter[T]) Encode(x T) []byte {
	return bencode.Encode(a.Producer(x))
}

// ToValue converts x to an owned bencode value.
func (a Adapter[T]) ToValue(x T) bencode.Value {
	b := bencode.NewValueBuilder()
	a.emit(x, b)
	return b.Value()
}

type producer[T any] struct {
	a Adapter[T]
	x T
}

func (p producer[T]) Type() types.Type           { return p.a.Kind }
func (p producer[T]) Produce(c bencode.Consumer) { p.a.emit(p.x, c) }

// Int64 maps integers to int64.
var Int64 = Adapter[int64]{
	Kind:      types.Integer,
	FromValue: func(v bencode.Value) (int64, error) { return v.AsInt() },
	Produce:   func(x int64, c bencode.Consumer) { c.Integer(x) },
}

// Int maps integers to int.
var Int = Adapter[int]{
	Kind: types.Integer,
	FromValue: func(v bencode.Value) (int, error) {
		n, err := v.AsInt()
		if err != nil {
			return 0, err
		}
		if int64(int(n)) != n {
			return 0, conversionError(types.ConstructionError, types.NewOutOfRange("integer overflows int"))
		}
		return int(n), nil
	},
	Produce: func(x int, c bencode.Consumer) { c.Integer(int64(x)) },
}

// String maps byte strings to string.
var String = Adapter[string]{
	Kind:      types.String,
	FromValue: func(v bencode.Value) (string, error) { return v.AsString() },
	Produce:   func(x string, c bencode.Consumer) { c.String([]byte(x)) },
}

// Bytes maps byte strings to []byte.
var Bytes = Adapter[[]byte]{
	Kind:      types.String,
	FromValue: func(v bencode.Value) ([]byte, error) { return v.AsBytes() },
	Produce:   func(x []byte, c bencode.Consumer) { c.String(x) },
}

// Fixed maps byte strings of exactly n bytes, such as 20-byte SHA-1
// digests, to []byte. Other lengths fail with SizeMismatch.
func Fixed(n int) Adapter[[]byte] {
	return Adapter[[]byte]{
		Kind: types.String,
		FromValue: func(v bencode.Value) ([]byte, error) {
			if v.Len() != n {
				return nil, conversionError(types.SizeMismatch, nil)
			}
			return v.AsBytes()
		},
		Produce: Bytes.Produce,
	}
}

// Slice maps lists to []T using elem for every element.
func Slice[T any](elem Adapter[T]) Adapter[[]T] {
	return Adapter[[]T]{
		Kind: types.List,
		FromValue: func(v bencode.Value) ([]T, error) {
			items, err := v.AsList()
			if err != nil {
				return nil, err
			}
			out := make([]T, 0, len(items))
			for _, item := range items {
				x, err := elem.Decode(item)
				if err != nil {
					return nil, conversionError(types.ListValueTypeConstructionError, err)
				}
				out = append(out, x)
			}
			return out, nil
		},
		Produce: func(xs []T, c bencode.Consumer) {
			c.ListBegin(len(xs))
			for _, x := range xs {
				elem.emit(x, c)
				c.ListItem()
			}
			c.ListEnd(len(xs))
		},
	}
}

// Map maps dicts to map[string]T using elem for every value. Keys are
// produced in sorted order.
func Map[T any](elem Adapter[T]) Adapter[map[string]T] {
	return Adapter[map[string]T]{
		Kind: types.Dict,
		FromValue: func(v bencode.Value) (map[string]T, error) {
			d, err := v.AsDict()
			if err != nil {
				return nil, err
			}
			out := make(map[string]T, d.Len())
			for k, item := range d.All() {
				x, err := elem.Decode(*item)
				if err != nil {
					return nil, conversionError(types.DictMappedTypeConstructionError, err)
				}
				out[k] = x
			}
			return out, nil
		},
		Produce: func(m map[string]T, c bencode.Consumer) {
			c.DictBegin(len(m))
			for _, k := range slices.Sorted(maps.Keys(m)) {
				c.String([]byte(k))
				c.DictKey()
				elem.emit(m[k], c)
				c.DictValue()
			}
			c.DictEnd(len(m))
		},
		Sorted: true,
	}
}

// Func builds an adapter from a pair of conversion functions. Errors
// returned by from are reported as ConstructionError wrapping the cause.
func Func[T any](kind types.Type, from func(bencode.Value) (T, error), to func(T) bencode.Value) Adapter[T] {
	return Adapter[T]{
		Kind: kind,
		FromValue: func(v bencode.Value) (T, error) {
			x, err := from(v)
			if err != nil {
				var zero T
				return zero, conversionError(types.ConstructionError, err)
			}
			return x, nil
		},
		Produce: func(x T, c bencode.Consumer) { to(x).Produce(c) },
		Sorted:  true,
	}
}
