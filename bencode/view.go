package bencode

import (
	"bytes"
	"cmp"

	"github.com/joshuapare/bencodekit/internal/buf"
	"github.com/joshuapare/bencodekit/internal/format"
	"github.com/joshuapare/bencodekit/pkg/types"
)

// View is a read-only cursor to one value in a DescriptorTable. It is two
// words wide and cheap to copy. The zero View is uninitialized.
type View struct {
	t *DescriptorTable
	i int
}

func (v View) desc() *Descriptor { return &v.t.descs[v.i] }

// Valid reports whether v refers to a value.
func (v View) Valid() bool { return v.t != nil }

// Type returns the kind of the value.
func (v View) Type() types.Type {
	if v.t == nil {
		return types.Uninitialized
	}
	return v.desc().Type()
}

func (v View) IsInteger() bool { return v.Type() == types.Integer }
func (v View) IsString() bool  { return v.Type() == types.String }
func (v View) IsList() bool    { return v.Type() == types.List }
func (v View) IsDict() bool    { return v.Type() == types.Dict }

// Descriptor returns the descriptor backing v.
func (v View) Descriptor() Descriptor {
	if v.t == nil {
		return Descriptor{}
	}
	return *v.desc()
}

// Position returns the byte offset of the value in the source buffer.
func (v View) Position() int {
	if v.t == nil {
		return -1
	}
	return v.desc().Position()
}

func (v View) check(want types.Type) error {
	if got := v.Type(); got != want {
		return types.NewBadAccess(want, got)
	}
	return nil
}

// AsInteger returns v as an IntegerView, or ErrBadAccess.
func (v View) AsInteger() (IntegerView, error) {
	if err := v.check(types.Integer); err != nil {
		return IntegerView{}, err
	}
	return IntegerView{v}, nil
}

// AsString returns v as a StringView, or ErrBadAccess.
func (v View) AsString() (StringView, error) {
	if err := v.check(types.String); err != nil {
		return StringView{}, err
	}
	return StringView{v}, nil
}

// AsList returns v as a ListView, or ErrBadAccess.
func (v View) AsList() (ListView, error) {
	if err := v.check(types.List); err != nil {
		return ListView{}, err
	}
	return ListView{v}, nil
}

// AsDict returns v as a DictView, or ErrBadAccess.
func (v View) AsDict() (DictView, error) {
	if err := v.check(types.Dict); err != nil {
		return DictView{}, err
	}
	return DictView{v}, nil
}

// MustInteger is AsInteger for callers that already checked the kind.
// It panics with the access error otherwise.
func (v View) MustInteger() IntegerView { return must(v.AsInteger()) }

// MustString is AsString for callers that already checked the kind.
func (v View) MustString() StringView { return must(v.AsString()) }

// MustList is AsList for callers that already checked the kind.
func (v View) MustList() ListView { return must(v.AsList()) }

// MustDict is AsDict for callers that already checked the kind.
func (v View) MustDict() DictView { return must(v.AsDict()) }

func must[T any](x T, err error) T {
	if err != nil {
		panic(err)
	}
	return x
}

// Int returns the integer value of v.
func (v View) Int() (int64, error) {
	iv, err := v.AsInteger()
	if err != nil {
		return 0, err
	}
	return iv.Value(), nil
}

// Bytes returns the string bytes of v without copying.
func (v View) Bytes() ([]byte, error) {
	sv, err := v.AsString()
	if err != nil {
		return nil, err
	}
	return sv.Bytes(), nil
}

// Text returns the string bytes of v as a Go string.
func (v View) Text() (string, error) {
	sv, err := v.AsString()
	if err != nil {
		return "", err
	}
	return sv.String(), nil
}

// BencodedView returns the exact bytes v occupied in the source buffer.
// Hashing the span of an "info" dict yields the torrent's info-hash.
func (v View) BencodedView() []byte {
	if v.t == nil {
		return nil
	}
	d := v.desc()
	start := d.Position()
	var end int
	switch {
	case d.IsInteger():
		end = start + format.IntegerLen(d.Value())
	case d.IsString():
		end = start + d.Offset() + d.Size()
	default:
		end = v.t.descs[v.t.end(v.i)].Position() + 1
	}
	span, _ := buf.Span(v.t.buf, start, end)
	return span
}

// Compare orders views structurally: by kind, then integer value, string
// bytes, list elements, or dict entries in encoded order.
func (v View) Compare(o View) int {
	if c := v.Type().Compare(o.Type()); c != 0 {
		return c
	}
	switch v.Type() {
	case types.Integer:
		return cmp.Compare(v.desc().Value(), o.desc().Value())
	case types.String:
		return bytes.Compare(StringView{v}.Bytes(), StringView{o}.Bytes())
	case types.List, types.Dict:
		next, onext := children(v), children(o)
		for {
			a, aok := next()
			b, bok := onext()
			switch {
			case !aok && !bok:
				return 0
			case !aok:
				return -1
			case !bok:
				return 1
			}
			if c := a.Compare(b); c != 0 {
				return c
			}
		}
	}
	return 0
}

// Equal reports whether v and o hold structurally equal values.
func (v View) Equal(o View) bool { return v.Compare(o) == 0 }

// children walks the direct child descriptors of a container, yielding keys
// and values alike.
func children(v View) func() (View, bool) {
	j, end := v.i+1, v.t.end(v.i)
	return func() (View, bool) {
		if j >= end {
			return View{}, false
		}
		child := View{t: v.t, i: j}
		j = v.t.skip(j)
		return child, true
	}
}
