package bencode

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/joshuapare/bencodekit/pkg/types"
)

// Value is an owned bencode value: uninitialized, integer, string, list, or
// dict. The zero Value is uninitialized.
//
// Assigning a Value moves it in O(1); the copy shares list and dict storage
// with the original, so an Append through either copy is seen by both.
// Clone duplicates the whole subtree.
type Value struct {
	typ  types.Type
	num  int64
	str  string
	list *[]Value
	dict *Dict
}

// items returns the elements of a list value.
func (v Value) items() []Value {
	if v.list == nil {
		return nil
	}
	return *v.list
}

// Int returns an integer value.
func Int(v int64) Value { return Value{typ: types.Integer, num: v} }

// Str returns a string value.
func Str(s string) Value { return Value{typ: types.String, str: s} }

// Bytes returns a string value holding a copy of b.
func Bytes(b []byte) Value { return Value{typ: types.String, str: string(b)} }

// NewList returns a list holding items.
func NewList(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{typ: types.List, list: &items}
}

// NewDict returns an empty dict.
func NewDict() Value { return Value{typ: types.Dict, dict: &Dict{}} }

// DictOf returns a dict holding entries. Later duplicates replace earlier ones.
func DictOf(entries ...Entry) Value {
	v := NewDict()
	for _, e := range entries {
		v.dict.Set(e.Key, e.Value)
	}
	return v
}

// Type returns the kind of v.
func (v Value) Type() types.Type { return v.typ }

func (v Value) IsInteger() bool { return v.typ == types.Integer }
func (v Value) IsString() bool  { return v.typ == types.String }
func (v Value) IsList() bool    { return v.typ == types.List }
func (v Value) IsDict() bool    { return v.typ == types.Dict }

func (v Value) check(want types.Type) error {
	if v.typ != want {
		return types.NewBadAccess(want, v.typ)
	}
	return nil
}

// AsInt returns the integer held by v, or ErrBadAccess.
func (v Value) AsInt() (int64, error) {
	if err := v.check(types.Integer); err != nil {
		return 0, err
	}
	return v.num, nil
}

// AsString returns the string held by v, or ErrBadAccess.
func (v Value) AsString() (string, error) {
	if err := v.check(types.String); err != nil {
		return "", err
	}
	return v.str, nil
}

// AsBytes returns a copy of the string held by v, or ErrBadAccess.
func (v Value) AsBytes() ([]byte, error) {
	if err := v.check(types.String); err != nil {
		return nil, err
	}
	return []byte(v.str), nil
}

// AsList returns the elements of v, or ErrBadAccess. Elements may be
// modified in place; use Append to grow the list.
func (v *Value) AsList() ([]Value, error) {
	if err := v.check(types.List); err != nil {
		return nil, err
	}
	return v.items(), nil
}

// AsDict returns the dict held by v, or ErrBadAccess.
func (v *Value) AsDict() (*Dict, error) {
	if err := v.check(types.Dict); err != nil {
		return nil, err
	}
	return v.dict, nil
}

// EmplaceInt replaces v with an integer, whatever it held before.
func (v *Value) EmplaceInt(n int64) { *v = Int(n) }

// EmplaceString replaces v with a string.
func (v *Value) EmplaceString(s string) { *v = Str(s) }

// EmplaceList replaces v with an empty list.
func (v *Value) EmplaceList() { *v = NewList() }

// EmplaceDict replaces v with an empty dict and returns it.
func (v *Value) EmplaceDict() *Dict {
	*v = NewDict()
	return v.dict
}

// Append adds x to the end of a list.
func (v *Value) Append(x Value) error {
	if err := v.check(types.List); err != nil {
		return err
	}
	*v.list = append(*v.list, x)
	return nil
}

// Set stores x under key in a dict.
func (v *Value) Set(key string, x Value) error {
	if err := v.check(types.Dict); err != nil {
		return err
	}
	v.dict.Set(key, x)
	return nil
}

// Index returns element i of a list: ErrBadAccess when v is not a list,
// ErrOutOfRange when i is out of bounds.
func (v *Value) Index(i int) (*Value, error) {
	if err := v.check(types.List); err != nil {
		return nil, err
	}
	items := v.items()
	if i < 0 || i >= len(items) {
		return nil, types.NewOutOfRange(fmt.Sprintf("list index %d out of range [0, %d)", i, len(items)))
	}
	return &items[i], nil
}

// At returns the value under key in a dict: ErrBadAccess when v is not a
// dict, ErrOutOfRange when the key is absent.
func (v *Value) At(key string) (*Value, error) {
	if err := v.check(types.Dict); err != nil {
		return nil, err
	}
	x, ok := v.dict.Get(key)
	if !ok {
		return nil, types.NewOutOfRange(fmt.Sprintf("key %q not found", key))
	}
	return x, nil
}

// Contains reports whether v is a dict holding key.
func (v Value) Contains(key string) bool {
	return v.typ == types.Dict && v.dict.Contains(key)
}

// Len returns the element count of a list, the pair count of a dict, the
// byte length of a string, and zero otherwise.
func (v Value) Len() int {
	switch v.typ {
	case types.String:
		return len(v.str)
	case types.List:
		return len(v.items())
	case types.Dict:
		return v.dict.Len()
	default:
		return 0
	}
}

// Clone returns a deep copy of v.
func (v Value) Clone() Value {
	switch v.typ {
	case types.List:
		items := v.items()
		out := make([]Value, len(items))
		for i := range items {
			out[i] = items[i].Clone()
		}
		return Value{typ: types.List, list: &out}
	case types.Dict:
		return Value{typ: types.Dict, dict: v.dict.clone()}
	default:
		return v
	}
}

// Compare orders values: first by kind (see types.Type.Compare), then by
// integer value, string bytes, list elements, or dict entries.
func Compare(a, b Value) int {
	if c := a.typ.Compare(b.typ); c != 0 {
		return c
	}
	switch a.typ {
	case types.Integer:
		return cmp.Compare(a.num, b.num)
	case types.String:
		return strings.Compare(a.str, b.str)
	case types.List:
		return slices.CompareFunc(a.items(), b.items(), Compare)
	case types.Dict:
		return slices.CompareFunc(a.dict.entries, b.dict.entries, func(x, y Entry) int {
			if c := strings.Compare(x.Key, y.Key); c != 0 {
				return c
			}
			return Compare(x.Value, y.Value)
		})
	}
	return 0
}

// Compare orders v against o; see Compare.
func (v Value) Compare(o Value) int { return Compare(v, o) }

// Equal reports whether v and o hold equal values.
func (v Value) Equal(o Value) bool { return Compare(v, o) == 0 }

// Produce replays v as events. Dict entries come out in sorted order.
func (v Value) Produce(c Consumer) {
	switch v.typ {
	case types.Integer:
		c.Integer(v.num)
	case types.String:
		c.String([]byte(v.str))
	case types.List:
		items := v.items()
		c.ListBegin(len(items))
		for i := range items {
			items[i].Produce(c)
			c.ListItem()
		}
		c.ListEnd(len(items))
	case types.Dict:
		n := v.dict.Len()
		c.DictBegin(n)
		for i := range v.dict.entries {
			e := &v.dict.entries[i]
			c.String([]byte(e.Key))
			c.DictKey()
			e.Value.Produce(c)
			c.DictValue()
		}
		c.DictEnd(n)
	}
}

// ToValue materializes the value under v as an owned tree.
func (v View) ToValue() Value {
	var b ValueBuilder
	v.Produce(&b)
	return b.Value()
}
