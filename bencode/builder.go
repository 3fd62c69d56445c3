package bencode

import "github.com/joshuapare/bencodekit/pkg/types"

// ValueBuilder is a Consumer that assembles a Value from events.
type ValueBuilder struct {
	stack []Value
	keys  []string
	last  Value
	err   error
}

// NewValueBuilder returns an empty builder.
func NewValueBuilder() *ValueBuilder { return &ValueBuilder{} }

// Value returns the most recently completed top-level value.
func (b *ValueBuilder) Value() Value { return b.last }

// Err returns the error reported through the Error event, if any.
func (b *ValueBuilder) Err() error { return b.err }

// Reset clears the builder for reuse.
func (b *ValueBuilder) Reset() {
	b.stack = b.stack[:0]
	b.keys = b.keys[:0]
	b.last = Value{}
	b.err = nil
}

func (b *ValueBuilder) top() *Value { return &b.stack[len(b.stack)-1] }

func (b *ValueBuilder) Integer(v int64) { b.last = Int(v) }

func (b *ValueBuilder) String(s []byte) { b.last = Bytes(s) }

func (b *ValueBuilder) ListBegin(size int) {
	items := make([]Value, 0, max(size, 0))
	b.stack = append(b.stack, Value{typ: types.List, list: &items})
	b.keys = append(b.keys, "")
}

func (b *ValueBuilder) ListItem() {
	top := b.top()
	*top.list = append(*top.list, b.last)
}

func (b *ValueBuilder) ListEnd(int) { b.pop() }

func (b *ValueBuilder) DictBegin(int) {
	b.stack = append(b.stack, NewDict())
	b.keys = append(b.keys, "")
}

func (b *ValueBuilder) DictKey() { b.keys[len(b.keys)-1] = b.last.str }

func (b *ValueBuilder) DictValue() {
	b.top().dict.Set(b.keys[len(b.keys)-1], b.last)
}

func (b *ValueBuilder) DictEnd(int) { b.pop() }

func (b *ValueBuilder) Error(err error) { b.err = err }

func (b *ValueBuilder) pop() {
	b.last = *b.top()
	b.stack = b.stack[:len(b.stack)-1]
	b.keys = b.keys[:len(b.keys)-1]
}
