package bencode

import "github.com/joshuapare/bencodekit/pkg/types"

// Consumer receives the event vocabulary emitted by Parser and by Produce.
//
// A well-formed sequence obeys a small grammar: every list element is one
// value followed by ListItem, and every dict entry is a String event,
// DictKey, one value, then DictValue. Sizes are element (or pair) counts, or
// -1 when the producer does not know them yet; the push parser reports -1 on
// begin and the real count on end.
type Consumer interface {
	Integer(v int64)
	String(s []byte)
	ListBegin(size int)
	ListItem()
	ListEnd(size int)
	DictBegin(size int)
	DictKey()
	DictValue()
	DictEnd(size int)
	// Error is called once, before the parse returns err.
	Error(err error)
}

// Producer is anything that can replay itself as events. Value and View both
// implement it.
type Producer interface {
	Type() types.Type
	Produce(c Consumer)
}

// Discard is a Consumer that ignores every event. Driving the push parser
// into it validates input without storing anything.
var Discard Consumer = discard{}

type discard struct{}

func (discard) Integer(int64) {}
func (discard) String([]byte) {}
func (discard) ListBegin(int) {}
func (discard) ListItem()     {}
func (discard) ListEnd(int)   {}
func (discard) DictBegin(int) {}
func (discard) DictKey()      {}
func (discard) DictValue()    {}
func (discard) DictEnd(int)   {}
func (discard) Error(error)   {}

// Produce replays the value under v as events.
func (v View) Produce(c Consumer) {
	if v.t == nil {
		return
	}
	d := v.desc()
	switch {
	case d.IsInteger():
		c.Integer(d.Value())
	case d.IsString():
		c.String(StringView{v}.Bytes())
	case d.IsList():
		l := ListView{v}
		c.ListBegin(l.Len())
		for _, item := range l.All() {
			item.Produce(c)
			c.ListItem()
		}
		c.ListEnd(l.Len())
	case d.IsDict():
		dv := DictView{v}
		c.DictBegin(dv.Len())
		for k, val := range dv.All() {
			c.String(k.Bytes())
			c.DictKey()
			val.Produce(c)
			c.DictValue()
		}
		c.DictEnd(dv.Len())
	}
}
