package bencode

import (
	"io"

	"github.com/joshuapare/bencodekit/internal/format"
)

// Encoder is a Consumer that writes canonical bencode into an in-memory
// buffer. Dict entries are written in the order they arrive; Value and
// DictView sources already yield them sorted.
type Encoder struct {
	buf []byte
	err error
}

// NewEncoder returns an encoder that appends to dst.
func NewEncoder(dst []byte) *Encoder { return &Encoder{buf: dst} }

// Bytes returns the encoded output.
func (e *Encoder) Bytes() []byte { return e.buf }

// Err returns the error reported through the Error event, if any.
func (e *Encoder) Err() error { return e.err }

// Reset truncates the output for reuse.
func (e *Encoder) Reset() {
	e.buf = e.buf[:0]
	e.err = nil
}

func (e *Encoder) Integer(v int64) { e.buf = format.AppendInteger(e.buf, v) }
func (e *Encoder) String(s []byte) { e.buf = format.AppendString(e.buf, s) }
func (e *Encoder) ListBegin(int)   { e.buf = append(e.buf, format.ListBegin) }
func (e *Encoder) ListItem()       {}
func (e *Encoder) ListEnd(int)     { e.buf = append(e.buf, format.End) }
func (e *Encoder) DictBegin(int)   { e.buf = append(e.buf, format.DictBegin) }
func (e *Encoder) DictKey()        {}
func (e *Encoder) DictValue()      {}
func (e *Encoder) DictEnd(int)     { e.buf = append(e.buf, format.End) }
func (e *Encoder) Error(err error) { e.err = err }

// Encode returns the bencoded form of p.
func Encode(p Producer) []byte {
	e := NewEncoder(nil)
	p.Produce(e)
	return e.Bytes()
}

// AppendEncode appends the bencoded form of p to dst.
func AppendEncode(dst []byte, p Producer) []byte {
	e := NewEncoder(dst)
	p.Produce(e)
	return e.Bytes()
}

// EncodeTo writes the bencoded form of p to w.
func EncodeTo(w io.Writer, p Producer) error {
	_, err := w.Write(Encode(p))
	return err
}
