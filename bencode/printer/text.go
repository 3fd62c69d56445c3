package printer

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

type textFrame struct {
	dict bool
}

// Text is a bencode.Consumer that writes an indented tree:
//
//	announce: "localhost"
//	info:
//	    length: 1024
//	list:
//	    - 1
//	    - []
//
// Empty containers print as [] and {} when the producer reports sizes.
type Text struct {
	w       *bufio.Writer
	opts    Options
	stack   []textFrame
	key     []byte
	haveKey bool
	err     error
}

// NewText returns a text consumer writing to w.
func NewText(w io.Writer, opts Options) *Text {
	return &Text{w: bufio.NewWriter(w), opts: opts}
}

// prefix starts the line for the next value.
func (t *Text) prefix() {
	depth := len(t.stack)
	if depth == 0 {
		return
	}
	t.w.WriteString(strings.Repeat(" ", (depth-1)*t.opts.IndentSize))
	if t.stack[depth-1].dict {
		t.w.Write(t.key)
		t.w.WriteString(":")
	} else {
		t.w.WriteString("-")
	}
}

func (t *Text) Integer(v int64) {
	t.prefix()
	if len(t.stack) > 0 {
		t.w.WriteByte(' ')
	}
	fmt.Fprintf(t.w, "%d\n", v)
}

func (t *Text) String(s []byte) {
	if n := len(t.stack); n > 0 && t.stack[n-1].dict && !t.haveKey {
		t.key, _ = displayBytes(s, t.opts.Binary)
		t.haveKey = true
		return
	}
	t.prefix()
	if len(t.stack) > 0 {
		t.w.WriteByte(' ')
	}
	t.w.WriteString(t.scalar(s))
	t.w.WriteByte('\n')
}

func (t *Text) scalar(s []byte) string {
	if text, binary := displayBytes(s, t.opts.Binary); !binary || t.opts.Binary == BinaryLatin1 {
		return fmt.Sprintf("%q", text)
	}
	if limit := t.opts.MaxValueBytes; limit > 0 && len(s) > limit {
		return fmt.Sprintf("<%d bytes> %x...", len(s), s[:limit])
	}
	return fmt.Sprintf("<%d bytes> %x", len(s), s)
}

func (t *Text) ListBegin(size int) { t.open(false, size) }
func (t *Text) DictBegin(size int) { t.open(true, size) }
func (t *Text) ListEnd(int)        { t.stack = t.stack[:len(t.stack)-1] }
func (t *Text) DictEnd(int)        { t.stack = t.stack[:len(t.stack)-1] }
func (t *Text) ListItem()          {}
func (t *Text) DictKey()           {}
func (t *Text) DictValue()         { t.haveKey = false }
func (t *Text) Error(err error)    { t.err = err }

func (t *Text) open(dict bool, size int) {
	empty := "[]"
	if dict {
		empty = "{}"
	}
	if size == 0 {
		t.prefix()
		if len(t.stack) > 0 {
			t.w.WriteByte(' ')
		}
		t.w.WriteString(empty + "\n")
	} else if len(t.stack) > 0 {
		t.prefix()
		t.w.WriteByte('\n')
	}
	t.haveKey = false
	t.stack = append(t.stack, textFrame{dict: dict})
}

// Flush writes buffered output.
func (t *Text) Flush() error {
	if err := t.w.Flush(); err != nil {
		return err
	}
	return t.err
}
