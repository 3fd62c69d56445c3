package printer

import (
	"bufio"
	"fmt"
	"io"
)

// Debug is a bencode.Consumer that prints every event on its own line.
// Sizes the producer does not know are omitted.
type Debug struct {
	w   *bufio.Writer
	err error
}

// NewDebug returns a debug consumer writing to w.
func NewDebug(w io.Writer) *Debug {
	return &Debug{w: bufio.NewWriter(w)}
}

func (d *Debug) Integer(v int64) { fmt.Fprintf(d.w, "integer (%d)\n", v) }

func (d *Debug) String(s []byte) {
	text, _ := displayBytes(s, BinaryHex)
	fmt.Fprintf(d.w, "string (size=%d, value=%q)\n", len(s), text)
}

func (d *Debug) ListBegin(size int) { d.sized("begin list", size) }
func (d *Debug) ListItem()          { d.w.WriteString("list item\n") }
func (d *Debug) ListEnd(size int)   { d.sized("end list", size) }
func (d *Debug) DictBegin(size int) { d.sized("begin dict", size) }
func (d *Debug) DictKey()           { d.w.WriteString("dict key\n") }
func (d *Debug) DictValue()         { d.w.WriteString("dict value\n") }
func (d *Debug) DictEnd(size int)   { d.sized("end dict", size) }

func (d *Debug) Error(err error) {
	d.err = err
	fmt.Fprintf(d.w, "error: %v\n", err)
}

func (d *Debug) sized(event string, size int) {
	if size < 0 {
		fmt.Fprintf(d.w, "%s\n", event)
		return
	}
	fmt.Fprintf(d.w, "%s (size=%d)\n", event, size)
}

// Flush writes buffered output. It returns the error reported through the
// Error event, if any, after flushing the trace that led to it.
func (d *Debug) Flush() error {
	if err := d.w.Flush(); err != nil {
		return err
	}
	return d.err
}
