package printer

import (
	"bufio"
	"encoding/json"
	"io"
	"strconv"
	"strings"
)

// JSON is a bencode.Consumer that writes JSON. Dicts become objects, lists
// become arrays, and byte strings become JSON strings.
type JSON struct {
	w        *bufio.Writer
	opts     Options
	scratch  []byte
	depth    int
	first    bool
	afterKey bool
	err      error
}

// NewJSON returns a JSON consumer writing to w.
func NewJSON(w io.Writer, opts Options) *JSON {
	return &JSON{w: bufio.NewWriter(w), opts: opts, first: true, afterKey: true}
}

func (j *JSON) newline() {
	if j.opts.IndentSize <= 0 {
		return
	}
	j.w.WriteByte('\n')
	j.w.WriteString(strings.Repeat(" ", j.depth*j.opts.IndentSize))
}

// next writes the separator that precedes a value or key.
func (j *JSON) next() {
	if !j.first {
		j.w.WriteByte(',')
	}
	if j.afterKey {
		j.afterKey = false
	} else {
		j.newline()
	}
}

func (j *JSON) Integer(v int64) {
	j.next()
	j.w.Write(strconv.AppendInt(j.scratch[:0], v, 10))
}

func (j *JSON) String(s []byte) {
	j.next()
	text, _ := displayBytes(s, j.opts.Binary)
	data, err := json.Marshal(string(text))
	if err != nil {
		j.err = err
		return
	}
	j.w.Write(data)
}

func (j *JSON) ListBegin(int) { j.open('[') }
func (j *JSON) ListItem()     { j.first = false }
func (j *JSON) ListEnd(int)   { j.close(']') }
func (j *JSON) DictBegin(int) { j.open('{') }
func (j *JSON) DictValue()    { j.first = false }
func (j *JSON) DictEnd(int)   { j.close('}') }

func (j *JSON) DictKey() {
	if j.opts.IndentSize > 0 {
		j.w.WriteString(": ")
	} else {
		j.w.WriteByte(':')
	}
	j.first = true
	j.afterKey = true
}

func (j *JSON) Error(err error) { j.err = err }

func (j *JSON) open(c byte) {
	j.next()
	j.w.WriteByte(c)
	j.depth++
	j.first = true
}

func (j *JSON) close(c byte) {
	j.depth--
	if !j.first {
		j.newline()
	}
	j.w.WriteByte(c)
}

// Flush terminates the document with a newline and flushes the buffer.
func (j *JSON) Flush() error {
	if j.err != nil {
		j.w.Flush()
		return j.err
	}
	j.w.WriteByte('\n')
	// Ready for another top-level value.
	j.first, j.afterKey = true, true
	return j.w.Flush()
}
