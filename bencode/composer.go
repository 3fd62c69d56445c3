package bencode

import "github.com/joshuapare/bencodekit/pkg/types"

type composeState uint8

const (
	composeList composeState = iota
	composeDictKey
	composeDictValue
)

type composeFrame struct {
	state composeState
	size  int
}

// Composer emits events into a Consumer on behalf of hand-written code,
// inserting the ListItem, DictKey, and DictValue separators itself and
// rejecting sequences that would not encode to valid bencode.
//
// The first error is sticky: later calls return it and emit nothing.
type Composer struct {
	out   Consumer
	stack []composeFrame
	err   error
}

// NewComposer returns a composer writing to out.
func NewComposer(out Consumer) *Composer {
	return &Composer{out: out}
}

// Err returns the first grammar violation, if any.
func (c *Composer) Err() error { return c.err }

// Depth returns the number of open containers.
func (c *Composer) Depth() int { return len(c.stack) }

func (c *Composer) fail(code types.EncodingErrc) error {
	c.err = &types.EncodingError{Code: code}
	c.out.Error(c.err)
	return c.err
}

func (c *Composer) expectingKey() bool {
	return len(c.stack) > 0 && c.stack[len(c.stack)-1].state == composeDictKey
}

// Integer emits an integer value.
func (c *Composer) Integer(v int64) error {
	if c.err != nil {
		return c.err
	}
	if c.expectingKey() {
		return c.fail(types.InvalidDictKey)
	}
	c.out.Integer(v)
	c.complete()
	return nil
}

// String emits a string value, or the next key when a dict expects one.
func (c *Composer) String(s []byte) error {
	if c.err != nil {
		return c.err
	}
	c.out.String(s)
	if c.expectingKey() {
		c.out.DictKey()
		c.stack[len(c.stack)-1].state = composeDictValue
		return nil
	}
	c.complete()
	return nil
}

// Str is String for Go strings.
func (c *Composer) Str(s string) error { return c.String([]byte(s)) }

// BeginList opens a list.
func (c *Composer) BeginList() error {
	return c.begin(composeList)
}

// BeginDict opens a dict.
func (c *Composer) BeginDict() error {
	return c.begin(composeDictKey)
}

func (c *Composer) begin(state composeState) error {
	if c.err != nil {
		return c.err
	}
	if c.expectingKey() {
		return c.fail(types.InvalidDictKey)
	}
	c.stack = append(c.stack, composeFrame{state: state})
	if state == composeList {
		c.out.ListBegin(-1)
	} else {
		c.out.DictBegin(-1)
	}
	return nil
}

// EndList closes the innermost container, which must be a list.
func (c *Composer) EndList() error {
	if c.err != nil {
		return c.err
	}
	if len(c.stack) == 0 || c.stack[len(c.stack)-1].state != composeList {
		return c.fail(types.UnexpectedEndList)
	}
	top := c.pop()
	c.out.ListEnd(top.size)
	c.complete()
	return nil
}

// EndDict closes the innermost container, which must be a dict that is not
// waiting for the value of a key.
func (c *Composer) EndDict() error {
	if c.err != nil {
		return c.err
	}
	if !c.expectingKey() {
		return c.fail(types.UnexpectedEndDict)
	}
	top := c.pop()
	c.out.DictEnd(top.size)
	c.complete()
	return nil
}

// Value emits a whole value. In key position p must be a string.
func (c *Composer) Value(p Producer) error {
	if c.err != nil {
		return c.err
	}
	if p.Type() == types.Uninitialized {
		return c.fail(types.UninitializedValue)
	}
	if c.expectingKey() {
		if p.Type() != types.String {
			return c.fail(types.InvalidDictKey)
		}
		var k keyCapture
		p.Produce(&k)
		return c.String(k.key)
	}
	p.Produce(c.out)
	c.complete()
	return nil
}

func (c *Composer) pop() composeFrame {
	top := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	return top
}

func (c *Composer) complete() {
	if len(c.stack) == 0 {
		return
	}
	top := &c.stack[len(c.stack)-1]
	top.size++
	switch top.state {
	case composeList:
		c.out.ListItem()
	case composeDictValue:
		c.out.DictValue()
		top.state = composeDictKey
	}
}

// keyCapture records the bytes of a single string event.
type keyCapture struct {
	discard
	key []byte
}

func (k *keyCapture) String(s []byte) { k.key = s }
