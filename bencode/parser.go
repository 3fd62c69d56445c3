package bencode

import (
	"bytes"

	"github.com/joshuapare/bencodekit/internal/format"
	"github.com/joshuapare/bencodekit/pkg/types"
)

// pframe is one open container on the push parser's stack.
type pframe struct {
	state parseState
	size  int
}

// Parser is a push parser: it walks the input once and reports events to a
// Consumer instead of building any particular representation.
//
// A Parser reuses its stack between calls and is not safe for concurrent use.
type Parser struct {
	opts   Options
	buf    []byte
	pos    int
	tokens int
	stack  []pframe
}

// NewParser returns a push parser configured by opts.
func NewParser(opts Options) *Parser {
	return &Parser{opts: opts.normalize(), stack: make([]pframe, 0, 16)}
}

// Parse reports the events of exactly one value at the start of b and
// returns the offset just past it. Trailing bytes are left to the caller.
func (p *Parser) Parse(c Consumer, b []byte) (int, error) {
	p.reset(b)
	if err := p.parseValue(c); err != nil {
		c.Error(err)
		return p.pos, err
	}
	return p.pos, nil
}

// ParseStream reports the events of every concatenated value in b.
func (p *Parser) ParseStream(c Consumer, b []byte) error {
	p.reset(b)
	for p.pos < len(p.buf) {
		if err := p.parseValue(c); err != nil {
			c.Error(err)
			return err
		}
	}
	return nil
}

func (p *Parser) reset(b []byte) {
	p.buf = b
	p.pos = 0
	p.tokens = 0
	p.stack = p.stack[:0]
}

func (p *Parser) fail(code types.ParsingErrc, pos int, ctx types.Type) *types.ParsingError {
	return types.NewParsingError(code, pos, ctx)
}

func (p *Parser) parseValue(c Consumer) *types.ParsingError {
	for {
		if p.pos >= len(p.buf) {
			return p.eofError()
		}
		if p.tokens >= p.opts.Limits.ValueLimit {
			return p.fail(types.ValueLimitExceeded, p.pos, types.Uninitialized)
		}
		p.tokens++

		var err *types.ParsingError
		if len(p.stack) == 0 {
			err = p.handleValue(c, types.ExpectedValue, types.Uninitialized)
		} else {
			switch p.stack[len(p.stack)-1].state {
			case expectListValue:
				if p.buf[p.pos] == format.End {
					p.handleEnd(c)
				} else {
					err = p.handleValue(c, types.ExpectedListValueOrEnd, types.List)
				}
			case expectDictKey:
				switch ch := p.buf[p.pos]; {
				case ch == format.End:
					p.handleEnd(c)
				case format.IsDigit(ch):
					err = p.handleDictKey(c)
				default:
					err = p.fail(types.ExpectedDictKeyOrEnd, p.pos, types.Dict)
				}
			case expectDictValue:
				err = p.handleValue(c, types.ExpectedDictValue, types.Dict)
			default:
				err = p.fail(types.InternalError, p.pos, types.Uninitialized)
			}
		}
		if err != nil {
			return err
		}
		if len(p.stack) == 0 {
			return nil
		}
	}
}

func (p *Parser) eofError() *types.ParsingError {
	if len(p.stack) == 0 {
		return p.fail(types.UnexpectedEOF, p.pos, types.Uninitialized)
	}
	switch p.stack[len(p.stack)-1].state {
	case expectListValue:
		return p.fail(types.ExpectedListValueOrEnd, p.pos, types.List)
	case expectDictKey:
		return p.fail(types.ExpectedDictKeyOrEnd, p.pos, types.Dict)
	default:
		return p.fail(types.ExpectedDictValue, p.pos, types.Dict)
	}
}

func (p *Parser) handleValue(c Consumer, notValue types.ParsingErrc, ctx types.Type) *types.ParsingError {
	switch ch := p.buf[p.pos]; {
	case ch == format.IntegerBegin:
		v, next, code := format.ParseInteger(p.buf, p.pos, p.opts.Kernel)
		if code != 0 {
			return p.fail(code, next, types.Integer)
		}
		p.pos = next
		c.Integer(v)
	case format.IsDigit(ch):
		s, err := p.readString()
		if err != nil {
			return err
		}
		c.String(s)
	case ch == format.ListBegin:
		return p.push(c, expectListValue, types.List)
	case ch == format.DictBegin:
		return p.push(c, expectDictKey, types.Dict)
	default:
		return p.fail(notValue, p.pos, ctx)
	}
	p.completeValue(c)
	return nil
}

func (p *Parser) readString() ([]byte, *types.ParsingError) {
	off, _, next, code := format.ParseString(p.buf, p.pos, p.opts.Kernel)
	if code != 0 {
		return nil, p.fail(code, next, types.String)
	}
	start := p.pos + off
	p.pos = next
	s := p.buf[start:next:next]
	if p.opts.Strings == StringCopy {
		s = bytes.Clone(s)
	}
	return s, nil
}

func (p *Parser) handleDictKey(c Consumer) *types.ParsingError {
	s, err := p.readString()
	if err != nil {
		return err
	}
	c.String(s)
	c.DictKey()
	p.stack[len(p.stack)-1].state = expectDictValue
	return nil
}

func (p *Parser) push(c Consumer, state parseState, ctx types.Type) *types.ParsingError {
	if len(p.stack) >= p.opts.Limits.RecursionLimit {
		return p.fail(types.RecursionDepthExceeded, p.pos, ctx)
	}
	p.stack = append(p.stack, pframe{state: state})
	p.pos++
	if ctx == types.List {
		c.ListBegin(-1)
	} else {
		c.DictBegin(-1)
	}
	return nil
}

func (p *Parser) handleEnd(c Consumer) {
	top := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]
	p.pos++
	if top.state == expectListValue {
		c.ListEnd(top.size)
	} else {
		c.DictEnd(top.size)
	}
	p.completeValue(c)
}

// completeValue credits a finished value to the enclosing container and
// emits the matching ListItem or DictValue event.
func (p *Parser) completeValue(c Consumer) {
	if len(p.stack) == 0 {
		return
	}
	top := &p.stack[len(p.stack)-1]
	top.size++
	switch top.state {
	case expectListValue:
		c.ListItem()
	case expectDictValue:
		c.DictValue()
		top.state = expectDictKey
	}
}
