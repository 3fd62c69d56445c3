package bencode

import (
	"math"

	"github.com/joshuapare/bencodekit/internal/format"
	"github.com/joshuapare/bencodekit/pkg/types"
)

// parseState is what the innermost open container expects next.
type parseState uint8

const (
	expectValue parseState = iota
	expectListValue
	expectDictKey
	expectDictValue
)

// frame is one open container on the index builder's stack.
type frame struct {
	state parseState
	start int // descriptor index of the begin descriptor
	size  int // direct children (pairs for dicts)
}

// initialDescriptorCapacity bounds the up-front allocation for large inputs.
const initialDescriptorCapacity = 1 << 16

// indexBuilder turns a buffer into descriptors in one forward pass. It never
// recurses; nesting lives in stack.
type indexBuilder struct {
	opts  Options
	buf   []byte
	pos   int
	descs []Descriptor
	stack []frame
}

func newIndexBuilder(b []byte, opts Options) *indexBuilder {
	opts = opts.normalize()
	hint := min(len(b)/4+1, initialDescriptorCapacity, opts.Limits.ValueLimit)
	return &indexBuilder{
		opts:  opts,
		buf:   b,
		descs: make([]Descriptor, 0, hint),
		stack: make([]frame, 0, 16),
	}
}

func (p *indexBuilder) fail(code types.ParsingErrc, pos int, ctx types.Type) *types.ParsingError {
	return types.NewParsingError(code, pos, ctx)
}

// parseValue appends the descriptors of exactly one value starting at p.pos.
func (p *indexBuilder) parseValue() *types.ParsingError {
	for {
		if p.pos >= len(p.buf) {
			return p.eofError()
		}
		if len(p.descs) >= p.opts.Limits.ValueLimit {
			return p.fail(types.ValueLimitExceeded, p.pos, types.Uninitialized)
		}

		var err *types.ParsingError
		if len(p.stack) == 0 {
			err = p.handleValue(0, types.ExpectedValue, types.Uninitialized)
		} else {
			switch p.stack[len(p.stack)-1].state {
			case expectListValue:
				if p.buf[p.pos] == format.End {
					err = p.handleEnd()
				} else {
					err = p.handleValue(DescListValue, types.ExpectedListValueOrEnd, types.List)
				}
			case expectDictKey:
				switch c := p.buf[p.pos]; {
				case c == format.End:
					err = p.handleEnd()
				case format.IsDigit(c):
					err = p.handleDictKey()
				default:
					err = p.fail(types.ExpectedDictKeyOrEnd, p.pos, types.Dict)
				}
			case expectDictValue:
				err = p.handleValue(DescDictValue, types.ExpectedDictValue, types.Dict)
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

func (p *indexBuilder) eofError() *types.ParsingError {
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

// handleValue dispatches on the byte at p.pos. role tags the emitted
// descriptor; notValue and ctx describe the error for any other byte.
func (p *indexBuilder) handleValue(role DescriptorType, notValue types.ParsingErrc, ctx types.Type) *types.ParsingError {
	switch c := p.buf[p.pos]; {
	case c == format.IntegerBegin:
		v, next, code := format.ParseInteger(p.buf, p.pos, p.opts.Kernel)
		if code != 0 {
			return p.fail(code, next, types.Integer)
		}
		d := newDescriptor(DescInteger|role, p.pos)
		d.data = uint64(v)
		p.descs = append(p.descs, d)
		p.pos = next
	case format.IsDigit(c):
		off, size, next, code := format.ParseString(p.buf, p.pos, p.opts.Kernel)
		if code != 0 {
			return p.fail(code, next, types.String)
		}
		d := newDescriptor(DescString|role, p.pos)
		d.data = packPair(off, size)
		p.descs = append(p.descs, d)
		p.pos = next
	case c == format.ListBegin:
		return p.push(DescList|role, expectListValue, types.List)
	case c == format.DictBegin:
		return p.push(DescDict|role, expectDictKey, types.Dict)
	default:
		return p.fail(notValue, p.pos, ctx)
	}
	p.completeValue()
	return nil
}

func (p *indexBuilder) handleDictKey() *types.ParsingError {
	off, size, next, code := format.ParseString(p.buf, p.pos, p.opts.Kernel)
	if code != 0 {
		return p.fail(code, next, types.String)
	}
	d := newDescriptor(DescString|DescDictKey, p.pos)
	d.data = packPair(off, size)
	p.descs = append(p.descs, d)
	p.pos = next
	p.stack[len(p.stack)-1].state = expectDictValue
	return nil
}

func (p *indexBuilder) push(typ DescriptorType, state parseState, ctx types.Type) *types.ParsingError {
	if len(p.stack) >= p.opts.Limits.RecursionLimit {
		return p.fail(types.RecursionDepthExceeded, p.pos, ctx)
	}
	p.stack = append(p.stack, frame{state: state, start: len(p.descs)})
	p.descs = append(p.descs, newDescriptor(typ, p.pos))
	p.pos++
	return nil
}

// handleEnd closes the innermost container and back-patches its begin
// descriptor now that the distance and child count are known.
func (p *indexBuilder) handleEnd() *types.ParsingError {
	top := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]

	data := packPair(len(p.descs)-top.start, top.size)
	begin := &p.descs[top.start]
	begin.data = data
	end := newDescriptor(begin.typ|DescEnd, p.pos)
	end.data = data
	p.descs = append(p.descs, end)
	p.pos++
	p.completeValue()
	return nil
}

// completeValue credits a finished value to the enclosing container.
func (p *indexBuilder) completeValue() {
	if len(p.stack) == 0 {
		return
	}
	top := &p.stack[len(p.stack)-1]
	top.size++
	if top.state == expectDictValue {
		top.state = expectDictKey
	}
}

func (p *indexBuilder) table(roots int) *DescriptorTable {
	if n := len(p.descs); n > 0 {
		p.descs[n-1].typ |= DescStop
	}
	return &DescriptorTable{descs: p.descs, buf: p.buf, roots: roots}
}

func checkIndexable(b []byte) error {
	if uint64(len(b)) > math.MaxUint32 {
		return types.NewParsingError(types.InputTooLarge, -1, types.Uninitialized)
	}
	return nil
}

// DecodeIndex builds a descriptor index over a single-document buffer.
// Bytes after the value are rejected.
func (o Options) DecodeIndex(b []byte) (*DescriptorTable, error) {
	if err := checkIndexable(b); err != nil {
		return nil, err
	}
	p := newIndexBuilder(b, o)
	if err := p.parseValue(); err != nil {
		return nil, err
	}
	if err := CheckTrailing(b, p.pos); err != nil {
		return nil, err
	}
	return p.table(1), nil
}

// DecodeIndexStream builds one index over every concatenated top-level value
// in b. An empty buffer yields an empty table.
func (o Options) DecodeIndexStream(b []byte) (*DescriptorTable, error) {
	if err := checkIndexable(b); err != nil {
		return nil, err
	}
	p := newIndexBuilder(b, o)
	roots := 0
	for p.pos < len(p.buf) {
		if err := p.parseValue(); err != nil {
			return nil, err
		}
		roots++
	}
	return p.table(roots), nil
}

// DecodeIndex builds a descriptor index with DefaultOptions.
func DecodeIndex(b []byte) (*DescriptorTable, error) {
	return DefaultOptions().DecodeIndex(b)
}

// DecodeIndexStream indexes concatenated values with DefaultOptions.
func DecodeIndexStream(b []byte) (*DescriptorTable, error) {
	return DefaultOptions().DecodeIndexStream(b)
}
