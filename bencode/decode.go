package bencode

import "github.com/joshuapare/bencodekit/pkg/types"

// CheckTrailing reports UnexpectedTrailingData when a value decoded from b
// ended at n but bytes remain.
func CheckTrailing(b []byte, n int) error {
	if n < len(b) {
		return types.NewParsingError(types.UnexpectedTrailingData, n, types.Uninitialized)
	}
	return nil
}

// valueParser returns a push parser that borrows strings; ValueBuilder
// copies them into owned strings anyway.
func (o Options) valueParser() *Parser {
	o.Strings = StringBorrow
	return NewParser(o)
}

// DecodeFrom decodes the value at the start of b into an owned tree and
// returns the offset just past it.
func (o Options) DecodeFrom(b []byte) (Value, int, error) {
	var vb ValueBuilder
	n, err := o.valueParser().Parse(&vb, b)
	if err != nil {
		return Value{}, n, err
	}
	return vb.Value(), n, nil
}

// Decode decodes a single-document buffer into an owned tree.
// Bytes after the value are rejected.
func (o Options) Decode(b []byte) (Value, error) {
	v, n, err := o.DecodeFrom(b)
	if err != nil {
		return Value{}, err
	}
	if err := CheckTrailing(b, n); err != nil {
		return Value{}, err
	}
	return v, nil
}

// DecodeStream decodes every concatenated top-level value in b.
func (o Options) DecodeStream(b []byte) ([]Value, error) {
	p := o.valueParser()
	p.reset(b)
	var (
		vb  ValueBuilder
		out []Value
	)
	for p.pos < len(p.buf) {
		vb.Reset()
		if err := p.parseValue(&vb); err != nil {
			return nil, err
		}
		out = append(out, vb.Value())
	}
	return out, nil
}

// Validate checks that b holds exactly one well-formed value without
// building any representation of it.
func (o Options) Validate(b []byte) error {
	o.Strings = StringBorrow
	n, err := NewParser(o).Parse(Discard, b)
	if err != nil {
		return err
	}
	return CheckTrailing(b, n)
}

// ValidateStream checks that b holds zero or more concatenated values.
func (o Options) ValidateStream(b []byte) error {
	o.Strings = StringBorrow
	return NewParser(o).ParseStream(Discard, b)
}

// Decode decodes a single document with DefaultOptions.
func Decode(b []byte) (Value, error) { return DefaultOptions().Decode(b) }

// DecodeFrom decodes one leading value with DefaultOptions.
func DecodeFrom(b []byte) (Value, int, error) { return DefaultOptions().DecodeFrom(b) }

// DecodeStream decodes concatenated values with DefaultOptions.
func DecodeStream(b []byte) ([]Value, error) { return DefaultOptions().DecodeStream(b) }

// Validate checks a single document with DefaultOptions.
func Validate(b []byte) error { return DefaultOptions().Validate(b) }
