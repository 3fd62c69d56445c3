package bpointer

import (
	"github.com/joshuapare/bencodekit/bencode"
	"github.com/joshuapare/bencodekit/pkg/types"
)

// Resolve walks p from v and returns a pointer to the addressed value.
// Modifying the result modifies v.
func (p Pointer) Resolve(v *bencode.Value) (*bencode.Value, error) {
	cur := v
	for _, tok := range p.tokens {
		var err error
		switch cur.Type() {
		case types.Dict:
			cur, err = cur.At(tok)
		case types.List:
			var i int
			if i, err = parseIndex(tok, cur.Len()); err == nil {
				cur, err = cur.Index(i)
			}
		default:
			err = unresolvable(tok, cur.Type())
		}
		if err != nil {
			return nil, err
		}
	}
	return cur, nil
}

// ResolveView walks p from v over a descriptor index.
func (p Pointer) ResolveView(v bencode.View) (bencode.View, error) {
	cur := v
	for _, tok := range p.tokens {
		var err error
		switch cur.Type() {
		case types.Dict:
			cur, err = cur.MustDict().At(tok)
		case types.List:
			l := cur.MustList()
			var i int
			if i, err = parseIndex(tok, l.Len()); err == nil {
				cur, err = l.At(i)
			}
		default:
			err = unresolvable(tok, cur.Type())
		}
		if err != nil {
			return bencode.View{}, err
		}
	}
	return cur, nil
}

// Contains reports whether p resolves against v.
func (p Pointer) Contains(v *bencode.Value) bool {
	_, err := p.Resolve(v)
	return err == nil
}

// ContainsView reports whether p resolves against v.
func (p Pointer) ContainsView(v bencode.View) bool {
	_, err := p.ResolveView(v)
	return err == nil
}
