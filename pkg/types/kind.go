package types

import "cmp"

// Type is the runtime kind of a bencode value.
//
// The numeric order of the constants is the cross-kind ordering used when
// comparing values of different kinds.
type Type uint8

const (
	Uninitialized Type = iota
	Integer
	String
	List
	Dict
)

func (t Type) String() string {
	switch t {
	case Uninitialized:
		return "uninitialized"
	case Integer:
		return "integer"
	case String:
		return "string"
	case List:
		return "list"
	case Dict:
		return "dict"
	default:
		return "unknown"
	}
}

// Compare orders kinds: uninitialized < integer < string < list < dict.
func (t Type) Compare(o Type) int {
	return cmp.Compare(t, o)
}

// IsContainer reports whether t is List or Dict.
func (t Type) IsContainer() bool {
	return t == List || t == Dict
}
