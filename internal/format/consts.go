// Package format houses the token-level codec for the bencode wire format.
// It knows how a single integer or string token is laid out and nothing about
// containers; the structural parsers in package bencode drive it.
//
// Wire layout:
//
//	integer  'i' ['-'] digits 'e'
//	string   digits ':' <length raw bytes>
//	list     'l' value* 'e'
//	dict     'd' (string value)* 'e'
//
// Digits carry no leading zero unless the number is exactly 0, and an
// integer is never "-0".
package format

const (
	// IntegerBegin starts an integer token.
	IntegerBegin = 'i'
	// ListBegin starts a list.
	ListBegin = 'l'
	// DictBegin starts a dict.
	DictBegin = 'd'
	// End terminates integers, lists, and dicts.
	End = 'e'
	// Colon separates a string length from its bytes.
	Colon = ':'
	// Minus marks a negative integer.
	Minus = '-'
)

// IsDigit reports whether c is an ASCII decimal digit.
func IsDigit(c byte) bool {
	return c-'0' <= 9
}
