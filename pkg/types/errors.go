package types

import (
	"fmt"
	"strconv"
)

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindParse      ErrKind = iota // malformed input
	ErrKindType                      // value accessed as the wrong kind
	ErrKindRange                     // missing key or index
	ErrKindConversion                // host type projection failed
	ErrKindEncoding                  // event sequence violates the grammar
	ErrKindPointer                   // malformed bpointer expression
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels commonly returned by implementations.
var (
	// ErrBadAccess indicates a value was accessed as a kind it does not hold.
	ErrBadAccess = &Error{Kind: ErrKindType, Msg: "bad access"}
	// ErrOutOfRange indicates a missing dict key or list index.
	ErrOutOfRange = &Error{Kind: ErrKindRange, Msg: "out of range"}
	// ErrBadPointer indicates a malformed bpointer expression.
	ErrBadPointer = &Error{Kind: ErrKindPointer, Msg: "invalid bpointer"}
)

// NewBadAccess reports an access to a value of kind found as kind expected.
func NewBadAccess(expected, found Type) error {
	return &Error{
		Kind: ErrKindType,
		Msg:  fmt.Sprintf("expected %s, found %s", expected, found),
		Err:  ErrBadAccess,
	}
}

// NewOutOfRange reports a missing key or index described by msg.
func NewOutOfRange(msg string) error {
	return &Error{Kind: ErrKindRange, Msg: msg, Err: ErrOutOfRange}
}

// -----------------------------------------------------------------------------
// Parsing errors
// -----------------------------------------------------------------------------

// ParsingErrc enumerates the ways a bencode document can be malformed.
type ParsingErrc uint8

const (
	ExpectedColon ParsingErrc = iota + 1
	ExpectedDigit
	ExpectedDictKeyOrEnd
	ExpectedListValueOrEnd
	ExpectedEnd
	ExpectedValue
	ExpectedDictValue
	ExpectedIntegerStart
	UnexpectedEnd
	UnexpectedEOF
	UnexpectedTrailingData
	ResultOutOfRange
	LeadingZero
	NegativeZero
	NegativeStringLength
	RecursionDepthExceeded
	ValueLimitExceeded
	InputTooLarge
	InternalError
)

var parsingMessages = [...]string{
	ExpectedColon:          "expected string length separator ':'",
	ExpectedDigit:          "expected digit",
	ExpectedDictKeyOrEnd:   "expected a dict key or end token",
	ExpectedListValueOrEnd: "expected a list value or end token",
	ExpectedEnd:            "expected end token",
	ExpectedValue:          "expected begin of a value ('i', 'l', 'd', or a digit)",
	ExpectedDictValue:      "missing value for key in dict",
	ExpectedIntegerStart:   "expected integer start token 'i'",
	UnexpectedEnd:          "mismatched end token",
	UnexpectedEOF:          "unexpected end of input",
	UnexpectedTrailingData: "unexpected data after value",
	ResultOutOfRange:       "result out of range of destination type",
	LeadingZero:            "leading zero(s) is forbidden",
	NegativeZero:           "negative zero is forbidden",
	NegativeStringLength:   "invalid string length",
	RecursionDepthExceeded: "nested object depth exceeded",
	ValueLimitExceeded:     "value limit exceeded",
	InputTooLarge:          "input exceeds the 4 GiB index limit",
	InternalError:          "internal error",
}

func (c ParsingErrc) String() string {
	if int(c) < len(parsingMessages) && parsingMessages[c] != "" {
		return parsingMessages[c]
	}
	return "unrecognised error"
}

func (c ParsingErrc) Error() string { return c.String() }

// ParsingError describes the first malformed token of a decode.
type ParsingError struct {
	Code ParsingErrc
	// Position is the byte offset of the offending token, or -1 when unknown.
	Position int
	// Context is the kind being parsed when the error was raised.
	// Uninitialized means no context is known.
	Context Type
}

// NewParsingError builds a ParsingError at pos.
func NewParsingError(code ParsingErrc, pos int, context Type) *ParsingError {
	return &ParsingError{Code: code, Position: pos, Context: context}
}

func (e *ParsingError) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := "parse error: invalid character read"
	if e.Position >= 0 {
		msg += " at position " + strconv.Itoa(e.Position)
	}
	if e.Context != Uninitialized {
		msg += ", while parsing \"" + e.Context.String() + "\""
	}
	return msg + ": " + e.Code.String()
}

func (e *ParsingError) Unwrap() error { return e.Code }

// -----------------------------------------------------------------------------
// Conversion errors
// -----------------------------------------------------------------------------

// ConversionErrc enumerates failures projecting a value onto a host type.
type ConversionErrc uint8

const (
	NotIntegerType ConversionErrc = iota + 1
	NotStringType
	NotListType
	NotDictType
	SizeMismatch
	ListValueTypeConstructionError
	DictMappedTypeConstructionError
	ConstructionError
	UndefinedConversion
)

var conversionMessages = [...]string{
	NotIntegerType:                  "value not of integer type",
	NotStringType:                   "value not of string type",
	NotListType:                     "value not of list type",
	NotDictType:                     "value not of dict type",
	SizeMismatch:                    "size mismatch between value and destination type",
	ListValueTypeConstructionError:  "construction of list value type failed",
	DictMappedTypeConstructionError: "construction of dict mapped type failed",
	ConstructionError:               "construction of destination type failed",
	UndefinedConversion:             "no conversion defined for destination type",
}

func (c ConversionErrc) String() string {
	if int(c) < len(conversionMessages) && conversionMessages[c] != "" {
		return conversionMessages[c]
	}
	return "unknown error"
}

func (c ConversionErrc) Error() string { return c.String() }

// NotTypeErrc returns the conversion code for a value that is not of kind t.
func NotTypeErrc(t Type) ConversionErrc {
	switch t {
	case Integer:
		return NotIntegerType
	case String:
		return NotStringType
	case List:
		return NotListType
	case Dict:
		return NotDictType
	default:
		return UndefinedConversion
	}
}

// ConversionError reports a failed projection. Err, when set, is the error
// returned by the destination type's own construction.
type ConversionError struct {
	Code ConversionErrc
	Err  error
}

func (e *ConversionError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return "conversion error: " + e.Code.String() + ": " + e.Err.Error()
	}
	return "conversion error: " + e.Code.String()
}

func (e *ConversionError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Code}
	}
	return []error{e.Code, e.Err}
}

// -----------------------------------------------------------------------------
// Encoding errors
// -----------------------------------------------------------------------------

// EncodingErrc enumerates grammar violations in hand-emitted event sequences.
type EncodingErrc uint8

const (
	InvalidDictKey EncodingErrc = iota + 1
	UnexpectedEndDict
	UnexpectedEndList
	UninitializedValue
)

func (c EncodingErrc) String() string {
	switch c {
	case InvalidDictKey:
		return "invalid dict key"
	case UnexpectedEndDict:
		return "invalid dict end"
	case UnexpectedEndList:
		return "invalid list end"
	case UninitializedValue:
		return "uninitialized value"
	default:
		return "unknown error"
	}
}

func (c EncodingErrc) Error() string { return c.String() }

// EncodingError reports a grammar violation detected while composing events.
type EncodingError struct {
	Code EncodingErrc
}

func (e *EncodingError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return "encoding error: " + e.Code.String()
}

func (e *EncodingError) Unwrap() error { return e.Code }
