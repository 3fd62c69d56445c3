// Package types defines the shared vocabulary of the bencode codec: value
// kinds, decode limits, and the error taxonomy returned by every layer.
//
// Errors come in four families:
//   - ParsingError for malformed input (code, byte position, structural context).
//   - ConversionError for projecting a decoded value onto a host type.
//   - EncodingError for event sequences that violate the bencode grammar.
//   - Error for access failures, split into ErrBadAccess (kind mismatch)
//     and ErrOutOfRange (missing key or index).
//
// Every code type implements error itself, so callers can test with
// errors.Is(err, types.LeadingZero) without unpacking the wrapper.
//
// This package has no dependencies beyond the standard library.
package types
