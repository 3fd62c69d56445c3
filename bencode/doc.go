// Package bencode decodes and encodes bencode, the serialization format of
// BitTorrent metainfo files and peer wire messages.
//
// One byte stream can be decoded into either of two representations:
//
//   - Value, an owned and mutable tree. Dict keys are kept sorted so
//     re-encoding is always canonical.
//   - DescriptorTable, a flat index of fixed-size descriptors over the
//     original buffer, read through zero-copy View cursors. Skipping a nested
//     child is a single index jump, so iteration cost does not depend on depth.
//
// Both parsers are explicit-stack state machines bounded by types.Limits, so
// adversarial nesting cannot exhaust the goroutine stack.
//
// # Events
//
// Parser is a push parser that reports a fixed vocabulary of events to a
// Consumer. ValueBuilder, Encoder, and the printers in the printer package are
// all consumers; Value and View both replay themselves as events through
// Produce, which is how Encode serializes either representation.
//
// # Trailing data
//
// DecodeFrom and Parser.Parse consume exactly one value and return the offset
// just past it. Decode and DecodeIndex additionally reject trailing bytes via
// CheckTrailing. DecodeStream and DecodeIndexStream accept concatenated values.
//
// # Lifetimes
//
// A DescriptorTable is immutable once built and may be read from many
// goroutines. Views borrow both the table and the source buffer; neither may
// be modified or released while a view is in use.
package bencode
