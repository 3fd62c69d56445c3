package bencode

// IntegerView is a View known to hold an integer.
type IntegerView struct{ View }

// Value returns the integer decoded at index time; nothing is re-parsed.
func (v IntegerView) Value() int64 { return v.desc().Value() }

// StringView is a View known to hold a string.
type StringView struct{ View }

// Bytes returns the string contents as a sub-slice of the source buffer.
// The slice must not be modified.
func (v StringView) Bytes() []byte {
	d := v.desc()
	start := d.Position() + d.Offset()
	end := start + d.Size()
	return v.t.buf[start:end:end]
}

// String copies the contents into a Go string.
func (v StringView) String() string { return string(v.Bytes()) }

// Len returns the string length in bytes.
func (v StringView) Len() int { return v.desc().Size() }

// Empty reports whether the string has no bytes.
func (v StringView) Empty() bool { return v.Len() == 0 }
