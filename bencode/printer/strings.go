package printer

import (
	"encoding/hex"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// displayBytes returns s as UTF-8 text. Valid UTF-8 is returned unchanged;
// anything else is rendered per mode.
func displayBytes(s []byte, mode BinaryMode) ([]byte, bool) {
	if utf8.Valid(s) {
		return s, false
	}
	if mode == BinaryLatin1 {
		out, err := charmap.ISO8859_1.NewDecoder().Bytes(s)
		if err == nil {
			return out, true
		}
	}
	return hex.AppendEncode(nil, s), true
}
