package bencode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// sampleTorrent is a small canonical metainfo-shaped document.
const sampleTorrent = "d8:announce9:localhost" +
	"4:infod6:lengthi1024e4:name8:file.txt12:piece lengthi16384ee" +
	"4:listli1ei-2e3:abcleedee"

const sampleInfo = "d6:lengthi1024e4:name8:file.txt12:piece lengthi16384ee"

// canonicalDocs round-trip byte for byte.
var canonicalDocs = []string{
	"i0e",
	"i42e",
	"i-42e",
	"i9223372036854775807e",
	"i-9223372036854775808e",
	"0:",
	"4:spam",
	"le",
	"de",
	"l4:spami42ee",
	"d3:bar4:spam3:fooi42ee",
	"lllleeee",
	"d1:ad1:bd1:cleeee",
	sampleTorrent,
}

func mustIndex(t *testing.T, doc string) *DescriptorTable {
	t.Helper()
	tbl, err := DecodeIndex([]byte(doc))
	require.NoError(t, err)
	return tbl
}

func mustDecode(t *testing.T, doc string) Value {
	t.Helper()
	v, err := Decode([]byte(doc))
	require.NoError(t, err)
	return v
}
