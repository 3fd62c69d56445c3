package printer

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/bencodekit/bencode"
	"github.com/joshuapare/bencodekit/pkg/types"
)

const sample = "d8:announce9:localhost4:infod6:lengthi1024e4:name8:file.txte4:listli1e0:lededee"

func decodeView(t *testing.T, doc string) bencode.View {
	t.Helper()
	tbl, err := bencode.DecodeIndex([]byte(doc))
	require.NoError(t, err)
	return tbl.Root()
}

func TestPrinter_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Print(&buf, decodeView(t, sample), DefaultOptions()))

	want := strings.Join([]string{
		`announce: "localhost"`,
		`info:`,
		`    length: 1024`,
		`    name: "file.txt"`,
		`list:`,
		`    - 1`,
		`    - ""`,
		`    - []`,
		`    - {}`,
		``,
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestPrinter_TextBinaryTruncated(t *testing.T) {
	v := bencode.NewList(bencode.Bytes([]byte{0xff, 0xfe, 0xfd, 0xfc}))
	opts := DefaultOptions()
	opts.MaxValueBytes = 2

	var buf bytes.Buffer
	require.NoError(t, Print(&buf, v, opts))
	assert.Equal(t, "- <4 bytes> fffe...\n", buf.String())
}

func TestPrinter_JSON(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Format = FormatJSON
	require.NoError(t, Print(&buf, decodeView(t, sample), opts))

	want := `{
    "announce": "localhost",
    "info": {
        "length": 1024,
        "name": "file.txt"
    },
    "list": [
        1,
        "",
        [],
        {}
    ]
}
`
	assert.Equal(t, want, buf.String())

	var result map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	require.Contains(t, result, "info")
}

func TestPrinter_JSONCompact(t *testing.T) {
	var buf bytes.Buffer
	opts := Options{Format: FormatJSON}
	require.NoError(t, Print(&buf, decodeView(t, "d1:ali1ei2ee1:b3:x\"ye"), opts))
	assert.Equal(t, `{"a":[1,2],"b":"x\"y"}`+"\n", buf.String())
}

func TestPrinter_JSONEscapes(t *testing.T) {
	var buf bytes.Buffer
	opts := Options{Format: FormatJSON}
	require.NoError(t, Print(&buf, bencode.Str("a\"b\\\n\x01<"), opts))
	assert.Equal(t, `"a\"b\\\n\u0001\u003c"`+"\n", buf.String())

	var got string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "a\"b\\\n\x01<", got)
}

func TestPrinter_JSONBinary(t *testing.T) {
	v := bencode.Bytes([]byte{'a', 0xe9})

	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Format = FormatJSON
	require.NoError(t, Print(&buf, v, opts))
	assert.Equal(t, "\"61e9\"\n", buf.String())

	buf.Reset()
	opts.Binary = BinaryLatin1
	require.NoError(t, Print(&buf, v, opts))
	assert.Equal(t, "\"aé\"\n", buf.String())
}

func TestPrinter_Debug(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Format = FormatDebug
	require.NoError(t, Print(&buf, decodeView(t, "d1:ali1e4:spamee"), opts))

	want := strings.Join([]string{
		"begin dict (size=1)",
		`string (size=1, value="a")`,
		"dict key",
		"begin list (size=2)",
		"integer (1)",
		"list item",
		`string (size=4, value="spam")`,
		"list item",
		"end list (size=2)",
		"dict value",
		"end dict (size=1)",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestPrinter_DebugFromParser(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, Options{Format: FormatDebug})
	c := p.Consumer()
	_, err := bencode.NewParser(bencode.DefaultOptions()).Parse(c, []byte("li1ex"))
	require.ErrorIs(t, err, types.ExpectedListValueOrEnd)
	require.ErrorIs(t, c.Flush(), types.ExpectedListValueOrEnd)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "begin list\ninteger (1)\nlist item\nerror: parse error"), out)
}

func TestPrinter_Bencode(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Print(&buf, decodeView(t, sample), Options{Format: FormatBencode}))
	assert.Equal(t, sample+"\n", buf.String())

	buf.Reset()
	c := New(&buf, Options{Format: FormatBencode}).Consumer()
	require.NoError(t, bencode.NewParser(bencode.DefaultOptions()).ParseStream(c, []byte("i1ei2e")))
	require.NoError(t, c.Flush())
	assert.Equal(t, "i1ei2e\n", buf.String())
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"text", "json", "debug", "bencode"} {
		f, err := ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, Format(name), f)
	}
	f, err := ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatText, f)

	_, err = ParseFormat("yaml")
	require.Error(t, err)
}
