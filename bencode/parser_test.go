package bencode

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/bencodekit/pkg/types"
)

// recorder logs every event as a short string.
type recorder struct {
	events  []string
	strings [][]byte
}

func (r *recorder) add(format string, args ...any) {
	r.events = append(r.events, fmt.Sprintf(format, args...))
}

func (r *recorder) Integer(v int64) { r.add("int %d", v) }
func (r *recorder) String(s []byte) {
	r.strings = append(r.strings, s)
	r.add("str %s", s)
}
func (r *recorder) ListBegin(n int) { r.add("list_begin %d", n) }
func (r *recorder) ListItem()       { r.add("list_item") }
func (r *recorder) ListEnd(n int)   { r.add("list_end %d", n) }
func (r *recorder) DictBegin(n int) { r.add("dict_begin %d", n) }
func (r *recorder) DictKey()        { r.add("dict_key") }
func (r *recorder) DictValue()      { r.add("dict_value") }
func (r *recorder) DictEnd(n int)   { r.add("dict_end %d", n) }
func (r *recorder) Error(err error) { r.add("error %v", err) }

func TestParser_Events(t *testing.T) {
	var r recorder
	n, err := NewParser(DefaultOptions()).Parse(&r, []byte("d1:ali1eli2eee1:bi3ee"))
	require.NoError(t, err)
	assert.Equal(t, 21, n)
	assert.Equal(t, []string{
		"dict_begin -1",
		"str a", "dict_key",
		"list_begin -1",
		"int 1", "list_item",
		"list_begin -1",
		"int 2", "list_item",
		"list_end 1", "list_item",
		"list_end 2", "dict_value",
		"str b", "dict_key",
		"int 3", "dict_value",
		"dict_end 2",
	}, r.events)
}

func TestParser_ProduceMatchesParse(t *testing.T) {
	// Parse reports unknown sizes at begin; Produce knows them.
	var parsed, produced recorder
	_, err := NewParser(DefaultOptions()).Parse(&parsed, []byte(sampleTorrent))
	require.NoError(t, err)
	mustIndex(t, sampleTorrent).Root().Produce(&produced)

	require.Len(t, produced.events, len(parsed.events))
	for i := range parsed.events {
		if strings.HasSuffix(parsed.events[i], "_begin -1") {
			continue
		}
		assert.Equal(t, parsed.events[i], produced.events[i], "event %d", i)
	}
}

func TestParser_ErrorEvent(t *testing.T) {
	var r recorder
	_, err := NewParser(DefaultOptions()).Parse(&r, []byte("li1ex"))
	require.ErrorIs(t, err, types.ExpectedListValueOrEnd)
	require.NotEmpty(t, r.events)
	last := r.events[len(r.events)-1]
	assert.True(t, strings.HasPrefix(last, "error parse error"), last)
}

func TestParser_StringModes(t *testing.T) {
	in := []byte("l4:spame")

	var borrowed recorder
	opts := DefaultOptions()
	opts.Strings = StringBorrow
	_, err := NewParser(opts).Parse(&borrowed, in)
	require.NoError(t, err)
	require.Len(t, borrowed.strings, 1)
	assert.Same(t, &in[3], &borrowed.strings[0][0])

	var copied recorder
	_, err = NewParser(DefaultOptions()).Parse(&copied, in)
	require.NoError(t, err)
	require.Len(t, copied.strings, 1)
	assert.Equal(t, "spam", string(copied.strings[0]))
	assert.NotSame(t, &in[3], &copied.strings[0][0])
}

func TestParser_StreamAndReuse(t *testing.T) {
	p := NewParser(DefaultOptions())

	var r recorder
	require.NoError(t, p.ParseStream(&r, []byte("i1ei2e")))
	assert.Equal(t, []string{"int 1", "int 2"}, r.events)

	r = recorder{}
	n, err := p.Parse(&r, []byte("i1ei2e"))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, []string{"int 1"}, r.events)

	require.NoError(t, p.ParseStream(Discard, nil))
}

func TestParser_MalformedMatchesIndex(t *testing.T) {
	p := NewParser(DefaultOptions())
	for _, tt := range malformedCases {
		if tt.code == types.UnexpectedTrailingData {
			continue
		}
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Parse(Discard, []byte(tt.in))
			requireParsingError(t, err, tt)
		})
	}
}
