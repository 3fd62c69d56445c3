package bencode

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_Scalars(t *testing.T) {
	assert.Equal(t, "i0e", string(Encode(Int(0))))
	assert.Equal(t, "i-17e", string(Encode(Int(-17))))
	assert.Equal(t, "0:", string(Encode(Str(""))))
	assert.Equal(t, "5:hello", string(Encode(Str("hello"))))
	assert.Equal(t, "le", string(Encode(NewList())))
	assert.Equal(t, "de", string(Encode(NewDict())))
}

func TestEncode_AppendAndReset(t *testing.T) {
	dst := []byte("prefix:")
	out := AppendEncode(dst, Int(1))
	assert.Equal(t, "prefix:i1e", string(out))

	e := NewEncoder(nil)
	Str("ab").Produce(e)
	assert.Equal(t, "2:ab", string(e.Bytes()))
	e.Reset()
	Int(2).Produce(e)
	assert.Equal(t, "i2e", string(e.Bytes()))
	assert.NoError(t, e.Err())
}

func TestEncodeTo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeTo(&buf, mustDecode(t, sampleTorrent)))
	assert.Equal(t, sampleTorrent, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestEncodeTo_WriteError(t *testing.T) {
	err := EncodeTo(failingWriter{}, Int(1))
	require.EqualError(t, err, "disk full")
}
