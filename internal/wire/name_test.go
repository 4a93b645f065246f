package wire_test

import (
	"testing"

	"github.com/jroosing/rootdns/internal/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeName(labels ...string) []byte {
	var out []byte
	for _, l := range labels {
		out = append(out, byte(len(l)))
		out = append(out, l...)
	}
	return append(out, 0)
}

func TestParseNameRoot(t *testing.T) {
	r := wire.NewReadBuffer(encodeName())
	qname, labels, ok := wire.ParseName(&r)
	require.True(t, ok)
	assert.Equal(t, 0, labels)
	assert.Equal(t, "", qname)
}

func TestParseNameLowercasesLookupKey(t *testing.T) {
	r := wire.NewReadBuffer(encodeName("www", "COM"))
	qname, labels, ok := wire.ParseName(&r)
	require.True(t, ok)
	assert.Equal(t, 2, labels)
	assert.Equal(t, "com", qname)
}

func TestParseNameRejectsCompressionPointer(t *testing.T) {
	r := wire.NewReadBuffer([]byte{0xC0, 0x0C})
	_, _, ok := wire.ParseName(&r)
	assert.False(t, ok)
}

func TestParseNameRejectsOverlong(t *testing.T) {
	var labels []string
	for i := 0; i < 5; i++ {
		labels = append(labels, string(make([]byte, 63)))
	}
	r := wire.NewReadBuffer(encodeName(labels...))
	_, _, ok := wire.ParseName(&r)
	assert.False(t, ok)
}

func TestParseNameRejectsUnterminated(t *testing.T) {
	// A single label with no terminating root byte.
	r := wire.NewReadBuffer([]byte{3, 'c', 'o', 'm'})
	_, _, ok := wire.ParseName(&r)
	assert.False(t, ok)
}
