package wire_test

import (
	"testing"

	"github.com/jroosing/rootdns/internal/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadBufferPrimitives(t *testing.T) {
	r := wire.NewReadBuffer([]byte{0x01, 0x02, 0x03, 0xAB, 0xCD})

	assert.Equal(t, 5, r.Size())
	assert.Equal(t, 5, r.Available())

	b, ok := r.ReadUint8()
	require.True(t, ok)
	assert.Equal(t, uint8(0x01), b)

	v, ok := r.ReadUint16()
	require.True(t, ok)
	assert.Equal(t, uint16(0x0203), v)

	rest, ok := r.ReadBytes(2)
	require.True(t, ok)
	assert.Equal(t, []byte{0xAB, 0xCD}, rest)

	assert.Equal(t, 0, r.Available())
	_, ok = r.ReadUint8()
	assert.False(t, ok)
}

func TestReadBufferShortReads(t *testing.T) {
	r := wire.NewReadBuffer([]byte{0x01})

	_, ok := r.ReadUint16()
	assert.False(t, ok)
	// A failed read must not move the cursor.
	assert.Equal(t, 0, r.Position())

	_, ok = r.ReadBytes(5)
	assert.False(t, ok)
	assert.Equal(t, 0, r.Position())
}

func TestWriteBufferReserveAndSegment(t *testing.T) {
	w := wire.NewWriteBuffer(make([]byte, 4))

	ok := w.WriteUint16(0x1234)
	require.True(t, ok)
	ok = w.WriteUint16(0x5678)
	require.True(t, ok)

	assert.Equal(t, wire.Segment{0x12, 0x34, 0x56, 0x78}, w.Segment())

	// Buffer is full: the next reservation must fail cleanly.
	ok = w.WriteUint8(0xFF)
	assert.False(t, ok)
}

func TestWriteBufferReset(t *testing.T) {
	w := wire.NewWriteBuffer(make([]byte, 2))
	w.WriteUint16(0xBEEF)
	assert.Equal(t, 2, w.Position())

	w.Reset()
	assert.Equal(t, 0, w.Position())
	ok := w.WriteUint16(0xCAFE)
	require.True(t, ok)
	assert.Equal(t, wire.Segment{0xCA, 0xFE}, w.Segment())
}
