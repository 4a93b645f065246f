package wire

import "encoding/binary"

// ReadBuffer is a bounds-checked cursor over an immutable byte slice.
// Every read either advances the cursor by the width read and succeeds,
// or leaves the cursor untouched and reports failure; callers are
// expected to check the returned bool rather than rely on panics, so
// that a single malformed query never allocates or unwinds a stack.
type ReadBuffer struct {
	data []byte
	pos  int
}

// NewReadBuffer wraps data for reading from position 0. The caller
// retains ownership of data; ReadBuffer never copies or mutates it.
func NewReadBuffer(data []byte) ReadBuffer {
	return ReadBuffer{data: data}
}

// Size returns the total number of bytes in the underlying region.
func (r *ReadBuffer) Size() int { return len(r.data) }

// Position returns the current cursor offset.
func (r *ReadBuffer) Position() int { return r.pos }

// Available returns the number of unread bytes.
func (r *ReadBuffer) Available() int { return len(r.data) - r.pos }

// Current returns the slice from the cursor to the end of the region.
// The returned slice aliases the underlying data.
func (r *ReadBuffer) Current() []byte { return r.data[r.pos:] }

// At returns the byte at absolute offset i. The caller must ensure
// 0 <= i < Size(); it exists to let callers re-read bytes already
// consumed (e.g. the owner-name span located by the name parser).
func (r *ReadBuffer) At(i int) byte { return r.data[i] }

// Slice returns the region [from, to) of the underlying data without
// moving the cursor. The caller must ensure the range is in bounds.
func (r *ReadBuffer) Slice(from, to int) []byte { return r.data[from:to] }

// ReadUint8 reads one byte and advances the cursor.
func (r *ReadBuffer) ReadUint8() (uint8, bool) {
	if r.Available() < 1 {
		return 0, false
	}
	v := r.data[r.pos]
	r.pos++
	return v, true
}

// ReadUint16 reads a big-endian 16-bit value and advances the cursor.
func (r *ReadBuffer) ReadUint16() (uint16, bool) {
	if r.Available() < 2 {
		return 0, false
	}
	v := binary.BigEndian.Uint16(r.data[r.pos:])
	r.pos += 2
	return v, true
}

// ReadBytes returns a borrowed slice of length n and advances the
// cursor past it. The returned slice aliases the underlying data.
func (r *ReadBuffer) ReadBytes(n int) ([]byte, bool) {
	if n < 0 || r.Available() < n {
		return nil, false
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, true
}

// Skip advances the cursor by n bytes without returning them.
func (r *ReadBuffer) Skip(n int) bool {
	if n < 0 || r.Available() < n {
		return false
	}
	r.pos += n
	return true
}

// WriteBuffer is a bounds-checked cursor over a mutable byte slice.
// Reservations hand back a slice of the underlying region so callers
// fill it in place; nothing is copied twice. The prefix [0, Position())
// is the buffer's committed output.
type WriteBuffer struct {
	data []byte
	pos  int
}

// NewWriteBuffer wraps data for writing from position 0. The caller
// owns data and must reset the buffer (by discarding and re-wrapping,
// or via [WriteBuffer.Reset]) between queries.
func NewWriteBuffer(data []byte) WriteBuffer {
	return WriteBuffer{data: data}
}

// Reset rewinds the cursor to the start of the same underlying region.
func (w *WriteBuffer) Reset() { w.pos = 0 }

// Position returns the number of bytes committed so far.
func (w *WriteBuffer) Position() int { return w.pos }

// Available returns the remaining capacity.
func (w *WriteBuffer) Available() int { return len(w.data) - w.pos }

// Reserve advances the cursor by n bytes and returns a writable handle
// to the just-allocated region, or ok=false if that would exceed the
// buffer's capacity.
func (w *WriteBuffer) Reserve(n int) (region []byte, ok bool) {
	if n < 0 || w.Available() < n {
		return nil, false
	}
	region = w.data[w.pos : w.pos+n]
	w.pos += n
	return region, true
}

// WriteUint8 reserves and writes one byte.
func (w *WriteBuffer) WriteUint8(v uint8) bool {
	b, ok := w.Reserve(1)
	if !ok {
		return false
	}
	b[0] = v
	return true
}

// WriteUint16 reserves and writes a big-endian 16-bit value.
func (w *WriteBuffer) WriteUint16(v uint16) bool {
	b, ok := w.Reserve(2)
	if !ok {
		return false
	}
	binary.BigEndian.PutUint16(b, v)
	return true
}

// WriteBytes reserves len(src) bytes and copies src into them.
func (w *WriteBuffer) WriteBytes(src []byte) bool {
	b, ok := w.Reserve(len(src))
	if !ok {
		return false
	}
	copy(b, src)
	return true
}

// Segment returns the committed prefix [0, Position()) as an output
// segment. The returned slice aliases the underlying data and is only
// valid until the buffer is reset and reused by the caller.
func (w *WriteBuffer) Segment() Segment { return Segment(w.data[:w.pos]) }

// Segment is one piece of a scatter-gather response: the concatenation
// of all segments returned by [Context.Execute] is the response's wire
// bytes. A Segment aliases buffer memory owned elsewhere (a caller's
// WriteBuffer, the zone's precomputed Answer data, or a Context-owned
// offset-adjusted copy) and must not be retained past the lifetime of
// its owner.
type Segment []byte
