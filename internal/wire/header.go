package wire

// Header is a parsed 12-byte DNS message header (RFC 1035 Section
// 4.1.1). Field order matches wire order.
type Header struct {
	ID      uint16
	Flags   uint16
	QDCount uint16
	ANCount uint16
	NSCount uint16
	ARCount uint16
}

// LegalHeader is the gate applied before anything else is parsed: a
// query that fails it merits no response at all and is dropped.
//
// It requires at least 17 bytes (12-byte header, a 1-byte root
// question name, and a 2+2-byte qtype/qclass) and that QR is clear on
// the inbound message — a query claiming to already be a response is
// never answered.
func LegalHeader(r *ReadBuffer) bool {
	if r.Available() < 17 {
		return false
	}
	header := r.Current()
	return header[2]&0x80 == 0
}

// ReadHeader reads the 12-byte header at the buffer's current
// position and advances past it. It only fails if fewer than 12 bytes
// remain, which [LegalHeader] already rules out on the code path that
// calls it.
func ReadHeader(r *ReadBuffer) (Header, bool) {
	id, ok := r.ReadUint16()
	if !ok {
		return Header{}, false
	}
	flags, ok := r.ReadUint16()
	if !ok {
		return Header{}, false
	}
	qd, ok := r.ReadUint16()
	if !ok {
		return Header{}, false
	}
	an, ok := r.ReadUint16()
	if !ok {
		return Header{}, false
	}
	ns, ok := r.ReadUint16()
	if !ok {
		return Header{}, false
	}
	ar, ok := r.ReadUint16()
	if !ok {
		return Header{}, false
	}
	return Header{ID: id, Flags: flags, QDCount: qd, ANCount: an, NSCount: ns, ARCount: ar}, true
}

// ValidHeader checks the section-count and RCODE invariants a query
// must satisfy before the responder will act on it: RCODE must be
// zero, exactly one question, no answer or authority records, and at
// most one additional record (room for a single OPT pseudo-RR).
func ValidHeader(h Header) bool {
	if h.Flags&RCodeMask != 0 {
		return false
	}
	if h.QDCount != 1 {
		return false
	}
	if h.ANCount != 0 || h.NSCount != 0 {
		return false
	}
	return h.ARCount <= 1
}

// Opcode extracts the 4-bit opcode from the header flags.
func Opcode(h Header) uint16 {
	return (h.Flags & OpcodeMask) >> 11
}
