package dns

import (
	"encoding/binary"
	"fmt"
)

// RRHeader contains the common owner name, class and TTL a resource
// record carries ahead of its type-specific RDATA.
type RRHeader struct {
	Name  string
	Class uint16
	TTL   uint32
}

// NewRRHeader creates a new resource record header.
func NewRRHeader(name string, class RecordClass, ttl uint32) RRHeader {
	return RRHeader{Name: name, Class: uint16(class), TTL: ttl}
}

// Record is a DNS resource record that knows how to marshal its own
// RDATA. It is the common shape [MarshalRecord] serialises into wire
// bytes for a zone's precomputed Answer bundles.
type Record interface {
	Type() RecordType
	Header() RRHeader
	SetHeader(h RRHeader)
	MarshalRData() ([]byte, error)
}

// MarshalRecord converts a Record to wire-format bytes: owner name,
// type, class, TTL, RDLENGTH, RDATA.
func MarshalRecord(r Record) ([]byte, error) {
	rdata, err := r.MarshalRData()
	if err != nil {
		return nil, err
	}
	h := r.Header()
	return marshalRecordWithRData(h, r.Type(), rdata)
}

func marshalRecordWithRData(h RRHeader, rt RecordType, rdata []byte) ([]byte, error) {
	nameWire := []byte{0}
	if rt != TypeOPT {
		b, err := EncodeName(h.Name)
		if err != nil {
			return nil, err
		}
		nameWire = b
	}

	if len(rdata) > 65535 {
		return nil, fmt.Errorf("%w: rdata too large: %d bytes (max 65535)", ErrDNSError, len(rdata))
	}

	out := make([]byte, 0, len(nameWire)+10+len(rdata))
	out = append(out, nameWire...)
	fixed := make([]byte, 10)
	binary.BigEndian.PutUint16(fixed[0:2], uint16(rt))
	binary.BigEndian.PutUint16(fixed[2:4], h.Class)
	binary.BigEndian.PutUint32(fixed[4:8], h.TTL)
	// len(rdata) is already bounded to <= 65535 by the check above.
	binary.BigEndian.PutUint16(fixed[8:10], uint16(len(rdata)))
	out = append(out, fixed...)
	out = append(out, rdata...)
	return out, nil
}
