package dns

import "fmt"

// OpaqueRecord carries pre-encoded RDATA the zone loader does not
// interpret: DS, DNSKEY and NSEC rdata are accepted from the zone file
// as a hex blob (see internal/zone) and passed through unchanged
// rather than parsed field-by-field, since this responder never
// computes DNSSEC material itself.
type OpaqueRecord struct {
	H    RRHeader
	T    RecordType
	Data []byte
}

// NewOpaqueRecord creates a new opaque record for pre-encoded RDATA.
func NewOpaqueRecord(h RRHeader, rt RecordType, data []byte) *OpaqueRecord {
	return &OpaqueRecord{H: h, T: rt, Data: data}
}

// Type returns the record type.
func (r *OpaqueRecord) Type() RecordType { return r.T }

// Header returns the record header.
func (r *OpaqueRecord) Header() RRHeader { return r.H }

// SetHeader sets the record header.
func (r *OpaqueRecord) SetHeader(h RRHeader) { r.H = h }

// MarshalRData returns the pre-encoded data unchanged.
func (r *OpaqueRecord) MarshalRData() ([]byte, error) {
	if r.Data == nil {
		return nil, fmt.Errorf("%w: opaque record has no rdata", ErrDNSError)
	}
	return r.Data, nil
}
