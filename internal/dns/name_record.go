package dns

// NameRecord is a resource record whose RDATA is a single domain
// name. This zone only ever needs it for NS records (the server names
// a delegation points at).
type NameRecord struct {
	H      RRHeader
	T      RecordType
	Target string
}

// NewNSRecord creates a new NS record pointing at target.
func NewNSRecord(h RRHeader, target string) *NameRecord {
	return &NameRecord{H: h, T: TypeNS, Target: target}
}

// Type returns the record type.
func (r *NameRecord) Type() RecordType { return r.T }

// Header returns the record header.
func (r *NameRecord) Header() RRHeader { return r.H }

// SetHeader sets the record header.
func (r *NameRecord) SetHeader(h RRHeader) { r.H = h }

// MarshalRData marshals the target name to wire format.
func (r *NameRecord) MarshalRData() ([]byte, error) {
	return EncodeName(r.Target)
}
