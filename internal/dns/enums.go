package dns

// RecordType represents DNS resource record types (RFC 1035, RFC 3596,
// RFC 4034) restricted to what a root-like zone may carry.
type RecordType uint16

const (
	TypeA      RecordType = 1  // IPv4 address (glue only)
	TypeNS     RecordType = 2  // Authoritative name server
	TypeSOA    RecordType = 6  // Start of Authority
	TypeAAAA   RecordType = 28 // IPv6 address (RFC 3596, glue only)
	TypeDS     RecordType = 43 // Delegation Signer (RFC 4034)
	TypeNSEC   RecordType = 47 // Next Secure record (RFC 4034)
	TypeDNSKEY RecordType = 48 // DNSSEC public key (RFC 4034)
	TypeOPT    RecordType = 41 // EDNS pseudo-record (RFC 6891)
)

// RecordClass represents DNS resource record classes (RFC 1035).
type RecordClass uint16

// ClassIN is the only record class this responder serves.
const ClassIN RecordClass = 1
