package wire

// DNS header flags and masks (RFC 1035 Section 4.1.1).
//
// The header is a 16-bit flags field with the following layout:
//
//	+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
//	|QR|   Opcode  |AA|TC|RD|RA| Z|AD|CD|   RCODE   |
//	+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+--+
//	 15 14 13 12 11 10  9  8  7  6  5  4  3  2  1  0
const (
	QRFlag     uint16 = 0x8000 // Query/Response: 1 = response, 0 = query
	OpcodeMask uint16 = 0x7800 // Bits 14-11: operation type (use >> 11 to extract)
	AAFlag     uint16 = 0x0400 // Authoritative Answer
	RDFlag     uint16 = 0x0100 // Recursion Desired
	CDFlag     uint16 = 0x0010 // Checking Disabled
	RCodeMask  uint16 = 0x000F // Bits 3-0: response code

	// echoFlagsMask keeps RD, CD and the opcode from the request when
	// building the response flags: everything else is recomputed. The
	// opcode survives the mask (unlike the literal 0x0110 the original
	// parser used) so that an unsupported-opcode response still carries
	// the request's own opcode back, per the "opcode bits equal request
	// opcode bits, even on NOTIMPL" invariant.
	echoFlagsMask uint16 = RDFlag | CDFlag | OpcodeMask

	// OpcodeQuery is the only opcode this responder implements.
	OpcodeQuery uint16 = 0

	// optDOFlag is the DNSSEC-OK bit within the OPT record's flags word.
	optDOFlag uint16 = 0x8000
)

// RCode is a DNS response code. Values 16 and above (BADVERS) do not fit
// in the header's 4-bit RCODE field; the extra bits travel in the OPT
// pseudo-RR's extended-rcode byte (see [BuildOPT]).
type RCode uint16

// Response codes used by this responder (RFC 1035, RFC 6891).
const (
	NoError  RCode = 0
	FormErr  RCode = 1
	NXDomain RCode = 3
	NotImp   RCode = 4
	BadVers  RCode = 16
)

// DNS record types relevant to this responder.
const (
	TypeSOA    uint16 = 6
	TypeNS     uint16 = 2
	TypeNSEC   uint16 = 47
	TypeDNSKEY uint16 = 48
	TypeDS     uint16 = 43
	TypeOPT    uint16 = 41
	TypeANY    uint16 = 255
)

// ClassIN is the only record class this responder accepts.
const ClassIN uint16 = 1

// HeaderSize is the fixed size of a DNS message header in bytes.
const HeaderSize = 12

// OPTRRSize is the fixed size of a synthesised OPT pseudo-RR: a root
// owner name (1 byte), TYPE, CLASS/UDP-size, extended-rcode, version,
// flags, and an empty RDATA length (11 bytes total).
const OPTRRSize = 11
