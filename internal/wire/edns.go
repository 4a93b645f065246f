package wire

// EDNSInfo captures the state produced by parsing an optional OPT
// pseudo-RR in the additional section (RFC 6891).
type EDNSInfo struct {
	HasEDNS bool
	DOBit   bool
}

// ParseEDNS parses whatever remains of r after the question section.
//
//   - No bytes remain: HasEDNS is false, rcode is unchanged.
//   - 1-10 bytes remain: FORMERR (an OPT RR cannot be shorter than
//     [OPTRRSize]).
//   - Otherwise the fixed 11-byte OPT layout is read: an owner name
//     that must be the root (single zero byte), a type that must be
//     [TypeOPT], UDP size, extended-rcode, version, flags, and an
//     RDLENGTH whose declared option bytes must actually be present
//     (they are then skipped unread — this responder advertises no
//     options of its own).
//
// On success HasEDNS is true and DOBit reflects the flags word's
// DNSSEC-OK bit. A version above zero does not itself abort parsing:
// it is reported to the caller via badVers so the caller can set
// rcode = BADVERS while still finishing the parse and echoing OPT.
func ParseEDNS(r *ReadBuffer, rcode *RCode) (info EDNSInfo, badVers bool) {
	if r.Available() == 0 {
		return EDNSInfo{}, false
	}
	if r.Available() < OPTRRSize {
		*rcode = FormErr
		return EDNSInfo{}, false
	}

	owner, _ := r.ReadUint8()
	if owner != 0 {
		*rcode = FormErr
		return EDNSInfo{}, false
	}
	typ, _ := r.ReadUint16()
	if typ != TypeOPT {
		*rcode = FormErr
		return EDNSInfo{}, false
	}
	_, _ = r.ReadUint16() // UDP size: informational only in this core.
	_, _ = r.ReadUint8()  // extended-rcode: request-side value is ignored.
	version, _ := r.ReadUint8()
	flags, _ := r.ReadUint16()
	rdlen, _ := r.ReadUint16()

	if r.Available() < int(rdlen) {
		*rcode = FormErr
		return EDNSInfo{}, false
	}
	r.Skip(int(rdlen))

	if version > 0 {
		badVers = true
	}
	return EDNSInfo{HasEDNS: true, DOBit: flags&optDOFlag != 0}, badVers
}

// TrailingGarbage reports whether r has unconsumed bytes that must be
// rejected as FORMERR. A packet-socket quirk pads short frames up to
// the 46-byte Ethernet minimum, so any leftover bytes on a message
// whose total size is at most 46 are tolerated as padding; beyond
// that, leftover bytes mean the message carried unparsed content.
func TrailingGarbage(r *ReadBuffer, totalSize int) bool {
	return r.Available() > 0 && totalSize > 46
}

// BuildOPT writes a synthesised OPT pseudo-RR into w following the
// fixed 11-byte layout (spec: name/type/udp-size/ext-rcode/version/
// flags/rdlen). The UDP size is fixed at 1480, version at 0, and
// rdlength at 0 since this responder never emits EDNS options.
func BuildOPT(w *WriteBuffer, rcode RCode, doBit bool) bool {
	if !w.WriteUint8(0) { // root owner name
		return false
	}
	if !w.WriteUint16(TypeOPT) {
		return false
	}
	if !w.WriteUint16(1480) { // advertised UDP payload size
		return false
	}
	if !w.WriteUint8(uint8(rcode >> 4)) {
		return false
	}
	if !w.WriteUint8(0) { // version
		return false
	}
	var flags uint16
	if doBit {
		flags |= optDOFlag
	}
	if !w.WriteUint16(flags) {
		return false
	}
	return w.WriteUint16(0) // rdlength
}
