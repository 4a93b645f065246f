package wire

// Question is the parsed result of a question section: the lookup key
// (last non-root label, lowercased), its label count, type, class, and
// the byte span of the whole question as it appeared on the wire
// (needed to echo it verbatim and to size the response header).
type Question struct {
	QName  string
	Labels int
	QType  uint16
	QClass uint16
	Span   []byte
}

// ParseQuestion parses a single question section starting at r's
// current position. r must be positioned at the first owner-name
// length byte of a message whose QDCOUNT is 1 ([ValidHeader] already
// enforces this).
//
// Beyond the name-parsing rules in [ParseName], this rejects:
//   - a qclass other than [ClassIN] (NOTIMPL);
//   - a qtype in the meta range [128, 255) — everything between the
//     assigned meta-types and ANY (NOTIMPL).
//
// On any rejection rcode is set and ok is false; the caller stops the
// parse pipeline per the guard-on-NOERROR discipline in
// [Context.Execute].
//
// The question span is captured as soon as the name, qtype and qclass
// have all been read — even when the meta-range or qclass check below
// then rejects the question — because the response still echoes
// whatever question section was present on the wire.
func ParseQuestion(r *ReadBuffer, rcode *RCode) (q Question, ok bool) {
	start := r.Position()

	qname, labels, nameOK := ParseName(r)
	if !nameOK {
		*rcode = FormErr
		return Question{}, false
	}

	if r.Available() < 4 {
		*rcode = FormErr
		return Question{}, false
	}
	qtype, _ := r.ReadUint16()
	qclass, _ := r.ReadUint16()

	q = Question{QName: qname, Labels: labels, QType: qtype, QClass: qclass, Span: r.Slice(start, r.Position())}

	if qtype >= 128 && qtype < TypeANY {
		*rcode = NotImp
		return q, false
	}
	if qclass != ClassIN {
		*rcode = NotImp
		return q, false
	}

	return q, true
}
