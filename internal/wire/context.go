package wire

// Context is a single query's worth of parse state and scratch
// buffers. One Context is built per inbound datagram; nothing about
// it is safe to share across queries. The Zone reference is the only
// thing shared, and it is read-only from this package's perspective.
type Context struct {
	zone      Zone
	req       ReadBuffer
	totalSize int

	headerBuf *WriteBuffer
	optBuf    *WriteBuffer
}

// NewContext builds a Context over req, sharing zone as the lookup
// collaborator. headerBuf and optBuf are caller-owned scratch buffers
// that must already be reset (Position() == 0); the caller is
// responsible for resetting and reusing them for the next query, e.g.
// via a [pool.Pool] of header/OPT scratch pairs.
func NewContext(zone Zone, req ReadBuffer, headerBuf, optBuf *WriteBuffer) *Context {
	return &Context{zone: zone, req: req, totalSize: req.Size(), headerBuf: headerBuf, optBuf: optBuf}
}

// Execute runs the full parse-classify-serialise pipeline for one
// query. A nil return means the packet must be silently dropped; a
// non-nil, possibly-empty-answer return is the ordered list of
// segments whose concatenation is the response's wire bytes.
func (c *Context) Execute() []Segment {
	if !LegalHeader(&c.req) {
		return nil
	}

	header, _ := ReadHeader(&c.req)

	rcode := NoError
	var q Question
	var edns EDNSInfo

	if !ValidHeader(header) {
		rcode = FormErr
	} else {
		var qok bool
		q, qok = ParseQuestion(&c.req, &rcode)
		if qok && rcode == NoError {
			var badVers bool
			edns, badVers = ParseEDNS(&c.req, &rcode)
			if rcode == NoError {
				if badVers {
					rcode = BadVers
				} else if TrailingGarbage(&c.req, c.totalSize) {
					rcode = FormErr
				}
			}
		}
		// The opcode check runs last so that a rejected-opcode message
		// still gets its question section (and OPT, if present) parsed
		// and echoed back — see the unsupported-opcode scenario in the
		// context tests, where a NOTIMPL response still carries qdcount = 1.
		if Opcode(header) != OpcodeQuery {
			rcode = NotImp
		}
	}

	answer := EmptyAnswer
	if rcode == NoError {
		set, match := c.zone.Lookup(q.QName)
		if !match {
			rcode = NXDomain
		}
		category := Classify(match, q.Labels, q.QType)
		answer = set.Answer(category, edns.DOBit)
	}

	haveQuestion := len(q.Span) > 0

	flags := header.Flags & echoFlagsMask
	flags |= QRFlag
	flags |= uint16(rcode) & RCodeMask
	if answer.Authoritative {
		flags |= AAFlag
	}

	c.headerBuf.WriteUint16(header.ID)
	c.headerBuf.WriteUint16(flags)
	if haveQuestion {
		c.headerBuf.WriteUint16(1)
	} else {
		c.headerBuf.WriteUint16(0)
	}
	c.headerBuf.WriteUint16(answer.ANCount)
	c.headerBuf.WriteUint16(answer.NSCount)
	arcount := answer.ARCount
	if edns.HasEDNS {
		arcount++
	}
	c.headerBuf.WriteUint16(arcount)
	if haveQuestion {
		c.headerBuf.WriteBytes(q.Span)
	}

	segments := make([]Segment, 0, 3)
	segments = append(segments, c.headerBuf.Segment())

	if answer.IsEmpty() {
		segments = append(segments, answer.Segment())
	} else {
		offset := uint16(len(q.Span) + HeaderSize)
		segments = append(segments, answer.WithNameOffset(offset))
	}

	if edns.HasEDNS {
		BuildOPT(c.optBuf, rcode, edns.DOBit)
		segments = append(segments, c.optBuf.Segment())
	}

	return segments
}
