// Package wire implements the query-execution core of the authoritative
// root-zone responder: bounds-checked buffer cursors over wire bytes, DNS
// header and EDNS(0) validation, question-section parsing, classification
// of a query against the served zone, and assembly of the response as an
// ordered list of scatter-gather output segments.
//
// Standards Compliance:
//
//   - RFC 1035: Domain Names - Implementation and Specification (header,
//     question section, name encoding)
//   - RFC 6891: Extension Mechanisms for DNS (EDNS(0), the OPT pseudo-RR)
//
// This package intentionally does not implement general-purpose DNS
// message parsing (RR parsing, compression-aware name decoding in
// arbitrary sections, TCP framing). It implements exactly the subset of
// the protocol needed to validate and classify a UDP query against a
// small, mostly-static zone and to serialise a response into
// caller-provided scratch buffers. [Context.Execute] still allocates the
// segment slice it returns, and [ParseName] allocates the lookup-key
// string for a non-root name, on every query.
package wire

import "errors"

// ErrShortBuffer reports that a caller-supplied region is smaller than
// the data being written into it. No function in this module returns it
// at present; [Context.Execute] reports failures through the response
// rcode instead of Go errors.
var ErrShortBuffer = errors.New("wire: buffer too small")
