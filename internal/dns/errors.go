// Package dns encodes resource records into DNS wire format for the
// zone loader: it turns the restricted set of record types a root-like
// zone can carry (SOA, NS, DS, DNSKEY, NSEC, and A/AAAA glue) into the
// pre-serialised RR bytes the wire package's Answer bundles are built
// from. It only ever marshals — the responder never needs to decode
// an RR it received, since queries carry a question section and
// nothing else.
//
// Standards Compliance:
//
//   - RFC 1035: Domain Names - Implementation and Specification (RR
//     wire format, name encoding)
//   - RFC 3596: DNS Extensions to Support IPv6 (AAAA records)
//   - RFC 4034: DNSSEC Resource Records (DS, DNSKEY, NSEC — carried as
//     opaque pre-encoded RDATA; see OpaqueRecord)
package dns

import "errors"

// ErrDNSError is a sentinel error type for DNS protocol violations.
// Wrap this with fmt.Errorf("context: %w", ErrDNSError) to add context.
var ErrDNSError = errors.New("dns wire error")
