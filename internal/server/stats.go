package server

import (
	"encoding/binary"
	"sync/atomic"

	"github.com/jroosing/rootdns/internal/wire"
)

// DNSStats collects query-outcome counters. All methods are safe for
// concurrent use.
type DNSStats struct {
	queriesTotal atomic.Uint64
	dropped      atomic.Uint64
	noError      atomic.Uint64
	nxdomain     atomic.Uint64
	formErr      atomic.Uint64
	notImp       atomic.Uint64
	badVers      atomic.Uint64
}

// NewDNSStats creates a new statistics collector.
func NewDNSStats() *DNSStats {
	return &DNSStats{}
}

// RecordDropped records a datagram that Execute silently dropped
// (illegal header).
func (s *DNSStats) RecordDropped() {
	s.queriesTotal.Add(1)
	s.dropped.Add(1)
}

// Record tallies the outcome of one query from its response header
// segment, without needing to re-parse the whole message.
func (s *DNSStats) Record(header wire.Segment) {
	s.queriesTotal.Add(1)
	if len(header) < 4 {
		return
	}
	rcode := wire.RCode(binary.BigEndian.Uint16(header[2:4]) & wire.RCodeMask)
	switch rcode {
	case wire.NoError:
		s.noError.Add(1)
	case wire.NXDomain:
		s.nxdomain.Add(1)
	case wire.FormErr:
		s.formErr.Add(1)
	case wire.NotImp:
		s.notImp.Add(1)
	case wire.BadVers:
		s.badVers.Add(1)
	}
}

// DNSStatsSnapshot is a point-in-time view of the counters.
type DNSStatsSnapshot struct {
	QueriesTotal uint64
	Dropped      uint64
	NoError      uint64
	NXDomain     uint64
	FormErr      uint64
	NotImp       uint64
	BadVers      uint64
}

// Snapshot returns the current counter values.
func (s *DNSStats) Snapshot() DNSStatsSnapshot {
	return DNSStatsSnapshot{
		QueriesTotal: s.queriesTotal.Load(),
		Dropped:      s.dropped.Load(),
		NoError:      s.noError.Load(),
		NXDomain:     s.nxdomain.Load(),
		FormErr:      s.formErr.Load(),
		NotImp:       s.notImp.Load(),
		BadVers:      s.badVers.Load(),
	}
}
