package wire_test

import (
	"testing"

	"github.com/jroosing/rootdns/internal/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSet answers every category with a fixed Answer, ignoring do_bit
// per the design decision that this responder does not sign replies.
type fakeSet struct {
	byCategory map[wire.Category]wire.Answer
}

func (s fakeSet) Answer(category wire.Category, _ bool) wire.Answer {
	if a, ok := s.byCategory[category]; ok {
		return a
	}
	return wire.EmptyAnswer
}

// fakeZone matches a fixed set of TLD lookup keys; anything else is
// NXDOMAIN but still returns a usable AnswerSet, mirroring how the
// real zone always hands back a set even on a miss.
type fakeZone struct {
	apex map[string]fakeSet
	miss fakeSet
}

func (z fakeZone) Lookup(qname string) (wire.AnswerSet, bool) {
	if set, ok := z.apex[qname]; ok {
		return set, true
	}
	return z.miss, false
}

func newTestZone() fakeZone {
	rootSOA := wire.NewAnswer(1, 0, 0, true, []byte("SOA-RRDATA"), false)
	comReferral := wire.NewAnswer(0, 2, 1, false, []byte("NS-GLUE"), false)
	comDS := wire.NewAnswer(1, 0, 0, false, []byte("DS-RRDATA"), false)

	root := fakeSet{byCategory: map[wire.Category]wire.Answer{
		wire.CategoryRootSOA: rootSOA,
	}}
	com := fakeSet{byCategory: map[wire.Category]wire.Answer{
		wire.CategoryTLDReferral: comReferral,
		wire.CategoryTLDDS:       comDS,
	}}
	return fakeZone{
		apex: map[string]fakeSet{"": root, "com": com},
		miss: fakeSet{},
	}
}

func newScratch() (headerBuf, optBuf wire.WriteBuffer) {
	return wire.NewWriteBuffer(make([]byte, 600)), wire.NewWriteBuffer(make([]byte, wire.OPTRRSize))
}

func be16(v uint16) []byte { return []byte{byte(v >> 8), byte(v)} }

func buildQuery(id uint16, flags uint16, name []byte, qtype, qclass uint16, opt []byte) []byte {
	msg := append([]byte{}, be16(id)...)
	msg = append(msg, be16(flags)...)
	msg = append(msg, be16(1)...) // qdcount
	arcount := uint16(0)
	if len(opt) > 0 {
		arcount = 1
	}
	msg = append(msg, be16(0)...) // ancount
	msg = append(msg, be16(0)...) // nscount
	msg = append(msg, be16(arcount)...)
	msg = append(msg, name...)
	msg = append(msg, be16(qtype)...)
	msg = append(msg, be16(qclass)...)
	msg = append(msg, opt...)
	return msg
}

func TestExecuteS1RootSOA(t *testing.T) {
	zone := newTestZone()
	headerBuf, optBuf := newScratch()

	req := buildQuery(1, 0, []byte{0}, wire.TypeSOA, wire.ClassIN, nil)
	ctx := wire.NewContext(zone, wire.NewReadBuffer(req), &headerBuf, &optBuf)

	segs := ctx.Execute()
	require.NotNil(t, segs)
	full := concat(segs)

	rcode := full[3] & 0x0F
	assert.Equal(t, byte(wire.NoError), rcode)
	assert.NotZero(t, full[2]&0x04, "AA bit should be set")
	assert.Equal(t, be16(1), full[4:6]) // qdcount
	assert.Equal(t, be16(0x0001), full[6:8]) // ancount from root SOA answer
}

func TestExecuteS2TLDReferral(t *testing.T) {
	zone := newTestZone()
	headerBuf, optBuf := newScratch()

	name := append([]byte{3}, "com"...)
	name = append(name, 0)
	req := buildQuery(2, 0, name, wire.TypeNS, wire.ClassIN, nil)
	ctx := wire.NewContext(zone, wire.NewReadBuffer(req), &headerBuf, &optBuf)

	segs := ctx.Execute()
	require.NotNil(t, segs)
	full := concat(segs)
	assert.Equal(t, byte(wire.NoError), full[3]&0x0F)
	assert.Zero(t, full[2]&0x04, "referral must not be authoritative")
}

func TestExecuteS3TLDDS(t *testing.T) {
	zone := newTestZone()
	headerBuf, optBuf := newScratch()

	name := append([]byte{3}, "com"...)
	name = append(name, 0)
	req := buildQuery(3, 0, name, wire.TypeDS, wire.ClassIN, nil)
	ctx := wire.NewContext(zone, wire.NewReadBuffer(req), &headerBuf, &optBuf)

	segs := ctx.Execute()
	require.NotNil(t, segs)
	full := concat(segs)
	assert.Equal(t, byte(wire.NoError), full[3]&0x0F)
}

func TestExecuteS4NXDomain(t *testing.T) {
	zone := newTestZone()
	headerBuf, optBuf := newScratch()

	name := append([]byte{3}, "xxx"...)
	name = append(name, 0)
	req := buildQuery(4, 0, name, 1, wire.ClassIN, nil)
	ctx := wire.NewContext(zone, wire.NewReadBuffer(req), &headerBuf, &optBuf)

	segs := ctx.Execute()
	require.NotNil(t, segs)
	full := concat(segs)
	assert.Equal(t, byte(wire.NXDomain), full[3]&0x0F)
}

func TestExecuteS5UnsupportedOpcode(t *testing.T) {
	zone := newTestZone()
	headerBuf, optBuf := newScratch()

	opcodeNotify := uint16(4) << 11
	req := buildQuery(5, opcodeNotify, []byte{0}, wire.TypeSOA, wire.ClassIN, nil)
	ctx := wire.NewContext(zone, wire.NewReadBuffer(req), &headerBuf, &optBuf)

	segs := ctx.Execute()
	require.NotNil(t, segs)
	full := concat(segs)
	assert.Equal(t, byte(wire.NotImp), full[3]&0x0F)
	assert.Equal(t, be16(1), full[4:6]) // question still echoed

	respFlags := uint16(full[2])<<8 | uint16(full[3])
	assert.Equal(t, opcodeNotify, respFlags&wire.OpcodeMask, "opcode bits are echoed even on NOTIMPL")
}

func TestExecuteS6BadVers(t *testing.T) {
	zone := newTestZone()
	headerBuf, optBuf := newScratch()

	opt := encodeOPT(1, 0, 0, nil) // version=1
	req := buildQuery(6, 0, []byte{0}, wire.TypeSOA, wire.ClassIN, opt)
	ctx := wire.NewContext(zone, wire.NewReadBuffer(req), &headerBuf, &optBuf)

	segs := ctx.Execute()
	require.NotNil(t, segs)
	full := concat(segs)
	assert.Equal(t, byte(0), full[3]&0x0F, "low nibble of header rcode is 0 for BADVERS")

	require.Len(t, segs, 3)
	optSeg := segs[2]
	assert.Equal(t, byte(wire.BadVers>>4), optSeg[5])
}

func TestExecuteS7TruncatedHeaderDropsPacket(t *testing.T) {
	zone := newTestZone()
	headerBuf, optBuf := newScratch()

	req := make([]byte, 16)
	ctx := wire.NewContext(zone, wire.NewReadBuffer(req), &headerBuf, &optBuf)

	segs := ctx.Execute()
	assert.Nil(t, segs)
}

func TestExecuteEchoesIDRDCD(t *testing.T) {
	zone := newTestZone()
	headerBuf, optBuf := newScratch()

	flags := wire.RDFlag | wire.CDFlag
	req := buildQuery(0xBEEF, flags, []byte{0}, wire.TypeSOA, wire.ClassIN, nil)
	ctx := wire.NewContext(zone, wire.NewReadBuffer(req), &headerBuf, &optBuf)

	segs := ctx.Execute()
	require.NotNil(t, segs)
	full := concat(segs)

	assert.Equal(t, be16(0xBEEF), full[0:2])
	respFlags := uint16(full[2])<<8 | uint16(full[3])
	assert.NotZero(t, respFlags&wire.QRFlag)
	assert.NotZero(t, respFlags&wire.RDFlag)
	assert.NotZero(t, respFlags&wire.CDFlag)
}

func TestExecuteOPTRoundTrip(t *testing.T) {
	zone := newTestZone()
	headerBuf, optBuf := newScratch()

	opt := encodeOPT(0, 0x8000, 0, nil)
	req := buildQuery(7, 0, []byte{0}, wire.TypeSOA, wire.ClassIN, opt)
	ctx := wire.NewContext(zone, wire.NewReadBuffer(req), &headerBuf, &optBuf)

	segs := ctx.Execute()
	require.NotNil(t, segs)
	require.Len(t, segs, 3)

	full := concat(segs[:2])
	arcount := uint16(full[10])<<8 | uint16(full[11])
	assert.Equal(t, uint16(1), arcount, "root SOA answer has arcount 0, +1 for OPT")

	optSeg := segs[2]
	require.Len(t, optSeg, wire.OPTRRSize)
	assert.Equal(t, byte(0), optSeg[6]) // version echoed as 0
	doFlag := uint16(optSeg[7])<<8 | uint16(optSeg[8])
	assert.Equal(t, uint16(0x8000), doFlag)
}

func concat(segs []wire.Segment) []byte {
	var out []byte
	for _, s := range segs {
		out = append(out, s...)
	}
	return out
}
