// Package server drives internal/wire's query-execution core over a UDP
// socket: it owns the listener, a pool of reusable per-query scratch
// buffers, and writes each response back to its peer with a single
// scatter-gather syscall instead of concatenating segments first.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/jroosing/rootdns/internal/pool"
	"github.com/jroosing/rootdns/internal/wire"
	"golang.org/x/sys/unix"
)

// maxIncomingMessageSize bounds one inbound UDP datagram. The root
// responder never needs anything close to this; it matches the
// teacher's own MaxIncomingDNSMessageSize.
const maxIncomingMessageSize = 4096

// maxHeaderSegment bounds the header-plus-echoed-question segment
// Context.Execute writes into a scratch WriteBuffer: 12 header bytes,
// a worst-case 255-byte wire-encoded name, and 4 bytes of type/class.
const maxHeaderSegment = wire.HeaderSize + 255 + 4

// scratch is one query's reusable header and OPT write buffers,
// recycled across datagrams through scratchPool. Backing arrays are
// embedded so a scratch never needs its own heap allocation once the
// pool has warmed up.
type scratch struct {
	headerArr [maxHeaderSegment]byte
	optArr    [wire.OPTRRSize]byte
	header    wire.WriteBuffer
	opt       wire.WriteBuffer
}

func newScratch() *scratch {
	s := &scratch{}
	s.header = wire.NewWriteBuffer(s.headerArr[:])
	s.opt = wire.NewWriteBuffer(s.optArr[:])
	return s
}

var scratchPool = pool.New(newScratch)

// incomingPool holds the datagram-sized read buffers so a busy server
// doesn't allocate one per query.
var incomingPool = pool.New(func() []byte {
	return make([]byte, maxIncomingMessageSize)
})

// UDPServer answers DNS queries over UDP by handing each datagram to a
// wire.Context and writing back whatever segments Execute returns.
type UDPServer struct {
	Logger         *slog.Logger
	Zone           wire.Zone
	Stats          *DNSStats
	MaxConcurrency int

	conn *net.UDPConn
	wg   sync.WaitGroup
	sem  chan struct{}
}

// Run resolves addr and serves on it until ctx is cancelled.
func (s *UDPServer) Run(ctx context.Context, addr string) error {
	udpAddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return err
	}
	conn, err := net.ListenUDP("udp", udpAddr)
	if err != nil {
		return err
	}
	return s.RunOnConn(ctx, conn)
}

// RunOnConn serves on an already-bound connection. Exposed separately
// so tests can supply a loopback socket without going through DNS
// resolution.
func (s *UDPServer) RunOnConn(ctx context.Context, conn *net.UDPConn) error {
	s.conn = conn
	defer conn.Close()

	maxConc := s.MaxConcurrency
	if maxConc <= 0 {
		maxConc = 1
	}
	s.sem = make(chan struct{}, maxConc)

	for {
		if ctx.Err() != nil {
			return nil
		}

		buf, n, remote, ok := s.receivePacket(conn)
		if !ok {
			continue
		}

		if !s.tryAcquireSemaphore() {
			incomingPool.Put(buf)
			continue
		}

		s.wg.Add(1)
		go s.handleRequest(conn, buf, n, remote)
	}
}

// receivePacket reads one datagram into a pooled buffer. The caller
// takes ownership of buf on ok == true and must return it to
// incomingPool once done with it.
func (s *UDPServer) receivePacket(conn *net.UDPConn) (buf []byte, n int, remote *net.UDPAddr, ok bool) {
	buf = incomingPool.Get()
	_ = conn.SetReadDeadline(time.Now().Add(time.Second))
	read, addr, err := conn.ReadFromUDP(buf)
	if err != nil || addr == nil {
		incomingPool.Put(buf)
		return nil, 0, nil, false
	}
	return buf, read, addr, true
}

func (s *UDPServer) tryAcquireSemaphore() bool {
	select {
	case s.sem <- struct{}{}:
		return true
	default:
		return false
	}
}

// handleRequest runs the query-execution core over one datagram and
// writes the result back to its sender.
func (s *UDPServer) handleRequest(conn *net.UDPConn, buf []byte, n int, peer *net.UDPAddr) {
	defer s.wg.Done()
	defer func() { <-s.sem }()
	defer incomingPool.Put(buf)

	sc := scratchPool.Get()
	defer scratchPool.Put(sc)
	sc.header.Reset()
	sc.opt.Reset()

	req := wire.NewReadBuffer(buf[:n])
	qctx := wire.NewContext(s.Zone, req, &sc.header, &sc.opt)
	segments := qctx.Execute()

	if segments == nil {
		if s.Stats != nil {
			s.Stats.RecordDropped()
		}
		return
	}
	if s.Stats != nil {
		s.Stats.Record(segments[0])
	}

	if err := writeSegments(conn, peer, segments); err != nil && s.Logger != nil {
		s.Logger.Warn("udp write failed", "peer", peer.String(), "err", err)
	}
}

// writeSegments sends segments to peer with a single sendmsg(2) call
// (unix.SendmsgBuffers), so the header, answer bundle, and optional OPT
// record reach the wire without first being concatenated into one
// buffer.
func writeSegments(conn *net.UDPConn, peer *net.UDPAddr, segments []wire.Segment) error {
	var stackBufs [3][]byte
	buffers := stackBufs[:0]
	for _, seg := range segments {
		buffers = append(buffers, seg)
	}

	sa, err := sockaddrForUDPAddr(peer)
	if err != nil {
		return err
	}

	raw, err := conn.SyscallConn()
	if err != nil {
		return err
	}
	var sendErr error
	if ctlErr := raw.Control(func(fd uintptr) {
		_, sendErr = unix.SendmsgBuffers(int(fd), buffers, nil, sa, 0)
	}); ctlErr != nil {
		return ctlErr
	}
	return sendErr
}

// sockaddrForUDPAddr converts a resolved peer address into the
// unix.Sockaddr shape SendmsgBuffers needs.
func sockaddrForUDPAddr(addr *net.UDPAddr) (unix.Sockaddr, error) {
	if ip4 := addr.IP.To4(); ip4 != nil {
		sa := &unix.SockaddrInet4{Port: addr.Port}
		copy(sa.Addr[:], ip4)
		return sa, nil
	}
	ip16 := addr.IP.To16()
	if ip16 == nil {
		return nil, fmt.Errorf("udp server: invalid peer address %v", addr)
	}
	sa := &unix.SockaddrInet6{Port: addr.Port}
	copy(sa.Addr[:], ip16)
	if addr.Zone != "" {
		if iface, err := net.InterfaceByName(addr.Zone); err == nil {
			sa.ZoneId = uint32(iface.Index)
		}
	}
	return sa, nil
}

// Stop closes the socket and waits up to timeout for in-flight
// handlers to finish.
func (s *UDPServer) Stop(timeout time.Duration) error {
	if s.conn == nil {
		return nil
	}
	_ = s.conn.Close()

	if timeout <= 0 {
		s.wg.Wait()
		return nil
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		return errors.New("udp server: timeout waiting for in-flight requests")
	}
}
