package zone

import (
	"sync/atomic"

	"github.com/jroosing/rootdns/internal/wire"
)

// Store holds an atomically swappable *Zone. A reload builds a new
// immutable Zone and publishes it with Store; the UDP server's
// in-flight Contexts each captured whatever snapshot Lookup handed
// them, so a reload never blocks or invalidates a query already in
// progress. Store itself implements wire.Zone.
type Store struct {
	current atomic.Pointer[Zone]
}

// NewStore wraps an initial Zone snapshot.
func NewStore(z *Zone) *Store {
	s := &Store{}
	s.Store(z)
	return s
}

// Store publishes a new Zone snapshot.
func (s *Store) Store(z *Zone) {
	s.current.Store(z)
}

// Load returns the currently published Zone snapshot.
func (s *Store) Load() *Zone {
	return s.current.Load()
}

// Lookup implements wire.Zone by delegating to the current snapshot.
func (s *Store) Lookup(qname string) (wire.AnswerSet, bool) {
	return s.current.Load().Lookup(qname)
}
