// Package handlers implements the management REST API endpoint
// handlers for rootdnsd.
//
// REST API Endpoints:
//
//	GET /healthz - liveness check
//	GET /stats   - process and host runtime statistics, plus query counters
//	GET /zone    - loaded zone summary and recent reload history
//
// The API is meant to run on a loopback or otherwise trusted address;
// it carries no authentication of its own.
package handlers

import (
	"log/slog"
	"time"

	"github.com/jroosing/rootdns/internal/journal"
	"github.com/jroosing/rootdns/internal/server"
	"github.com/jroosing/rootdns/internal/zone"
)

// Handler contains the dependencies shared by every endpoint.
type Handler struct {
	logger    *slog.Logger
	startTime time.Time

	zone    *zone.Store
	journal *journal.Journal
	stats   *server.DNSStats
}

// New creates a Handler serving the given zone store, reload journal,
// and query-outcome stats collector. journal may be nil (the /zone
// endpoint then omits reload history) and stats may be nil (/stats
// then omits query counters).
func New(logger *slog.Logger, z *zone.Store, j *journal.Journal, stats *server.DNSStats) *Handler {
	return &Handler{
		logger:    logger,
		startTime: time.Now(),
		zone:      z,
		journal:   j,
		stats:     stats,
	}
}
