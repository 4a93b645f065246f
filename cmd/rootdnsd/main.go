// Command rootdnsd is the authoritative root-zone responder: it loads
// a zone file, serves it over UDP, and exposes a small management API
// for health, stats, and zone-summary queries.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/jroosing/rootdns/internal/api"
	"github.com/jroosing/rootdns/internal/config"
	"github.com/jroosing/rootdns/internal/journal"
	"github.com/jroosing/rootdns/internal/logging"
	"github.com/jroosing/rootdns/internal/server"
	"github.com/jroosing/rootdns/internal/zone"
)

func main() {
	var (
		listenAddr = flag.String("listen", "0.0.0.0:53", "UDP listen address")
		zonePath   = flag.String("zone", "", "Path to the root zone file")
		journalDB  = flag.String("journal", "", "Path to the reload-journal database (empty disables journaling)")
		apiListen  = flag.String("api-listen", "127.0.0.1:8080", "Management API listen address")
		workers    = flag.String("workers", "auto", `Concurrency limit: "auto" or a fixed integer`)
		logLevel   = flag.String("log-level", "INFO", "Log level: DEBUG, INFO, WARN, ERROR")
		logFormat  = flag.String("log-format", "text", "Log format: text or json")
	)
	flag.Parse()

	cfg := &config.Config{
		ListenAddr:    *listenAddr,
		ZonePath:      *zonePath,
		JournalPath:   *journalDB,
		APIListenAddr: *apiListen,
		WorkersRaw:    *workers,
		LogLevel:      *logLevel,
		LogFormat:     *logFormat,
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(2)
	}

	logger := logging.Configure(logging.Config{
		Level:      cfg.LogLevel,
		Structured:       cfg.LogFormat == "json",
		StructuredFormat: cfg.LogFormat,
		IncludePID:       true,
	})

	z, err := zone.LoadFile(cfg.ZonePath)
	if err != nil {
		logger.Error("failed to load zone", "path", cfg.ZonePath, "err", err)
		os.Exit(1)
	}
	z.Generation = 1
	store := zone.NewStore(z)

	journalLogger := logging.WithComponent(logger, "journal")
	var j *journal.Journal
	if cfg.JournalPath != "" {
		j, err = journal.Open(cfg.JournalPath)
		if err != nil {
			journalLogger.Error("failed to open reload journal", "path", cfg.JournalPath, "err", err)
			os.Exit(1)
		}
		defer j.Close()

		if err := j.RecordReload(journal.Reload{
			Generation:  z.Generation,
			LoadedAt:    time.Now().UTC(),
			Source:      cfg.ZonePath,
			RecordCount: len(z.Records),
			Origin:      z.Origin,
		}); err != nil {
			journalLogger.Warn("failed to record initial zone load", "err", err)
		}
	}

	stats := server.NewDNSStats()

	maxConc := runtime.GOMAXPROCS(0) * 4
	if cfg.Workers.Mode == config.WorkersFixed && cfg.Workers.Value > 0 {
		maxConc = cfg.Workers.Value
	}

	udp := &server.UDPServer{
		Logger:         logging.WithComponent(logger, "udp"),
		Zone:           store,
		Stats:          stats,
		MaxConcurrency: maxConc,
	}

	apiServer := api.New(cfg.APIListenAddr, logging.WithComponent(logger, "api"), store, j, stats)

	logger.Info("rootdnsd starting",
		"listen", cfg.ListenAddr,
		"api_listen", cfg.APIListenAddr,
		"zone", cfg.ZonePath,
		"origin", z.Origin,
		"records", len(z.Records),
		"workers", cfg.Workers.String(),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 2)
	go func() {
		if err := udp.Run(ctx, cfg.ListenAddr); err != nil {
			errCh <- fmt.Errorf("udp server: %w", err)
		}
	}()
	go func() {
		if err := apiServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("api server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server failed", "err", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		logger.Warn("api server shutdown error", "err", err)
	}
	if err := udp.Stop(5 * time.Second); err != nil {
		logger.Warn("udp server shutdown error", "err", err)
	}
}
