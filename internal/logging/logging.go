// Package logging configures rootdnsd's slog output and hands out
// component-scoped child loggers so a log line from the UDP server
// can't be mistaken for one from the management API.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config controls the root logger rootdnsd builds at startup.
type Config struct {
	Level            string
	Structured       bool
	StructuredFormat string
	IncludePID       bool
	ExtraFields      map[string]string
}

// Configure builds the process-wide root logger and sets it as
// slog's default. cmd/rootdnsd derives component loggers from it with
// WithComponent for the UDP server, the management API, and the
// reload journal, so a deployment reading JSON logs can filter by
// "component" without the responder needing its own log-shipping
// convention.
func Configure(cfg Config) *slog.Logger {
	level := parseLevel(cfg.Level)
	var handler slog.Handler
	out := io.Writer(os.Stderr)

	attrs := make([]slog.Attr, 0, len(cfg.ExtraFields)+1)
	for k, v := range cfg.ExtraFields {
		attrs = append(attrs, slog.String(k, v))
	}
	if cfg.IncludePID {
		attrs = append(attrs, slog.Int("pid", os.Getpid()))
	}

	if cfg.Structured && strings.ToLower(cfg.StructuredFormat) == "json" {
		handler = slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})
	}

	if len(attrs) > 0 {
		handler = handler.WithAttrs(attrs)
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// WithComponent returns a child of logger tagged with a "component"
// attribute, e.g. "udp", "api", or "journal". Every subsystem
// rootdnsd starts gets its own scoped logger rather than sharing one
// undifferentiated stream.
func WithComponent(logger *slog.Logger, name string) *slog.Logger {
	if logger == nil {
		logger = slog.Default()
	}
	return logger.With("component", name)
}

func parseLevel(s string) slog.Level {
	s = strings.ToUpper(strings.TrimSpace(s))
	switch s {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
