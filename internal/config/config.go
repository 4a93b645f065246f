// Package config provides the configuration type and validation for
// rootdnsd. Unlike the teacher's database-backed configuration, this
// responder is small enough to configure entirely from flags: main.go
// populates a Config and calls Validate before starting anything.
package config

import (
	"errors"
	"strings"
)

// Validate normalizes string fields and rejects a Config that cannot
// start a server.
func (cfg *Config) Validate() error {
	if strings.TrimSpace(cfg.ListenAddr) == "" {
		return errors.New("listen address must not be empty")
	}
	if strings.TrimSpace(cfg.ZonePath) == "" {
		return errors.New("zone path must not be empty")
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = "INFO"
	}
	cfg.LogLevel = strings.ToUpper(cfg.LogLevel)

	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	cfg.Workers = ParseWorkers(cfg.WorkersRaw)

	return nil
}
