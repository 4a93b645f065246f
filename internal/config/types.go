package config

import (
	"strconv"
	"strings"
)

// WorkersMode specifies how worker count is determined.
type WorkersMode int

const (
	// WorkersAuto automatically determines worker count based on available CPUs.
	WorkersAuto WorkersMode = iota
	// WorkersFixed uses a specific worker count.
	WorkersFixed
)

// WorkerSetting represents the workers configuration.
type WorkerSetting struct {
	Mode  WorkersMode
	Value int
}

// String returns the string representation of the worker setting.
func (w WorkerSetting) String() string {
	if w.Mode == WorkersAuto {
		return "auto"
	}
	return strconv.Itoa(w.Value)
}

// ParseWorkers parses a "-workers" flag value ("auto" or a positive
// integer) into a WorkerSetting.
func ParseWorkers(raw string) WorkerSetting {
	raw = strings.TrimSpace(strings.ToLower(raw))
	if raw == "" || raw == "auto" {
		return WorkerSetting{Mode: WorkersAuto}
	}
	if n, err := strconv.Atoi(raw); err == nil && n > 0 {
		return WorkerSetting{Mode: WorkersFixed, Value: n}
	}
	return WorkerSetting{Mode: WorkersAuto}
}

// Config is the root configuration for rootdnsd, built directly from
// command-line flags (there is no config file or database in this
// responder).
type Config struct {
	ListenAddr    string // -listen, e.g. "0.0.0.0:53"
	ZonePath      string // -zone
	JournalPath   string // -journal
	APIListenAddr string // -api-listen, e.g. "127.0.0.1:8080"
	WorkersRaw    string // -workers, before parsing
	Workers       WorkerSetting
	LogLevel      string // -log-level
	LogFormat     string // -log-format ("text" or "json")
}
