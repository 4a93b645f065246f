package models

import "time"

// ZoneSummaryResponse describes the currently loaded zone.
type ZoneSummaryResponse struct {
	Origin      string           `json:"origin"`
	Generation  uint64           `json:"generation"`
	RecordCount int              `json:"record_count"`
	TLDCount    int              `json:"tld_count"`
	Reloads     []ReloadResponse `json:"recent_reloads,omitempty"`
}

// ReloadResponse is one entry from the reload journal.
type ReloadResponse struct {
	Generation  uint64    `json:"generation"`
	LoadedAt    time.Time `json:"loaded_at"`
	Source      string    `json:"source"`
	RecordCount int       `json:"record_count"`
}
