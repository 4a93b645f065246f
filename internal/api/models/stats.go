package models

import "time"

// ServerStatsResponse contains server runtime statistics.
type ServerStatsResponse struct {
	Uptime        string           `json:"uptime"`
	UptimeSeconds int64            `json:"uptime_seconds"`
	StartTime     time.Time        `json:"start_time"`
	GoRoutines    int              `json:"goroutines"`
	MemoryAllocMB float64          `json:"memory_alloc_mb"`
	NumCPU        int              `json:"num_cpu"`
	Host          HostStatsResponse `json:"host"`
	DNSStats      DNSStatsResponse `json:"dns"`
}

// HostStatsResponse contains best-effort host-level metrics gathered
// via gopsutil.
type HostStatsResponse struct {
	Load1             float64 `json:"load1"`
	Load5             float64 `json:"load5"`
	Load15            float64 `json:"load15"`
	MemoryTotalMB     float64 `json:"memory_total_mb"`
	MemoryUsedPercent float64 `json:"memory_used_percent"`
	LogicalCPUs       int     `json:"logical_cpus"`
}

// DNSStatsResponse contains query-outcome counters.
type DNSStatsResponse struct {
	QueriesTotal uint64 `json:"queries_total"`
	Dropped      uint64 `json:"dropped"`
	NoError      uint64 `json:"no_error"`
	NXDomain     uint64 `json:"nxdomain"`
	FormErr      uint64 `json:"formerr"`
	NotImp       uint64 `json:"notimp"`
	BadVers      uint64 `json:"badvers"`
}
