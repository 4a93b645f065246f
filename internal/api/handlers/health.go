package handlers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/rootdns/internal/api/models"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
)

// Health reports liveness. It never depends on zone or journal state:
// a responder that can't load its zone should fail at startup, not
// report unhealthy afterward.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, models.StatusResponse{Status: "ok"})
}

// Stats reports process runtime stats, best-effort host stats, and (if
// a stats collector was wired in) query-outcome counters.
func (h *Handler) Stats(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	uptime := time.Since(h.startTime)

	resp := models.ServerStatsResponse{
		Uptime:        uptime.Round(time.Second).String(),
		UptimeSeconds: int64(uptime.Seconds()),
		StartTime:     h.startTime,
		GoRoutines:    runtime.NumGoroutine(),
		MemoryAllocMB: float64(m.Alloc) / 1024 / 1024,
		NumCPU:        runtime.NumCPU(),
		Host:          hostStats(),
	}

	if h.stats != nil {
		snap := h.stats.Snapshot()
		resp.DNSStats = models.DNSStatsResponse{
			QueriesTotal: snap.QueriesTotal,
			Dropped:      snap.Dropped,
			NoError:      snap.NoError,
			NXDomain:     snap.NXDomain,
			FormErr:      snap.FormErr,
			NotImp:       snap.NotImp,
			BadVers:      snap.BadVers,
		}
	}

	c.JSON(http.StatusOK, resp)
}

// hostStats gathers best-effort host-level metrics via gopsutil.
// Any individual collector's failure (e.g. no load average on the
// current platform) just leaves that field at its zero value rather
// than failing the whole request.
func hostStats() models.HostStatsResponse {
	var out models.HostStatsResponse

	if avg, err := load.Avg(); err == nil {
		out.Load1 = avg.Load1
		out.Load5 = avg.Load5
		out.Load15 = avg.Load15
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		out.MemoryTotalMB = float64(vm.Total) / 1024 / 1024
		out.MemoryUsedPercent = vm.UsedPercent
	}
	if n, err := cpu.Counts(true); err == nil {
		out.LogicalCPUs = n
	}

	return out
}
