package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/rootdns/internal/api/models"
)

// recentReloadsLimit bounds how much reload history /zone echoes back.
const recentReloadsLimit = 10

// Zone reports the currently served zone's origin, generation, record
// and delegation counts, and recent reload history.
func (h *Handler) Zone(c *gin.Context) {
	if h.zone == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{Error: "no zone loaded"})
		return
	}
	z := h.zone.Load()

	resp := models.ZoneSummaryResponse{
		Origin:      z.Origin,
		Generation:  z.Generation,
		RecordCount: len(z.Records),
		TLDCount:    z.TLDCount(),
	}

	if h.journal != nil {
		reloads, err := h.journal.Recent(recentReloadsLimit)
		if err != nil && h.logger != nil {
			h.logger.Warn("journal recent lookup failed", "err", err)
		}
		for _, r := range reloads {
			resp.Reloads = append(resp.Reloads, models.ReloadResponse{
				Generation:  r.Generation,
				LoadedAt:    r.LoadedAt,
				Source:      r.Source,
				RecordCount: r.RecordCount,
			})
		}
	}

	c.JSON(http.StatusOK, resp)
}
