package api

import (
	"github.com/gin-gonic/gin"
	"github.com/jroosing/rootdns/internal/api/handlers"
)

// RegisterRoutes wires the management surface onto engine.
func RegisterRoutes(r *gin.Engine, h *handlers.Handler) {
	r.GET("/healthz", h.Health)
	r.GET("/stats", h.Stats)
	r.GET("/zone", h.Zone)
}
