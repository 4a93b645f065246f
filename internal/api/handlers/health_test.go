package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jroosing/rootdns/internal/api/handlers"
	"github.com/jroosing/rootdns/internal/api/models"
	"github.com/jroosing/rootdns/internal/server"
	"github.com/jroosing/rootdns/internal/zone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testZoneText = `
$ORIGIN .
$TTL 86400
@ IN SOA a.root-servers.net. nstld.verisign-grs.com. 1 1 1 1 1
@ IN NS a.root-servers.net.
`

func newTestHandler(t *testing.T) *handlers.Handler {
	t.Helper()
	z, err := zone.ParseText(testZoneText)
	require.NoError(t, err)
	return handlers.New(nil, zone.NewStore(z), nil, server.NewDNSStats())
}

func TestHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := newTestHandler(t)
	r := gin.New()
	r.GET("/healthz", h.Health)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.StatusResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestStats(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := newTestHandler(t)
	r := gin.New()
	r.GET("/stats", h.Stats)

	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp models.ServerStatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Uptime)
}
