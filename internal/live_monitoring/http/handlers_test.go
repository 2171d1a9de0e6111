package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/blockguard/blockguard-backend/internal/live_monitoring/monitor"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiveAttack(t *testing.T) {
	gin.SetMode(gin.TestMode)

	now := time.Date(2025, 6, 1, 10, 30, 0, 0, time.UTC)
	router := gin.New()
	New(monitor.New(time.Minute, func() time.Time { return now })).Register(router)

	req := httptest.NewRequest(http.MethodGet, "/live-attack", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))

	assert.Equal(t, "monitoring active", body["status"])
	assert.Equal(t, false, body["threatDetected"])
	assert.Equal(t, "2025-06-01T10:30:00Z", body["lastScan"])
	assert.Equal(t, "2025-06-01T10:31:00Z", body["nextScan"])
	assert.Equal(t, "No live exploits detected. All connected wallets appear safe.", body["description"])
}
