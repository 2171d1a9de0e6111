package bootstrap

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/blockguard/blockguard-backend/internal/ratelimit"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 7, 4, 9, 0, 0, 0, time.UTC)

func buildTestRouter(t *testing.T, dep RouterDeps) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	if dep.Logger == nil {
		dep.Logger, _ = test.NewNullLogger()
	}
	if dep.Now == nil {
		dep.Now = func() time.Time { return now }
	}
	if dep.ServiceName == "" {
		dep.ServiceName = "blockguard-api"
	}

	r, err := BuildRouter(dep)
	require.NoError(t, err)
	return r
}

func request(r *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestBuildRouter_Routes(t *testing.T) {
	r := buildTestRouter(t, RouterDeps{Version: "1.2.3", ScanInterval: time.Minute})

	rr := request(r, http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "BlockGuard API is alive and watching the chain...", rr.Body.String())
	assert.NotEmpty(t, rr.Header().Get("X-Request-Id"))

	rr = request(r, http.MethodPost, "/generates-attack", `{"type":"reentrancy"}`, nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "contract Vulnerable")

	rr = request(r, http.MethodPost, "/generates-attack", `{"type":"sandwich"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error":"Unknown attack type"}`, rr.Body.String())

	rr = request(r, http.MethodGet, "/educate-malware", "", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = request(r, http.MethodGet, "/attack-types", "", nil)
	assert.JSONEq(t, `{"types":["reentrancy"]}`, rr.Body.String())

	rr = request(r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"version":"1.2.3"`)
}

func TestBuildRouter_PanicIsLoggedWithRequestID(t *testing.T) {
	logger, hook := test.NewNullLogger()
	r := buildTestRouter(t, RouterDeps{Logger: logger})
	r.GET("/boom", func(*gin.Context) { panic("boom") })

	rr := request(r, http.MethodGet, "/boom", "", map[string]string{"X-Request-Id": "req-42"})
	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	var access *logrus.Entry
	for _, e := range hook.AllEntries() {
		if e.Data["path"] == "/boom" {
			access = e
		}
	}
	require.NotNil(t, access, "panicking request must still produce an access log line")
	assert.Equal(t, logrus.ErrorLevel, access.Level)
	assert.Equal(t, "req-42", access.Data["request_id"])
	assert.Equal(t, http.StatusInternalServerError, access.Data["status"])
}

func TestBuildRouter_LogsDomainComponents(t *testing.T) {
	logger, hook := test.NewNullLogger()
	buildTestRouter(t, RouterDeps{Logger: logger, ScanInterval: 30 * time.Second})

	var ready *logrus.Entry
	for _, e := range hook.AllEntries() {
		if e.Message == "domain components ready" {
			ready = e
		}
	}
	require.NotNil(t, ready)
	assert.Equal(t, []string{"approve", "dev-wallet", "transfer-from", "low-level-call"}, ready.Data["rules"])
	assert.Equal(t, []string{"reentrancy"}, ready.Data["attack_types"])
	assert.Equal(t, "30s", ready.Data["scan_interval"])
}

func TestBuildRouter_UsesGivenLimiter(t *testing.T) {
	limiter := ratelimit.NewMemoryLimiter(ratelimit.Policy{RPS: 0.001, Burst: 1})
	r := buildTestRouter(t, RouterDeps{Limiter: limiter, RateLimit: ratelimit.Policy{RPS: 0.001, Burst: 1}})

	assert.Equal(t, http.StatusOK, request(r, http.MethodGet, "/", "", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, request(r, http.MethodGet, "/", "", nil).Code)
	assert.Equal(t, 1, limiter.Len())
}

func TestBuildRouter_ScanPermissions(t *testing.T) {
	r := buildTestRouter(t, RouterDeps{})

	rr := request(r, http.MethodPost, "/scan-permissions",
		`{"contractCode":"function approve(address spender) { ... call{value: x}(...) }"}`, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var body struct {
		Score      int      `json:"score"`
		Issues     []string `json:"issues"`
		ReviewedAt string   `json:"reviewedAt"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))

	assert.Equal(t, 2, body.Score)
	assert.Equal(t, []string{
		"uses approve() — check if it grants unlimited access.",
		"uses low-level call — may allow reentrancy or misuse.",
	}, body.Issues)
	assert.Equal(t, "2024-07-04T09:00:00Z", body.ReviewedAt)
}

func TestBuildRouter_LiveAttack(t *testing.T) {
	r := buildTestRouter(t, RouterDeps{ScanInterval: 30 * time.Second})

	rr := request(r, http.MethodGet, "/live-attack", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, false, body["threatDetected"])
	assert.Equal(t, "2024-07-04T09:00:00Z", body["lastScan"])
	assert.Equal(t, "2024-07-04T09:00:30Z", body["nextScan"])
}

func TestBuildRouter_CORS(t *testing.T) {
	r := buildTestRouter(t, RouterDeps{AllowedOrigins: []string{"*"}})

	rr := request(r, http.MethodGet, "/live-attack", "", map[string]string{"Origin": "https://wallet.example"})
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))

	r = buildTestRouter(t, RouterDeps{AllowedOrigins: []string{"https://app.example"}})

	rr = request(r, http.MethodOptions, "/scan-permissions", "", map[string]string{
		"Origin":                        "https://app.example",
		"Access-Control-Request-Method": "POST",
	})
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "https://app.example", rr.Header().Get("Access-Control-Allow-Origin"))

	rr = request(r, http.MethodGet, "/live-attack", "", map[string]string{"Origin": "https://evil.example"})
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestBuildRouter_RateLimitMemory(t *testing.T) {
	r := buildTestRouter(t, RouterDeps{RateLimit: ratelimit.Policy{RPS: 0.001, Burst: 2}})

	assert.Equal(t, http.StatusOK, request(r, http.MethodGet, "/live-attack", "", nil).Code)
	assert.Equal(t, http.StatusOK, request(r, http.MethodGet, "/live-attack", "", nil).Code)

	rr := request(r, http.MethodGet, "/live-attack", "", nil)
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("X-Request-Id"))
}

func TestBuildRouter_RateLimitRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb, err := OpenRedis(context.Background(), RedisOptions{Addr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })

	r := buildTestRouter(t, RouterDeps{Redis: rdb, RateLimit: ratelimit.Policy{RPS: 0.01, Burst: 1}})

	assert.Equal(t, http.StatusOK, request(r, http.MethodGet, "/", "", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, request(r, http.MethodGet, "/", "", nil).Code)
	assert.NotEmpty(t, mr.Keys())

	rr := request(r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
}

func TestBuildRouter_RateLimitDisabled(t *testing.T) {
	r := buildTestRouter(t, RouterDeps{RateLimit: ratelimit.Policy{RPS: 0, Burst: 1}})

	for i := 0; i < 50; i++ {
		require.Equal(t, http.StatusOK, request(r, http.MethodGet, "/", "", nil).Code)
	}
}

func TestOpenRedis(t *testing.T) {
	_, err := OpenRedis(context.Background(), RedisOptions{})
	assert.Error(t, err)

	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err = OpenRedis(context.Background(), RedisOptions{Addr: addr, PingTO: 200 * time.Millisecond})
	assert.Error(t, err)
}
