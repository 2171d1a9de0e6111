package bootstrap

import (
	"time"

	httpapi "github.com/blockguard/blockguard-backend/internal/api/http"
	"github.com/blockguard/blockguard-backend/internal/api/http/middleware"
	"github.com/blockguard/blockguard-backend/internal/attack_education/catalog"
	attackhttp "github.com/blockguard/blockguard-backend/internal/attack_education/http"
	livehttp "github.com/blockguard/blockguard-backend/internal/live_monitoring/http"
	"github.com/blockguard/blockguard-backend/internal/live_monitoring/monitor"
	scanhttp "github.com/blockguard/blockguard-backend/internal/permission_scanning/http"
	"github.com/blockguard/blockguard-backend/internal/permission_scanning/rules"
	"github.com/blockguard/blockguard-backend/internal/permission_scanning/scanner"
	"github.com/blockguard/blockguard-backend/internal/ratelimit"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	AllowedOrigins []string
	RateLimit      ratelimit.Policy
	ScanInterval   time.Duration
	Redis          *redis.Client     // optional
	Limiter        ratelimit.Limiter // optional, built from RateLimit and Redis when nil
	Logger         *logrus.Logger
	Now            func() time.Time
}

// BuildRouter builds the rule table, catalog and monitor once and shares
// them across every request.
func BuildRouter(dep RouterDeps) (*gin.Engine, error) {
	log := dep.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}

	scan, err := scanner.New(rules.Default(), scanner.WithClock(dep.Now))
	if err != nil {
		return nil, errors.Wrap(err, "build scanner")
	}
	attacks := catalog.Default()
	mon := monitor.New(dep.ScanInterval, dep.Now)

	log.WithFields(logrus.Fields{
		"rules":         ruleIDs(scan),
		"attack_types":  attacks.Types(),
		"scan_interval": mon.Interval().String(),
	}).Info("domain components ready")

	r := gin.New()
	r.Use(middleware.RequestID(log))
	r.Use(gin.Recovery())
	r.Use(cors.New(corsConfig(dep.AllowedOrigins)))

	if dep.RateLimit.Enabled() {
		limiter := dep.Limiter
		if limiter == nil {
			limiter = NewLimiter(dep.RateLimit, dep.Redis)
		}
		r.Use(middleware.RateLimit(limiter, log))
	}

	httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Redis).RegisterRoutes(r)
	attackhttp.New(attacks).Register(r)
	scanhttp.New(scan, log).Register(r)
	livehttp.New(mon).Register(r)

	return r, nil
}

// NewLimiter shares limits through Redis when a client is given and keeps
// them in process memory otherwise.
func NewLimiter(p ratelimit.Policy, rdb *redis.Client) ratelimit.Limiter {
	if rdb != nil {
		return ratelimit.NewRedisLimiter(rdb, p)
	}
	return ratelimit.NewMemoryLimiter(p)
}

func ruleIDs(s *scanner.Scanner) []string {
	table := s.Rules()
	ids := make([]string, 0, len(table))
	for _, r := range table {
		ids = append(ids, string(r.ID))
	}
	return ids
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowHeaders = append(cfg.AllowHeaders, middleware.RequestIDHeader)
	cfg.ExposeHeaders = []string{middleware.RequestIDHeader}

	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
