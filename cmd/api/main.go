package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/blockguard/blockguard-backend/config"
	"github.com/blockguard/blockguard-backend/internal/bootstrap"
	"github.com/blockguard/blockguard-backend/internal/logging"
	"github.com/blockguard/blockguard-backend/internal/ratelimit"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.New("info", false).WithError(err).Fatal("invalid configuration")
	}

	log := logging.New(cfg.App.LogLevel, cfg.IsProduction())
	bootstrap.SetGinMode(cfg.App.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var rdb *redis.Client
	if cfg.Redis.Enabled() {
		rdb, err = bootstrap.OpenRedis(ctx, bootstrap.RedisOptions{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.WithError(err).Fatal("redis unavailable")
		}
		defer rdb.Close()
		log.WithField("addr", cfg.Redis.Addr).Info("redis connected, rate limits are shared")
	}

	policy := ratelimit.Policy{RPS: cfg.RateLimit.RPS, Burst: cfg.RateLimit.Burst}
	limiter := bootstrap.NewLimiter(policy, rdb)

	scheduler := bootstrap.NewScheduler(log)
	if policy.Enabled() {
		if err := bootstrap.ScheduleLimiterSweep(scheduler, limiter); err != nil {
			log.WithError(err).Fatal("schedule jobs")
		}
	}
	scheduler.Start()

	router, err := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:    cfg.App.ServiceName,
		Version:        cfg.App.Version,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		RateLimit:      policy,
		ScanInterval:   cfg.Monitor.ScanInterval,
		Redis:          rdb,
		Limiter:        limiter,
		Logger:         log,
	})
	if err != nil {
		log.WithError(err).Fatal("build router")
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Infof("BlockGuard API running on http://localhost:%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("listen")
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
	if err := scheduler.Stop(shutdownCtx); err != nil {
		log.WithError(err).Error("cron scheduler did not stop in time")
	}
}
