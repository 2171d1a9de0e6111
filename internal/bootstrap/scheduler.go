package bootstrap

import (
	"context"

	"github.com/blockguard/blockguard-backend/internal/ratelimit"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// LimiterSweepSpec runs at second zero of every minute.
const LimiterSweepSpec = "0 * * * * *"

// Sweeper drops stale state and reports how many entries it removed.
type Sweeper interface {
	Sweep() int
}

type Scheduler struct {
	cron *cron.Cron
	log  logrus.FieldLogger
}

func NewScheduler(log logrus.FieldLogger) *Scheduler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Scheduler{
		cron: cron.New(cron.WithSeconds()),
		log:  log,
	}
}

// ScheduleSweep registers sw to run on spec (six-field, seconds first).
func (s *Scheduler) ScheduleSweep(spec, name string, sw Sweeper) error {
	_, err := s.cron.AddFunc(spec, func() {
		if n := sw.Sweep(); n > 0 {
			s.log.WithFields(logrus.Fields{"job": name, "removed": n}).Debug("sweep completed")
		}
	})
	if err != nil {
		return errors.Wrapf(err, "schedule %s", name)
	}
	return nil
}

// Jobs reports the number of registered jobs.
func (s *Scheduler) Jobs() int { return len(s.cron.Entries()) }

func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.WithField("jobs", s.Jobs()).Info("cron scheduler started")
}

// Stop prevents new runs and waits for running jobs until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// ScheduleLimiterSweep registers the idle sweep for limiters that keep
// per-client state in memory. Other limiters are left alone.
func ScheduleLimiterSweep(s *Scheduler, l ratelimit.Limiter) error {
	sw, ok := l.(Sweeper)
	if !ok {
		return nil
	}
	return s.ScheduleSweep(LimiterSweepSpec, "ratelimit-sweep", sw)
}
