package ratelimit

import (
	"context"
	"math"
	"time"
)

// Limiter decides whether one more request from key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// Policy is a sustained rate with a burst allowance.
type Policy struct {
	RPS   float64
	Burst int
}

// Enabled reports whether the policy limits anything.
func (p Policy) Enabled() bool { return p.RPS > 0 && p.Burst > 0 }

// Window converts the policy into a fixed window that admits the same
// long-run rate: at least one second, at least Burst requests.
func (p Policy) Window() (time.Duration, int) {
	window := time.Duration(float64(p.Burst) / p.RPS * float64(time.Second))
	if window >= time.Second {
		return window, p.Burst
	}
	limit := int(math.Ceil(p.RPS))
	if limit < p.Burst {
		limit = p.Burst
	}
	return time.Second, limit
}
