package monitor

import (
	"time"

	"github.com/blockguard/blockguard-backend/internal/live_monitoring/domain"
)

// Monitor produces live status snapshots. It does not watch anything.
type Monitor struct {
	interval time.Duration
	now      func() time.Time
}

// New falls back to domain.DefaultScanInterval for non-positive intervals
// and to time.Now for a nil clock.
func New(interval time.Duration, now func() time.Time) *Monitor {
	if interval <= 0 {
		interval = domain.DefaultScanInterval
	}
	if now == nil {
		now = time.Now
	}
	return &Monitor{interval: interval, now: now}
}

func (m *Monitor) Interval() time.Duration { return m.interval }

func (m *Monitor) Snapshot() domain.LiveStatus {
	now := m.now().UTC()
	return domain.LiveStatus{
		Status:         domain.StatusMonitoringActive,
		ThreatDetected: false,
		LastScan:       now,
		Description:    domain.DescriptionAllClear,
		NextScan:       now.Add(m.interval),
	}
}
