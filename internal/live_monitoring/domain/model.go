package domain

import "time"

// LiveStatus is the canned monitor response. ThreatDetected is always false.
type LiveStatus struct {
	Status         string    `json:"status"`
	ThreatDetected bool      `json:"threatDetected"`
	LastScan       time.Time `json:"lastScan"`
	Description    string    `json:"description"`
	NextScan       time.Time `json:"nextScan"`
}

const (
	StatusMonitoringActive = "monitoring active"
	DescriptionAllClear    = "No live exploits detected. All connected wallets appear safe."

	DefaultScanInterval = 60 * time.Second
)
