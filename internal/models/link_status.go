package models

import "time"

// Apply-link health states.
const (
	HealthUnknown   = "unknown"
	HealthHealthy   = "healthy"
	HealthUnhealthy = "unhealthy"
)

// LinkStatus is the latest check result for one scheme's apply URL.
type LinkStatus struct {
	Scheme    string     `json:"scheme"`
	URL       string     `json:"url"`
	Status    string     `json:"status"`
	Error     string     `json:"error,omitempty"`
	CheckedAt *time.Time `json:"checked_at"`
}

// IsHealthy returns true if the link has a healthy status.
func (l LinkStatus) IsHealthy() bool {
	return l.Status == HealthHealthy
}

// IsUnhealthy returns true if the link has an unhealthy status.
func (l LinkStatus) IsUnhealthy() bool {
	return l.Status == HealthUnhealthy
}

// NeedsCheck returns true if the link was never checked or the last check is
// older than maxAge.
func (l LinkStatus) NeedsCheck(maxAge time.Duration) bool {
	if l.CheckedAt == nil {
		return true
	}
	return time.Since(*l.CheckedAt) > maxAge
}
