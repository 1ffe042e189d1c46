package models

import "time"

// NoScheme is the scheme label recorded for queries that matched nothing.
const NoScheme = "none"

// ResolutionStat is an aggregate count of resolutions per scheme and outcome.
// The query text itself is never stored.
type ResolutionStat struct {
	Scheme     string
	Outcome    string
	Count      int64
	LastSeenAt time.Time
}
