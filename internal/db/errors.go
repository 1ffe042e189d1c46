package db

import "errors"

// ErrStatsUnavailable is returned when no database is configured.
var ErrStatsUnavailable = errors.New("statistics store not configured")
