package db

import (
	"context"

	"schemebot/internal/models"
)

// IncrementResolution upserts the count for a scheme and outcome.
func (d *DB) IncrementResolution(ctx context.Context, scheme, outcome string) error {
	_, err := d.Pool.Exec(ctx, `
		INSERT INTO resolution_stats (scheme, outcome, count, last_seen_at)
		VALUES ($1, $2, 1, NOW())
		ON CONFLICT (scheme, outcome) DO UPDATE
		SET count = resolution_stats.count + 1, last_seen_at = NOW()
	`, scheme, outcome)
	return err
}

// GetResolutionStats returns all rows, most frequent first.
func (d *DB) GetResolutionStats(ctx context.Context) ([]models.ResolutionStat, error) {
	rows, err := d.Pool.Query(ctx, `
		SELECT scheme, outcome, count, last_seen_at
		FROM resolution_stats
		ORDER BY count DESC, scheme, outcome
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []models.ResolutionStat
	for rows.Next() {
		var s models.ResolutionStat
		if err := rows.Scan(&s.Scheme, &s.Outcome, &s.Count, &s.LastSeenAt); err != nil {
			return nil, err
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}
