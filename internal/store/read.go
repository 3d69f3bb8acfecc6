package store

import (
	"context"
	"fmt"
	"time"
)

// ListRuns returns recorded runs, newest first. A zero year returns the
// whole ledger; otherwise only that year's runs.
func (s *Store) ListRuns(ctx context.Context, year int) ([]Run, error) {
	query := `
		SELECT id, year, day, part1, part2, part1_us, part2_us, created_at
		FROM runs`
	args := []any{}
	if year != 0 {
		query += ` WHERE year = ?`
		args = append(args, year)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			run       Run
			p1us      int64
			p2us      int64
			createdAt string
		)
		if err := rows.Scan(&run.ID, &run.Year, &run.Day, &run.Part1, &run.Part2, &p1us, &p2us, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		run.Part1Time = time.Duration(p1us) * time.Microsecond
		run.Part2Time = time.Duration(p2us) * time.Microsecond
		ts, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse run timestamp %q: %w", createdAt, err)
		}
		run.CreatedAt = ts
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
