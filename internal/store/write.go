package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Run is one recorded solve of a day's puzzle.
type Run struct {
	ID        string
	Year      int
	Day       int
	Part1     int64
	Part2     int64
	Part1Time time.Duration
	Part2Time time.Duration
	CreatedAt time.Time
}

// RecordRun appends a run to the ledger. A missing ID is filled with a
// fresh UUIDv7 and a missing CreatedAt with the current time; the stored
// run is returned.
func (s *Store) RecordRun(ctx context.Context, run Run) (Run, error) {
	if run.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return Run{}, fmt.Errorf("failed to generate run id: %w", err)
		}
		run.ID = id.String()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, year, day, part1, part2, part1_us, part2_us, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID,
		run.Year,
		run.Day,
		run.Part1,
		run.Part2,
		run.Part1Time.Microseconds(),
		run.Part2Time.Microseconds(),
		run.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Run{}, fmt.Errorf("failed to record run: %w", err)
	}
	return run, nil
}
