package cli

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/advent/internal/store"
)

func seedLedger(t *testing.T, runs ...store.Run) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "advent.db")
	s, err := store.Open(path)
	require.NoError(t, err)
	defer s.Close()

	for _, run := range runs {
		_, err := s.RecordRun(context.Background(), run)
		require.NoError(t, err)
	}
	return path
}

func TestResults_Empty(t *testing.T) {
	db := seedLedger(t)

	out, err := execute(t, "results", "--db", db)
	require.NoError(t, err)
	assert.Contains(t, out, "No runs recorded.")
}

func TestResults_Text(t *testing.T) {
	db := seedLedger(t, store.Run{
		Year:      2025,
		Day:       3,
		Part1:     143,
		Part2:     987654321111,
		Part1Time: 40 * time.Microsecond,
		Part2Time: 60 * time.Microsecond,
	})

	out, err := execute(t, "results", "--db", db)
	require.NoError(t, err)

	assert.Contains(t, out, "2025/3")
	assert.Contains(t, out, "143")
	assert.Contains(t, out, "987,654,321,111")
}

func TestResults_JSONFilterByYear(t *testing.T) {
	db := seedLedger(t,
		store.Run{Year: 2024, Day: 7, Part1: 1, Part2: 2},
		store.Run{Year: 2025, Day: 5, Part1: 2, Part2: 12},
	)

	out, err := execute(t, "results", "--db", db, "--year", "2025", "--format", "json")
	require.NoError(t, err)

	var rows []resultRow
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, 5, rows[0].Day)
	assert.Equal(t, int64(12), rows[0].Part2)
}

func TestResults_RequiresDatabaseFlag(t *testing.T) {
	_, err := execute(t, "results")
	require.Error(t, err)
}
