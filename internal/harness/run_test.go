package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/advent/internal/solve"
)

func int64p(v int64) *int64 { return &v }

func TestRunManifest_PassingCase(t *testing.T) {
	m := &Manifest{
		Year: 2025,
		Day:  5,
		Cases: []Case{{
			Name:  "example",
			Input: "1-5\n10-14\n3-7\n4\n9\n12\n",
			Part1: int64p(2),
			Part2: int64p(12),
		}},
	}

	result, err := m.RunManifest()
	require.NoError(t, err)

	assert.Equal(t, "2025/5", result.ID)
	assert.Equal(t, 1, result.Passed)
	assert.Zero(t, result.Failed)
	require.Len(t, result.Cases, 1)
	assert.True(t, result.Cases[0].Pass)
	assert.Equal(t, int64(2), result.Cases[0].Part1)
	assert.Equal(t, int64(12), result.Cases[0].Part2)
}

func TestRunManifest_Mismatch(t *testing.T) {
	m := &Manifest{
		Year: 2025,
		Day:  5,
		Cases: []Case{{
			Name:  "wrong expectation",
			Input: "1-5\n3\n",
			Part1: int64p(99),
		}},
	}

	result, err := m.RunManifest()
	require.NoError(t, err)

	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Cases, 1)
	assert.False(t, result.Cases[0].Pass)
	require.Len(t, result.Cases[0].Errors, 1)
	assert.Contains(t, result.Cases[0].Errors[0], "got 1, want 99")
}

func TestRunManifest_SolverErrorFailsCase(t *testing.T) {
	m := &Manifest{
		Year:  2025,
		Day:   5,
		Cases: []Case{{Name: "reversed", Input: "9-3\n"}},
	}

	result, err := m.RunManifest()
	require.NoError(t, err)

	assert.Equal(t, 1, result.Failed)
	assert.False(t, result.Cases[0].Pass)
	assert.NotEmpty(t, result.Cases[0].Errors)
}

func TestRunManifest_NoExpectationsAlwaysPass(t *testing.T) {
	m := &Manifest{
		Year:  2025,
		Day:   4,
		Cases: []Case{{Name: "report only", Input: "@@.\n@@.\n"}},
	}

	result, err := m.RunManifest()
	require.NoError(t, err)
	assert.Equal(t, 1, result.Passed)
	assert.Equal(t, int64(4), result.Cases[0].Part1)
}

func TestRunManifest_UnknownDay(t *testing.T) {
	m := &Manifest{Year: 2025, Day: 8, Cases: []Case{{Name: "a", Input: "x"}}}

	_, err := m.RunManifest()
	assert.ErrorIs(t, err, solve.ErrUnknownDay)
}
