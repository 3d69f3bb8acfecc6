package solve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_Known(t *testing.T) {
	s, err := Lookup(2025, 5)
	require.NoError(t, err)

	assert.Equal(t, "2025/5", s.ID())
	assert.NotNil(t, s.Part1)
	assert.NotNil(t, s.Part2)
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Lookup(2025, 8)
	assert.ErrorIs(t, err, ErrUnknownDay)

	_, err = Lookup(1999, 1)
	assert.ErrorIs(t, err, ErrUnknownDay)
}

func TestAll_SortedAndComplete(t *testing.T) {
	all := All()
	require.NotEmpty(t, all)

	for i := 1; i < len(all); i++ {
		prev, cur := all[i-1], all[i]
		ordered := prev.Year < cur.Year || (prev.Year == cur.Year && prev.Day < cur.Day)
		assert.True(t, ordered, "catalog must stay sorted: %s before %s", prev.ID(), cur.ID())
	}

	for _, s := range all {
		assert.NotNil(t, s.Part1, "%s part 1", s.ID())
		assert.NotNil(t, s.Part2, "%s part 2", s.ID())
		assert.NotEmpty(t, s.Title, "%s title", s.ID())
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	all := All()
	all[0].Title = "mutated"

	again := All()
	assert.NotEqual(t, "mutated", again[0].Title)
}

func TestSolutionsProduceAnswers(t *testing.T) {
	// Smoke inputs per day; exact answers are asserted in the day packages.
	inputs := map[string]string{
		"2025/2": "1-50",
		"2025/3": "987654321111\n",
		"2025/4": "@@@\n@@@\n@@@\n",
		"2025/5": "1-5\n3\n",
		"2025/6": "1 2\n3 4\n+ *\n",
		"2025/7": ".S.\n...\n.^.\n",
		"2025/9": "0,0\n0,4\n4,4\n4,0\n",
	}

	for _, s := range All() {
		input, ok := inputs[s.ID()]
		require.True(t, ok, "missing smoke input for %s", s.ID())

		p1, err := s.Part1(input)
		require.NoError(t, err, "%s part 1", s.ID())
		p2, err := s.Part2(input)
		require.NoError(t, err, "%s part 2", s.ID())

		assert.GreaterOrEqual(t, p1, int64(0), "%s part 1", s.ID())
		assert.GreaterOrEqual(t, p2, int64(0), "%s part 2", s.ID())
	}
}
