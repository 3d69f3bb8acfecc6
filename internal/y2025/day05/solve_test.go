package day05

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/advent/internal/interval"
)

const example = `1-5
10-14
3-7
4
9
12
`

func TestPart1_Example(t *testing.T) {
	got, err := Part1(example)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got, "4 and 12 are covered, 9 is not")
}

func TestPart2_Example(t *testing.T) {
	got, err := Part2(example)
	require.NoError(t, err)
	assert.Equal(t, int64(12), got, "[1,7] has length 7, [10,14] has length 5")
}

func TestNegativeEndpointsAndIDs(t *testing.T) {
	input := "-5-1\n-3\n2\n"

	p1, err := Part1(input)
	require.NoError(t, err)
	assert.Equal(t, int64(1), p1, "-3 is inside [-5,1], 2 is not")

	p2, err := Part2(input)
	require.NoError(t, err)
	assert.Equal(t, int64(7), p2)
}

func TestParse_SplitsOnLastDash(t *testing.T) {
	ranges, ids, err := parse("-5-10\n-7\n")
	require.NoError(t, err)

	require.Len(t, ranges, 1)
	assert.Equal(t, interval.Range{Start: -5, End: 10}, ranges[0])
	assert.Equal(t, []int64{-7}, ids)
}

func TestReversedRangeSurfaces(t *testing.T) {
	_, err := Part2("9-3\n")
	assert.ErrorIs(t, err, interval.ErrReversedRange)
}

func TestMalformedLine(t *testing.T) {
	_, err := Part1("1-5\npotato\n")
	assert.Error(t, err)
}
