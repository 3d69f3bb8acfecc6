package day04

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPart1_SparseBlock(t *testing.T) {
	// Every roll in a 2x2 block has three neighbors.
	input := "@@.\n@@.\n...\n"

	got, err := Part1(input)
	require.NoError(t, err)
	assert.Equal(t, int64(4), got)
}

func TestPart1_DenseBlock(t *testing.T) {
	// 3x3 of rolls: corners have 3 neighbors, edges 5, center 8.
	input := "@@@\n@@@\n@@@\n"

	got, err := Part1(input)
	require.NoError(t, err)
	assert.Equal(t, int64(4), got, "only the corners are accessible")
}

func TestPart2_CascadeClearsEverything(t *testing.T) {
	// Removing the corners exposes the edges, then the center.
	input := "@@@\n@@@\n@@@\n"

	got, err := Part2(input)
	require.NoError(t, err)
	assert.Equal(t, int64(9), got)
}

func TestPart2_NoRolls(t *testing.T) {
	got, err := Part2("...\n...\n")
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestPart1_SingleRoll(t *testing.T) {
	got, err := Part1(".@.\n...\n")
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)
}

func TestPartsAgreeWhenNothingCascades(t *testing.T) {
	// Isolated rolls: part 2 removes exactly the part 1 count.
	input := "@.@\n...\n@.@\n"

	p1, err := Part1(input)
	require.NoError(t, err)
	p2, err := Part2(input)
	require.NoError(t, err)
	assert.Equal(t, p1, p2)
	assert.Equal(t, int64(4), p1)
}

func TestMalformedGrid(t *testing.T) {
	_, err := Part1("@#@\n")
	assert.Error(t, err)

	_, err = Part2("")
	assert.Error(t, err)
}
