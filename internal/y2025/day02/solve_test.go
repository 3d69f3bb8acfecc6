package day02

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPart1_DoubledHalves(t *testing.T) {
	// Invalid IDs in 1..50 are 11, 22, 33, 44.
	got, err := Part1("1-50")
	require.NoError(t, err)
	assert.Equal(t, int64(110), got)
}

func TestPart1_EvenLengthOnly(t *testing.T) {
	// 99 qualifies ("9"+"9"); 111 and 121 do not.
	got, err := Part1("95-125")
	require.NoError(t, err)
	assert.Equal(t, int64(99), got)
}

func TestPart2_AnyRepeatedPattern(t *testing.T) {
	// 99 (9 twice) and 111 (1 thrice) are invalid in 95..125.
	got, err := Part2("95-125")
	require.NoError(t, err)
	assert.Equal(t, int64(210), got)
}

func TestPart2_SupersetOfPart1(t *testing.T) {
	got, err := Part2("1-50")
	require.NoError(t, err)
	assert.Equal(t, int64(110), got, "doubled halves are repeated patterns too")
}

func TestDistinctAcrossOverlappingRanges(t *testing.T) {
	// 11 appears in both ranges but may only be summed once.
	got, err := Part1("10-12,11-20")
	require.NoError(t, err)
	assert.Equal(t, int64(11), got)
}

func TestMultipleRangesPerLine(t *testing.T) {
	got, err := Part2("1-50,95-125")
	require.NoError(t, err)
	// 11+22+33+44 + 99+111
	assert.Equal(t, int64(320), got)
}

func TestIsRepeatedPattern(t *testing.T) {
	for _, id := range []uint64{11, 1212121212, 123123123, 1111111, 12341234} {
		assert.True(t, isRepeatedPattern(id), "%d", id)
	}
	for _, id := range []uint64{7, 121, 123124, 1234567} {
		assert.False(t, isRepeatedPattern(id), "%d", id)
	}
}

func TestMalformedInput(t *testing.T) {
	_, err := Part1("12-")
	assert.Error(t, err)

	_, err = Part1("abc")
	assert.Error(t, err)

	_, err = Part2("1-2-3")
	assert.Error(t, err)
}
