package day06

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const worksheet = "12 34\n56 78\n+  *\n"

func TestPart1_TokenColumns(t *testing.T) {
	// 12+56 = 68, 34*78 = 2652.
	got, err := Part1(worksheet)
	require.NoError(t, err)
	assert.Equal(t, int64(2720), got)
}

func TestPart2_VerticalNumbers(t *testing.T) {
	// First group: 15+26 = 41. Second group: 37*48 = 1776.
	got, err := Part2(worksheet)
	require.NoError(t, err)
	assert.Equal(t, int64(1817), got)
}

func TestPart1_SingleDigitColumns(t *testing.T) {
	input := "1 2 3\n4 5 6\n+ * +\n"

	got, err := Part1(input)
	require.NoError(t, err)
	assert.Equal(t, int64(5+10+9), got)
}

func TestPart2_SingleDigitColumns(t *testing.T) {
	// Vertical reads: 14, 25, 36; one column per group.
	input := "1 2 3\n4 5 6\n+ * +\n"

	got, err := Part2(input)
	require.NoError(t, err)
	assert.Equal(t, int64(14+25+36), got)
}

func TestPart1_UnknownOperator(t *testing.T) {
	_, err := Part1("1\n2\n/\n")
	assert.Error(t, err)
}

func TestPart1_NonNumericValue(t *testing.T) {
	_, err := Part1("1 x\n2 3\n+ +\n")
	assert.Error(t, err)
}

func TestTooFewRows(t *testing.T) {
	_, err := Part1("42\n")
	assert.Error(t, err)

	_, err = Part2("42\n")
	assert.Error(t, err)
}
