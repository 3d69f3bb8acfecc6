// Package day05 solves the 2025 day 5 puzzle: a list of freshness ranges
// mixed with ingredient IDs.
//
// Part 1 counts the IDs covered by at least one range; Part 2 measures the
// union of all ranges. Both delegate to the interval sweep; this package is
// only the parser for the day's text format.
package day05

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/advent/internal/interval"
)

// parse splits the input into ranges ("start-end" lines) and standalone
// IDs. The range separator is the last dash so negative endpoints survive:
// "-5-10" is the range [-5,10], a bare "-5" is the ID -5.
func parse(input string) ([]interval.Range, []int64, error) {
	var ranges []interval.Range
	var ids []int64

	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if dash := strings.LastIndex(line, "-"); dash > 0 {
			start, errStart := strconv.ParseInt(line[:dash], 10, 64)
			end, errEnd := strconv.ParseInt(line[dash+1:], 10, 64)
			if errStart == nil && errEnd == nil {
				ranges = append(ranges, interval.Range{Start: start, End: end})
				continue
			}
		}

		id, err := strconv.ParseInt(line, 10, 64)
		if err != nil {
			return nil, nil, fmt.Errorf("day05: line %q is neither a range nor an ID", line)
		}
		ids = append(ids, id)
	}
	return ranges, ids, nil
}

// Part1 counts the distinct IDs inside the union of the ranges.
func Part1(input string) (int64, error) {
	ranges, ids, err := parse(input)
	if err != nil {
		return 0, err
	}
	return interval.CoverageCount(ranges, ids)
}

// Part2 measures the union of the ranges.
func Part2(input string) (int64, error) {
	ranges, _, err := parse(input)
	if err != nil {
		return 0, err
	}
	return interval.UnionLength(ranges)
}
