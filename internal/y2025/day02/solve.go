// Package day02 solves the 2025 day 2 puzzle: ranges of candidate product
// IDs where an ID is invalid when its decimal form is a repeated pattern.
//
// Part 1 flags IDs whose digits are one half doubled (e.g. 12341234);
// Part 2 flags IDs made of any pattern repeated at least twice (e.g.
// 123123123 or 1111111). Both parts sum the distinct invalid IDs across
// every range.
package day02

import (
	"fmt"
	"strconv"
	"strings"
)

type idRange struct {
	start uint64
	end   uint64
}

// parseRanges reads comma-separated "start-end" tokens, one or more per
// line.
func parseRanges(input string) ([]idRange, error) {
	var ranges []idRange
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		for _, token := range strings.Split(line, ",") {
			token = strings.TrimSpace(token)
			parts := strings.Split(token, "-")
			if len(parts) != 2 {
				return nil, fmt.Errorf("day02: malformed range %q", token)
			}
			start, err := strconv.ParseUint(parts[0], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("day02: bad range start %q: %w", parts[0], err)
			}
			end, err := strconv.ParseUint(parts[1], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("day02: bad range end %q: %w", parts[1], err)
			}
			ranges = append(ranges, idRange{start: start, end: end})
		}
	}
	return ranges, nil
}

// isDoubledHalf reports whether the ID's decimal form is its first half
// written twice.
func isDoubledHalf(id uint64) bool {
	s := strconv.FormatUint(id, 10)
	n := len(s)
	if n%2 != 0 {
		return false
	}
	return s[:n/2] == s[n/2:]
}

// isRepeatedPattern reports whether the ID's decimal form is some digit
// pattern repeated at least twice.
func isRepeatedPattern(id uint64) bool {
	s := strconv.FormatUint(id, 10)
	n := len(s)
	for size := 1; size <= n/2; size++ {
		if n%size != 0 {
			continue
		}
		if strings.Repeat(s[:size], n/size) == s {
			return true
		}
	}
	return false
}

func sumInvalid(input string, invalid func(uint64) bool) (int64, error) {
	ranges, err := parseRanges(input)
	if err != nil {
		return 0, err
	}

	seen := make(map[uint64]struct{})
	var total int64
	for _, r := range ranges {
		for id := r.start; id <= r.end; id++ {
			if !invalid(id) {
				continue
			}
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			total += int64(id)
		}
	}
	return total, nil
}

// Part1 sums the distinct IDs whose digits are one half doubled.
func Part1(input string) (int64, error) {
	return sumInvalid(input, isDoubledHalf)
}

// Part2 sums the distinct IDs made of any repeated digit pattern.
func Part2(input string) (int64, error) {
	return sumInvalid(input, isRepeatedPattern)
}
