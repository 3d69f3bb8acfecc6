package solve

import (
	"fmt"
	"slices"

	"github.com/roach88/advent/internal/y2025/day02"
	"github.com/roach88/advent/internal/y2025/day03"
	"github.com/roach88/advent/internal/y2025/day04"
	"github.com/roach88/advent/internal/y2025/day05"
	"github.com/roach88/advent/internal/y2025/day06"
	"github.com/roach88/advent/internal/y2025/day07"
	"github.com/roach88/advent/internal/y2025/day09"
)

// catalog is the explicit list of implemented days. Keep it sorted by
// year, then day.
var catalog = []Solution{
	{Year: 2025, Day: 2, Title: "Repeated-Pattern IDs", Part1: day02.Part1, Part2: day02.Part2},
	{Year: 2025, Day: 3, Title: "Largest Joltage", Part1: day03.Part1, Part2: day03.Part2},
	{Year: 2025, Day: 4, Title: "Crowded Rolls", Part1: day04.Part1, Part2: day04.Part2},
	{Year: 2025, Day: 5, Title: "Range Coverage", Part1: day05.Part1, Part2: day05.Part2},
	{Year: 2025, Day: 6, Title: "Column Worksheet", Part1: day06.Part1, Part2: day06.Part2},
	{Year: 2025, Day: 7, Title: "Beam Splitters", Part1: day07.Part1, Part2: day07.Part2},
	{Year: 2025, Day: 9, Title: "Largest Rectangle", Part1: day09.Part1, Part2: day09.Part2},
}

// All returns the catalog in year/day order.
func All() []Solution {
	return slices.Clone(catalog)
}

// Lookup finds the solution for a year and day.
// Returns ErrUnknownDay when nothing is registered for the pair.
func Lookup(year, day int) (Solution, error) {
	for _, s := range catalog {
		if s.Year == year && s.Day == day {
			return s, nil
		}
	}
	return Solution{}, fmt.Errorf("%w for %d/%d", ErrUnknownDay, year, day)
}
