// Package solve defines the shape of a daily puzzle solution and the
// catalog the CLI dispatches against.
package solve

import (
	"errors"
	"fmt"
)

// ErrUnknownDay reports a lookup for a year/day with no registered solution.
var ErrUnknownDay = errors.New("solve: no solution registered")

// Func computes one part of a day's answer from the raw puzzle text.
// Implementations are pure: same input, same answer, no side effects.
type Func func(input string) (int64, error)

// Solution bundles both parts of one day's puzzle.
type Solution struct {
	Year  int
	Day   int
	Title string
	Part1 Func
	Part2 Func
}

// ID renders the conventional year/day identifier, e.g. "2025/5".
func (s Solution) ID() string {
	return fmt.Sprintf("%d/%d", s.Year, s.Day)
}
