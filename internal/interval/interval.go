package interval

import (
	"errors"
	"fmt"
	"slices"
)

// ErrReversedRange reports a range whose Start exceeds its End. The sweep
// rejects such ranges rather than guessing which orientation was intended.
var ErrReversedRange = errors.New("interval: range start exceeds end")

// Range is a closed integer interval [Start, End]. A range with
// Start == End covers exactly one integer.
type Range struct {
	Start int64
	End   int64
}

// Len returns the number of integers the range covers.
func (r Range) Len() int64 {
	return r.End - r.Start + 1
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d]", r.Start, r.End)
}

// event pairs a coordinate with the signed coverage delta taking effect
// there. Events are kept sorted by coordinate with at most one event per
// coordinate; deltas at equal coordinates sum.
type event struct {
	coord int64
	delta int64
}

// buildEvents compresses the ranges (and any extra coordinates that must be
// visited) into a sorted event list. Extra coordinates get a zero delta if
// no range boundary already sits there, so the sweep evaluates coverage
// exactly at each of them.
func buildEvents(ranges []Range, extra []int64) ([]event, error) {
	deltas := make(map[int64]int64, 2*len(ranges)+len(extra))
	for _, r := range ranges {
		if r.Start > r.End {
			return nil, fmt.Errorf("%w: %s", ErrReversedRange, r)
		}
		deltas[r.Start]++
		deltas[r.End+1]--
	}
	for _, c := range extra {
		if _, ok := deltas[c]; !ok {
			deltas[c] = 0
		}
	}

	events := make([]event, 0, len(deltas))
	for coord, delta := range deltas {
		events = append(events, event{coord: coord, delta: delta})
	}
	slices.SortFunc(events, func(a, b event) int {
		switch {
		case a.coord < b.coord:
			return -1
		case a.coord > b.coord:
			return 1
		default:
			return 0
		}
	})
	return events, nil
}

// CoverageCount reports how many distinct points lie inside the union of
// the ranges. Duplicate points collapse; a point covered by several ranges
// still counts once. Returns ErrReversedRange if any range is reversed.
func CoverageCount(ranges []Range, points []int64) (int64, error) {
	set := make(map[int64]struct{}, len(points))
	for _, p := range points {
		set[p] = struct{}{}
	}

	coords := make([]int64, 0, len(set))
	for p := range set {
		coords = append(coords, p)
	}
	events, err := buildEvents(ranges, coords)
	if err != nil {
		return 0, err
	}

	var covered, cur int64
	for _, ev := range events {
		cur += ev.delta
		if cur > 0 {
			if _, ok := set[ev.coord]; ok {
				covered++
			}
		}
	}
	return covered, nil
}

// UnionLength reports the total number of integers covered by at least one
// range, with overlaps and exactly-touching ranges merged. Returns
// ErrReversedRange if any range is reversed.
func UnionLength(ranges []Range) (int64, error) {
	events, err := buildEvents(ranges, nil)
	if err != nil {
		return 0, err
	}

	var total, cur, segmentStart int64
	for _, ev := range events {
		prev := cur
		cur += ev.delta
		if prev == 0 && cur > 0 {
			segmentStart = ev.coord
		} else if prev > 0 && cur == 0 {
			// Deltas sit at end+1, so [segmentStart, coord) counts
			// exactly the covered integers of the closed segment.
			total += ev.coord - segmentStart
		}
	}
	return total, nil
}
