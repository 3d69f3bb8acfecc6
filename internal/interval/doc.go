// Package interval implements a coordinate-compressed sweep over closed
// integer ranges.
//
// The package answers two independent questions about a collection of
// possibly-overlapping ranges overlaid with a set of discrete points:
//
//   - CoverageCount: how many distinct points lie inside the union of the
//     ranges. A point counts once no matter how many ranges cover it.
//   - UnionLength: the total number of integers covered by at least one
//     range, with overlapping and touching ranges merged.
//
// Both queries share the same derived structure: an event list mapping each
// interesting coordinate to a signed delta (+1 at every range start, -1 at
// every end+1, coalesced by summation at equal coordinates). Walking the
// coordinates in ascending order while folding the deltas into a running
// depth gives coverage at every coordinate that matters. The event list is
// built fresh per query and discarded; the queries are pure functions of
// their inputs.
//
// Arithmetic is performed in int64 so end+1 cannot wrap for 32-bit inputs.
// Ranges with Start > End are rejected with ErrReversedRange; the same
// validation applies to both queries.
package interval
