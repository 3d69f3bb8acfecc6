// Package day09 solves the 2025 day 9 puzzle: lattice points on a
// rectilinear polygon boundary.
//
// Part 1 maximizes the inclusive area of the axis-aligned rectangle
// spanned by any two points. Part 2 only admits rectangles that are not
// cut by the polygon's boundary, where the polygon is the closed
// rectilinear loop through the points in input order.
package day09

import (
	"fmt"
	"strconv"
	"strings"
)

type point struct {
	x int64
	y int64
}

// segment is an axis-aligned boundary edge, stored normalized as
// (xMin, xMax, yMin, yMax).
type segment struct {
	xMin, xMax int64
	yMin, yMax int64
}

func parsePoints(input string) ([]point, error) {
	var points []point
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) != 2 {
			return nil, fmt.Errorf("day09: malformed point %q", line)
		}
		x, err := strconv.ParseInt(strings.TrimSpace(parts[0]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("day09: bad x in %q: %w", line, err)
		}
		y, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("day09: bad y in %q: %w", line, err)
		}
		points = append(points, point{x: x, y: y})
	}
	if len(points) < 2 {
		return nil, fmt.Errorf("day09: need at least two points, got %d", len(points))
	}
	return points, nil
}

// area is the inclusive lattice area of the rectangle spanned by p and q.
func area(p, q point) int64 {
	dx := p.x - q.x
	if dx < 0 {
		dx = -dx
	}
	dy := p.y - q.y
	if dy < 0 {
		dy = -dy
	}
	return (dx + 1) * (dy + 1)
}

// Part1 maximizes the spanned rectangle area over all point pairs.
func Part1(input string) (int64, error) {
	points, err := parsePoints(input)
	if err != nil {
		return 0, err
	}

	var best int64
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			if a := area(points[i], points[j]); a > best {
				best = a
			}
		}
	}
	return best, nil
}

// boundary splits the closed loop through the points into horizontal and
// vertical segments.
func boundary(points []point) (hori, vert []segment) {
	n := len(points)
	for i := 0; i < n; i++ {
		p, q := points[i], points[(i+1)%n]
		s := segment{
			xMin: min(p.x, q.x), xMax: max(p.x, q.x),
			yMin: min(p.y, q.y), yMax: max(p.y, q.y),
		}
		if s.xMin == s.xMax {
			vert = append(vert, s)
		} else {
			hori = append(hori, s)
		}
	}
	return hori, vert
}

// uncut reports whether the rectangle [x1,x2]x[y1,y2] avoids every
// boundary segment cutting through its interior.
func uncut(x1, y1, x2, y2 int64, hori, vert []segment) bool {
	for _, h := range hori {
		a, b, y := h.xMin, h.xMax, h.yMin
		if (a < x1 && x1 < b || a < x2 && x2 < b) && y1 < y && y < y2 {
			return false
		}
		if (x1 == a || x2 == b) && y1 < y && y < y2 {
			return false
		}
	}
	for _, v := range vert {
		x, c, d := v.xMin, v.yMin, v.yMax
		if (c < y1 && y1 < d || c < y2 && y2 < d) && x1 < x && x < x2 {
			return false
		}
		if (y1 == c || y2 == d) && x1 < x && x < x2 {
			return false
		}
	}
	return true
}

// Part2 maximizes rectangle area over point pairs whose rectangle the
// polygon boundary does not cut.
func Part2(input string) (int64, error) {
	points, err := parsePoints(input)
	if err != nil {
		return 0, err
	}
	hori, vert := boundary(points)

	var best int64
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			p, q := points[i], points[j]
			x1, x2 := min(p.x, q.x), max(p.x, q.x)
			y1, y2 := min(p.y, q.y), max(p.y, q.y)
			if !uncut(x1, y1, x2, y2, hori, vert) {
				continue
			}
			if a := area(p, q); a > best {
				best = a
			}
		}
	}
	return best, nil
}
