// Package day07 solves the 2025 day 7 puzzle: a beam falls from the S in
// the top row and every splitter (^) it reaches absorbs it and emits two
// new beams one column to each side.
//
// Part 1 counts splitter activations. Part 2 counts the distinct paths a
// single particle can take from the source to the bottom, which is a path
// count over the implicit splitter DAG, memoized per node.
package day07

import (
	"fmt"
	"strings"
)

const (
	source   = 'S'
	splitter = '^'
)

// groundNode is the sink every beam leaving the grid flows into.
const groundNode = 0

func parseGrid(input string) ([]string, int, error) {
	var grid []string
	for _, line := range strings.Split(input, "\n") {
		if line != "" {
			grid = append(grid, line)
		}
	}
	if len(grid) == 0 {
		return nil, 0, fmt.Errorf("day07: empty grid")
	}
	start := strings.IndexByte(grid[0], source)
	if start < 0 {
		return nil, 0, fmt.Errorf("day07: no source in top row %q", grid[0])
	}
	return grid, start, nil
}

// Part1 counts how many splitters a beam reaches.
func Part1(input string) (int64, error) {
	grid, start, err := parseGrid(input)
	if err != nil {
		return 0, err
	}

	width := len(grid[0])
	active := make([]bool, width)
	active[start] = true

	var total int64
	for y := 1; y < len(grid); y++ {
		row := grid[y]
		for x := 0; x < len(row) && x < width; x++ {
			if row[x] != splitter || !active[x] {
				continue
			}
			total++
			if x > 0 {
				active[x-1] = true
			}
			if x+1 < width {
				active[x+1] = true
			}
			active[x] = false
		}
	}
	return total, nil
}

// Part2 counts distinct source-to-ground paths. Every activated splitter
// becomes a DAG node; beams that leave the grid feed the ground sink.
func Part2(input string) (int64, error) {
	grid, start, err := parseGrid(input)
	if err != nil {
		return 0, err
	}

	width := len(grid[0])
	// active[x] holds the nodes whose emitted beam currently occupies
	// column x.
	active := make([][]int64, width)
	const root = int64(1)
	active[start] = append(active[start], root)

	edges := make(map[int64][]int64)
	next := int64(2)

	for y := 1; y < len(grid); y++ {
		row := grid[y]
		for x := 0; x < len(row) && x < width; x++ {
			if row[x] != splitter || len(active[x]) == 0 {
				continue
			}
			node := next
			next++
			for _, u := range active[x] {
				edges[u] = append(edges[u], node)
			}
			active[x] = nil
			if x > 0 {
				active[x-1] = append(active[x-1], node)
			}
			if x+1 < width {
				active[x+1] = append(active[x+1], node)
			}
		}
	}

	// Beams still in flight at the bottom reach the ground.
	for _, nodes := range active {
		for _, u := range nodes {
			edges[u] = append(edges[u], groundNode)
		}
	}

	memo := make(map[int64]int64)
	var paths func(u int64) int64
	paths = func(u int64) int64 {
		if u == groundNode {
			return 1
		}
		if cached, ok := memo[u]; ok {
			return cached
		}
		var total int64
		for _, v := range edges[u] {
			total += paths(v)
		}
		memo[u] = total
		return total
	}

	return paths(root), nil
}
