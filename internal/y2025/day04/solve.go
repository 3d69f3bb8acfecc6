// Package day04 solves the 2025 day 4 puzzle: a grid of paper rolls (@)
// where a roll is accessible when fewer than four of its eight neighbors
// are rolls.
//
// Part 1 counts the rolls accessible right away. Part 2 keeps removing
// accessible rolls, which can expose their neighbors, until nothing more
// can be taken; the worklist rides the generic FIFO queue.
package day04

import (
	"fmt"
	"strings"

	"github.com/roach88/advent/internal/queue"
)

const (
	roll  = '@'
	empty = '.'
)

type cell struct {
	y int
	x int
}

func parseGrid(input string) ([][]byte, error) {
	var grid [][]byte
	for _, line := range strings.Split(input, "\n") {
		if line == "" {
			continue
		}
		for i := 0; i < len(line); i++ {
			if line[i] != roll && line[i] != empty {
				return nil, fmt.Errorf("day04: unexpected cell %q in row %q", line[i], line)
			}
		}
		grid = append(grid, []byte(line))
	}
	if len(grid) == 0 {
		return nil, fmt.Errorf("day04: empty grid")
	}
	return grid, nil
}

// neighborRolls returns the positions of the up-to-eight neighbors of
// (y, x) that currently hold a roll.
func neighborRolls(grid [][]byte, y, x int) []cell {
	var out []cell
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dy == 0 && dx == 0 {
				continue
			}
			y2, x2 := y+dy, x+dx
			if y2 < 0 || y2 >= len(grid) || x2 < 0 || x2 >= len(grid[y2]) {
				continue
			}
			if grid[y2][x2] == roll {
				out = append(out, cell{y: y2, x: x2})
			}
		}
	}
	return out
}

// Part1 counts rolls with fewer than four roll neighbors.
func Part1(input string) (int64, error) {
	grid, err := parseGrid(input)
	if err != nil {
		return 0, err
	}

	var total int64
	for y := range grid {
		for x := range grid[y] {
			if grid[y][x] == roll && len(neighborRolls(grid, y, x)) < 4 {
				total++
			}
		}
	}
	return total, nil
}

// Part2 removes accessible rolls until a fixpoint and counts the removals.
// Removing a roll re-queues its roll neighbors, since losing a neighbor
// may have made them accessible.
func Part2(input string) (int64, error) {
	grid, err := parseGrid(input)
	if err != nil {
		return 0, err
	}

	todo := queue.New[cell]()
	for y := range grid {
		for x := range grid[y] {
			if grid[y][x] == roll {
				todo.Enqueue(cell{y: y, x: x})
			}
		}
	}

	var total int64
	for {
		c, ok := todo.TryDequeue()
		if !ok {
			break
		}
		if grid[c.y][c.x] != roll {
			continue
		}

		nbh := neighborRolls(grid, c.y, c.x)
		if len(nbh) >= 4 {
			continue
		}

		grid[c.y][c.x] = empty
		total++
		for _, n := range nbh {
			todo.Enqueue(n)
		}
	}
	return total, nil
}
