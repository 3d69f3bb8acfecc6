// Package day06 solves the 2025 day 6 puzzle: a math worksheet laid out in
// columns, where the final row holds the operator applied to each column.
//
// Part 1 treats the sheet as whitespace-separated token columns. Part 2
// reads the sheet character by character: each character column spells a
// number top to bottom, and operator positions in the final row delimit the
// groups.
package day06

import (
	"fmt"
	"strings"
)

func splitLines(input string) ([]string, error) {
	lines := strings.Split(strings.TrimRight(input, "\n"), "\n")
	if len(lines) < 2 {
		return nil, fmt.Errorf("day06: worksheet needs at least one value row and an operator row")
	}
	return lines, nil
}

// Part1 reduces every token column by the operator found in its last row
// and sums the column results.
func Part1(input string) (int64, error) {
	lines, err := splitLines(input)
	if err != nil {
		return 0, err
	}

	rows := make([][]string, len(lines))
	maxCols := 0
	for i, line := range lines {
		rows[i] = strings.Fields(line)
		if len(rows[i]) > maxCols {
			maxCols = len(rows[i])
		}
	}

	var total int64
	for col := 0; col < maxCols; col++ {
		var column []string
		for _, row := range rows {
			if col < len(row) {
				column = append(column, row[col])
			}
		}
		if len(column) < 2 {
			return 0, fmt.Errorf("day06: column %d has no values", col)
		}

		op := column[len(column)-1]
		var result int64
		switch op {
		case "*":
			result = 1
		case "+":
			result = 0
		default:
			return 0, fmt.Errorf("day06: column %d has operator %q, want + or *", col, op)
		}

		for _, tok := range column[:len(column)-1] {
			var v int64
			if _, err := fmt.Sscanf(tok, "%d", &v); err != nil {
				return 0, fmt.Errorf("day06: column %d has non-numeric value %q", col, tok)
			}
			if op == "*" {
				result *= v
			} else {
				result += v
			}
		}
		total += result
	}
	return total, nil
}

// Part2 reads vertical numbers. Groups run from one operator position in
// the final row up to (but excluding) the separator column before the next
// operator; within a group, every character column is one number read top
// to bottom.
func Part2(input string) (int64, error) {
	lines, err := splitLines(input)
	if err != nil {
		return 0, err
	}

	last := lines[len(lines)-1]
	n := 0
	for _, line := range lines {
		if len(line) > n {
			n = len(line)
		}
	}

	group := func(left, right int) int64 {
		isMul := left < len(last) && last[left] == '*'

		var nums []int64
		for x := left; x <= right; x++ {
			var num int64
			for y := 0; y < len(lines)-1; y++ {
				if x >= len(lines[y]) {
					continue
				}
				ch := lines[y][x]
				if ch >= '0' && ch <= '9' {
					num = num*10 + int64(ch-'0')
				}
			}
			nums = append(nums, num)
		}
		if len(nums) == 0 {
			return 0
		}

		var result int64
		if isMul {
			result = 1
			for _, v := range nums {
				result *= v
			}
		} else {
			for _, v := range nums {
				result += v
			}
		}
		return result
	}

	var total int64
	left := 0
	for right := 1; right < n; right++ {
		if right < len(last) && last[right] != ' ' {
			if right >= 2 {
				total += group(left, right-2)
			}
			left = right
		}
	}
	return total + group(left, n-1), nil
}
