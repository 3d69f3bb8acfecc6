// Package day03 solves the 2025 day 3 puzzle: each line is a bank of
// digits, and a fixed number of digits must be picked in order to form the
// largest possible number.
//
// Part 1 picks two digits per bank; Part 2 picks twelve using a monotonic
// stack (greedily evict smaller digits while drops remain).
package day03

import (
	"fmt"
	"strings"
)

// part2Digits is how many digits Part 2 keeps from each bank.
const part2Digits = 12

func parseBanks(input string) ([][]byte, error) {
	var banks [][]byte
	for _, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		for i := 0; i < len(line); i++ {
			if line[i] < '0' || line[i] > '9' {
				return nil, fmt.Errorf("day03: bank %q contains non-digit %q", line, line[i])
			}
		}
		banks = append(banks, []byte(line))
	}
	return banks, nil
}

// largestPair returns the largest two-digit number formed by two digits of
// the bank taken in order.
func largestPair(bank []byte) int64 {
	var best int64
	for i := 0; i < len(bank); i++ {
		for j := i + 1; j < len(bank); j++ {
			v := int64(bank[i]-'0')*10 + int64(bank[j]-'0')
			if v > best {
				best = v
			}
		}
	}
	return best
}

// largestSubsequence keeps `keep` digits of the bank in order, maximizing
// the resulting number. Classic monotonic stack: while drops remain and the
// incoming digit beats the stack top, evict the top.
func largestSubsequence(bank []byte, keep int) int64 {
	if len(bank) < keep {
		return 0
	}

	stack := make([]byte, 0, len(bank))
	drops := len(bank) - keep

	for _, ch := range bank {
		for drops > 0 && len(stack) > 0 && stack[len(stack)-1] < ch {
			stack = stack[:len(stack)-1]
			drops--
		}
		stack = append(stack, ch)
	}
	stack = stack[:keep]

	var v int64
	for _, ch := range stack {
		v = v*10 + int64(ch-'0')
	}
	return v
}

// Part1 sums the largest two-digit pick of every bank.
func Part1(input string) (int64, error) {
	banks, err := parseBanks(input)
	if err != nil {
		return 0, err
	}

	var total int64
	for _, bank := range banks {
		total += largestPair(bank)
	}
	return total, nil
}

// Part2 sums the largest twelve-digit pick of every bank. Banks shorter
// than twelve digits contribute nothing.
func Part2(input string) (int64, error) {
	banks, err := parseBanks(input)
	if err != nil {
		return 0, err
	}

	var total int64
	for _, bank := range banks {
		total += largestSubsequence(bank, part2Digits)
	}
	return total, nil
}
