// Package day9 extrapolates the oasis sensor histories.
package day9

import (
	"github.com/snowdrift/aoc"
)

// Parse reads one history of whitespace separated integers per line.
func Parse(input string) ([][]int, error) {
	var histories [][]int
	for i, l := range aoc.Lines(input) {
		h, err := aoc.ParseInts(i+1, l)
		if err != nil {
			return nil, err
		}
		if len(h) == 0 {
			return nil, aoc.Errorf(i+1, "empty history")
		}
		histories = append(histories, h)
	}
	return histories, nil
}

func extrapolateAll(histories [][]int, forward bool) int {
	total := 0
	for _, h := range histories {
		total += aoc.Extrapolate(h, forward)
	}
	return total
}

// PartOne sums the next value of every history.
func PartOne(histories [][]int) int {
	return extrapolateAll(histories, true)
}

// PartTwo sums the value before the first of every history.
func PartTwo(histories [][]int) int {
	return extrapolateAll(histories, false)
}

func Solve(input string) (aoc.Answer, error) {
	h, err := Parse(input)
	if err != nil {
		return aoc.Answer{}, err
	}
	return aoc.Answer{One: PartOne(h), Two: PartTwo(h)}, nil
}
