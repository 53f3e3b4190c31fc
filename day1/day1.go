// Package day1 recovers trebuchet calibration values.
package day1

import (
	"strings"

	"github.com/snowdrift/aoc"
)

// spelled maps each digit word to a stand-in keeping its first and last
// letter, so words sharing a letter ("oneight") both survive replacement.
var spelled = []struct {
	word, short string
}{
	{"zero", "z0o"},
	{"one", "o1e"},
	{"two", "t2o"},
	{"three", "t3e"},
	{"four", "f4r"},
	{"five", "f5e"},
	{"six", "s6x"},
	{"seven", "s7n"},
	{"eight", "e8t"},
	{"nine", "n9e"},
}

// Value returns the number formed by the first and last digit of line.
// ok is false if line has no digit.
func Value(line string) (v int, ok bool) {
	first := strings.IndexFunc(line, isDigit)
	if first < 0 {
		return 0, false
	}
	last := strings.LastIndexFunc(line, isDigit)
	return aoc.Digit(rune(line[first]))*10 + aoc.Digit(rune(line[last])), true
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Despell replaces spelled out digits in line with their digit, leaving
// the first and last letter of each word in place.
func Despell(line string) string {
	for _, s := range spelled {
		line = strings.ReplaceAll(line, s.word, s.short)
	}
	return line
}

// PartOne sums the calibration values of lines using only digit
// characters. Lines with no digit character count as 0; only spelled out
// digits can recover them.
func PartOne(lines []string) int {
	total := 0
	for _, l := range lines {
		v, _ := Value(l)
		total += v
	}
	return total
}

// PartTwo is PartOne but also counts spelled out digits. A line with no
// digit of either kind is an error.
func PartTwo(lines []string) (int, error) {
	total := 0
	for i, l := range lines {
		v, ok := Value(Despell(l))
		if !ok {
			return 0, aoc.Errorf(i+1, "no digit in %q", l)
		}
		total += v
	}
	return total, nil
}

func Solve(input string) (aoc.Answer, error) {
	lines := aoc.Lines(input)
	two, err := PartTwo(lines)
	if err != nil {
		return aoc.Answer{}, err
	}
	return aoc.Answer{One: PartOne(lines), Two: two}, nil
}
