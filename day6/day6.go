// Package day6 counts the ways to win toy boat races.
package day6

import (
	"strings"

	"github.com/snowdrift/aoc"
)

// Race lasts Time ms; the best distance so far is Record mm. Holding the
// button for h ms makes the boat travel h*(Time-h) mm.
type Race struct {
	Time, Record int
}

func (r Race) beats(hold int) bool {
	return hold*(r.Time-hold) > r.Record
}

// Wins returns the number of whole-ms hold times that beat the record.
func (r Race) Wins() int {
	t := r.Time
	if t*t-4*r.Record <= 0 {
		return 0
	}
	// The winning holds lie strictly between the roots of
	// h^2 - t*h + record; the float root is only a starting point.
	_, lo, _ := aoc.SolveQuad(1, -t, r.Record)
	h := min(max(int(lo), 0), t/2)
	for h > 0 && r.beats(h-1) {
		h--
	}
	for h <= t/2 && !r.beats(h) {
		h++
	}
	if h > t/2 {
		return 0
	}
	// Distance is symmetric around t/2.
	return t - 2*h + 1
}

type sheet struct {
	times, records string
}

func parseSheet(input string) (sheet, error) {
	lines := aoc.Lines(input)
	if len(lines) != 2 {
		return sheet{}, aoc.Errorf(0, "want 2 lines, got %d", len(lines))
	}
	times, err := aoc.CutPrefix(1, lines[0], "Time:")
	if err != nil {
		return sheet{}, err
	}
	records, err := aoc.CutPrefix(2, lines[1], "Distance:")
	if err != nil {
		return sheet{}, err
	}
	return sheet{times: times, records: records}, nil
}

// Parse reads one race per column of
//
//	Time:      7  15   30
//	Distance:  9  40  200
func Parse(input string) ([]Race, error) {
	s, err := parseSheet(input)
	if err != nil {
		return nil, err
	}
	times, err := aoc.ParseInts(1, s.times)
	if err != nil {
		return nil, err
	}
	records, err := aoc.ParseInts(2, s.records)
	if err != nil {
		return nil, err
	}
	if len(times) != len(records) {
		return nil, aoc.Errorf(2, "%d times but %d distances", len(times), len(records))
	}
	races := make([]Race, len(times))
	for i := range times {
		races[i] = Race{Time: times[i], Record: records[i]}
	}
	return races, nil
}

// ParseKerned reads the sheet as a single race, ignoring the spaces
// between digits.
func ParseKerned(input string) (Race, error) {
	s, err := parseSheet(input)
	if err != nil {
		return Race{}, err
	}
	t, err := aoc.ParseInt(1, strings.Join(strings.Fields(s.times), ""))
	if err != nil {
		return Race{}, err
	}
	d, err := aoc.ParseInt(2, strings.Join(strings.Fields(s.records), ""))
	if err != nil {
		return Race{}, err
	}
	return Race{Time: t, Record: d}, nil
}

// PartOne multiplies the number of ways to win each race.
func PartOne(races []Race) int {
	wins := make([]int, len(races))
	for i, r := range races {
		wins[i] = r.Wins()
	}
	return aoc.Product(wins...)
}

// PartTwo counts the ways to win the one long race.
func PartTwo(r Race) int {
	return r.Wins()
}

func Solve(input string) (aoc.Answer, error) {
	races, err := Parse(input)
	if err != nil {
		return aoc.Answer{}, err
	}
	r, err := ParseKerned(input)
	if err != nil {
		return aoc.Answer{}, err
	}
	return aoc.Answer{One: PartOne(races), Two: PartTwo(r)}, nil
}
