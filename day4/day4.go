// Package day4 scores scratchcards.
package day4

import (
	"cmp"
	"slices"
	"strings"

	"github.com/snowdrift/aoc"
	"tailscale.com/util/set"
)

type Card struct {
	ID        int
	Winning   set.Set[int]
	Scratched set.Set[int]
}

// Wins returns how many scratched numbers are winning numbers.
func (c Card) Wins() int {
	n := 0
	for v := range c.Scratched {
		if c.Winning.Contains(v) {
			n++
		}
	}
	return n
}

// Score is 0 for no wins, doubling from 1 for every win.
func (c Card) Score() int {
	w := c.Wins()
	if w == 0 {
		return 0
	}
	return 1 << (w - 1)
}

// Parse parses cards of the form
//
//	Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
//
// Cards may come in any order but must be numbered 1 to n, each once. The
// result is sorted by ID.
func Parse(input string) ([]Card, error) {
	var cards []Card
	lineOf := make(map[int]int) // card ID to input line
	for i, l := range aoc.Lines(input) {
		line := i + 1
		head, body, err := aoc.Cut(line, l, ":")
		if err != nil {
			return nil, err
		}
		id, err := aoc.CutPrefix(line, head, "Card")
		if err != nil {
			return nil, err
		}
		c := Card{}
		if c.ID, err = aoc.ParseInt(line, id); err != nil {
			return nil, err
		}
		if prev, ok := lineOf[c.ID]; ok {
			return nil, aoc.Errorf(line, "card %d already on line %d", c.ID, prev)
		}
		lineOf[c.ID] = line
		winning, scratched, err := aoc.Cut(line, body, "|")
		if err != nil {
			return nil, err
		}
		if c.Winning, err = parseSet(line, winning); err != nil {
			return nil, err
		}
		if c.Scratched, err = parseSet(line, scratched); err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	slices.SortFunc(cards, func(a, b Card) int {
		return cmp.Compare(a.ID, b.ID)
	})
	for i, c := range cards {
		if c.ID != i+1 {
			return nil, aoc.Errorf(lineOf[c.ID], "card %d follows card %d; want card %d", c.ID, i, i+1)
		}
	}
	return cards, nil
}

func parseSet(line int, s string) (set.Set[int], error) {
	nums, err := aoc.ParseInts(line, s)
	if err != nil {
		return nil, err
	}
	out := make(set.Set[int])
	for _, n := range nums {
		if n <= 0 {
			return nil, aoc.Errorf(line, "number %d is not positive in %q", n, strings.TrimSpace(s))
		}
		out.Add(n)
	}
	return out, nil
}

// PartOne sums the card scores.
func PartOne(cards []Card) int {
	sum := 0
	for _, c := range cards {
		sum += c.Score()
	}
	return sum
}

// PartTwo counts the cards held once every win has handed out copies of
// the cards after it.
func PartTwo(cards []Card) int {
	copies := make([]int, len(cards))
	for i := range copies {
		copies[i] = 1
	}
	for i, c := range cards {
		for j := i + 1; j <= i+c.Wins() && j < len(cards); j++ {
			copies[j] += copies[i]
		}
	}
	return aoc.Sum(copies...)
}

func Solve(input string) (aoc.Answer, error) {
	cards, err := Parse(input)
	if err != nil {
		return aoc.Answer{}, err
	}
	return aoc.Answer{One: PartOne(cards), Two: PartTwo(cards)}, nil
}
