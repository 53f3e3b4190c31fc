// Package day7 ranks Camel Cards hands.
package day7

import (
	"cmp"
	"slices"
	"strings"

	"github.com/snowdrift/aoc"
)

// Type is the category of a hand, weakest first.
type Type int

const (
	Empty Type = iota
	HighCard
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

func (t Type) String() string {
	switch t {
	case Empty:
		return "empty"
	case HighCard:
		return "high card"
	case OnePair:
		return "one pair"
	case TwoPair:
		return "two pair"
	case ThreeOfAKind:
		return "three of a kind"
	case FullHouse:
		return "full house"
	case FourOfAKind:
		return "four of a kind"
	case FiveOfAKind:
		return "five of a kind"
	}
	return "unknown"
}

// Rules decide how labels rank and whether J is a joker.
type Rules struct {
	// Strength lists the labels weakest first.
	Strength string
	Jokers   bool
}

var (
	Standard = Rules{Strength: "23456789TJQKA"}
	Joker    = Rules{Strength: "J23456789TQKA", Jokers: true}
)

const handSize = 5

// Classify returns the type of cards. With jokers, every J joins the most
// common other label.
func (r Rules) Classify(cards string) Type {
	counts := make(map[rune]int)
	for _, c := range cards {
		counts[c]++
	}
	jokers := 0
	if r.Jokers {
		jokers = counts['J']
		delete(counts, 'J')
	}
	var sizes []int
	for _, n := range counts {
		sizes = append(sizes, n)
	}
	slices.Sort(sizes)
	slices.Reverse(sizes)
	if jokers > 0 {
		if len(sizes) == 0 {
			sizes = []int{0}
		}
		sizes[0] += jokers
	}
	if len(sizes) == 0 {
		return Empty
	}
	sizes = append(sizes, 0)
	switch first, second := sizes[0], sizes[1]; {
	case first >= 5:
		return FiveOfAKind
	case first == 4:
		return FourOfAKind
	case first == 3 && second == 2:
		return FullHouse
	case first == 3:
		return ThreeOfAKind
	case first == 2 && second == 2:
		return TwoPair
	case first == 2:
		return OnePair
	}
	return HighCard
}

// Compare orders hands a and b by type, then by label strength from the
// left.
func (r Rules) Compare(a, b string) int {
	if c := cmp.Compare(r.Classify(a), r.Classify(b)); c != 0 {
		return c
	}
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := cmp.Compare(strings.IndexByte(r.Strength, a[i]), strings.IndexByte(r.Strength, b[i])); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

type Hand struct {
	Cards string
	Bid   int
}

// Parse parses lines of five labels and a bid:
//
//	32T3K 765
func Parse(input string) ([]Hand, error) {
	var hands []Hand
	for i, l := range aoc.Lines(input) {
		f := strings.Fields(l)
		if len(f) != 2 {
			return nil, aoc.Errorf(i+1, "want hand and bid, got %q", l)
		}
		if len(f[0]) != handSize {
			return nil, aoc.Errorf(i+1, "hand %q is not %d cards", f[0], handSize)
		}
		for _, c := range f[0] {
			if !strings.ContainsRune(Standard.Strength, c) {
				return nil, aoc.Errorf(i+1, "unknown card %q in %q", c, f[0])
			}
		}
		bid, err := aoc.ParseInt(i+1, f[1])
		if err != nil {
			return nil, err
		}
		hands = append(hands, Hand{Cards: f[0], Bid: bid})
	}
	return hands, nil
}

// Winnings ranks hands under r, weakest rank 1, and sums rank * bid.
// Identical hands are ranked by bid so the total doesn't depend on their
// order in the input.
func Winnings(hands []Hand, r Rules) int {
	sorted := slices.Clone(hands)
	slices.SortFunc(sorted, func(a, b Hand) int {
		if c := r.Compare(a.Cards, b.Cards); c != 0 {
			return c
		}
		return cmp.Compare(a.Bid, b.Bid)
	})
	total := 0
	for i, h := range sorted {
		total += (i + 1) * h.Bid
	}
	return total
}

func PartOne(hands []Hand) int {
	return Winnings(hands, Standard)
}

func PartTwo(hands []Hand) int {
	return Winnings(hands, Joker)
}

func Solve(input string) (aoc.Answer, error) {
	hands, err := Parse(input)
	if err != nil {
		return aoc.Answer{}, err
	}
	return aoc.Answer{One: PartOne(hands), Two: PartTwo(hands)}, nil
}
