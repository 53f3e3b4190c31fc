// Package day2 plays the cube conundrum: games of colored cubes pulled
// from a bag.
package day2

import (
	"strings"

	"github.com/snowdrift/aoc"
)

// Cubes is a count of cubes per color.
type Cubes struct {
	Red, Green, Blue int
}

// Bag is what the elf loaded into the bag for part one.
var Bag = Cubes{Red: 12, Green: 13, Blue: 14}

// Within reports whether no color of c exceeds the same color of budget.
func (c Cubes) Within(budget Cubes) bool {
	return c.Red <= budget.Red && c.Green <= budget.Green && c.Blue <= budget.Blue
}

// Max returns the per-color maximum of c and o.
func (c Cubes) Max(o Cubes) Cubes {
	return Cubes{
		Red:   max(c.Red, o.Red),
		Green: max(c.Green, o.Green),
		Blue:  max(c.Blue, o.Blue),
	}
}

func (c Cubes) Power() int {
	return c.Red * c.Green * c.Blue
}

type Game struct {
	ID      int
	Reveals []Cubes
}

// Possible reports whether every reveal of g fits in bag.
func (g Game) Possible(bag Cubes) bool {
	for _, r := range g.Reveals {
		if !r.Within(bag) {
			return false
		}
	}
	return true
}

// Minimum returns the fewest cubes of each color that make g possible.
func (g Game) Minimum() Cubes {
	var m Cubes
	for _, r := range g.Reveals {
		m = m.Max(r)
	}
	return m
}

// Parse parses lines of the form
//
//	Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
func Parse(input string) ([]Game, error) {
	var games []Game
	for i, l := range aoc.Lines(input) {
		g, err := parseGame(i+1, l)
		if err != nil {
			return nil, err
		}
		games = append(games, g)
	}
	return games, nil
}

func parseGame(line int, s string) (Game, error) {
	head, body, err := aoc.Cut(line, s, ":")
	if err != nil {
		return Game{}, err
	}
	id, err := aoc.CutPrefix(line, head, "Game ")
	if err != nil {
		return Game{}, err
	}
	g := Game{}
	if g.ID, err = aoc.ParseInt(line, id); err != nil {
		return Game{}, err
	}
	for _, reveal := range strings.Split(body, ";") {
		var c Cubes
		for _, pull := range strings.Split(reveal, ",") {
			f := strings.Fields(pull)
			if len(f) != 2 {
				return Game{}, aoc.Errorf(line, "bad cube count %q", pull)
			}
			n, err := aoc.ParseInt(line, f[0])
			if err != nil {
				return Game{}, err
			}
			if n < 0 {
				return Game{}, aoc.Errorf(line, "negative cube count %d", n)
			}
			switch f[1] {
			case "red":
				c.Red += n
			case "green":
				c.Green += n
			case "blue":
				c.Blue += n
			default:
				return Game{}, aoc.Errorf(line, "unknown color %q", f[1])
			}
		}
		g.Reveals = append(g.Reveals, c)
	}
	return g, nil
}

// PartOne sums the ids of the games possible with Bag.
func PartOne(games []Game) int {
	sum := 0
	for _, g := range games {
		if g.Possible(Bag) {
			sum += g.ID
		}
	}
	return sum
}

// PartTwo sums the power of the minimum cube set of each game.
func PartTwo(games []Game) int {
	sum := 0
	for _, g := range games {
		sum += g.Minimum().Power()
	}
	return sum
}

func Solve(input string) (aoc.Answer, error) {
	games, err := Parse(input)
	if err != nil {
		return aoc.Answer{}, err
	}
	return aoc.Answer{One: PartOne(games), Two: PartTwo(games)}, nil
}
