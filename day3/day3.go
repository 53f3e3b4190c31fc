// Package day3 reads engine schematics: part numbers laid out on a grid
// next to symbols.
package day3

import (
	"strconv"
	"strings"

	"github.com/snowdrift/aoc"
)

// Symbols are the characters that mark a part.
const Symbols = "*#/$+=-@&%"

// Gear is the symbol whose neighbors can form a gear ratio.
const Gear = '*'

// Part is a run of digits on one row, columns Start through End inclusive.
type Part struct {
	Row, Start, End int
	Value           int
}

// Cells calls f with each cell of p until f returns false.
func (p Part) Cells(f func(aoc.Pt) bool) {
	for x := p.Start; x <= p.End; x++ {
		if !f(aoc.Pt{X: x, Y: p.Row}) {
			return
		}
	}
}

type Schematic struct {
	Grid    aoc.Grid[byte]
	Parts   []Part
	Symbols map[aoc.Pt]byte
}

// Parse reads the schematic. Short rows are padded with '.'.
func Parse(input string) (*Schematic, error) {
	s := &Schematic{
		Grid:    aoc.ByteGrid(aoc.Lines(input), '.'),
		Symbols: make(map[aoc.Pt]byte),
	}
	for y, row := range s.Grid {
		start := -1
		for x := 0; x <= len(row); x++ {
			if x < len(row) && aoc.IsDigit(row[x]) {
				if start < 0 {
					start = x
				}
				continue
			}
			if start >= 0 {
				v, err := strconv.Atoi(string(row[start:x]))
				if err != nil {
					return nil, aoc.Errorf(y+1, "part at column %d: %v", start+1, err)
				}
				s.Parts = append(s.Parts, Part{Row: y, Start: start, End: x - 1, Value: v})
				start = -1
			}
			if x == len(row) {
				break
			}
			switch c := row[x]; {
			case c == '.':
			case strings.IndexByte(Symbols, c) >= 0:
				s.Symbols[aoc.Pt{X: x, Y: y}] = c
			default:
				return nil, aoc.Errorf(y+1, "unexpected %q at column %d", c, x+1)
			}
		}
	}
	return s, nil
}

// neighborSymbols calls f with the position of every symbol touching p,
// once per symbol.
func (s *Schematic) neighborSymbols(p Part, f func(aoc.Pt, byte)) {
	seen := make(map[aoc.Pt]bool)
	p.Cells(func(c aoc.Pt) bool {
		c.ForNeighbors(func(n aoc.Pt) bool {
			if sym, ok := s.Symbols[n]; ok && !seen[n] {
				seen[n] = true
				f(n, sym)
			}
			return true
		})
		return true
	})
}

// PartNumbers returns the parts touching at least one symbol.
func (s *Schematic) PartNumbers() []Part {
	var out []Part
	for _, p := range s.Parts {
		touching := false
		s.neighborSymbols(p, func(aoc.Pt, byte) { touching = true })
		if touching {
			out = append(out, p)
		}
	}
	return out
}

// Gears returns, for every gear symbol, the distinct parts touching it.
func (s *Schematic) Gears() map[aoc.Pt][]Part {
	gears := make(map[aoc.Pt][]Part)
	for pos, sym := range s.Symbols {
		if sym == Gear {
			gears[pos] = nil
		}
	}
	for _, p := range s.Parts {
		s.neighborSymbols(p, func(n aoc.Pt, sym byte) {
			if sym == Gear {
				gears[n] = append(gears[n], p)
			}
		})
	}
	return gears
}

// PartOne sums the part numbers touching a symbol.
func PartOne(s *Schematic) int {
	sum := 0
	for _, p := range s.PartNumbers() {
		sum += p.Value
	}
	return sum
}

// PartTwo sums the gear ratios of the gears touching exactly two parts.
func PartTwo(s *Schematic) int {
	sum := 0
	for pos, parts := range s.Gears() {
		if len(parts) == 2 {
			aoc.Debugf("gear at %v: %d * %d", pos, parts[0].Value, parts[1].Value)
			sum += parts[0].Value * parts[1].Value
		}
	}
	return sum
}

func Solve(input string) (aoc.Answer, error) {
	s, err := Parse(input)
	if err != nil {
		return aoc.Answer{}, err
	}
	return aoc.Answer{One: PartOne(s), Two: PartTwo(s)}, nil
}
