// Command aoc2023 runs every day against the samples in this file and then
// against the inputs in the inputs directory (see -inputs).
package main

import (
	_ "embed"
	"flag"

	"github.com/snowdrift/aoc"
	"github.com/snowdrift/aoc/day1"
	"github.com/snowdrift/aoc/day2"
	"github.com/snowdrift/aoc/day3"
	"github.com/snowdrift/aoc/day4"
	"github.com/snowdrift/aoc/day5"
	"github.com/snowdrift/aoc/day6"
	"github.com/snowdrift/aoc/day7"
	"github.com/snowdrift/aoc/day8"
	"github.com/snowdrift/aoc/day9"
)

var bruteForce = flag.Bool("brute", false, "solve day 5 part two by trying every seed")

func main() {
	aoc.Run(2023, source, &solver{})
}

//go:embed main.go
var source []byte

type solver struct {
	*aoc.Puzzle
}

func (s solver) lines() []string {
	var lines []string
	s.ForLines(func(line string) {
		lines = append(lines, line)
	})
	return lines
}

/*
want=142

1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
*/
func (s solver) D1p1() any {
	return day1.PartOne(s.lines())
}

/*
want=281

two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
*/
func (s solver) D1p2() any {
	return aoc.MustGet(day1.PartTwo(s.lines()))
}

/*
want=8

Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
*/
func (s solver) D2p1() any {
	return day2.PartOne(aoc.MustGet(day2.Parse(s.Input())))
}

// want=2286
func (s solver) D2p2() any {
	return day2.PartTwo(aoc.MustGet(day2.Parse(s.Input())))
}

/*
want=4361

467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
*/
func (s solver) D3p1() any {
	return day3.PartOne(aoc.MustGet(day3.Parse(s.Input())))
}

// want=467835
func (s solver) D3p2() any {
	return day3.PartTwo(aoc.MustGet(day3.Parse(s.Input())))
}

/*
want=13

Card 1: 41 48 83 86 17 | 83 86  6 31 17  9 48 53
Card 2: 13 32 20 16 61 | 61 30 68 82 17 32 24 19
Card 3:  1 21 53 59 44 | 69 82 63 72 16 21 14  1
Card 4: 41 92 73 84 69 | 59 84 76 51 58  5 54 83
Card 5: 87 83 26 28 32 | 88 30 70 12 93 22 82 36
Card 6: 31 18 13 56 72 | 74 77 10 23 35 67 36 11
*/
func (s solver) D4p1() any {
	return day4.PartOne(aoc.MustGet(day4.Parse(s.Input())))
}

// want=30
func (s solver) D4p2() any {
	return day4.PartTwo(aoc.MustGet(day4.Parse(s.Input())))
}

/*
want=35

seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
*/
func (s solver) D5p1() any {
	return aoc.MustGet(day5.PartOne(aoc.MustGet(day5.Parse(s.Input()))))
}

// want=46
func (s solver) D5p2() any {
	a := aoc.MustGet(day5.Parse(s.Input()))
	if *bruteForce {
		return aoc.MustGet(day5.PartTwoBruteForce(a))
	}
	return aoc.MustGet(day5.PartTwo(a))
}

/*
want=288

Time:      7  15   30
Distance:  9  40  200
*/
func (s solver) D6p1() any {
	races := aoc.MustGet(day6.Parse(s.Input()))
	s.Debug(races)
	return day6.PartOne(races)
}

// want=71503
func (s solver) D6p2() any {
	return day6.PartTwo(aoc.MustGet(day6.ParseKerned(s.Input())))
}

/*
want=6440

32T3K 765
T55J5 684
KK677 28
KTJJT 220
QQQJA 483
*/
func (s solver) D7p1() any {
	return day7.PartOne(aoc.MustGet(day7.Parse(s.Input())))
}

// want=5905
func (s solver) D7p2() any {
	hands := aoc.MustGet(day7.Parse(s.Input()))
	for _, h := range hands {
		s.Debugf("%s: %v", h.Cards, day7.Joker.Classify(h.Cards))
	}
	return day7.PartTwo(hands)
}

/*
want=6

LLR

AAA = (BBB, BBB)
BBB = (AAA, ZZZ)
ZZZ = (ZZZ, ZZZ)
*/
func (s solver) D8p1() any {
	return aoc.MustGet(day8.PartOne(aoc.MustGet(day8.Parse(s.Input()))))
}

/*
want=6

LR

11A = (11B, XXX)
11B = (XXX, 11Z)
11Z = (11B, XXX)
22A = (22B, XXX)
22B = (22C, 22C)
22C = (22Z, 22Z)
22Z = (22B, 22B)
XXX = (XXX, XXX)
*/
func (s solver) D8p2() any {
	return aoc.MustGet(day8.PartTwo(aoc.MustGet(day8.Parse(s.Input()))))
}

/*
want=114

0 3 6 9 12 15
1 3 6 10 15 21
10 13 16 21 30 45
*/
func (s solver) D9p1() any {
	return day9.PartOne(aoc.MustGet(day9.Parse(s.Input())))
}

// want=2
func (s solver) D9p2() any {
	return day9.PartTwo(aoc.MustGet(day9.Parse(s.Input())))
}
