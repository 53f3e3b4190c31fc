// Command day3 reads a puzzle input on stdin and prints both answers.
package main

import (
	"github.com/snowdrift/aoc"
	"github.com/snowdrift/aoc/day3"
)

func main() {
	aoc.Main(day3.Solve)
}
