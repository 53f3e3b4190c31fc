// Command day5 reads a puzzle input on stdin and prints both answers.
package main

import (
	"github.com/snowdrift/aoc"
	"github.com/snowdrift/aoc/day5"
)

func main() {
	aoc.Main(day5.Solve)
}
