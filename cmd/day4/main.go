// Command day4 reads a puzzle input on stdin and prints both answers.
package main

import (
	"github.com/snowdrift/aoc"
	"github.com/snowdrift/aoc/day4"
)

func main() {
	aoc.Main(day4.Solve)
}
