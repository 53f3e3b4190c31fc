// Command day1 reads a puzzle input on stdin and prints both answers.
package main

import (
	"github.com/snowdrift/aoc"
	"github.com/snowdrift/aoc/day1"
)

func main() {
	aoc.Main(day1.Solve)
}
