// Command day6 reads a puzzle input on stdin and prints both answers.
package main

import (
	"github.com/snowdrift/aoc"
	"github.com/snowdrift/aoc/day6"
)

func main() {
	aoc.Main(day6.Solve)
}
