// Command day9 reads a puzzle input on stdin and prints both answers.
package main

import (
	"github.com/snowdrift/aoc"
	"github.com/snowdrift/aoc/day9"
)

func main() {
	aoc.Main(day9.Solve)
}
