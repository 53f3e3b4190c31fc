// Command day8 reads a puzzle input on stdin and prints both answers.
package main

import (
	"github.com/snowdrift/aoc"
	"github.com/snowdrift/aoc/day8"
)

func main() {
	aoc.Main(day8.Solve)
}
