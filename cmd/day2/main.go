// Command day2 reads a puzzle input on stdin and prints both answers.
package main

import (
	"github.com/snowdrift/aoc"
	"github.com/snowdrift/aoc/day2"
)

func main() {
	aoc.Main(day2.Solve)
}
