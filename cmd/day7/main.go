// Command day7 reads a puzzle input on stdin and prints both answers.
package main

import (
	"github.com/snowdrift/aoc"
	"github.com/snowdrift/aoc/day7"
)

func main() {
	aoc.Main(day7.Solve)
}
