package aoc

import (
	"golang.org/x/exp/constraints"
)

// Grid is a row-major 2D grid, indexed g[y][x].
type Grid[T any] [][]T

// ByteGrid makes a grid of the lines, padding short rows with pad so the
// grid is rectangular.
func ByteGrid(lines []string, pad byte) Grid[byte] {
	w := 0
	for _, l := range lines {
		w = max(w, len(l))
	}
	g := MakeGrid[byte](w, len(lines))
	for y, l := range lines {
		n := copy(g[y], l)
		for x := n; x < w; x++ {
			g[y][x] = pad
		}
	}
	return g
}

// AtOk returns the value at p, or false if p is outside the grid.
func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if p.Y < 0 || p.Y >= len(g) || p.X < 0 || p.X >= len(g[p.Y]) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

// ForNeighbors calls f with the 8 points around p until f returns false.
func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}
