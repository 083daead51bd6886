package aoc

import "golang.org/x/exp/constraints"

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

// ForNeighbors calls f for each of the 8 points around p until f
// returns false.
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

// Grid is indexed [y][x]. Rows may differ in length.
type Grid[T any] [][]T

func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if p.Y < 0 || p.Y >= len(g) || p.X < 0 || p.X >= len(g[p.Y]) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

// ParseGrid returns the non-empty lines of input as a grid of bytes.
func ParseGrid(input string) Grid[byte] {
	var g Grid[byte]
	ForLines(input, func(line string) {
		g = append(g, []byte(line))
	})
	return g
}
