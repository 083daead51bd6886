// Package day03 solves "Gear Ratios".
package day03

import (
	_ "embed"
	"io"

	"github.com/maisem/aoc2023"
)

//go:embed day03.go
var source []byte

func New(in *aoc.Inputs, out io.Writer) aoc.Day {
	p := &aoc.Puzzle{
		Number: 3,
		Source: source,
		Inputs: in,
		Out:    out,
		Parts: []aoc.Part{
			{Name: "part1", Solve: part1},
			{Name: "part2", Solve: part2},
		},
	}
	return p.Day()
}

// number is a run of digits in the schematic.
type number struct {
	value int
	start aoc.Pt // leftmost digit
	len   int
}

// numbers returns every number in g, top to bottom, left to right.
func numbers(g aoc.Grid[byte]) []number {
	var out []number
	for y, row := range g {
		for x := 0; x < len(row); x++ {
			if !aoc.IsDigit(rune(row[x])) {
				continue
			}
			n := number{start: aoc.Pt{X: x, Y: y}}
			for ; x < len(row) && aoc.IsDigit(rune(row[x])); x++ {
				n.value = n.value*10 + aoc.Digit(rune(row[x]))
				n.len++
			}
			out = append(out, n)
		}
	}
	return out
}

// forAdjacent calls f once for every cell touching n, diagonals included.
func forAdjacent(g aoc.Grid[byte], n number, f func(aoc.Pt, byte)) {
	seen := map[aoc.Pt]bool{}
	for i := 0; i < n.len; i++ {
		p := aoc.Pt{X: n.start.X + i, Y: n.start.Y}
		p.ForNeighbors(func(q aoc.Pt) bool {
			if q.Y == n.start.Y && q.X >= n.start.X && q.X < n.start.X+n.len {
				return true // part of n itself
			}
			if seen[q] {
				return true
			}
			seen[q] = true
			if v, ok := g.AtOk(q); ok {
				f(q, v)
			}
			return true
		})
	}
}

func isSymbol(b byte) bool {
	return b != '.' && !aoc.IsDigit(rune(b))
}

/*
want=4361

467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
*/
func part1(input string) int {
	g := aoc.ParseGrid(input)
	var parts []int
	for _, n := range numbers(g) {
		isPart := false
		forAdjacent(g, n, func(_ aoc.Pt, v byte) {
			if isSymbol(v) {
				isPart = true
			}
		})
		if isPart {
			parts = append(parts, n.value)
		}
	}
	return aoc.Sum(parts...)
}

// want=467835
func part2(input string) int {
	g := aoc.ParseGrid(input)
	gears := map[aoc.Pt][]int{}
	for _, n := range numbers(g) {
		forAdjacent(g, n, func(p aoc.Pt, v byte) {
			if v == '*' {
				gears[p] = append(gears[p], n.value)
			}
		})
	}
	var ratios []int
	for _, parts := range gears {
		if len(parts) == 2 {
			ratios = append(ratios, parts[0]*parts[1])
		}
	}
	return aoc.Sum(ratios...)
}
