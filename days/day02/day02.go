// Package day02 solves "Cube Conundrum".
package day02

import (
	_ "embed"
	"fmt"
	"io"
	"strings"

	"github.com/maisem/aoc2023"
)

//go:embed day02.go
var source []byte

func New(in *aoc.Inputs, out io.Writer) aoc.Day {
	p := &aoc.Puzzle{
		Number: 2,
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

type cubes struct {
	red, green, blue int
}

func (c cubes) max(o cubes) cubes {
	return cubes{
		red:   max(c.red, o.red),
		green: max(c.green, o.green),
		blue:  max(c.blue, o.blue),
	}
}

func (c cubes) within(limit cubes) bool {
	return c.red <= limit.red && c.green <= limit.green && c.blue <= limit.blue
}

func (c cubes) power() int {
	return c.red * c.green * c.blue
}

// game is a game id and the most cubes of each color seen in any of its
// sets.
type game struct {
	id  int
	max cubes
}

// parseGame parses "Game 3: 8 green, 6 blue; 5 blue, 4 red".
func parseGame(line string) game {
	head, sets, ok := strings.Cut(line, ": ")
	if !ok {
		panic(fmt.Sprintf("bad game: %q", line))
	}
	g := game{id: aoc.Int(aoc.TrimPrefix(head, "Game "))}
	for _, set := range strings.Split(sets, "; ") {
		g.max = g.max.max(parseSet(set))
	}
	return g
}

// parseSet parses "1 blue, 2 green, 3 red".
func parseSet(set string) cubes {
	var c cubes
	for _, part := range strings.Split(set, ", ") {
		f := strings.Fields(part)
		if len(f) != 2 {
			panic(fmt.Sprintf("bad cube count: %q", part))
		}
		n := aoc.Int(f[0])
		switch f[1] {
		case "red":
			c.red += n
		case "green":
			c.green += n
		case "blue":
			c.blue += n
		default:
			panic(fmt.Sprintf("unknown color %q", f[1]))
		}
	}
	return c
}

func forGames(input string, f func(game)) {
	aoc.ForLines(input, func(line string) {
		f(parseGame(line))
	})
}

/*
want=8

Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
*/
func part1(input string) int {
	limit := cubes{red: 12, green: 13, blue: 14}
	var ids []int
	forGames(input, func(g game) {
		if g.max.within(limit) {
			ids = append(ids, g.id)
		}
	})
	return aoc.Sum(ids...)
}

// want=2286
func part2(input string) int {
	var powers []int
	forGames(input, func(g game) {
		powers = append(powers, g.max.power())
	})
	return aoc.Sum(powers...)
}
