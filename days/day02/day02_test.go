package day02

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maisem/aoc2023"
)

const example = `
Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
`

func TestPart1(t *testing.T) {
	assert.Equal(t, 8, part1(example))
}

func TestPart2(t *testing.T) {
	assert.Equal(t, 2286, part2(example))
}

func TestParseGame(t *testing.T) {
	g := parseGame("Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red")
	assert.Equal(t, game{id: 3, max: cubes{red: 20, green: 13, blue: 6}}, g)
	assert.Equal(t, 1560, g.max.power())
	assert.False(t, g.max.within(cubes{red: 12, green: 13, blue: 14}))
}

func TestParseGameBadInput(t *testing.T) {
	for _, line := range []string{
		"Game 1 3 blue",
		"Round 1: 3 blue",
		"Game 1: 3 purple",
		"Game 1: blue",
	} {
		assert.Panics(t, func() { parseGame(line) }, line)
	}
}

func TestSamples(t *testing.T) {
	var out bytes.Buffer
	New(&aoc.Inputs{Sample: true}, &out).Run()
	assert.Equal(t, "8\n2286\n", out.String())
}
