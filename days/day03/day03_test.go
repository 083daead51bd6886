package day03

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maisem/aoc2023"
)

const example = `467..114..
...*......
..35..633.
......#...
617*......
.....+.58.
..592.....
......755.
...$.*....
.664.598..
`

func TestPart1(t *testing.T) {
	assert.Equal(t, 4361, part1(example))
}

func TestPart2(t *testing.T) {
	assert.Equal(t, 467835, part2(example))
}

func TestNumbers(t *testing.T) {
	g := aoc.ParseGrid("12.3\n..45\n")
	assert.Equal(t, []number{
		{value: 12, start: aoc.Pt{X: 0, Y: 0}, len: 2},
		{value: 3, start: aoc.Pt{X: 3, Y: 0}, len: 1},
		{value: 45, start: aoc.Pt{X: 2, Y: 1}, len: 2},
	}, numbers(g))
}

func TestGearCountsNumberOnce(t *testing.T) {
	// 12 touches the * twice but is a single part number.
	assert.Equal(t, 0, part2("12.\n.*.\n"))
	assert.Equal(t, 24, part2("12.\n.*2\n"))
}

func TestSamples(t *testing.T) {
	var out bytes.Buffer
	New(&aoc.Inputs{Sample: true}, &out).Run()
	assert.Equal(t, "4361\n467835\n", out.String())
}
