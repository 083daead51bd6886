// Package day01 solves "Trebuchet?!": recovering calibration values from
// the first and last digit of each line.
package day01

import (
	_ "embed"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/maisem/aoc2023"
)

//go:embed day01.go
var source []byte

func New(in *aoc.Inputs, out io.Writer) aoc.Day {
	p := &aoc.Puzzle{
		Number: 1,
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

/*
want=142

1abc2
pqr3stu8vwx
a1b2c3d4e5f
treb7uchet
*/
func part1(input string) int {
	var sum int
	aoc.ForLines(input, func(line string) {
		i := strings.IndexFunc(line, aoc.IsDigit)
		if i < 0 {
			panic(fmt.Sprintf("no digit in %q", line))
		}
		j := strings.LastIndexFunc(line, aoc.IsDigit)
		sum += aoc.Digit(rune(line[i]))*10 + aoc.Digit(rune(line[j]))
	})
	return sum
}

/*
want=281

two1nine
eightwothree
abcone2threexyz
xtwone3four
4nineeightseven2
zoneight234
7pqrstsixteen
*/
func part2(input string) int {
	var sum int
	aoc.ForLines(input, func(line string) {
		sum += calibration(line)
	})
	return sum
}

var digitRx = regexp.MustCompile(`^(?:zero|one|two|three|four|five|six|seven|eight|nine|\d)`)

var words = map[string]int{
	"zero":  0,
	"one":   1,
	"two":   2,
	"three": 3,
	"four":  4,
	"five":  5,
	"six":   6,
	"seven": 7,
	"eight": 8,
	"nine":  9,
}

// calibration returns the first and last digit of line, spelled or not,
// as a two digit number. Spelled digits may overlap ("eightwo" is 82).
func calibration(line string) int {
	first, last := -1, -1
	for i := range line {
		m := digitRx.FindString(line[i:])
		if m == "" {
			continue
		}
		v, ok := words[m]
		if !ok {
			v = aoc.Digit(rune(m[0]))
		}
		if first == -1 {
			first = v
		}
		last = v
	}
	if first == -1 {
		panic(fmt.Sprintf("no digit in %q", line))
	}
	return first*10 + last
}
