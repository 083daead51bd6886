package day01

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maisem/aoc2023"
)

func TestPart1(t *testing.T) {
	input := "1abc2\npqr3stu8vwx\na1b2c3d4e5f\ntreb7uchet\n"
	assert.Equal(t, 142, part1(input))
	assert.Panics(t, func() { part1("nodigits\n") })
}

func TestPart2(t *testing.T) {
	input := "two1nine\neightwothree\nabcone2threexyz\nxtwone3four\n4nineeightseven2\nzoneight234\n7pqrstsixteen\n"
	assert.Equal(t, 281, part2(input))
}

func TestCalibration(t *testing.T) {
	tests := []struct {
		line string
		want int
	}{
		{"two1nine", 29},
		{"xtwone3four", 24},
		{"eightwo", 82},
		{"oneight", 18},
		{"7pqrstsixteen", 76},
		{"treb7uchet", 77},
		{"zero5", 5},
	}
	for _, tt := range tests {
		if got := calibration(tt.line); got != tt.want {
			t.Errorf("calibration(%q) = %d, want %d", tt.line, got, tt.want)
		}
	}
	assert.Panics(t, func() { calibration("abc") })
}

func TestSamples(t *testing.T) {
	var out bytes.Buffer
	d := New(&aoc.Inputs{Sample: true}, &out)
	assert.Equal(t, 1, d.Number)
	d.Run()
	assert.Equal(t, "142\n281\n", out.String())
}
