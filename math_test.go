package aoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDigit(t *testing.T) {
	assert.Equal(t, 7, Digit('7'))
	assert.True(t, IsDigit('0'))
	assert.False(t, IsDigit('a'))
	assert.Panics(t, func() { Digit('x') })
}

func TestInt(t *testing.T) {
	assert.Equal(t, 22, Int(" 22 "))
	assert.Equal(t, -3, Int("-3"))
	assert.Panics(t, func() { Int("one") })
}

func TestSum(t *testing.T) {
	assert.Equal(t, 6, Sum(1, 2, 3))
	assert.Equal(t, 0, Sum[int]())
	assert.InDelta(t, 1.5, Sum(0.5, 1.0), 1e-9)
}

func TestOr(t *testing.T) {
	assert.Equal(t, "b", Or("", "b", "c"))
	assert.Equal(t, "", Or("", ""))
	assert.Equal(t, 3, Or(0, 3))
}

func TestTrimPrefix(t *testing.T) {
	assert.Equal(t, "12", TrimPrefix("Game 12", "Game "))
	assert.Panics(t, func() { TrimPrefix("Round 12", "Game ") })
}

func TestForLines(t *testing.T) {
	var lines []string
	ForLines("a\n\nb\nc", func(line string) {
		lines = append(lines, line)
	})
	assert.Equal(t, []string{"a", "b", "c"}, lines)
}
