package aoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestForNeighbors(t *testing.T) {
	var got []Pt
	Pt{X: 1, Y: 1}.ForNeighbors(func(p Pt) bool {
		got = append(got, p)
		return true
	})
	assert.Len(t, got, 8)
	assert.NotContains(t, got, Pt{X: 1, Y: 1})

	n := 0
	Pt{}.ForNeighbors(func(Pt) bool {
		n++
		return n < 3
	})
	assert.Equal(t, 3, n, "stops when f returns false")
}

func TestParseGrid(t *testing.T) {
	g := ParseGrid("ab\ncde\n\n")
	assert.Len(t, g, 2)

	v, ok := g.AtOk(Pt{X: 0, Y: 1})
	assert.True(t, ok)
	assert.Equal(t, byte('c'), v)

	v, ok = g.AtOk(Pt{X: 2, Y: 1})
	assert.True(t, ok, "rows may be longer than the first")
	assert.Equal(t, byte('e'), v)

	for _, p := range []Pt{{X: 2, Y: 0}, {X: 0, Y: -1}, {X: -1, Y: 0}, {X: 0, Y: 2}} {
		_, ok := g.AtOk(p)
		assert.False(t, ok, "%v", p)
	}
}
