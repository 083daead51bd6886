package aoc

import (
	"errors"
	"fmt"
	"slices"

	"golang.org/x/exp/maps"
	"tailscale.com/util/mak"
)

var (
	// ErrInvalidDay is returned by Register for a day with a negative
	// number or without a Run func.
	ErrInvalidDay = errors.New("invalid day")

	// ErrDuplicateDay is returned by Register when the day number is
	// already taken.
	ErrDuplicateDay = errors.New("day already registered")
)

// Registry holds the registered days. The zero value is ready to use.
//
// Day numbers are unique, so looking a day up by number is unambiguous.
type Registry struct {
	days  []Day
	index map[int]int // day number -> position in days
}

// Register adds d to r.
func (r *Registry) Register(d Day) error {
	if d.Number < 0 {
		return fmt.Errorf("%w: negative number %d", ErrInvalidDay, d.Number)
	}
	if d.Run == nil {
		return fmt.Errorf("%w: day %d has no Run func", ErrInvalidDay, d.Number)
	}
	if _, ok := r.index[d.Number]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateDay, d.Number)
	}
	mak.Set(&r.index, d.Number, len(r.days))
	r.days = append(r.days, d)
	return nil
}

// Len reports the number of registered days.
func (r *Registry) Len() int {
	return len(r.days)
}

// All returns every registered day in registration order.
func (r *Registry) All() []Day {
	return slices.Clone(r.days)
}

// Numbers returns the registered day numbers in ascending order.
func (r *Registry) Numbers() []int {
	nums := maps.Keys(r.index)
	slices.Sort(nums)
	return nums
}

// Find returns the day with number n.
func (r *Registry) Find(n int) (Day, bool) {
	i, ok := r.index[n]
	if !ok {
		return Day{}, false
	}
	return r.days[i], true
}

// Latest returns the day with the highest number.
func (r *Registry) Latest() (Day, bool) {
	if len(r.days) == 0 {
		return Day{}, false
	}
	latest := r.days[0]
	for _, d := range r.days[1:] {
		if d.Number > latest.Number {
			latest = d
		}
	}
	return latest, true
}
