package aoc

import (
	"bufio"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/must"
)

// Digit returns the digit value of the rune.
func Digit(r rune) int {
	if r < '0' || r > '9' {
		panic(fmt.Sprintf("not a digit: %q", r))
	}
	return int(r - '0')
}

// IsDigit reports whether r is an ASCII digit.
func IsDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// Number is a type that can be used in math functions.
type Number interface {
	constraints.Float | constraints.Integer
}

// Sum returns the sum of the numbers.
func Sum[T Number](nums ...T) T {
	var sum T
	for _, v := range nums {
		sum += v
	}
	return sum
}

// Int returns the int value of the string.
func Int(s string) int {
	return must.Get(strconv.Atoi(strings.TrimSpace(s)))
}

// TrimPrefix is strings.CutPrefix that panics if s lacks prefix.
func TrimPrefix(s, prefix string) string {
	s1, ok := strings.CutPrefix(s, prefix)
	if !ok {
		panic(fmt.Sprintf("bad prefix: %q", s))
	}
	return s1
}

// Or returns the first non-zero value of list.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(v).IsZero() {
			return v
		}
	}
	var zero T
	return zero
}

// ForLines calls onLine for each non-empty line of input.
func ForLines(input string, onLine func(line string)) {
	s := bufio.NewScanner(strings.NewReader(input))
	for s.Scan() {
		if line := s.Text(); line != "" {
			onLine(line)
		}
	}
	must.Do(s.Err())
}
