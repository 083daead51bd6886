package main

import (
	"io"

	"github.com/maisem/aoc2023"
	"github.com/maisem/aoc2023/days/day01"
	"github.com/maisem/aoc2023/days/day02"
	"github.com/maisem/aoc2023/days/day03"
)

// registerDays registers every solved day. New days go here.
func registerDays(r *aoc.Registry, in *aoc.Inputs, out io.Writer) error {
	for _, d := range []aoc.Day{
		day01.New(in, out),
		day02.New(in, out),
		day03.New(in, out),
	} {
		if err := r.Register(d); err != nil {
			return err
		}
	}
	return nil
}
