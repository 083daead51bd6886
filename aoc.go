// Package aoc runs Advent of Code solutions. Each day is registered with a
// Registry and a Dispatcher decides which of them to run.
// (started life as a fork of bradfitz/aoc)
package aoc

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"io"
	"os"
	"regexp"
	"strings"
	"time"

	"tailscale.com/types/logger"
	"tailscale.com/util/must"
)

// Day is a registered solution. Run prints the answers of every part.
type Day struct {
	Number int
	Run    func()
}

// Part solves one half of a day's puzzle.
//
// Name is the name of the Go func implementing it; its doc comment may
// carry a sample of the form:
//
//	/*
//	want=142
//
//	sample input
//	*/
type Part struct {
	Name  string
	Solve func(input string) int
}

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	if m := sampleRx.FindStringSubmatch(text); m != nil {
		s := sample{
			want:  m[1],
			input: m[2],
		}
		return s, true
	}
	var zero sample
	return zero, false
}

// extractSamples returns the samples found in the doc comments of the
// funcs in src, keyed by func name. A sample without input reuses the
// input of the sample before it.
func extractSamples(src []byte) (map[string]sample, error) {
	fs := token.NewFileSet()
	f, err := parser.ParseFile(fs, "", src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing source to extract samples: %w", err)
	}
	var lastInput string
	samples := make(map[string]sample)
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok || fd.Doc == nil {
			continue
		}
		for _, c := range fd.Doc.List {
			s, ok := parseSample(c.Text)
			if ok {
				s.input = Or(s.input, lastInput)
				samples[fd.Name.Name] = s
				lastInput = s.input
				break
			}
		}
	}
	return samples, nil
}

// Puzzle ties the parts of a day to where their input comes from and
// where their answers go.
type Puzzle struct {
	Number int
	Parts  []Part

	// Source is the Go source of the day, used to find samples.
	Source []byte

	Inputs *Inputs
	Out    io.Writer // os.Stdout if nil
}

// Day returns the registry entry for p.
func (p *Puzzle) Day() Day {
	return Day{Number: p.Number, Run: p.run}
}

// run prints one answer per part. Any failure panics; there is nothing
// useful a caller could do about bad input.
func (p *Puzzle) run() {
	in := p.Inputs
	if in == nil {
		in = new(Inputs)
	}
	logf := in.logf()
	out := p.Out
	if out == nil {
		out = os.Stdout
	}

	var (
		input   []byte
		samples map[string]sample
	)
	if in.Sample {
		samples = must.Get(extractSamples(p.Source))
	} else {
		input = must.Get(in.Load(p.Number))
	}

	for _, ps := range p.Parts {
		text := string(input)
		var s sample
		if in.Sample {
			var ok bool
			s, ok = samples[ps.Name]
			if !ok {
				panic(fmt.Sprintf("day %d: no sample found for %v", p.Number, ps.Name))
			}
			text = s.input
		}

		t0 := time.Now()
		got := ps.Solve(text)
		took := time.Since(t0).Round(time.Microsecond)
		fmt.Fprintln(out, got)

		switch {
		case !in.Sample:
			logf("day %d %s: %v (took %v)", p.Number, ps.Name, got, took)
		case fmt.Sprint(got) != s.want:
			logf("day %d %s sample: %v ❌; want %v", p.Number, ps.Name, got, s.want)
		default:
			logf("day %d %s sample: %v ✅ (%v)", p.Number, ps.Name, got, took)
		}
	}
}

func orDiscard(logf logger.Logf) logger.Logf {
	if logf == nil {
		return logger.Discard
	}
	return logf
}
