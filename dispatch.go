package aoc

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"tailscale.com/types/logger"
)

// CommandKind is what a Command asks the Dispatcher to do.
type CommandKind int

const (
	CmdLatest  CommandKind = iota // run the day with the highest number
	CmdAll                        // run every day
	CmdDay                        // run Command.Day
	CmdInvalid                    // unrecognized argument
)

func (k CommandKind) String() string {
	switch k {
	case CmdLatest:
		return "latest"
	case CmdAll:
		return "all"
	case CmdDay:
		return "day"
	case CmdInvalid:
		return "invalid"
	}
	return fmt.Sprintf("CommandKind(%d)", int(k))
}

// Command is a parsed command line.
type Command struct {
	Kind CommandKind
	Day  int // only set for CmdDay
}

// ParseCommand interprets the command line arguments. Only the first one
// matters: none means the latest day, "all" means every day and a
// non-negative integer selects that day.
func ParseCommand(args []string) Command {
	if len(args) == 0 {
		return Command{Kind: CmdLatest}
	}
	arg := args[0]
	if arg == "all" {
		return Command{Kind: CmdAll}
	}
	if n, err := strconv.Atoi(arg); err == nil && n >= 0 {
		return Command{Kind: CmdDay, Day: n}
	}
	return Command{Kind: CmdInvalid}
}

const (
	msgNotImplemented = "Day is not implemented yet."
	msgInvalidInput   = "Invalid input. Please specify a day or 'all'."
)

// Dispatcher runs days from a Registry.
//
// Days run synchronously on the calling goroutine. A panicking day is not
// recovered.
type Dispatcher struct {
	Registry *Registry // nil has no days
	Out      io.Writer // os.Stdout if nil
	Logf     logger.Logf
}

func (d *Dispatcher) registry() *Registry {
	if d.Registry == nil {
		return new(Registry)
	}
	return d.Registry
}

func (d *Dispatcher) out() io.Writer {
	if d.Out == nil {
		return os.Stdout
	}
	return d.Out
}

// Dispatch parses args and runs the resulting command.
func (d *Dispatcher) Dispatch(args []string) {
	d.Run(ParseCommand(args))
}

// Run runs c.
func (d *Dispatcher) Run(c Command) {
	logf := orDiscard(d.Logf)
	if c.Kind == CmdDay {
		logf("dispatching day %d over %d registered days", c.Day, d.registry().Len())
	} else {
		logf("dispatching %v over %d registered days", c.Kind, d.registry().Len())
	}
	switch c.Kind {
	case CmdLatest:
		d.RunLatest()
	case CmdAll:
		d.RunAll()
	case CmdDay:
		d.RunSpecific(c.Day)
	default:
		fmt.Fprintln(d.out(), msgInvalidInput)
	}
}

// RunAll runs every registered day, in registration order.
func (d *Dispatcher) RunAll() {
	for _, day := range d.registry().All() {
		d.runDay(day, true)
	}
}

// RunSpecific runs day n.
func (d *Dispatcher) RunSpecific(n int) {
	d.runDay(d.registry().Find(n))
}

// RunLatest runs the day with the highest number.
func (d *Dispatcher) RunLatest() {
	d.runDay(d.registry().Latest())
}

func (d *Dispatcher) runDay(day Day, ok bool) {
	if !ok {
		fmt.Fprintln(d.out(), msgNotImplemented)
		return
	}
	fmt.Fprintf(d.out(), "Running Day: %d\n", day.Number)
	day.Run()
}
