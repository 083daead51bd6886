// The aoc command runs Advent of Code solutions.
//
//	aoc          run the latest day
//	aoc all      run every day
//	aoc <day>    run that day
//
// Flags can also be set from the environment as AOC_<FLAG>, with dashes
// replaced by underscores (AOC_INPUT_DIR, AOC_SAMPLE, ...).
package main

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/maisem/aoc2023"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:           "aoc [all|<day>]",
		Short:         "Run Advent of Code solutions",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(v, cmd.OutOrStdout(), cmd.ErrOrStderr(), args)
		},
	}
	// A day argument like "-1" looks like a flag to cobra. Report it the
	// way the dispatcher reports any other bad argument.
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		log.Debugf("parsing flags: %v", err)
		d := &aoc.Dispatcher{Out: c.OutOrStdout()}
		d.Run(aoc.Command{Kind: aoc.CmdInvalid})
		return nil
	})

	f := cmd.Flags()
	addFlags(f)
	v.SetEnvPrefix("aoc")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(f); err != nil {
		log.Fatalf("binding flags: %v", err)
	}
	return cmd
}

func addFlags(f *pflag.FlagSet) {
	home, _ := os.UserHomeDir()
	f.Int("year", 2023, "puzzle year")
	f.String("input-dir", ".", "directory caching puzzle inputs as <year>/<day>.input")
	f.String("session-file", filepath.Join(home, "keys", "aoc.session"), "file holding the adventofcode.com session cookie")
	f.Bool("sample", false, "run against the samples instead of the real input")
	f.String("log-level", "info", "log level (debug, info, warn, error)")
}

func run(v *viper.Viper, stdout, stderr io.Writer, args []string) error {
	log.SetOutput(stderr)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if level, err := log.ParseLevel(v.GetString("log-level")); err == nil {
		log.SetLevel(level)
	} else {
		log.Warnf("invalid log level %s, defaulting to info", v.GetString("log-level"))
		log.SetLevel(log.InfoLevel)
	}

	in := &aoc.Inputs{
		Year:        v.GetInt("year"),
		Dir:         v.GetString("input-dir"),
		SessionFile: v.GetString("session-file"),
		Sample:      v.GetBool("sample"),
		Logf:        log.Infof,
	}

	var reg aoc.Registry
	if err := registerDays(&reg, in, stdout); err != nil {
		return err
	}
	log.WithField("days", reg.Numbers()).Debug("registered days")

	d := &aoc.Dispatcher{
		Registry: &reg,
		Out:      stdout,
		Logf:     log.Debugf,
	}
	d.Dispatch(args)
	return nil
}
