// Command aoc runs the puzzle solutions against their inputs.
package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/jessevdk/go-flags"

	_ "github.com/jrhy/aoc2022/day01"
	_ "github.com/jrhy/aoc2022/day02"
	_ "github.com/jrhy/aoc2022/day03"
)

const (
	exitError           = 1
	exitSubcommandUsage = 2
)

func main() {
	cfg = loadConfig()
	setupLogging(cfg.LogLevel, false)
	if len(os.Args) == 1 {
		die("specify subcommand or -h")
	}
	if os.Args[1] == "-h" {
		usages(os.Stdout)
		os.Exit(0)
	}
	if f, ok := funcs[os.Args[1]]; ok {
		exit := f.f(os.Args[2:], os.Stdout)
		if exit == exitSubcommandUsage {
			printSubcommandUsage(os.Args[1], f)
		}
		os.Exit(exit)
	}
	die("unknown subcommand")
}

func die(m string) {
	fmt.Fprintln(os.Stderr, m)
	os.Exit(exitError)
}

type subcommand struct {
	// usage is the synopsis shown after "aoc <name>".
	usage string
	// summary is a one-line description for "aoc -h".
	summary string
	f       func(args []string, stdout io.Writer) int
}

func printSubcommandUsage(name string, c subcommand) {
	fmt.Fprintf(os.Stderr, "usage: aoc %s %s\n", name, c.usage)
}

func usages(w io.Writer) {
	fmt.Fprintln(w, `aoc (advent of code) commands:`)
	keys := make([]string, 0, len(funcs))
	for n := range funcs {
		keys = append(keys, n)
	}
	sort.Strings(keys)
	for _, n := range keys {
		c := funcs[n]
		fmt.Fprintf(w, "%s %s\n  %s\n", n, c.usage, c.summary)
	}
}

var funcs = map[string]subcommand{}

// Common holds the options every solving subcommand accepts.
type Common struct {
	Verbose bool   `short:"v" long:"verbose"`
	Example bool   `short:"e" long:"example"`
	Dir     string `long:"dir"`
}

// dir is the directory to read day files from.
func (c Common) dir() string {
	switch {
	case c.Dir != "":
		return c.Dir
	case c.Example:
		return cfg.Examples
	}
	return cfg.Inputs
}

// parse fills o from args. It returns a non-zero exit code when the
// subcommand should stop.
func parse(o interface{}, args []string) ([]string, int) {
	p := flags.NewParser(o, 0)
	ra, err := p.ParseArgs(args)
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok &&
			(flagsErr.Type == flags.ErrUnknownFlag || flagsErr.Type == flags.ErrRequired) {
			return nil, exitSubcommandUsage
		}
		fmt.Fprintf(os.Stderr, "parse: %v\n", err)
		return nil, exitError
	}
	return ra, 0
}
