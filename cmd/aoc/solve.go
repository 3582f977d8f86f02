package main

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/jrhy/aoc2022"
	"github.com/jrhy/aoc2022/input"
)

func init() {
	funcs["solve"] = subcommand{
		`-d/--day=<n> [-p/--part=1|2] [-i/--input=<file>] [-e/--example] [--dir=<dir>] [-v]`,
		"solves one day, printing each answer with the time taken",
		func(a []string, stdout io.Writer) int {
			o := struct {
				Day   int    `short:"d" long:"day" required:"true"`
				Part  int    `short:"p" long:"part"`
				Input string `short:"i" long:"input"`
				Common
			}{}
			ra, code := parse(&o, a)
			if code != 0 {
				return code
			}
			if len(ra) > 0 || o.Part < 0 || o.Part > 2 {
				return exitSubcommandUsage
			}
			setupLogging(cfg.LogLevel, o.Verbose)
			d, ok := aoc.Lookup(o.Day)
			if !ok {
				log.Error().Int("day", o.Day).Msg("no such day")
				return exitError
			}
			text, err := readInput(o.Input, o.dir(), o.Day)
			if err != nil {
				log.Error().Err(err).Msg("reading input")
				return exitError
			}
			parts := []int{1, 2}
			if o.Part != 0 {
				parts = []int{o.Part}
			}
			exit := 0
			for _, p := range parts {
				r := aoc.Solve(d, p, text)
				if r.Err != nil {
					log.Error().Err(r.Err).Msg("solve")
					exit = exitError
					continue
				}
				printResult(stdout, r)
			}
			return exit
		},
	}
}

func readInput(file, dir string, day int) (string, error) {
	if file == "" {
		return input.Read(dir, day)
	}
	b, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("%s: %w", file, err)
	}
	return string(b), nil
}

func printResult(w io.Writer, r aoc.Result) {
	fmt.Fprintf(w, "day %d part %d: %v (%v)\n", r.Day, r.Part, r.Answer, r.Elapsed)
}
