package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"

	"github.com/jrhy/aoc2022"
	"github.com/jrhy/aoc2022/input"
)

func init() {
	funcs["all"] = subcommand{
		`[-e/--example] [--dir=<dir>] [-v]`,
		"solves every day concurrently and prints a table of answers",
		func(a []string, stdout io.Writer) int {
			o := struct {
				Common
			}{}
			ra, code := parse(&o, a)
			if code != 0 {
				return code
			}
			if len(ra) > 0 {
				return exitSubcommandUsage
			}
			setupLogging(cfg.LogLevel, o.Verbose)
			res, err := aoc.SolveAll(context.Background(), aoc.Days(), input.Dir(o.dir()))
			if err != nil {
				log.Error().Err(err).Msg("solve all")
				return exitError
			}
			table, exit := resultTable(res)
			s, err := pterm.DefaultTable.WithHasHeader().WithData(table).Srender()
			if err != nil {
				log.Error().Err(err).Msg("render")
				return exitError
			}
			fmt.Fprintln(stdout, s)
			return exit
		},
	}
}

func resultTable(res []aoc.Result) (pterm.TableData, int) {
	exit := 0
	table := pterm.TableData{{"Day", "Title", "Part", "Answer", "Time"}}
	for _, r := range res {
		var title string
		if d, ok := aoc.Lookup(r.Day); ok {
			title = d.Title
		}
		answer := r.Answer.String()
		if r.Err != nil {
			log.Error().Err(r.Err).Msg("solve")
			answer = "error"
			exit = exitError
		}
		table = append(table, []string{
			strconv.Itoa(r.Day), title, strconv.Itoa(r.Part), answer, r.Elapsed.String(),
		})
	}
	return table, exit
}
