package main

import (
	"fmt"
	"io"

	"github.com/jrhy/aoc2022"
	"github.com/jrhy/aoc2022/input"
)

func init() {
	funcs["days"] = subcommand{
		``,
		"lists the days that have solutions and where their input is read from",
		func(a []string, stdout io.Writer) int {
			o := struct{}{}
			ra, code := parse(&o, a)
			if code != 0 {
				return code
			}
			if len(ra) > 0 {
				return exitSubcommandUsage
			}
			for _, d := range aoc.Days() {
				fmt.Fprintf(stdout, "%2d %-28s %s\n", d.Number, d.Title, input.Path(cfg.Inputs, d.Number))
			}
			return 0
		},
	}
}
