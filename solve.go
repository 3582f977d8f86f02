package aoc

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type Result struct {
	Day     int
	Part    int
	Answer  Answer
	Elapsed time.Duration
	Err     error
}

// InputFunc supplies the puzzle text for a day.
type InputFunc func(day int) (string, error)

// Solve runs one part of d against input and times it.
func Solve(d Day, part int, input string) Result {
	res := Result{Day: d.Number, Part: part}
	f, err := d.Part(part)
	if err != nil {
		res.Err = err
		return res
	}
	start := time.Now()
	res.Answer, res.Err = f(input)
	res.Elapsed = time.Since(start)
	if res.Err != nil {
		res.Err = fmt.Errorf("day %d part %d: %w", d.Number, part, res.Err)
	}
	log.Debug().
		Int("day", d.Number).
		Int("part", part).
		Stringer("answer", res.Answer).
		Dur("elapsed", res.Elapsed).
		Err(res.Err).
		Msg("solved")
	return res
}

// SolveAll loads each day's input once and solves every part concurrently.
// Results are ordered by day then part. A part that fails to solve reports
// through its Result; only loading errors and cancellation fail the call.
func SolveAll(ctx context.Context, days []Day, load InputFunc) ([]Result, error) {
	res := make([]Result, 0, 2*len(days))
	type job struct {
		day   Day
		part  int
		input string
		slot  int
	}
	var jobs []job
	for _, d := range days {
		input, err := load(d.Number)
		if err != nil {
			return nil, fmt.Errorf("day %d: %w", d.Number, err)
		}
		for p := range d.Parts {
			if d.Parts[p] == nil {
				continue
			}
			jobs = append(jobs, job{day: d, part: p + 1, input: input, slot: len(res)})
			res = append(res, Result{Day: d.Number, Part: p + 1})
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for _, j := range jobs {
		j := j
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			res[j.slot] = Solve(j.day, j.part, j.input)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}
