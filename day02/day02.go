// Package day02 scores a rock, paper, scissors strategy guide.
package day02

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/jrhy/aoc2022"
	"github.com/jrhy/aoc2022/lines"
	"github.com/jrhy/aoc2022/reduce"
	"github.com/jrhy/aoc2022/rps"
)

func init() {
	aoc.Register(aoc.Day{
		Number: 2,
		Title:  "Rock Paper Scissors",
		Parts:  [2]aoc.Solver{PartOne, PartTwo},
	})
}

// PartOne reads the second column as the shape we play.
func PartOne(input string) (aoc.Answer, error) {
	return solve(input, func(r rps.Round) int {
		me := r.Code.Shape()
		return rps.Score(me, rps.Resolve(me, r.Opponent))
	})
}

// PartTwo reads the second column as the outcome we need.
func PartTwo(input string) (aoc.Answer, error) {
	return solve(input, func(r rps.Round) int {
		want := r.Code.Outcome()
		return rps.Score(rps.ShapeFor(r.Opponent, want), want)
	})
}

func solve(input string, score func(rps.Round) int) (aoc.Answer, error) {
	rounds, err := Rounds(input)
	if err != nil {
		return aoc.None, err
	}
	scores := make([]int, len(rounds))
	for i := range rounds {
		scores[i] = score(rounds[i])
	}
	log.Debug().Int("rounds", len(rounds)).Msg("day02 scored")
	return reduce.Sum(scores)
}

// Rounds parses every line of the guide. Blank lines are skipped.
func Rounds(input string) ([]rps.Round, error) {
	var res []rps.Round
	s := lines.NewScanner(strings.NewReader(input))
	for s.Scan() {
		g := s.Group()
		for i, l := range g.Lines {
			r, err := rps.ParseRound(l)
			if err != nil {
				return nil, aoc.AtLine(g.Start+i, err)
			}
			res = append(res, r)
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return res, nil
}
