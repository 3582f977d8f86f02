// Package day01 totals the calories carried by each elf. Elves are separated
// by blank lines, one item per line.
package day01

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/jrhy/aoc2022"
	"github.com/jrhy/aoc2022/lines"
	"github.com/jrhy/aoc2022/reduce"
)

func init() {
	aoc.Register(aoc.Day{
		Number: 1,
		Title:  "Calorie Counting",
		Parts:  [2]aoc.Solver{PartOne, PartTwo},
	})
}

// PartOne is the largest elf total.
func PartOne(input string) (aoc.Answer, error) {
	return solve(input, reduce.Max)
}

// PartTwo is the sum of the three largest elf totals.
func PartTwo(input string) (aoc.Answer, error) {
	return solve(input, reduce.TopSum(3))
}

func solve(input string, r reduce.Func) (aoc.Answer, error) {
	totals, err := Totals(input)
	if err != nil {
		return aoc.None, err
	}
	log.Debug().Int("elves", len(totals)).Msg("day01 totals")
	return r(totals)
}

// Totals returns each elf's total in input order.
func Totals(input string) ([]int, error) {
	var res []int
	s := lines.NewScanner(strings.NewReader(input), lines.Blank())
	for s.Scan() {
		g := s.Group()
		n, err := groupSum(g)
		if err != nil {
			return nil, err
		}
		res = append(res, n)
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

func groupSum(g lines.Group) (int, error) {
	counts := make([]int, len(g.Lines))
	for i, l := range g.Lines {
		n, err := ParseCalories(l)
		if err != nil {
			return 0, aoc.AtLine(g.Start+i, err)
		}
		counts[i] = n
	}
	a, err := reduce.Sum(counts)
	if err != nil {
		return 0, fmt.Errorf("elf at line %d: %w", g.Start, err)
	}
	return a.Value, nil
}

// ParseCalories reads one non-negative item count.
func ParseCalories(l string) (int, error) {
	for i := 0; i < len(l); i++ {
		if l[i] < '0' || l[i] > '9' {
			return 0, aoc.Unrecognized(l, i, rune(l[i]))
		}
	}
	n, err := strconv.Atoi(l)
	if err != nil {
		return 0, &aoc.InputError{Pos: -1, Text: l, Err: fmt.Errorf("%w: %v", aoc.ErrMalformedInput, err)}
	}
	return n, nil
}
