// Package day03 finds misplaced rucksack items and group badges.
package day03

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/jrhy/aoc2022"
	"github.com/jrhy/aoc2022/lines"
	"github.com/jrhy/aoc2022/reduce"
	"github.com/jrhy/aoc2022/rucksack"
)

// GroupSize is the number of elves sharing a badge.
const GroupSize = 3

func init() {
	aoc.Register(aoc.Day{
		Number: 3,
		Title:  "Rucksack Reorganization",
		Parts:  [2]aoc.Solver{PartOne, PartTwo},
	})
}

// PartOne sums the priority of the item found in both compartments of each
// rucksack.
func PartOne(input string) (aoc.Answer, error) {
	var priorities []int
	s := lines.NewScanner(strings.NewReader(input), lines.Chunk(1))
	for s.Scan() {
		g := s.Group()
		p, err := misplaced(g.Lines[0])
		if err != nil {
			return aoc.None, aoc.AtLine(g.Start, err)
		}
		priorities = append(priorities, p)
	}
	if err := s.Err(); err != nil {
		return aoc.None, err
	}
	log.Debug().Int("rucksacks", len(priorities)).Msg("day03 misplaced items")
	return reduce.Sum(priorities)
}

func misplaced(items string) (int, error) {
	a, b, err := rucksack.Compartments(items)
	if err != nil {
		return 0, err
	}
	r, err := rucksack.Intersect(a, b)
	if err != nil {
		return 0, err
	}
	return rucksack.Priority(r)
}

// PartTwo sums the priority of the badge shared by each group of three.
func PartTwo(input string) (aoc.Answer, error) {
	var priorities []int
	s := lines.NewScanner(strings.NewReader(input), lines.Chunk(GroupSize))
	for s.Scan() {
		g := s.Group()
		p, err := badge(g)
		if err != nil {
			return aoc.None, aoc.AtLine(g.Start, err)
		}
		priorities = append(priorities, p)
	}
	if err := s.Err(); err != nil {
		return aoc.None, err
	}
	log.Debug().Int("groups", len(priorities)).Msg("day03 badges")
	return reduce.Sum(priorities)
}

func badge(g lines.Group) (int, error) {
	for i, l := range g.Lines {
		if err := rucksack.Validate(l); err != nil {
			return 0, aoc.AtLine(g.Start+i, err)
		}
	}
	r, err := rucksack.Intersect(g.Lines...)
	if err != nil {
		return 0, err
	}
	return rucksack.Priority(r)
}
