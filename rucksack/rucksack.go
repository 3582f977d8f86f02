// Package rucksack finds the items that rucksacks share and scores them by
// priority.
package rucksack

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/jrhy/aoc2022"
)

// PriorityTable maps a..z to 1..26 and A..Z to 27..52. It is read-only.
var PriorityTable map[rune]int

func init() {
	PriorityTable = make(map[rune]int, 52)
	p := 1
	for c := 'a'; c <= 'z'; c++ {
		PriorityTable[c] = p
		p++
	}
	for c := 'A'; c <= 'Z'; c++ {
		PriorityTable[c] = p
		p++
	}
}

func Priority(r rune) (int, error) {
	p, ok := PriorityTable[r]
	if !ok {
		return 0, aoc.Unrecognized(string(r), 0, r)
	}
	return p, nil
}

// Validate checks that every byte of items is a letter.
func Validate(items string) error {
	for i := 0; i < len(items); i++ {
		if _, ok := PriorityTable[rune(items[i])]; !ok {
			return aoc.Unrecognized(items, i, rune(items[i]))
		}
	}
	return nil
}

// Compartments splits a rucksack into its two equal halves.
func Compartments(items string) (string, string, error) {
	if len(items) == 0 || len(items)%2 != 0 {
		return "", "", aoc.Malformed(items, "want an even, non-zero number of items, got %d", len(items))
	}
	if err := Validate(items); err != nil {
		return "", "", err
	}
	return items[:len(items)/2], items[len(items)/2:], nil
}

func set(items string) map[rune]struct{} {
	s := make(map[rune]struct{}, len(items))
	for _, r := range items {
		s[r] = struct{}{}
	}
	return s
}

// Intersect returns the one item present in every group.
func Intersect(groups ...string) (rune, error) {
	if len(groups) < 2 {
		return 0, fmt.Errorf("intersect needs at least 2 groups, got %d", len(groups))
	}
	common := set(groups[0])
	for _, g := range groups[1:] {
		next := set(g)
		for r := range common {
			if _, ok := next[r]; !ok {
				delete(common, r)
			}
		}
	}
	if len(common) != 1 {
		return 0, &aoc.InputError{
			Pos:  -1,
			Text: strings.Join(groups, "\n"),
			Err:  fmt.Errorf("%w: %d common items %q", aoc.ErrAmbiguousOrMissingIntersection, len(common), string(sortedKeys(common))),
		}
	}
	return maps.Keys(common)[0], nil
}

func sortedKeys(s map[rune]struct{}) []rune {
	keys := maps.Keys(s)
	slices.Sort(keys)
	return keys
}
