// Package reduce folds per-record scores into a single answer.
package reduce

import (
	"github.com/johncgriffin/overflow"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"

	"github.com/jrhy/aoc2022"
)

// Func is a terminal fold. An empty slice yields aoc.None.
type Func func(scores []int) (aoc.Answer, error)

func Sum(scores []int) (aoc.Answer, error) {
	if len(scores) == 0 {
		return aoc.None, nil
	}
	n, err := sum(scores)
	if err != nil {
		return aoc.None, err
	}
	return aoc.Some(n), nil
}

func sum(scores []int) (int, error) {
	var total int
	for _, s := range scores {
		var ok bool
		total, ok = overflow.Add(total, s)
		if !ok {
			return 0, aoc.ErrOverflow
		}
	}
	return total, nil
}

// TopSum sums the k largest scores, or all of them when there are fewer
// than k.
func TopSum(k int) Func {
	return func(scores []int) (aoc.Answer, error) {
		if len(scores) == 0 {
			return aoc.None, nil
		}
		sorted := slices.Clone(scores)
		slices.SortFunc(sorted, descending[int])
		if k < len(sorted) {
			sorted = sorted[:k]
		}
		n, err := sum(sorted)
		if err != nil {
			return aoc.None, err
		}
		return aoc.Some(n), nil
	}
}

func Max(scores []int) (aoc.Answer, error) {
	if len(scores) == 0 {
		return aoc.None, nil
	}
	return aoc.Some(largest(scores)), nil
}

func largest[T constraints.Ordered](xs []T) T {
	m := xs[0]
	for _, x := range xs[1:] {
		if x > m {
			m = x
		}
	}
	return m
}

func descending[T constraints.Ordered](a, b T) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	}
	return 0
}
