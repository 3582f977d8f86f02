package aoc

import (
	"fmt"
	"sort"
	"sync"
)

// Solver computes one part of a day from the raw puzzle text.
type Solver func(input string) (Answer, error)

type Day struct {
	Number int
	Title  string
	Parts  [2]Solver
}

// Part returns the solver for part 1 or 2.
func (d Day) Part(p int) (Solver, error) {
	if p < 1 || p > len(d.Parts) || d.Parts[p-1] == nil {
		return nil, fmt.Errorf("day %d has no part %d", d.Number, p)
	}
	return d.Parts[p-1], nil
}

var (
	registryMu sync.Mutex
	registry   = map[int]Day{}
)

// Register adds a day, normally from the day package's init. Registering the
// same day twice panics.
func Register(d Day) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if d.Number < 1 || d.Number > 25 {
		panic(fmt.Sprintf("day %d out of range", d.Number))
	}
	if _, ok := registry[d.Number]; ok {
		panic(fmt.Sprintf("day %d registered twice", d.Number))
	}
	registry[d.Number] = d
}

func Lookup(n int) (Day, bool) {
	registryMu.Lock()
	defer registryMu.Unlock()
	d, ok := registry[n]
	return d, ok
}

// Days returns the registered days in order.
func Days() []Day {
	registryMu.Lock()
	defer registryMu.Unlock()
	res := make([]Day, 0, len(registry))
	for _, d := range registry {
		res = append(res, d)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].Number < res[j].Number })
	return res
}
