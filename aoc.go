// Package aoc holds the pieces shared by the daily puzzle solutions: the
// optional Answer they produce, the input error taxonomy, and a registry that
// lets the CLI find and time every day.
package aoc

import "strconv"

// Answer is the result of one puzzle part. Valid is false when the input held
// nothing to reduce.
type Answer struct {
	Value int
	Valid bool
}

// None is the absent answer.
var None = Answer{}

func Some(n int) Answer {
	return Answer{Value: n, Valid: true}
}

func (a Answer) String() string {
	if !a.Valid {
		return "none"
	}
	return strconv.Itoa(a.Value)
}
