// Package rps scores rounds of rock, paper, scissors from a strategy guide.
//
// Each guide line is "<opponent> <code>": the opponent plays A, B or C for
// rock, paper or scissors, and the code X, Y or Z is read either as our shape
// or as the outcome we are asked to reach.
package rps

import "fmt"

type Shape int

const (
	Rock Shape = iota
	Paper
	Scissors
)

var Shapes = [...]Shape{Rock, Paper, Scissors}

func (s Shape) String() string {
	switch s {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// Value is the score for having played s.
func (s Shape) Value() int {
	return int(s) + 1
}

type Outcome int

const (
	Lost Outcome = iota
	Draw
	Won
)

var Outcomes = [...]Outcome{Lost, Draw, Won}

func (o Outcome) String() string {
	switch o {
	case Lost:
		return "lost"
	case Draw:
		return "draw"
	case Won:
		return "won"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Points is the score for reaching o.
func (o Outcome) Points() int {
	return 3 * int(o)
}

// results[me][them] is the outcome for me.
var results = [3][3]Outcome{
	Rock:     {Rock: Draw, Paper: Lost, Scissors: Won},
	Paper:    {Rock: Won, Paper: Draw, Scissors: Lost},
	Scissors: {Rock: Lost, Paper: Won, Scissors: Draw},
}

// Resolve returns the outcome of me playing against them.
func Resolve(me, them Shape) Outcome {
	return results[me][them]
}

// ShapeFor returns the shape that reaches want against them.
func ShapeFor(them Shape, want Outcome) Shape {
	for _, s := range Shapes {
		if results[s][them] == want {
			return s
		}
	}
	panic(fmt.Sprintf("no shape reaches %v against %v", want, them))
}

// Beats returns the shape that s defeats.
func Beats(s Shape) Shape {
	return ShapeFor(s, Lost)
}

// BeatenBy returns the shape that defeats s.
func BeatenBy(s Shape) Shape {
	return ShapeFor(s, Won)
}

func Score(me Shape, o Outcome) int {
	return me.Value() + o.Points()
}
