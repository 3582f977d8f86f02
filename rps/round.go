package rps

import (
	"fmt"

	"github.com/jrhy/aoc2022"
)

const lineLen = 3

// Code is the undecided second column of a guide line.
type Code byte

var opponentCodes = map[byte]Shape{
	'A': Rock,
	'B': Paper,
	'C': Scissors,
}

var shapeCodes = map[Code]Shape{
	'X': Rock,
	'Y': Paper,
	'Z': Scissors,
}

var outcomeCodes = map[Code]Outcome{
	'X': Lost,
	'Y': Draw,
	'Z': Won,
}

// Shape reads c as the shape to play.
func (c Code) Shape() Shape {
	return shapeCodes[c]
}

// Outcome reads c as the outcome to reach.
func (c Code) Outcome() Outcome {
	return outcomeCodes[c]
}

func (c Code) String() string {
	return string(rune(c))
}

type Round struct {
	Opponent Shape
	Code     Code
}

// ParseRound decodes a line of the form "A X".
func ParseRound(line string) (Round, error) {
	if len(line) != lineLen {
		return Round{}, aoc.Malformed(line, "want %d bytes, got %d", lineLen, len(line))
	}
	if line[1] != ' ' {
		err := aoc.Malformed(line, "want separator ' '")
		err.Pos, err.Symbol = 1, rune(line[1])
		return Round{}, err
	}
	opp, ok := opponentCodes[line[0]]
	if !ok {
		return Round{}, aoc.Unrecognized(line, 0, rune(line[0]))
	}
	c := Code(line[2])
	if _, ok := shapeCodes[c]; !ok {
		return Round{}, aoc.Unrecognized(line, 2, rune(line[2]))
	}
	return Round{Opponent: opp, Code: c}, nil
}

func (r Round) String() string {
	return fmt.Sprintf("%v %v", r.Opponent, r.Code)
}
