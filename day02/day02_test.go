package day02_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jrhy/aoc2022"
	"github.com/jrhy/aoc2022/day02"
	"github.com/jrhy/aoc2022/rps"
)

const IntroInput = `A Y
B X
C Z
`

func TestIntro(t *testing.T) {
	rounds, err := day02.Rounds(IntroInput)
	require.NoError(t, err)
	require.Equal(t, []rps.Round{
		{Opponent: rps.Rock, Code: 'Y'},
		{Opponent: rps.Paper, Code: 'X'},
		{Opponent: rps.Scissors, Code: 'Z'},
	}, rounds)

	a, err := day02.PartOne(IntroInput)
	require.NoError(t, err)
	require.Equal(t, aoc.Some(15), a)
}

func TestPart2Intro(t *testing.T) {
	a, err := day02.PartTwo(IntroInput)
	require.NoError(t, err)
	require.Equal(t, aoc.Some(12), a)
}

func TestPerLine(t *testing.T) {
	cases := []struct {
		line     string
		one, two int
	}{
		{"A X", 4, 3},
		{"A Y", 8, 4},
		{"A Z", 3, 8},
		{"B X", 1, 1},
		{"B Y", 5, 5},
		{"B Z", 9, 9},
		{"C X", 7, 2},
		{"C Y", 2, 6},
		{"C Z", 6, 7},
	}
	for _, c := range cases {
		a, err := day02.PartOne(c.line)
		require.NoError(t, err)
		require.Equal(t, aoc.Some(c.one), a, c.line)
		a, err = day02.PartTwo(c.line)
		require.NoError(t, err)
		require.Equal(t, aoc.Some(c.two), a, c.line)
	}
}

func TestEmpty(t *testing.T) {
	for _, f := range []aoc.Solver{day02.PartOne, day02.PartTwo} {
		a, err := f("")
		require.NoError(t, err)
		require.False(t, a.Valid)
	}
}

func TestBadLine(t *testing.T) {
	_, err := day02.PartOne("A Y\nB Q\n")
	require.True(t, errors.Is(err, aoc.ErrUnrecognizedSymbol))
	var ie *aoc.InputError
	require.True(t, errors.As(err, &ie))
	require.Equal(t, 2, ie.Line)
	require.Equal(t, 'Q', ie.Symbol)

	_, err = day02.PartTwo("A  Y\n")
	require.True(t, errors.Is(err, aoc.ErrMalformedInput))
}
