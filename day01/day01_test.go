package day01_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jrhy/aoc2022"
	"github.com/jrhy/aoc2022/day01"
)

const IntroInput = `1000
2000
3000

4000

5000
6000

7000
8000
9000

10000
`

func TestIntro(t *testing.T) {
	totals, err := day01.Totals(IntroInput)
	require.NoError(t, err)
	require.Equal(t, []int{6000, 4000, 11000, 24000, 10000}, totals)

	a, err := day01.PartOne(IntroInput)
	require.NoError(t, err)
	require.Equal(t, aoc.Some(24000), a)
}

func TestPart2Intro(t *testing.T) {
	a, err := day01.PartTwo(IntroInput)
	require.NoError(t, err)
	require.Equal(t, aoc.Some(45000), a)
}

func TestSmallBlocks(t *testing.T) {
	a, err := day01.PartOne("3\n4\n\n5")
	require.NoError(t, err)
	require.Equal(t, aoc.Some(7), a)
}

func TestEmpty(t *testing.T) {
	for _, f := range []aoc.Solver{day01.PartOne, day01.PartTwo} {
		a, err := f("")
		require.NoError(t, err)
		require.Equal(t, aoc.None, a)
	}
}

func TestBadCount(t *testing.T) {
	_, err := day01.PartOne("1\n\n2\n3x\n")
	require.True(t, errors.Is(err, aoc.ErrUnrecognizedSymbol))
	var ie *aoc.InputError
	require.True(t, errors.As(err, &ie))
	require.Equal(t, 4, ie.Line)
	require.Equal(t, 1, ie.Pos)
	require.Equal(t, 'x', ie.Symbol)
	require.Contains(t, err.Error(), "line 4")
}

func TestNegativeCountRejected(t *testing.T) {
	_, err := day01.PartTwo("-1\n")
	require.True(t, errors.Is(err, aoc.ErrUnrecognizedSymbol))
}

func TestRegistered(t *testing.T) {
	d, ok := aoc.Lookup(1)
	require.True(t, ok)
	require.Equal(t, "Calorie Counting", d.Title)
}
