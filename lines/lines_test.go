package lines_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/jrhy/aoc2022"
	"github.com/jrhy/aoc2022/lines"
)

func texts(gs []lines.Group) [][]string {
	var res [][]string
	for _, g := range gs {
		res = append(res, g.Lines)
	}
	return res
}

func TestBlank(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  [][]string
	}{
		{"intro", "3\n4\n\n5", [][]string{{"3", "4"}, {"5"}}},
		{"empty", "", nil},
		{"only blanks", "\n\n\n", nil},
		{"leading and trailing blanks", "\n\n1\n2\n\n\n\n3\n\n", [][]string{{"1", "2"}, {"3"}}},
		{"crlf", "1\r\n2\r\n\r\n3\r\n", [][]string{{"1", "2"}, {"3"}}},
		{"single", "42", [][]string{{"42"}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			gs, err := lines.Split(c.input)
			require.NoError(t, err)
			if diff := cmp.Diff(c.want, texts(gs)); diff != "" {
				t.Errorf("groups mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBlankStart(t *testing.T) {
	gs, err := lines.Split("\n1\n2\n\n3\n", lines.Blank())
	require.NoError(t, err)
	require.Len(t, gs, 2)
	require.Equal(t, 2, gs[0].Start)
	require.Equal(t, 5, gs[1].Start)
}

func TestChunk(t *testing.T) {
	gs, err := lines.Split("a\nb\nc\nd\ne\nf\n", lines.Chunk(3))
	require.NoError(t, err)
	if diff := cmp.Diff([][]string{{"a", "b", "c"}, {"d", "e", "f"}}, texts(gs)); diff != "" {
		t.Errorf("groups mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, 1, gs[0].Start)
	require.Equal(t, 4, gs[1].Start)
}

func TestChunkRemainderFails(t *testing.T) {
	_, err := lines.Split("a\nb\nc\nd\n", lines.Chunk(3))
	require.Error(t, err)
	require.True(t, errors.Is(err, aoc.ErrMalformedInput))
	var ie *aoc.InputError
	require.True(t, errors.As(err, &ie))
	require.Equal(t, 4, ie.Line)
	require.Contains(t, err.Error(), "chunk of 3")
}

func TestChunkDropRemainder(t *testing.T) {
	gs, err := lines.Split("a\nb\nc\nd\n", lines.Chunk(3), lines.DropRemainder())
	require.NoError(t, err)
	require.Equal(t, [][]string{{"a", "b", "c"}}, texts(gs))
}

func TestChunkEmpty(t *testing.T) {
	gs, err := lines.Split("", lines.Chunk(3))
	require.NoError(t, err)
	require.Empty(t, gs)
}

func TestChunkSizeMustBePositive(t *testing.T) {
	require.Panics(t, func() { lines.NewScanner(strings.NewReader(""), lines.Chunk(0)) })
}

func TestScannerIsSinglePass(t *testing.T) {
	s := lines.NewScanner(strings.NewReader("1\n\n2\n"))
	var n int
	for s.Scan() {
		n++
	}
	require.NoError(t, s.Err())
	require.Equal(t, 2, n)
	require.False(t, s.Scan())
}

func TestPartition(t *testing.T) {
	input := "1\n2\n\n3\n\n\n4\n5\n6\n"
	gs, err := lines.Split(input)
	require.NoError(t, err)
	var got []string
	for _, g := range gs {
		got = append(got, g.Lines...)
	}
	var want []string
	for _, l := range strings.Split(input, "\n") {
		if l != "" {
			want = append(want, l)
		}
	}
	require.Equal(t, want, got)
}
