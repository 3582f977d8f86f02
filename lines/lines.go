// Package lines splits puzzle input into groups of lines, either runs of
// non-blank lines or fixed-size chunks.
package lines

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/jrhy/aoc2022"
)

// Group is a run of input lines. Start is the 1-based line number of the
// first line.
type Group struct {
	Start int
	Lines []string
}

type config struct {
	chunked       bool
	chunk         int
	dropRemainder bool
}

type Option func(*config)

// Blank groups contiguous non-blank lines. Blank lines separate groups and
// belong to none. This is the default.
func Blank() Option {
	return func(c *config) { c.chunked = false }
}

// Chunk groups every n consecutive lines. A short final chunk is an error
// unless DropRemainder is also given.
func Chunk(n int) Option {
	return func(c *config) {
		c.chunked = true
		c.chunk = n
	}
}

// DropRemainder discards a short final chunk instead of failing.
func DropRemainder() Option {
	return func(c *config) { c.dropRemainder = true }
}

// Scanner yields groups one at a time, like bufio.Scanner yields lines.
type Scanner struct {
	s     *bufio.Scanner
	cfg   config
	line  int
	group Group
	err   error
	done  bool
}

func NewScanner(r io.Reader, opts ...Option) *Scanner {
	var cfg config
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.chunked && cfg.chunk < 1 {
		panic(fmt.Sprintf("chunk size %d", cfg.chunk))
	}
	return &Scanner{s: bufio.NewScanner(r), cfg: cfg}
}

func (s *Scanner) next() (string, bool) {
	if !s.s.Scan() {
		return "", false
	}
	s.line++
	return strings.TrimSuffix(s.s.Text(), "\r"), true
}

// Scan advances to the next group. It returns false at the end of input or
// on error; Err tells which.
func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}
	s.group = Group{}
	if s.cfg.chunked {
		s.scanChunk()
	} else {
		s.scanBlank()
	}
	if len(s.group.Lines) > 0 {
		return true
	}
	s.done = true
	if err := s.s.Err(); err != nil && s.err == nil {
		s.err = fmt.Errorf("scan: %w", err)
	}
	return false
}

func (s *Scanner) scanBlank() {
	for {
		l, ok := s.next()
		if !ok {
			return
		}
		if l == "" {
			if len(s.group.Lines) > 0 {
				return
			}
			continue
		}
		if len(s.group.Lines) == 0 {
			s.group.Start = s.line
		}
		s.group.Lines = append(s.group.Lines, l)
	}
}

func (s *Scanner) scanChunk() {
	for len(s.group.Lines) < s.cfg.chunk {
		l, ok := s.next()
		if !ok {
			break
		}
		if len(s.group.Lines) == 0 {
			s.group.Start = s.line
		}
		s.group.Lines = append(s.group.Lines, l)
	}
	if n := len(s.group.Lines); n > 0 && n < s.cfg.chunk {
		if !s.cfg.dropRemainder {
			err := aoc.Malformed(strings.Join(s.group.Lines, "\n"),
				"%d trailing lines do not fill a chunk of %d", n, s.cfg.chunk)
			err.Line = s.group.Start
			s.err = err
		}
		s.group = Group{}
	}
}

// Group returns the group found by the last call to Scan.
func (s *Scanner) Group() Group {
	return s.group
}

// Err returns the first error met, or nil at a clean end of input.
func (s *Scanner) Err() error {
	return s.err
}

// Split collects every group of s.
func Split(s string, opts ...Option) ([]Group, error) {
	var res []Group
	sc := NewScanner(strings.NewReader(s), opts...)
	for sc.Scan() {
		res = append(res, sc.Group())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return res, nil
}
