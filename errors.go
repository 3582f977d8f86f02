package aoc

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedInput is a shape violation: wrong line length, a missing
	// separator, or a chunk remainder.
	ErrMalformedInput = errors.New("malformed input")
	// ErrUnrecognizedSymbol is a token outside its closed set.
	ErrUnrecognizedSymbol = errors.New("unrecognized symbol")
	// ErrAmbiguousOrMissingIntersection means a set intersection did not
	// leave exactly one element.
	ErrAmbiguousOrMissingIntersection = errors.New("ambiguous or missing intersection")
	ErrOverflow                       = errors.New("integer overflow")
)

// InputError locates a failure in the puzzle input. Line is 1-based, Pos is a
// 0-based byte offset into Text or -1.
type InputError struct {
	Line   int
	Pos    int
	Text   string
	Symbol rune
	Err    error
}

func (e *InputError) Error() string {
	var where string
	if e.Line > 0 {
		where = fmt.Sprintf("line %d: ", e.Line)
	}
	switch {
	case e.Pos >= 0 && e.Symbol != 0:
		return fmt.Sprintf("%s%v %q at %d in %q", where, e.Err, e.Symbol, e.Pos, e.Text)
	case e.Pos >= 0:
		return fmt.Sprintf("%s%v at %d in %q", where, e.Err, e.Pos, e.Text)
	default:
		return fmt.Sprintf("%s%v: %q", where, e.Err, e.Text)
	}
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// Malformed reports a shape problem with a whole line.
func Malformed(text, format string, args ...interface{}) *InputError {
	return &InputError{
		Pos:  -1,
		Text: text,
		Err:  fmt.Errorf("%w: %s", ErrMalformedInput, fmt.Sprintf(format, args...)),
	}
}

// Unrecognized reports symbol r at byte pos of text.
func Unrecognized(text string, pos int, r rune) *InputError {
	return &InputError{
		Pos:    pos,
		Text:   text,
		Symbol: r,
		Err:    ErrUnrecognizedSymbol,
	}
}

// AtLine sets the line number on err if it is an *InputError without one.
// Other errors are wrapped with the line number.
func AtLine(line int, err error) error {
	if err == nil {
		return nil
	}
	var ie *InputError
	if errors.As(err, &ie) {
		if ie.Line == 0 {
			ie.Line = line
		}
		return err
	}
	return fmt.Errorf("line %d: %w", line, err)
}
