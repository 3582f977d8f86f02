// Package input locates puzzle text on disk. A day's input lives at
// <dir>/<NN>.txt, NN being the zero-padded day number.
package input

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	DefaultInputs   = "inputs"
	DefaultExamples = "examples"
)

func Path(dir string, day int) string {
	return filepath.Join(dir, fmt.Sprintf("%02d.txt", day))
}

func Read(dir string, day int) (string, error) {
	path := Path(dir, day)
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%s: %w", path, err)
	}
	return string(b), nil
}

// Dir returns a loader over dir suitable for aoc.SolveAll.
func Dir(dir string) func(int) (string, error) {
	return func(day int) (string, error) {
		return Read(dir, day)
	}
}
