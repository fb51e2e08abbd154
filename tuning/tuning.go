// Package tuning solves day 6: find the end of the first run of 4 (part
// one) or 14 (part two) pairwise-distinct characters in the datastream.
package tuning

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattcl/aoc2022/plumbing"
)

// Day and Title identify this puzzle in the calendar registry.
const (
	Day   = 6
	Title = "tuning trouble"
)

// ErrNoMarker indicates the datastream contains no qualifying window.
var ErrNoMarker = errors.New("tuning: no marker found")

// Datastream is the parsed input: one letter mask per received character.
type Datastream struct {
	message []uint64
}

// New converts the single input line into letter masks.
func New(input string) (*Datastream, error) {
	s := strings.TrimSpace(input)
	d := &Datastream{message: make([]uint64, len(s))}
	for i := 0; i < len(s); i++ {
		m, err := plumbing.CharMask(s[i])
		if err != nil {
			return nil, err
		}
		d.message[i] = m
	}
	return d, nil
}

// FindMarker returns the 1-based position just past the first window of
// size pairwise-distinct characters. On a repeat inside the window the scan
// skips directly past the earlier duplicate rather than sliding by one.
func (d *Datastream) FindMarker(size int) (int, error) {
	idx := size - 1
outer:
	for idx < len(d.message) {
		seen := d.message[idx]
		for i := 1; i < size; i++ {
			cur := idx - i
			v := d.message[cur]
			if seen&v > 0 {
				idx = cur + size
				continue outer
			}
			seen |= v
		}
		return idx + 1, nil
	}
	return 0, fmt.Errorf("%w: window %d", ErrNoMarker, size)
}

// PartOne finds the start-of-packet marker (4 distinct).
func (d *Datastream) PartOne() (int, error) {
	return d.FindMarker(4)
}

// PartTwo finds the start-of-message marker (14 distinct).
func (d *Datastream) PartTwo() (int, error) {
	return d.FindMarker(14)
}

// Solve parses input and answers both parts.
func Solve(input string) (plumbing.Solution, error) {
	d, err := New(input)
	if err != nil {
		return plumbing.Solution{}, err
	}
	one, err := d.PartOne()
	if err != nil {
		return plumbing.Solution{}, err
	}
	two, err := d.PartTwo()
	if err != nil {
		return plumbing.Solution{}, err
	}
	return plumbing.NewSolution(one, two), nil
}
