// Package cleanup solves day 4: each line pairs two section-ID ranges;
// part one counts pairs where one range fully contains the other, part two
// counts pairs that overlap at all.
package cleanup

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mattcl/aoc2022/plumbing"
)

// Day and Title identify this puzzle in the calendar registry.
const (
	Day   = 4
	Title = "camp cleanup"
)

// ErrBadPair indicates a line that is not two dash-separated ranges.
var ErrBadPair = errors.New("cleanup: invalid assignment pair")

// assignment is one inclusive section range.
type assignment struct {
	start, end int
}

func parseAssignment(s string) (assignment, error) {
	lo, hi, ok := strings.Cut(s, "-")
	if !ok {
		return assignment{}, fmt.Errorf("%w: %q", ErrBadPair, s)
	}
	start, err := strconv.Atoi(lo)
	if err != nil {
		return assignment{}, fmt.Errorf("%w: %q", ErrBadPair, s)
	}
	end, err := strconv.Atoi(hi)
	if err != nil {
		return assignment{}, fmt.Errorf("%w: %q", ErrBadPair, s)
	}
	return assignment{start: start, end: end}, nil
}

// pair is one line: the two elves' assignments.
type pair struct {
	left, right assignment
}

func (p pair) completeOverlap() bool {
	return (p.left.start >= p.right.start && p.left.end <= p.right.end) ||
		(p.right.start >= p.left.start && p.right.end <= p.left.end)
}

func (p pair) partialOverlap() bool {
	return p.left.end >= p.right.start && p.right.end >= p.left.start
}

// Roster is the parsed input: one assignment pair per line.
type Roster struct {
	pairs []pair
}

// New parses one comma-separated pair of ranges per line.
func New(input string) (*Roster, error) {
	lines := plumbing.Lines(input)
	r := &Roster{pairs: make([]pair, 0, len(lines))}
	for _, line := range lines {
		l, rr, ok := strings.Cut(line, ",")
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrBadPair, line)
		}
		left, err := parseAssignment(l)
		if err != nil {
			return nil, err
		}
		right, err := parseAssignment(rr)
		if err != nil {
			return nil, err
		}
		r.pairs = append(r.pairs, pair{left: left, right: right})
	}
	return r, nil
}

// PartOne counts pairs where one range fully contains the other.
func (r *Roster) PartOne() (int, error) {
	count := 0
	for _, p := range r.pairs {
		if p.completeOverlap() {
			count++
		}
	}
	return count, nil
}

// PartTwo counts pairs that overlap in at least one section.
func (r *Roster) PartTwo() (int, error) {
	count := 0
	for _, p := range r.pairs {
		if p.partialOverlap() {
			count++
		}
	}
	return count, nil
}

// Solve parses input and answers both parts.
func Solve(input string) (plumbing.Solution, error) {
	r, err := New(input)
	if err != nil {
		return plumbing.Solution{}, err
	}
	one, err := r.PartOne()
	if err != nil {
		return plumbing.Solution{}, err
	}
	two, err := r.PartTwo()
	if err != nil {
		return plumbing.Solution{}, err
	}
	return plumbing.NewSolution(one, two), nil
}
