// Package calories solves day 1: each elf carries a blank-line-separated
// block of calorie counts; part one wants the largest total, part two the
// sum of the top three.
package calories

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/mattcl/aoc2022/plumbing"
)

// Day and Title identify this puzzle in the calendar registry.
const (
	Day   = 1
	Title = "calorie counting"
)

var (
	// ErrBadCalorie indicates a non-numeric calorie entry.
	ErrBadCalorie = errors.New("calories: invalid calorie value")

	// ErrNoInventories indicates an input with no inventories at all.
	ErrNoInventories = errors.New("calories: input contains no inventories")
)

// Expedition is the parsed input: one calorie total per elf.
type Expedition struct {
	totals []int
}

// New parses the blank-line-separated inventory blocks.
func New(input string) (*Expedition, error) {
	blocks := plumbing.Blocks(input)
	if len(blocks) == 0 {
		return nil, ErrNoInventories
	}
	e := &Expedition{totals: make([]int, 0, len(blocks))}
	for _, block := range blocks {
		total := 0
		for _, line := range block {
			v, err := strconv.Atoi(line)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", ErrBadCalorie, line)
			}
			total += v
		}
		e.totals = append(e.totals, total)
	}
	return e, nil
}

// PartOne returns the largest inventory total.
func (e *Expedition) PartOne() (int, error) {
	max := 0
	for _, t := range e.totals {
		if t > max {
			max = t
		}
	}
	return max, nil
}

// PartTwo returns the sum of the three largest totals (or of all of them if
// fewer than three elves showed up).
func (e *Expedition) PartTwo() (int, error) {
	sorted := make([]int, len(e.totals))
	copy(sorted, e.totals)
	sort.Sort(sort.Reverse(sort.IntSlice(sorted)))

	sum := 0
	for i := 0; i < len(sorted) && i < 3; i++ {
		sum += sorted[i]
	}
	return sum, nil
}

// Solve parses input and answers both parts.
func Solve(input string) (plumbing.Solution, error) {
	e, err := New(input)
	if err != nil {
		return plumbing.Solution{}, err
	}
	one, err := e.PartOne()
	if err != nil {
		return plumbing.Solution{}, err
	}
	two, err := e.PartTwo()
	if err != nil {
		return plumbing.Solution{}, err
	}
	return plumbing.NewSolution(one, two), nil
}
