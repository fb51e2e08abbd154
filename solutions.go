package aoc2022

import (
	"errors"
	"fmt"

	"github.com/mattcl/aoc2022/blizzard"
	"github.com/mattcl/aoc2022/calories"
	"github.com/mattcl/aoc2022/cleanup"
	"github.com/mattcl/aoc2022/hillclimb"
	"github.com/mattcl/aoc2022/plumbing"
	"github.com/mattcl/aoc2022/rucksack"
	"github.com/mattcl/aoc2022/supply"
	"github.com/mattcl/aoc2022/treetop"
	"github.com/mattcl/aoc2022/tuning"
)

// ErrUnknownDay is returned by Lookup for a day with no registered solver.
var ErrUnknownDay = errors.New("aoc2022: unknown day")

// Solver computes both answers for one day's raw input.
type Solver func(input string) (plumbing.Solution, error)

// Puzzle is one calendar entry.
type Puzzle struct {
	Day   int
	Title string
	Solve Solver
}

// days lists every implemented puzzle in calendar order.
// registry_marker
var days = []Puzzle{
	{calories.Day, calories.Title, calories.Solve},
	{rucksack.Day, rucksack.Title, rucksack.Solve},
	{cleanup.Day, cleanup.Title, cleanup.Solve},
	{supply.Day, supply.Title, supply.Solve},
	{tuning.Day, tuning.Title, tuning.Solve},
	{treetop.Day, treetop.Title, treetop.Solve},
	{hillclimb.Day, hillclimb.Title, hillclimb.Solve},
	{blizzard.Day, blizzard.Title, blizzard.Solve},
}

// Days returns the implemented puzzles in calendar order. The slice is a
// copy; callers may reorder it freely.
func Days() []Puzzle {
	out := make([]Puzzle, len(days))
	copy(out, days)
	return out
}

// Lookup returns the puzzle for a day number, or ErrUnknownDay.
func Lookup(day int) (Puzzle, error) {
	for _, p := range days {
		if p.Day == day {
			return p, nil
		}
	}
	return Puzzle{}, fmt.Errorf("%w: %d", ErrUnknownDay, day)
}
