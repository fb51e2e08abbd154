// Package treetop solves day 8: a grid of tree heights. Part one counts
// trees visible from outside the grid, part two finds the best scenic score
// (product of viewing distances in the four directions).
package treetop

import (
	"errors"
	"fmt"

	"github.com/mattcl/aoc2022/plumbing"
)

// Day and Title identify this puzzle in the calendar registry.
const (
	Day   = 8
	Title = "treetop tree house"
)

var (
	// ErrEmptyGrid indicates an input with no rows.
	ErrEmptyGrid = errors.New("treetop: grid must have at least one row")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("treetop: all rows must have the same length")

	// ErrBadHeight indicates a non-digit tree height.
	ErrBadHeight = errors.New("treetop: invalid tree height")
)

// Forest is the parsed height grid.
type Forest struct {
	grid          [][]uint8
	width, height int
}

// New parses one row of single-digit heights per line.
func New(input string) (*Forest, error) {
	lines := plumbing.Lines(input)
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	f := &Forest{
		grid:   make([][]uint8, len(lines)),
		width:  len(lines[0]),
		height: len(lines),
	}
	for y, line := range lines {
		if len(line) != f.width {
			return nil, fmt.Errorf("%w: row %d", ErrNonRectangular, y)
		}
		row := make([]uint8, len(line))
		for x := 0; x < len(line); x++ {
			if line[x] < '0' || line[x] > '9' {
				return nil, fmt.Errorf("%w: %q at row %d col %d", ErrBadHeight, line[x], y, x)
			}
			row[x] = line[x] - '0'
		}
		f.grid[y] = row
	}
	return f, nil
}

// survey walks outward from (x, y) in all four directions, returning the
// scenic score and whether any direction reaches the edge unblocked.
func (f *Forest) survey(x, y int) (score int, visible bool) {
	h := f.grid[y][x]
	dirs := [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}
	score = 1
	for _, d := range dirs {
		dist := 0
		blocked := false
		for cx, cy := x+d[0], y+d[1]; cx >= 0 && cx < f.width && cy >= 0 && cy < f.height; cx, cy = cx+d[0], cy+d[1] {
			dist++
			if f.grid[cy][cx] >= h {
				blocked = true
				break
			}
		}
		if !blocked {
			visible = true
		}
		score *= dist
	}
	return score, visible
}

// PartOne counts trees visible from outside the grid.
func (f *Forest) PartOne() (int, error) {
	count := 0
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			if _, visible := f.survey(x, y); visible {
				count++
			}
		}
	}
	return count, nil
}

// PartTwo returns the best scenic score in the forest.
func (f *Forest) PartTwo() (int, error) {
	best := 0
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			if score, _ := f.survey(x, y); score > best {
				best = score
			}
		}
	}
	return best, nil
}

// Solve parses input and answers both parts.
func Solve(input string) (plumbing.Solution, error) {
	f, err := New(input)
	if err != nil {
		return plumbing.Solution{}, err
	}
	one, err := f.PartOne()
	if err != nil {
		return plumbing.Solution{}, err
	}
	two, err := f.PartTwo()
	if err != nil {
		return plumbing.Solution{}, err
	}
	return plumbing.NewSolution(one, two), nil
}
