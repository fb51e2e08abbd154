// Package hillclimb solves day 12: fewest steps across a heightmap where
// each step may climb at most one unit. Part one starts at S, part two at
// the best of all lowest-elevation squares; both end at E.
//
// A single breadth-first search from E over the reversed climb relation
// answers both parts: it yields the distance from every square to E.
package hillclimb

import (
	"errors"
	"fmt"

	"github.com/mattcl/aoc2022/plumbing"
)

// Day and Title identify this puzzle in the calendar registry.
const (
	Day   = 12
	Title = "hill climbing algorithm"
)

var (
	// ErrEmptyGrid indicates an input with no rows.
	ErrEmptyGrid = errors.New("hillclimb: grid must have at least one row")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("hillclimb: all rows must have the same length")

	// ErrBadSquare indicates a character outside [a-z], S, or E.
	ErrBadSquare = errors.New("hillclimb: invalid square")

	// ErrMarkers indicates a grid without exactly one S and one E.
	ErrMarkers = errors.New("hillclimb: grid must contain exactly one S and one E")

	// ErrNoRoute indicates the summit cannot be reached.
	ErrNoRoute = errors.New("hillclimb: no route to the summit")
)

const unreached = -1

// Heightmap is the parsed grid plus the distance-to-summit field computed
// once at construction.
type Heightmap struct {
	heights       [][]uint8
	width, height int
	start, end    plumbing.Point

	// dist[y][x] is the step count from (x, y) to E, or unreached.
	dist [][]int
}

// New parses the heightmap and runs the reverse search from E.
func New(input string) (*Heightmap, error) {
	lines := plumbing.Lines(input)
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h := &Heightmap{
		heights: make([][]uint8, len(lines)),
		width:   len(lines[0]),
		height:  len(lines),
		start:   plumbing.Point{X: -1, Y: -1},
		end:     plumbing.Point{X: -1, Y: -1},
	}
	for y, line := range lines {
		if len(line) != h.width {
			return nil, fmt.Errorf("%w: row %d", ErrNonRectangular, y)
		}
		row := make([]uint8, len(line))
		for x := 0; x < len(line); x++ {
			switch ch := line[x]; {
			case ch >= 'a' && ch <= 'z':
				row[x] = ch - 'a'
			case ch == 'S':
				if h.start.X >= 0 {
					return nil, fmt.Errorf("%w: second S at row %d col %d", ErrMarkers, y, x)
				}
				h.start = plumbing.Point{X: x, Y: y}
				row[x] = 0
			case ch == 'E':
				if h.end.X >= 0 {
					return nil, fmt.Errorf("%w: second E at row %d col %d", ErrMarkers, y, x)
				}
				h.end = plumbing.Point{X: x, Y: y}
				row[x] = 25
			default:
				return nil, fmt.Errorf("%w: %q at row %d col %d", ErrBadSquare, ch, y, x)
			}
		}
		h.heights[y] = row
	}
	if h.start.X < 0 || h.end.X < 0 {
		return nil, fmt.Errorf("%w: missing marker", ErrMarkers)
	}

	h.descend()
	return h, nil
}

// descend floods distances outward from E. In reverse, the actor may step
// from c to a neighbor n when the forward climb n -> c is legal, i.e. the
// height drops by at most one.
func (h *Heightmap) descend() {
	h.dist = make([][]int, h.height)
	for y := range h.dist {
		h.dist[y] = make([]int, h.width)
		for x := range h.dist[y] {
			h.dist[y][x] = unreached
		}
	}

	offsets := [4]plumbing.Point{{X: 0, Y: -1}, {X: 0, Y: 1}, {X: -1, Y: 0}, {X: 1, Y: 0}}
	frontier := []plumbing.Point{h.end}
	h.dist[h.end.Y][h.end.X] = 0

	for len(frontier) > 0 {
		var next []plumbing.Point
		for _, c := range frontier {
			for _, d := range offsets {
				n := c.Add(d)
				if n.X < 0 || n.X >= h.width || n.Y < 0 || n.Y >= h.height {
					continue
				}
				if h.dist[n.Y][n.X] != unreached {
					continue
				}
				if int(h.heights[c.Y][c.X])-int(h.heights[n.Y][n.X]) > 1 {
					continue
				}
				h.dist[n.Y][n.X] = h.dist[c.Y][c.X] + 1
				next = append(next, n)
			}
		}
		frontier = next
	}
}

// PartOne returns the fewest steps from S to E.
func (h *Heightmap) PartOne() (int, error) {
	d := h.dist[h.start.Y][h.start.X]
	if d == unreached {
		return 0, fmt.Errorf("%w: from S", ErrNoRoute)
	}
	return d, nil
}

// PartTwo returns the fewest steps to E from any lowest-elevation square.
func (h *Heightmap) PartTwo() (int, error) {
	best := unreached
	for y := 0; y < h.height; y++ {
		for x := 0; x < h.width; x++ {
			if h.heights[y][x] != 0 {
				continue
			}
			if d := h.dist[y][x]; d != unreached && (best == unreached || d < best) {
				best = d
			}
		}
	}
	if best == unreached {
		return 0, fmt.Errorf("%w: from any lowest square", ErrNoRoute)
	}
	return best, nil
}

// Solve parses input and answers both parts.
func Solve(input string) (plumbing.Solution, error) {
	h, err := New(input)
	if err != nil {
		return plumbing.Solution{}, err
	}
	one, err := h.PartOne()
	if err != nil {
		return plumbing.Solution{}, err
	}
	two, err := h.PartTwo()
	if err != nil {
		return plumbing.Solution{}, err
	}
	return plumbing.NewSolution(one, two), nil
}
