package blizzard

import (
	"fmt"
	"sync"

	"github.com/mattcl/aoc2022/plumbing"
)

// Basin is an immutable parsed valley: the interior dimensions, the two wall
// openings, and the initial blizzard list. Derived occupancy snapshots are
// cached per phase; everything else is fixed for the lifetime of the value.
type Basin struct {
	// Width and Height are the interior dimensions, excluding the wall ring.
	Width, Height int

	start, goal Cell
	flurries    []Flurry
	cycle       int

	// phase cache: phases[t mod cycle] is the row-major interior occupancy
	// at that phase, filled lazily under mu.
	mu     sync.Mutex
	phases [][]bool
}

// Parse builds a Basin from the raw puzzle text. The grid must be a wall
// ring around a rectangular interior, with exactly one opening in the top
// row and one in the bottom row.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrOpening, ErrWall, or
// ErrUnknownTile on malformed input. Complexity: O(rows x cols).
func Parse(input string) (*Basin, error) {
	lines := plumbing.Lines(input)
	if len(lines) < 3 || len(lines[0]) < 3 {
		return nil, ErrEmptyGrid
	}
	width := len(lines[0])
	for i, line := range lines {
		if len(line) != width {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonRectangular, i, len(line), width)
		}
	}

	b := &Basin{
		Width:  width - 2,
		Height: len(lines) - 2,
	}
	b.cycle = lcm(b.Width, b.Height)
	b.phases = make([][]bool, b.cycle)

	startX, err := openingColumn(lines[0], 0)
	if err != nil {
		return nil, err
	}
	goalX, err := openingColumn(lines[len(lines)-1], len(lines)-1)
	if err != nil {
		return nil, err
	}
	b.start = Cell{X: startX - 1, Y: -1}
	b.goal = Cell{X: goalX - 1, Y: b.Height}

	for row, line := range lines[1 : len(lines)-1] {
		if line[0] != '#' || line[width-1] != '#' {
			return nil, fmt.Errorf("%w: row %d", ErrWall, row+1)
		}
		for col := 1; col < width-1; col++ {
			cell := Cell{X: col - 1, Y: row}
			switch line[col] {
			case '.':
			case '^':
				b.flurries = append(b.flurries, Flurry{Origin: cell, Dir: Up})
			case 'v':
				b.flurries = append(b.flurries, Flurry{Origin: cell, Dir: Down})
			case '<':
				b.flurries = append(b.flurries, Flurry{Origin: cell, Dir: Left})
			case '>':
				b.flurries = append(b.flurries, Flurry{Origin: cell, Dir: Right})
			default:
				return nil, fmt.Errorf("%w: %q at row %d col %d", ErrUnknownTile, line[col], row+1, col)
			}
		}
	}

	return b, nil
}

// openingColumn validates a border row (all walls except exactly one '.')
// and returns the opening's column in raw grid coordinates.
func openingColumn(line string, row int) (int, error) {
	open := -1
	for col := 0; col < len(line); col++ {
		switch line[col] {
		case '#':
		case '.':
			if open >= 0 {
				return 0, fmt.Errorf("%w: row %d has openings at cols %d and %d", ErrOpening, row, open, col)
			}
			open = col
		default:
			return 0, fmt.Errorf("%w: %q at row %d col %d", ErrUnknownTile, line[col], row, col)
		}
	}
	if open < 0 {
		return 0, fmt.Errorf("%w: row %d has no opening", ErrOpening, row)
	}
	return open, nil
}

// Start returns the opening above the interior (Y == -1).
func (b *Basin) Start() Cell { return b.start }

// Goal returns the opening below the interior (Y == Height).
func (b *Basin) Goal() Cell { return b.goal }

// Flurries returns the number of blizzards captured at parse time.
func (b *Basin) Flurries() int { return len(b.flurries) }

// CycleLength returns L = lcm(Width, Height), the period after which the
// full blizzard configuration repeats exactly: horizontal blizzards ride a
// ring of size Width, vertical ones a ring of size Height, and the combined
// state repeats at the least common multiple of the two.
func (b *Basin) CycleLength() int { return b.cycle }

// inInterior reports whether c lies strictly inside the wall ring.
func (b *Basin) inInterior(c Cell) bool {
	return c.X >= 0 && c.X < b.Width && c.Y >= 0 && c.Y < b.Height
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int {
	return a / gcd(a, b) * b
}
