// Package blizzard defines core types, options, and sentinel errors for the
// blizzard basin solver.
package blizzard

import (
	"context"
	"errors"
	"fmt"
)

// Day and Title identify this puzzle in the calendar registry.
const (
	Day   = 24
	Title = "blizzard basin"
)

// Sentinel errors for parsing and search.
var (
	// ErrEmptyGrid indicates the input is too small to hold walls, two
	// openings, and any interior at all.
	ErrEmptyGrid = errors.New("blizzard: grid must be at least 3x3")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("blizzard: all rows must have the same length")

	// ErrUnknownTile indicates a character outside the #.^v<> alphabet.
	ErrUnknownTile = errors.New("blizzard: unrecognized tile character")

	// ErrOpening indicates a border row without exactly one opening.
	ErrOpening = errors.New("blizzard: border must contain exactly one opening")

	// ErrWall indicates an interior row not walled on both sides.
	ErrWall = errors.New("blizzard: interior rows must begin and end with a wall")

	// ErrBasinNil is returned if a nil basin pointer is used.
	ErrBasinNil = errors.New("blizzard: basin is nil")

	// ErrOutsideBasin indicates a trip endpoint that is neither an interior
	// cell nor one of the two openings.
	ErrOutsideBasin = errors.New("blizzard: cell outside the basin")

	// ErrNegativeStart indicates a trip starting at a negative minute.
	ErrNegativeStart = errors.New("blizzard: start minute cannot be negative")

	// ErrNoRoute is returned when the bounded state space is exhausted
	// without reaching the destination.
	ErrNoRoute = errors.New("blizzard: destination unreachable")

	// ErrExpansionLimit is returned when a search exceeds the configured
	// expansion cap before reaching the destination.
	ErrExpansionLimit = errors.New("blizzard: expansion limit exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("blizzard: invalid option supplied")
)

// Direction is one of the four blizzard headings.
type Direction uint8

const (
	// Up moves toward smaller Y ('^').
	Up Direction = iota
	// Down moves toward larger Y ('v').
	Down
	// Left moves toward smaller X ('<').
	Left
	// Right moves toward larger X ('>').
	Right
)

// Delta returns the per-minute coordinate change for d.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	default:
		return 1, 0
	}
}

// String returns the input character for d.
func (d Direction) String() string {
	switch d {
	case Up:
		return "^"
	case Down:
		return "v"
	case Left:
		return "<"
	default:
		return ">"
	}
}

// Cell is a coordinate with (0,0) at the top-left interior cell. The start
// opening sits at Y == -1 and the goal opening at Y == Height; every other
// valid cell is interior.
type Cell struct {
	X, Y int
}

// Flurry is one blizzard: its position in the initial snapshot and its
// heading. The list captured at parse time is never mutated.
type Flurry struct {
	Origin Cell
	Dir    Direction
}

// Option configures a search via functional arguments. An invalid Option is
// recorded internally and surfaced as ErrOptionViolation when the search is
// invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a trip search.
type Options struct {
	// Ctx allows cancellation and deadlines. Checked once per minute layer.
	Ctx context.Context

	// MaxExpansions, if > 0, aborts the search with ErrExpansionLimit after
	// that many state expansions. 0 means no explicit cap; the search is
	// still finite because visited states are keyed by (cell, minute mod L).
	MaxExpansions int

	// OnVisit is called for every state expanded, with the actor's cell and
	// the absolute minute.
	OnVisit func(c Cell, minute int)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context, no expansion
// cap, and a no-op visit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		MaxExpansions: 0,
		OnVisit:       func(Cell, int) {},
		err:           nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions caps the number of state expansions.
//
//	n > 0: abort with ErrExpansionLimit after n expansions
//	n == 0: explicit no cap
//	n < 0: invalid option, surfaced as ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnVisit registers a callback to run on every state expansion.
func WithOnVisit(fn func(c Cell, minute int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
