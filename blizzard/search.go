package blizzard

import (
	"fmt"

	"github.com/mattcl/aoc2022/plumbing"
)

// moves enumerates the actor's choices each minute: wait, up, down, left,
// right. Uniform cost of one minute each.
var moves = [5][2]int{{0, 0}, {0, -1}, {0, 1}, {-1, 0}, {1, 0}}

// walker encapsulates mutable state for one leg's search.
type walker struct {
	basin   *Basin
	opts    Options
	to      Cell
	startAt int

	// frontier holds every distinct position reachable at the current
	// elapsed minute; BFS layers expand in lockstep, so the first layer
	// containing the destination is minimal.
	frontier []Cell
	elapsed  int

	// visited is a fixed-size boolean cube keyed by (x, y, minute mod L).
	// Occupancy repeats with period L, so collapsing time to its phase keeps
	// the state space finite: at most Width x (Height+2) x L states.
	visited    []bool
	expansions int
}

// Trip computes the fewest minutes needed to travel from one cell to
// another when the journey begins at absolute minute startAt. Each minute
// the actor steps orthogonally or waits, never sharing a cell with a
// blizzard and never leaving the interior except at the two openings.
//
// Returns the leg duration in minutes, ErrNoRoute if the destination cannot
// be reached, ErrExpansionLimit if a configured cap is exceeded, or a
// context error on cancellation.
// Complexity: O(W*H*L) states worst case, O(W*H*L) memory for the visited cube.
func (b *Basin) Trip(startAt int, from, to Cell, opts ...Option) (int, error) {
	if b == nil {
		return 0, ErrBasinNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, o.err
	}
	if startAt < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeStart, startAt)
	}
	for _, c := range [2]Cell{from, to} {
		if !b.inInterior(c) && c != b.start && c != b.goal {
			return 0, fmt.Errorf("%w: (%d,%d)", ErrOutsideBasin, c.X, c.Y)
		}
	}

	w := &walker{
		basin:    b,
		opts:     o,
		to:       to,
		startAt:  startAt,
		frontier: []Cell{from},
		visited:  make([]bool, b.Width*(b.Height+2)*b.cycle),
	}
	w.mark(from, startAt)

	return w.run()
}

// run expands layer after layer until the destination appears, the frontier
// empties, or the search is aborted.
func (w *walker) run() (int, error) {
	for len(w.frontier) > 0 {
		// cancellation check once per minute layer
		select {
		case <-w.opts.Ctx.Done():
			return 0, w.opts.Ctx.Err()
		default:
		}

		next, found, err := w.expandLayer()
		if err != nil {
			return 0, err
		}
		if found {
			return w.elapsed, nil
		}
		w.frontier = next
		w.elapsed++
	}
	return 0, fmt.Errorf("%w: from minute %d", ErrNoRoute, w.startAt)
}

// expandLayer expands every state at the current elapsed minute, reporting
// found=true if one of them is the destination. Layers expand in lockstep,
// so the first layer containing the destination gives the minimal arrival.
// Successors are deduplicated through the visited cube.
func (w *walker) expandLayer() (next []Cell, found bool, err error) {
	minute := w.startAt + w.elapsed
	for _, c := range w.frontier {
		w.expansions++
		if w.opts.MaxExpansions > 0 && w.expansions > w.opts.MaxExpansions {
			return nil, false, fmt.Errorf("%w: %d expansions", ErrExpansionLimit, w.opts.MaxExpansions)
		}
		w.opts.OnVisit(c, minute)
		if c == w.to {
			return nil, true, nil
		}

		for _, m := range moves {
			n := Cell{X: c.X + m[0], Y: c.Y + m[1]}
			if !w.admissible(n, minute+1) {
				continue
			}
			if w.mark(n, minute+1) {
				next = append(next, n)
			}
		}
	}
	return next, false, nil
}

// admissible reports whether the actor may stand on c at the given absolute
// minute: an opening, or an unoccupied interior cell. Walls and
// out-of-bounds cells are rejected by inInterior.
func (w *walker) admissible(c Cell, minute int) bool {
	if c == w.basin.start || c == w.basin.goal {
		return true
	}
	return w.basin.inInterior(c) && !w.basin.Occupied(c, minute)
}

// mark records (c, minute mod L) in the visited cube, reporting false if the
// state had already been reached.
func (w *walker) mark(c Cell, minute int) bool {
	b := w.basin
	idx := ((c.Y+1)*b.Width+c.X)*b.cycle + mod(minute, b.cycle)
	if w.visited[idx] {
		return false
	}
	w.visited[idx] = true
	return true
}

// ShortestTrip answers part one: the fewest minutes from the start opening
// to the goal opening, departing at minute 0.
func (b *Basin) ShortestTrip(opts ...Option) (int, error) {
	if b == nil {
		return 0, ErrBasinNil
	}
	return b.Trip(0, b.start, b.goal, opts...)
}

// RoundTrip answers part two: start to goal, back for the snacks, then to
// the goal again. Each leg departs at the cumulative minute of the prior
// legs so the blizzard phase carries over; the result is the total minutes
// for all three legs.
func (b *Basin) RoundTrip(opts ...Option) (int, error) {
	if b == nil {
		return 0, ErrBasinNil
	}
	total := 0
	legs := [3][2]Cell{{b.start, b.goal}, {b.goal, b.start}, {b.start, b.goal}}
	for _, leg := range legs {
		d, err := b.Trip(total, leg[0], leg[1], opts...)
		if err != nil {
			return 0, err
		}
		total += d
	}
	return total, nil
}

// Solve parses input and answers both parts.
func Solve(input string) (plumbing.Solution, error) {
	b, err := Parse(input)
	if err != nil {
		return plumbing.Solution{}, err
	}
	one, err := b.ShortestTrip()
	if err != nil {
		return plumbing.Solution{}, err
	}
	two, err := b.RoundTrip()
	if err != nil {
		return plumbing.Solution{}, err
	}
	return plumbing.NewSolution(one, two), nil
}
