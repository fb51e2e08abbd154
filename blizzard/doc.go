// Package blizzard solves day 24: shortest travel through a valley of
// periodically moving blizzards.
//
// What:
//
//   - Parse reads the wall/ground/blizzard character grid into an immutable
//     Basin: interior Width x Height, a start opening in the top wall, a
//     goal opening in the bottom wall, and the initial blizzard list.
//   - Occupied answers "does cell c hold a blizzard at minute t" in O(1)
//     via the closed-form position of each blizzard (modular arithmetic on
//     its axis), with per-phase snapshots memoized lazily.
//   - Trip runs breadth-first search over (position, minute) states: each
//     minute the actor steps orthogonally or waits, never onto an occupied
//     cell, never off the interior except at the two openings.
//   - ShortestTrip answers part one; RoundTrip chains three legs
//     (start->goal->start->goal) with the blizzard phase carried across
//     legs and answers part two.
//
// Why the search terminates:
//
//	The blizzard configuration repeats with period L = lcm(Width, Height),
//	so occupancy depends only on the minute's residue mod L. Visited states
//	are keyed by (cell, minute mod L), bounding the state space by
//	Width x (Height+2) x L. An unreachable destination exhausts that space
//	and returns ErrNoRoute instead of looping.
//
// Complexity:
//
//   - Parse:    O(rows x cols)
//   - Occupied: O(1) amortized; O(flurries) the first time a phase is seen
//   - Trip:     O(W*H*L) states, 5 successors each; memory O(W*H*L)
//
// Options:
//
//   - WithContext(ctx):      cancel a search between minute layers.
//   - WithMaxExpansions(n):  abort after n expansions with ErrExpansionLimit.
//   - WithOnVisit(fn):       observe every expanded (cell, minute) state.
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular, ErrUnknownTile, ErrOpening,
//     ErrWall — parse failures; fatal, never retried.
//   - ErrBasinNil, ErrOutsideBasin, ErrNegativeStart — invalid search input.
//   - ErrNoRoute — state space exhausted without reaching the destination.
//   - ErrExpansionLimit — configured cap exceeded.
//   - ErrOptionViolation — invalid functional option.
package blizzard
