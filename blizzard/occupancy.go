package blizzard

// Occupied reports whether cell c contains at least one blizzard at absolute
// minute t (t = 0 is the input as parsed). Cells outside the interior,
// including the two openings, are never occupied. Complexity: O(1) after the
// first query at a given phase.
func (b *Basin) Occupied(c Cell, t int) bool {
	if !b.inInterior(c) {
		return false
	}
	return b.phase(t)[c.Y*b.Width+c.X]
}

// at returns f's position at minute t in closed form: a blizzard rides a
// toroidal ring of size Width (horizontal) or Height (vertical), so its
// coordinate is plain modular arithmetic on the elapsed time. No per-minute
// simulation is ever required.
func (b *Basin) at(f Flurry, t int) Cell {
	dx, dy := f.Dir.Delta()
	return Cell{
		X: mod(f.Origin.X+dx*t, b.Width),
		Y: mod(f.Origin.Y+dy*t, b.Height),
	}
}

// phase returns the row-major interior occupancy for minute t, computing and
// caching it on first use. Snapshots repeat with period CycleLength, so the
// cache is bounded by L entries; it is purely a performance aid, correctness
// rests on the closed form in at.
func (b *Basin) phase(t int) []bool {
	p := mod(t, b.cycle)

	b.mu.Lock()
	defer b.mu.Unlock()
	if snap := b.phases[p]; snap != nil {
		return snap
	}
	snap := make([]bool, b.Width*b.Height)
	for _, f := range b.flurries {
		c := b.at(f, p)
		snap[c.Y*b.Width+c.X] = true
	}
	b.phases[p] = snap
	return snap
}

// mod is the Euclidean remainder: always in [0, m) even for negative a.
func mod(a, m int) int {
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
