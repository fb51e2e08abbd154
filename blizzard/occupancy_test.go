package blizzard_test

import (
	"strings"
	"testing"

	"github.com/mattcl/aoc2022/blizzard"
)

// occupancySet collects the occupied interior cells at minute t into a map
// usable for set comparison.
func occupancySet(b *blizzard.Basin, t int) map[blizzard.Cell]bool {
	set := make(map[blizzard.Cell]bool)
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			c := blizzard.Cell{X: x, Y: y}
			if b.Occupied(c, t) {
				set[c] = true
			}
		}
	}
	return set
}

// naiveSimulator steps every blizzard one minute at a time, wrapping at the
// interior edges. It is the reference the closed form is checked against.
type naiveSimulator struct {
	width, height int
	cells         []blizzard.Cell
	dirs          []blizzard.Direction
}

func newNaiveSimulator(input string) *naiveSimulator {
	sim := &naiveSimulator{}
	lines := nonEmptyLines(input)
	sim.width = len(lines[0]) - 2
	sim.height = len(lines) - 2
	for y, line := range lines[1 : len(lines)-1] {
		for x := 1; x < len(line)-1; x++ {
			var d blizzard.Direction
			switch line[x] {
			case '^':
				d = blizzard.Up
			case 'v':
				d = blizzard.Down
			case '<':
				d = blizzard.Left
			case '>':
				d = blizzard.Right
			default:
				continue
			}
			sim.cells = append(sim.cells, blizzard.Cell{X: x - 1, Y: y})
			sim.dirs = append(sim.dirs, d)
		}
	}
	return sim
}

func (s *naiveSimulator) step() {
	for i, c := range s.cells {
		dx, dy := s.dirs[i].Delta()
		c.X = (c.X + dx + s.width) % s.width
		c.Y = (c.Y + dy + s.height) % s.height
		s.cells[i] = c
	}
}

func (s *naiveSimulator) set() map[blizzard.Cell]bool {
	set := make(map[blizzard.Cell]bool, len(s.cells))
	for _, c := range s.cells {
		set[c] = true
	}
	return set
}

func nonEmptyLines(input string) []string {
	var out []string
	for _, l := range strings.Split(input, "\n") {
		if t := strings.TrimSpace(l); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// TestOccupied_Periodicity asserts occupancy_at(t) == occupancy_at(t+L) for
// every phase of the cycle.
func TestOccupied_Periodicity(t *testing.T) {
	b, err := blizzard.Parse(exampleInput)
	if err != nil {
		t.Fatal(err)
	}
	L := b.CycleLength()
	for phase := 0; phase < L; phase++ {
		now := occupancySet(b, phase)
		later := occupancySet(b, phase+L)
		if len(now) != len(later) {
			t.Fatalf("phase %d: %d occupied cells now, %d one cycle later", phase, len(now), len(later))
		}
		for c := range now {
			if !later[c] {
				t.Errorf("phase %d: cell %v occupied now but not one cycle later", phase, c)
			}
		}
	}
}

// TestOccupied_MatchesStepSimulation validates the closed-form positions
// against a minute-by-minute reference over four full cycles.
func TestOccupied_MatchesStepSimulation(t *testing.T) {
	b, err := blizzard.Parse(exampleInput)
	if err != nil {
		t.Fatal(err)
	}
	sim := newNaiveSimulator(exampleInput)

	for minute := 0; minute <= 4*b.CycleLength(); minute++ {
		want := sim.set()
		got := occupancySet(b, minute)
		if len(got) != len(want) {
			t.Fatalf("minute %d: %d occupied cells, reference has %d", minute, len(got), len(want))
		}
		for c := range want {
			if !got[c] {
				t.Fatalf("minute %d: reference has blizzard at %v, closed form does not", minute, c)
			}
		}
		sim.step()
	}
}

// TestOccupied_OpeningsNeverOccupied pins the rule that blizzards wrap
// inside the interior and never cover either opening.
func TestOccupied_OpeningsNeverOccupied(t *testing.T) {
	b, err := blizzard.Parse(exampleInput)
	if err != nil {
		t.Fatal(err)
	}
	for minute := 0; minute < 2*b.CycleLength(); minute++ {
		if b.Occupied(b.Start(), minute) {
			t.Fatalf("minute %d: start opening occupied", minute)
		}
		if b.Occupied(b.Goal(), minute) {
			t.Fatalf("minute %d: goal opening occupied", minute)
		}
	}
}
