// Package rucksack solves day 3: find the item type duplicated across both
// compartments of each rucksack, and the badge item shared by every group
// of three rucksacks. Item priorities are 1-26 for a-z and 27-52 for A-Z.
package rucksack

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/mattcl/aoc2022/plumbing"
)

// Day and Title identify this puzzle in the calendar registry.
const (
	Day   = 3
	Title = "rucksack reorganization"
)

var (
	// ErrOddRucksack indicates a rucksack whose contents cannot be split
	// into two equal compartments.
	ErrOddRucksack = errors.New("rucksack: contents must have even length")

	// ErrRaggedGroup indicates a sack count that is not a multiple of three.
	ErrRaggedGroup = errors.New("rucksack: sacks must form groups of three")

	// ErrNoCommonItem indicates compartments (or a group) sharing no item.
	ErrNoCommonItem = errors.New("rucksack: no common item found")
)

// sack holds one rucksack as three letter sets: each compartment and the
// whole bag, encoded as plumbing.CharMask unions.
type sack struct {
	left, right, all uint64
}

// Packing is the parsed input: one sack per input line.
type Packing struct {
	sacks []sack
}

// New parses one rucksack per line.
func New(input string) (*Packing, error) {
	lines := plumbing.Lines(input)
	p := &Packing{sacks: make([]sack, 0, len(lines))}
	for _, line := range lines {
		if len(line)%2 != 0 {
			return nil, fmt.Errorf("%w: %q", ErrOddRucksack, line)
		}
		var s sack
		for i := 0; i < len(line); i++ {
			m, err := plumbing.CharMask(line[i])
			if err != nil {
				return nil, err
			}
			if i < len(line)/2 {
				s.left |= m
			} else {
				s.right |= m
			}
		}
		s.all = s.left | s.right
		p.sacks = append(p.sacks, s)
	}
	return p, nil
}

// priority converts a one-bit letter mask to its item priority.
func priority(mask uint64) (int, error) {
	if mask == 0 || mask&(mask-1) != 0 {
		return 0, fmt.Errorf("%w: %d items in common", ErrNoCommonItem, bits.OnesCount64(mask))
	}
	return bits.TrailingZeros64(mask) + 1, nil
}

// PartOne sums the priority of the item duplicated across each sack's two
// compartments.
func (p *Packing) PartOne() (int, error) {
	sum := 0
	for _, s := range p.sacks {
		pr, err := priority(s.left & s.right)
		if err != nil {
			return 0, err
		}
		sum += pr
	}
	return sum, nil
}

// PartTwo sums the badge priority of each group of three sacks: the single
// item present in all three.
func (p *Packing) PartTwo() (int, error) {
	if len(p.sacks)%3 != 0 {
		return 0, fmt.Errorf("%w: %d sacks", ErrRaggedGroup, len(p.sacks))
	}
	sum := 0
	for i := 0; i < len(p.sacks); i += 3 {
		badge := p.sacks[i].all & p.sacks[i+1].all & p.sacks[i+2].all
		pr, err := priority(badge)
		if err != nil {
			return 0, err
		}
		sum += pr
	}
	return sum, nil
}

// Solve parses input and answers both parts.
func Solve(input string) (plumbing.Solution, error) {
	p, err := New(input)
	if err != nil {
		return plumbing.Solution{}, err
	}
	one, err := p.PartOne()
	if err != nil {
		return plumbing.Solution{}, err
	}
	two, err := p.PartTwo()
	if err != nil {
		return plumbing.Solution{}, err
	}
	return plumbing.NewSolution(one, two), nil
}
