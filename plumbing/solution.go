package plumbing

import "fmt"

// Solution pairs both answers for one day. Answers are deliberately untyped:
// most days produce integers but a few (supply stacks) produce strings.
type Solution struct {
	PartOne any `json:"part_one" yaml:"part_one"`
	PartTwo any `json:"part_two" yaml:"part_two"`
}

// NewSolution wraps two answers into a Solution.
func NewSolution(partOne, partTwo any) Solution {
	return Solution{PartOne: partOne, PartTwo: partTwo}
}

// String renders the two answers one per line, matching the CLI's plain
// (non-JSON) output mode.
func (s Solution) String() string {
	return fmt.Sprintf("part_one: %v\npart_two: %v", s.PartOne, s.PartTwo)
}
