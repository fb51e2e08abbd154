// Package supply solves day 5: a drawing of crate stacks followed by a
// rearrangement procedure. Part one moves crates one at a time (CrateMover
// 9000), part two moves whole groups at once (CrateMover 9001); both answer
// with the crates left on top of each stack.
package supply

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"

	"github.com/mattcl/aoc2022/plumbing"
)

// Day and Title identify this puzzle in the calendar registry.
const (
	Day   = 5
	Title = "supply stacks"
)

var (
	// ErrBadDrawing indicates a malformed crate drawing.
	ErrBadDrawing = errors.New("supply: invalid crate drawing")

	// ErrBadInstruction indicates a procedure line the grammar rejects.
	ErrBadInstruction = errors.New("supply: invalid rearrangement instruction")

	// ErrStackIndex indicates an instruction referencing a missing stack.
	ErrStackIndex = errors.New("supply: stack index out of range")

	// ErrShortStack indicates moving more crates than a stack holds.
	ErrShortStack = errors.New("supply: not enough crates on stack")
)

// instruction is one procedure step. From and To are 1-based, as printed.
type instruction struct {
	Count int `parser:"'move' @Int"`
	From  int `parser:"'from' @Int"`
	To    int `parser:"'to' @Int"`
}

// plan is the whole rearrangement procedure.
type plan struct {
	Steps []instruction `parser:"@@*"`
}

var planParser = participle.MustBuild[plan]()

// Dock is the parsed input: the initial stacks (bottom first) and the
// procedure. PartOne and PartTwo each replay the procedure on a fresh copy.
type Dock struct {
	stacks [][]byte
	steps  []instruction
}

// New parses the crate drawing and the instruction list.
func New(input string) (*Dock, error) {
	lines := plumbing.RawLines(input)
	blank := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			blank = i
			break
		}
	}
	if blank <= 0 {
		return nil, fmt.Errorf("%w: no blank line between drawing and procedure", ErrBadDrawing)
	}

	stacks, err := parseDrawing(lines[:blank])
	if err != nil {
		return nil, err
	}

	parsed, err := planParser.ParseString("procedure", strings.Join(lines[blank+1:], "\n"))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadInstruction, err)
	}

	return &Dock{stacks: stacks, steps: parsed.Steps}, nil
}

// parseDrawing reads the column-aligned crate drawing. The final line is
// the stack label row; crate letters for stack i sit at column 4*i + 1.
func parseDrawing(lines []string) ([][]byte, error) {
	label := lines[len(lines)-1]
	count := len(strings.Fields(label))
	if count == 0 {
		return nil, fmt.Errorf("%w: empty label row", ErrBadDrawing)
	}

	stacks := make([][]byte, count)
	// read bottom-up so each stack ends with its top crate last
	for row := len(lines) - 2; row >= 0; row-- {
		line := lines[row]
		for i := 0; i < count; i++ {
			col := 4*i + 1
			if col >= len(line) || line[col] == ' ' {
				continue
			}
			ch := line[col]
			if ch < 'A' || ch > 'Z' {
				return nil, fmt.Errorf("%w: crate %q at row %d", ErrBadDrawing, ch, row)
			}
			stacks[i] = append(stacks[i], ch)
		}
	}
	return stacks, nil
}

// clone deep-copies the initial stacks so each part starts fresh.
func (d *Dock) clone() [][]byte {
	out := make([][]byte, len(d.stacks))
	for i, s := range d.stacks {
		out[i] = append([]byte(nil), s...)
	}
	return out
}

// apply replays the procedure. When grouped is false crates move one at a
// time (reversing order); when true each group keeps its order.
func (d *Dock) apply(grouped bool) (string, error) {
	stacks := d.clone()
	for _, step := range d.steps {
		if step.From < 1 || step.From > len(stacks) || step.To < 1 || step.To > len(stacks) {
			return "", fmt.Errorf("%w: move %d from %d to %d", ErrStackIndex, step.Count, step.From, step.To)
		}
		src, dst := step.From-1, step.To-1
		if step.Count > len(stacks[src]) {
			return "", fmt.Errorf("%w: move %d from %d to %d", ErrShortStack, step.Count, step.From, step.To)
		}
		cut := len(stacks[src]) - step.Count
		moved := stacks[src][cut:]
		if grouped {
			stacks[dst] = append(stacks[dst], moved...)
		} else {
			for i := len(moved) - 1; i >= 0; i-- {
				stacks[dst] = append(stacks[dst], moved[i])
			}
		}
		stacks[src] = stacks[src][:cut]
	}

	var top strings.Builder
	for _, s := range stacks {
		if len(s) > 0 {
			top.WriteByte(s[len(s)-1])
		}
	}
	return top.String(), nil
}

// PartOne returns the top crates after CrateMover 9000 (one at a time).
func (d *Dock) PartOne() (string, error) {
	return d.apply(false)
}

// PartTwo returns the top crates after CrateMover 9001 (groups in order).
func (d *Dock) PartTwo() (string, error) {
	return d.apply(true)
}

// Solve parses input and answers both parts.
func Solve(input string) (plumbing.Solution, error) {
	d, err := New(input)
	if err != nil {
		return plumbing.Solution{}, err
	}
	one, err := d.PartOne()
	if err != nil {
		return plumbing.Solution{}, err
	}
	two, err := d.PartTwo()
	if err != nil {
		return plumbing.Solution{}, err
	}
	return plumbing.NewSolution(one, two), nil
}
