package calories_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mattcl/aoc2022/calories"
	"github.com/mattcl/aoc2022/plumbing"
)

const example = `
	1000
	2000
	3000

	4000

	5000
	6000

	7000
	8000
	9000

	10000
`

func TestSolve_Example(t *testing.T) {
	got, err := calories.Solve(example)
	require.NoError(t, err)
	require.Equal(t, plumbing.NewSolution(24000, 45000), got)
}

func TestNew_Errors(t *testing.T) {
	if _, err := calories.New("   \n\n  "); !errors.Is(err, calories.ErrNoInventories) {
		t.Errorf("blank input: want ErrNoInventories, got %v", err)
	}
	if _, err := calories.New("100\nbanana"); !errors.Is(err, calories.ErrBadCalorie) {
		t.Errorf("bad value: want ErrBadCalorie, got %v", err)
	}
}

func TestPartTwo_FewerThanThreeElves(t *testing.T) {
	e, err := calories.New("100\n\n300")
	require.NoError(t, err)
	got, err := e.PartTwo()
	require.NoError(t, err)
	require.Equal(t, 400, got)
}
