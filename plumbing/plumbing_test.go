package plumbing_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mattcl/aoc2022/plumbing"
)

func TestLines_TrimsIndentedFixture(t *testing.T) {
	input := "\n\t\t1000\n\t\t2000\n\n\t\t3000\n\t"
	want := []string{"1000", "2000", "", "3000"}
	require.Equal(t, want, plumbing.Lines(input))
}

func TestRawLines_PreservesInteriorWhitespace(t *testing.T) {
	input := "\n    [D]    \n[N] [C]    \n"
	got := plumbing.RawLines(input)
	require.Equal(t, []string{"    [D]    ", "[N] [C]    "}, got)
}

func TestBlocks_SplitsOnBlankLines(t *testing.T) {
	input := "1\n2\n\n3\n\n\n4\n5"
	want := [][]string{{"1", "2"}, {"3"}, {"4", "5"}}
	require.Equal(t, want, plumbing.Blocks(input))
}

func TestBlocks_Empty(t *testing.T) {
	require.Nil(t, plumbing.Blocks("\n\n\n"))
}

func TestCharNum_Bounds(t *testing.T) {
	cases := []struct {
		ch   byte
		want uint8
	}{
		{'a', 0}, {'z', 25}, {'A', 26}, {'Z', 51},
	}
	for _, tc := range cases {
		got, err := plumbing.CharNum(tc.ch)
		require.NoError(t, err)
		require.Equal(t, tc.want, got)
	}
}

func TestCharNum_Rejects(t *testing.T) {
	if _, err := plumbing.CharNum('3'); !errors.Is(err, plumbing.ErrNotLetter) {
		t.Errorf("digit: want ErrNotLetter, got %v", err)
	}
	if _, err := plumbing.CharMask('#'); !errors.Is(err, plumbing.ErrNotLetter) {
		t.Errorf("punct: want ErrNotLetter, got %v", err)
	}
}

func TestCharMask_DisjointBits(t *testing.T) {
	seen := uint64(0)
	for ch := byte('a'); ch <= 'z'; ch++ {
		m, err := plumbing.CharMask(ch)
		require.NoError(t, err)
		require.Zero(t, seen&m, "mask for %q overlaps earlier letters", ch)
		seen |= m
	}
	for ch := byte('A'); ch <= 'Z'; ch++ {
		m, err := plumbing.CharMask(ch)
		require.NoError(t, err)
		require.Zero(t, seen&m, "mask for %q overlaps earlier letters", ch)
		seen |= m
	}
}

func TestPoint_Manhattan(t *testing.T) {
	p := plumbing.Point{X: -5, Y: 2}
	q := plumbing.Point{X: 6, Y: 3}
	require.Equal(t, 12, p.Manhattan(q))
	require.Equal(t, 12, q.Manhattan(p))
	require.Equal(t, plumbing.Point{X: 1, Y: 5}, p.Add(plumbing.Point{X: 6, Y: 3}))
}

func TestSolution_Renderings(t *testing.T) {
	s := plumbing.NewSolution(18, 54)
	require.Equal(t, "part_one: 18\npart_two: 54", s.String())

	raw, err := json.Marshal(s)
	require.NoError(t, err)
	require.JSONEq(t, `{"part_one":18,"part_two":54}`, string(raw))
}
