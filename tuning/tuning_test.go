package tuning_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mattcl/aoc2022/plumbing"
	"github.com/mattcl/aoc2022/tuning"
)

func TestSolve_Example(t *testing.T) {
	got, err := tuning.Solve("mjqjpqmgbljsphdztnvjfqwrcgsmlb")
	require.NoError(t, err)
	require.Equal(t, plumbing.NewSolution(7, 19), got)
}

func TestFindMarker_PublishedVariants(t *testing.T) {
	cases := []struct {
		input  string
		packet int
		msg    int
	}{
		{"bvwbjplbgvbhsrlpgdmjqwftvncz", 5, 23},
		{"nppdvjthqldpwncqszvftbrmjlhg", 6, 23},
		{"nznrnfrfntjfmvfwmzdfjlvtqnbhcprsg", 10, 29},
		{"zcfzfwzzqfrljwzlrfnpqdbhtmscgvjw", 11, 26},
	}
	for _, tc := range cases {
		d, err := tuning.New(tc.input)
		require.NoError(t, err)

		got, err := d.FindMarker(4)
		require.NoError(t, err)
		require.Equal(t, tc.packet, got, "packet marker in %q", tc.input)

		got, err = d.FindMarker(14)
		require.NoError(t, err)
		require.Equal(t, tc.msg, got, "message marker in %q", tc.input)
	}
}

func TestFindMarker_NoMarker(t *testing.T) {
	d, err := tuning.New("aaaaaaaa")
	require.NoError(t, err)
	_, err = d.FindMarker(4)
	require.ErrorIs(t, err, tuning.ErrNoMarker)
}

func TestNew_RejectsNonLetters(t *testing.T) {
	_, err := tuning.New("abc123")
	require.ErrorIs(t, err, plumbing.ErrNotLetter)
}
