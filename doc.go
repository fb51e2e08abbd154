// Package aoc2022 collects one self-contained package per Advent of Code
// 2022 puzzle, plus the shared plumbing that every day leans on.
//
// What you get:
//
//   - One top-level package per solved day (calories/, rucksack/, cleanup/,
//     supply/, tuning/, treetop/, hillclimb/, blizzard/, …), each a pure
//     function from puzzle-input text to a plumbing.Solution.
//   - plumbing/ — shared input normalization, character bitmasks, 2D points,
//     and the Solution answer pair.
//   - A calendar registry (Days, Lookup) so the CLI and the cross-day
//     benchmark can dispatch by day number.
//   - cmd/aoc — the command-line runner.
//
// Every day package follows the same shape: New(input) parses, PartOne and
// PartTwo answer, Solve(input) does all three. Parsing failures are sentinel
// errors; nothing is retried, nothing persists across runs.
//
// The interesting one is blizzard/ — shortest-path search through a field of
// periodically repeating moving obstacles. Start there if you are reading
// for the algorithms.
package aoc2022
