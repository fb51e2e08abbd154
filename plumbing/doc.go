// Package plumbing carries the scaffolding shared by every puzzle package.
//
// What:
//
//   - Solution — the (part one, part two) answer pair with stable text and
//     JSON renderings.
//   - Input normalization: Lines, RawLines, Blocks. Puzzle inputs arrive as
//     one text blob per day; test fixtures are often indented inside source
//     files, so Lines trims each line while RawLines preserves interior
//     whitespace for drawings.
//   - Character bitmasks (CharMask, CharNum) for the handful of days that
//     reduce letters to set membership.
//   - A minimal 2D integer Point for grid days.
//
// Why:
//
//   - Each day is an independent package; the only thing they may share is
//     this package. Keeping it tiny keeps the days honest about being
//     self-contained.
//
// Errors:
//
//   - ErrNotLetter: a bitmask helper was handed a byte outside [a-zA-Z].
package plumbing
