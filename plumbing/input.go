package plumbing

import "strings"

// Lines splits input into lines, trimming surrounding blank lines and the
// whitespace around each line. Suited to inputs where indentation carries no
// meaning, which is every day except the crate drawings.
func Lines(input string) []string {
	raw := strings.Split(strings.TrimSpace(input), "\n")
	out := make([]string, len(raw))
	for i, line := range raw {
		out[i] = strings.TrimSpace(line)
	}
	return out
}

// RawLines splits input into lines, dropping only leading/trailing blank
// lines. Interior whitespace survives, which matters for column-aligned
// drawings like the supply-stacks header.
func RawLines(input string) []string {
	return strings.Split(strings.Trim(input, "\n"), "\n")
}

// Blocks splits input into groups of trimmed lines separated by blank lines.
func Blocks(input string) [][]string {
	var blocks [][]string
	var cur []string
	for _, line := range Lines(input) {
		if line == "" {
			if len(cur) > 0 {
				blocks = append(blocks, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, line)
	}
	if len(cur) > 0 {
		blocks = append(blocks, cur)
	}
	return blocks
}
