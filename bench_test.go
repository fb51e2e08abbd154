package aoc2022_test

import (
	"fmt"
	"testing"

	aoc2022 "github.com/mattcl/aoc2022"
)

// BenchmarkDays runs every registered solver end to end (parse + both
// parts) on its example input, one sub-benchmark per day.
func BenchmarkDays(b *testing.B) {
	for _, p := range aoc2022.Days() {
		ex, ok := examples[p.Day]
		if !ok {
			b.Fatalf("day %d has no example fixture", p.Day)
		}
		b.Run(fmt.Sprintf("day_%03d", p.Day), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := p.Solve(ex.input); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
