package enumerate_test

import (
	"testing"

	"github.com/katalvlaran/lvcollect/enumerate"
)

// BenchmarkCombinations_Next drains a 10^5 product per iteration.
func BenchmarkCombinations_Next(b *testing.B) {
	digits := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	candidates := [][]int{digits, digits, digits, digits, digits}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c, _ := enumerate.NewCombinations(candidates)
		for c.HasNext() {
			_, _ = c.Next()
		}
	}
}

// BenchmarkCombinations_NextReuse is the zero-copy variant.
func BenchmarkCombinations_NextReuse(b *testing.B) {
	digits := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	candidates := [][]int{digits, digits, digits, digits, digits}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c, _ := enumerate.NewCombinations(candidates, enumerate.WithReuseBuffer())
		for c.HasNext() {
			_, _ = c.Next()
		}
	}
}

// BenchmarkSubsets_Next walks the 2^16 subsets of 16 elements.
func BenchmarkSubsets_Next(b *testing.B) {
	elements := make([]int, 16)
	for i := range elements {
		elements[i] = i
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s := enumerate.NewSubsets(elements...)
		for s.HasNext() {
			_, _ = s.Next()
		}
	}
}
