package tristrip

import (
	"fmt"
	"testing"
)

// BenchmarkCircle benchmarks the half-symmetry generator at various
// point counts.
func BenchmarkCircle(b *testing.B) {
	for _, n := range []int{16, 256, 4096, 65536} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			buf := make([]float64, 2*n)
			b.ReportAllocs()
			b.SetBytes(int64(2 * n * 8))
			for b.Loop() {
				if err := Circle(buf, n, Clockwise); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkCircleFolded benchmarks the quarter-symmetry generator.
// Even counts exercise the folded path; the extra read-back pass
// trades rotation steps for buffer reads.
func BenchmarkCircleFolded(b *testing.B) {
	for _, n := range []int{16, 256, 4096, 65536} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			buf := make([]float64, 2*n)
			b.ReportAllocs()
			b.SetBytes(int64(2 * n * 8))
			for b.Loop() {
				if err := CircleFolded(buf, n, Clockwise); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkCircleFloat32 measures the narrow-width instantiation.
func BenchmarkCircleFloat32(b *testing.B) {
	const n = 4096
	buf := make([]float32, 2*n)
	b.ReportAllocs()
	b.SetBytes(int64(2 * n * 4))
	for b.Loop() {
		if err := Circle(buf, n, Clockwise); err != nil {
			b.Fatal(err)
		}
	}
}
