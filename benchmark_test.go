package xsect

import "testing"

// BenchmarkCruciformSection benchmarks the most point-heavy builder at
// several fillet discretizations.
func BenchmarkCruciformSection(b *testing.B) {
	counts := []struct {
		name string
		nR   int
	}{
		{"nr4", 4},
		{"nr16", 16},
		{"nr64", 64},
		{"nr256", 256},
	}

	for _, c := range counts {
		b.Run(c.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := CruciformSection(250, 175, 12, 16, c.nR); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkCircularSection benchmarks circle discretization.
func BenchmarkCircularSection(b *testing.B) {
	counts := []struct {
		name string
		n    int
	}{
		{"n16", 16},
		{"n128", 128},
		{"n1024", 1024},
	}

	for _, c := range counts {
		b.Run(c.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := CircularSection(100, c.n); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkOutline_Validate benchmarks the quadratic self-intersection
// scan on realistic ring sizes.
func BenchmarkOutline_Validate(b *testing.B) {
	sizes := []struct {
		name string
		nR   int
	}{
		{"24pts", 4},
		{"72pts", 16},
		{"264pts", 64},
	}

	for _, s := range sizes {
		b.Run(s.name, func(b *testing.B) {
			g, err := CruciformSection(250, 175, 12, 16, s.nR)
			if err != nil {
				b.Fatal(err)
			}
			o := g.Outline()
			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if err := o.Validate(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkNewGeometry benchmarks ring normalization alone.
func BenchmarkNewGeometry(b *testing.B) {
	g, err := CircularSection(100, 256)
	if err != nil {
		b.Fatal(err)
	}
	ring := g.Outline()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := NewGeometry(ring); err != nil {
			b.Fatal(err)
		}
	}
}
