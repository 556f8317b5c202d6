package bloom

import (
	"fmt"
	"testing"
)

func benchMakeKeys(n int, prefix string) [][]byte {
	out := make([][]byte, n)
	for i := 0; i < n; i++ {
		out[i] = []byte(fmt.Sprintf("%s-%06d", prefix, i))
	}
	return out
}

func BenchmarkFilterAdd(b *testing.B) {
	const n = 1000
	f, _ := NewWithSeeds(n, 0.01, 0x01, 0x02)
	keys := benchMakeKeys(n, "add")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Add(keys[i%len(keys)])
	}
}

func BenchmarkFilterTestPositive(b *testing.B) {
	const n = 1000
	f, _ := NewWithSeeds(n, 0.01, 0x01, 0x02)
	keys := benchMakeKeys(n, "present")
	for _, k := range keys {
		f.Add(k)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.Test(keys[i%len(keys)])
	}
}

func BenchmarkFilterTestNegative(b *testing.B) {
	const n = 1000
	f, _ := NewWithSeeds(n, 0.01, 0x01, 0x02)
	for _, k := range benchMakeKeys(n, "present") {
		f.Add(k)
	}
	absent := benchMakeKeys(n, "absent")

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.Test(absent[i%len(absent)])
	}
}

// BenchmarkFilterFalsePositiveRate reports the observed false positive rate
// over a disjoint probe set as fp_count and fp_percent metrics.
func BenchmarkFilterFalsePositiveRate(b *testing.B) {
	const (
		n      = 1000
		p      = 0.01
		trials = 100_000
	)

	f, _ := NewWithSeeds(n, p, 0x01, 0x02)
	for _, k := range benchMakeKeys(n, "present") {
		f.Add(k)
	}
	absent := benchMakeKeys(trials, "absent")

	b.ReportAllocs()
	b.ResetTimer()
	fp := 0
	for i := 0; i < trials; i++ {
		if f.Test(absent[i]) {
			fp++
		}
	}
	b.StopTimer()
	rate := float64(fp) / float64(trials)
	b.ReportMetric(float64(fp), "fp_count")
	b.ReportMetric(rate*100, "fp_percent")
}
