// Package sparse_test provides benchmarks for the sparse kernels, using a
// deterministic random fill.
package sparse_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvsparse/sparse"
)

// benchSizes are the square matrix sizes to benchmark; nnz ≈ 8 per row.
var benchSizes = []int{256, 1024, 4096}

// sinks to defeat dead-code elimination
var (
	sinkV []float64
	sinkF float64
)

func BenchmarkMatVec(b *testing.B) {
	for _, n := range benchSizes {
		ts := randomTriplets(int64(n), n, n, 8*n)
		x := randomVector(int64(n)+1, n)
		run := func(name string, mv func([]float64) ([]float64, error)) {
			b.Run(fmt.Sprintf("%s/n=%d", name, n), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					y, err := mv(x)
					if err != nil {
						b.Fatal(err)
					}
					sinkV = y
				}
			})
		}

		rm := mustNew[sparse.RowMajor](b, n, n)
		mustFill(b, rm, ts)
		run("uncompressed", rm.MulVec)
		rm.Compress()
		run("csr", rm.MulVec)

		cm := mustNew[sparse.ColumnMajor](b, n, n)
		mustFill(b, cm, ts)
		cm.Compress()
		run("csc", cm.MulVec)
	}
}

func BenchmarkCompressUncompress(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			m := mustNew[sparse.RowMajor](b, n, n)
			mustFill(b, m, randomTriplets(int64(n), n, n, 8*n))
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m.Compress()
				m.Uncompress()
			}
		})
	}
}

func BenchmarkCompressedInsert(b *testing.B) {
	const n = 1024
	ts := randomTriplets(7, n, n, 8*n)
	extra := randomTriplets(8, n, n, 256)

	b.Run("set", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			b.StopTimer()
			m := mustNew[sparse.RowMajor](b, n, n)
			mustFill(b, m, ts)
			m.Compress()
			b.StartTimer()
			for _, e := range extra {
				_ = m.Set(e.Row, e.Col, e.Value)
			}
			sinkF = float64(m.NNZ())
		}
	})
	b.Run("batch", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			b.StopTimer()
			m := mustNew[sparse.RowMajor](b, n, n)
			mustFill(b, m, ts)
			m.Compress()
			b.StartTimer()
			_ = m.SetBatch(extra)
			sinkF = float64(m.NNZ())
		}
	})
}
