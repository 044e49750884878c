// Package slink_test provides benchmarks for Cluster across kernel kinds
// and parallel configurations, using random point sets.
package slink_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/slink-go/slink/data"
	"github.com/slink-go/slink/kernel"
	"github.com/slink-go/slink/parallel"
	"github.com/slink-go/slink/slink"
)

// benchSizes are the point-set sizes to benchmark.
var benchSizes = []int{100, 500, 1000}

const benchDim = 8

func benchPoints(b *testing.B, n, dim int, lanes int) data.Points {
	b.Helper()
	if lanes < 1 {
		lanes = 1
	}
	stride := data.Stride(dim, lanes)
	rng := rand.New(rand.NewSource(int64(n)))
	buf := make([]float64, n*stride)
	for i := 0; i < n; i++ {
		for j := 0; j < dim; j++ {
			buf[i*stride+j] = rng.Float64()*2000 - 1000
		}
	}
	pts, err := data.NewLinearized(buf, n, dim, stride)
	if err != nil {
		b.Fatalf("failed to build point set: %v", err)
	}
	return pts
}

func BenchmarkCluster_Kernels(b *testing.B) {
	b.ReportAllocs()
	kinds := []kernel.Kind{kernel.Scalar, kernel.SSE, kernel.AVXOpt, kernel.AVXOptNoSqrt}
	for _, n := range benchSizes {
		for _, k := range kinds {
			n, k := n, k
			b.Run(fmt.Sprintf("N=%d/%s", n, k), func(b *testing.B) {
				pts := benchPoints(b, n, benchDim, k.Lanes())
				cfg := parallel.NewConfig(parallel.WithKernel(k))
				pi := make([]int, n)
				lambda := make([]float64, n)

				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if err := slink.Cluster(pts, pi, lambda, cfg); err != nil {
						b.Fatalf("cluster failed: %v", err)
					}
				}
			})
		}
	}
}

func BenchmarkCluster_ParallelStage2(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		for _, workers := range []int{1, 2, 4, 8} {
			n, workers := n, workers
			b.Run(fmt.Sprintf("N=%d/T2=%d", n, workers), func(b *testing.B) {
				pts := benchPoints(b, n, benchDim, 1)
				cfg := parallel.NewConfig(
					parallel.WithParallelStage2(true),
					parallel.WithStage2Workers(workers),
				)
				pi := make([]int, n)
				lambda := make([]float64, n)

				b.ResetTimer()
				for i := 0; i < b.N; i++ {
					if err := slink.Cluster(pts, pi, lambda, cfg); err != nil {
						b.Fatalf("cluster failed: %v", err)
					}
				}
			})
		}
	}
}
