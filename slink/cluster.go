package slink

import (
	"math"

	"github.com/slink-go/slink/data"
	"github.com/slink-go/slink/kernel"
	"github.com/slink-go/slink/parallel"
)


// Cluster computes the exact single-linkage dendrogram of points and
// writes its pointer representation into pi and lambda, both of which
// must have length >= points.Len(). cfg selects the stage-2 kernel and
// the three parallel regions' worker counts/enable flags (see
// parallel.Config).
//
// Cluster performs, for n = 1 .. N-1, the four-stage Sibson update:
//
//  1. seed pi[n] = n, lambda[n] = +Inf
//  2. stage-2 distance row: M[i] = D(point(i), point(n)) for i in [0, n),
//     scheduled per cfg.ParallelStage2/Stage2Workers
//  3. the Sibson recurrence, strictly sequential (each iteration may read
//     an M slot a previous iteration just wrote)
//  4. ancestor fix-up: pi[i] = n wherever lambda[i] >= lambda[pi[i]],
//     scheduled per cfg.ParallelStage4/Stage4Workers
//
// followed by a post-pass (see postpass.go) that takes the square root of
// every finite lambda entry if the kernel kernel.Select resolves
// cfg.Kernel to is a squared-distance kind.
//
// Errors are reported before any mutation of pi/lambda: ErrInvalidArgument
// for n == 0, d == 0, n*d overflow, or undersized output slices;
// ErrAlignmentViolation if cfg.CheckAlignment is set and a point fails the
// active kernel's required byte alignment.
func Cluster(points data.Points, pi []int, lambda []float64, cfg parallel.Config) error {
	n := points.Len()
	d := points.Dim()

	if n <= 0 || d <= 0 {
		return ErrInvalidArgument
	}
	// n*d is the largest index arithmetic a Points implementation performs;
	// reject inputs where it cannot be represented as an int.
	if n > math.MaxInt/d {
		return ErrInvalidArgument
	}
	if len(pi) < n || len(lambda) < n {
		return ErrInvalidArgument
	}

	effectiveKind, distance := kernel.Select(cfg.Kernel)
	squared := effectiveKind.Squared()

	if cfg.CheckAlignment {
		if err := data.CheckAlignment(points, effectiveKind.RequiredAlignment()); err != nil {
			return err
		}
	}

	// Stage 1 (n == 0): the first sample is its own singleton cluster,
	// never absorbed.
	pi[0] = 0
	lambda[0] = math.Inf(1)
	if n == 1 {
		return nil
	}

	m := make([]float64, n)

	for sample := 1; sample < n; sample++ {
		// Stage 1: seed the new sample.
		pi[sample] = sample
		lambda[sample] = math.Inf(1)

		// Stage 2: distance row, independent across i — safe to
		// parallelize.
		newPoint := points.PointPadded(sample)
		parallel.Run(cfg.ParallelStage2, cfg.Stage2Workers, sample, func(lo, hi int) {
			for i := lo; i < hi; i++ {
				m[i] = distance(points.PointPadded(i), newPoint)
			}
		})

		// Stage 3: Sibson's recurrence. Strictly sequential — iteration
		// i may update m[pi[i]], and a later iteration i' == pi[i] must
		// observe that update when it reads m[i'].
		for i := 0; i < sample; i++ {
			if lambda[i] >= m[i] {
				if lambda[i] < m[pi[i]] {
					m[pi[i]] = lambda[i]
				}
				lambda[i] = m[i]
				pi[i] = sample
			} else {
				if m[i] < m[pi[i]] {
					m[pi[i]] = m[i]
				}
			}
		}

		// Stage 4: ancestor fix-up, independent across i (each iteration
		// writes only pi[i], reads lambda globally) — safe to
		// parallelize.
		parallel.Run(cfg.ParallelStage4, cfg.Stage4Workers, sample, func(lo, hi int) {
			for i := lo; i < hi; i++ {
				if lambda[i] >= lambda[pi[i]] {
					pi[i] = sample
				}
			}
		})
	}

	applyPostPass(lambda[:n], squared, cfg)

	return nil
}

// ClusterPoints is a convenience wrapper that allocates a fresh Result
// sized for points.Len() and runs Cluster into it.
func ClusterPoints(points data.Points, cfg parallel.Config) (Result, error) {
	result := NewResult(points.Len())
	err := Cluster(points, result.Pi, result.Lambda, cfg)
	return result, err
}
