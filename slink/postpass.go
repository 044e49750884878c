package slink

import (
	"math"

	"github.com/slink-go/slink/parallel"
)

// applyPostPass takes the square root of every entry in lambda except the
// last (which holds +Inf and is left untouched), but only when squared is
// true — i.e. only when the stage-2 kernel deferred its square root
// (kernel.SSEOptNoSqrt / kernel.AVXOptNoSqrt). Until this runs, every
// value in lambda (and the scratch row M, internal to Cluster) is a
// squared Euclidean distance, not a true distance, and must not be
// consumed externally. Cluster always runs this before returning, so a
// caller never observes the squared intermediate state.
//
// Parallelism is controlled by cfg.ParallelStage5/Stage5Workers, scheduled
// through the same fork-join primitive as stages 2 and 4.
func applyPostPass(lambda []float64, squared bool, cfg parallel.Config) {
	if !squared {
		return
	}
	n := len(lambda)
	if n <= 1 {
		return
	}
	parallel.Run(cfg.ParallelStage5, cfg.Stage5Workers, n-1, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			lambda[i] = math.Sqrt(lambda[i])
		}
	})
}
