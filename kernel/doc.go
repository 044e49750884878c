// Package kernel provides the Euclidean distance kernel family used by the
// slink package: a scalar reference implementation plus six SIMD-shaped
// variants exploiting 128-bit (SSE) and 256-bit (AVX) lane widths.
//
// 🚀 What is a kernel here?
//
//	A kernel is a pure function distance(a, b []float64) float64 computing
//	the Euclidean (or squared-Euclidean) distance between two equal-length,
//	stride-padded points. Kernels never allocate and never mutate their
//	operands.
//
// ✨ Kinds:
//
//   - Scalar       — no lanes, reference implementation.
//   - SSE / AVX    — memory-accumulated: per-block horizontal reduce, added
//     into a scalar accumulator every block (slower, useful as a reference).
//   - SSEOpt / AVXOpt            — register-accumulated: a lane-width
//     accumulator carried across the whole loop, reduced once at the end.
//   - SSEOptNoSqrt / AVXOptNoSqrt — register-accumulated, squared output;
//     the caller is responsible for taking the square root exactly once,
//     after all distances for a dataset have been consumed (see slink's
//     post-pass stage).
//
// Kind.RequiredAlignment documents the byte alignment a SIMD kind expects
// from its operands; Select falls back to Scalar whenever the host CPU (or
// build target) lacks the matching feature, detected once via
// golang.org/x/sys/cpu and cached for the process lifetime.
//
//	import "github.com/slink-go/slink/kernel"
//
//	kind, fn := kernel.Select(kernel.AVXOpt)
//	dist := fn(pointA, pointB)
package kernel
