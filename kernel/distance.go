package kernel

import "math"

// DistanceFunc computes the distance (or squared distance, for the
// *NoSqrt kinds) between two equal-length, stride-padded points. Neither
// operand is mutated; DistanceFunc never allocates.
type DistanceFunc func(a, b []float64) float64

// scalarDistance is the reference kernel: a plain scalar accumulator over
// the full operand length, no lane width.
func scalarDistance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

func sseDistance(a, b []float64) float64 {
	return math.Sqrt(sumSquaredMemory(a, b, 2))
}

func avxDistance(a, b []float64) float64 {
	return math.Sqrt(sumSquaredMemory(a, b, 4))
}

func sseOptDistance(a, b []float64) float64 {
	return math.Sqrt(sumSquaredRegister(a, b, 2))
}

func avxOptDistance(a, b []float64) float64 {
	return math.Sqrt(sumSquaredRegister(a, b, 4))
}

func sseOptNoSqrtDistance(a, b []float64) float64 {
	return sumSquaredRegister(a, b, 2)
}

func avxOptNoSqrtDistance(a, b []float64) float64 {
	return sumSquaredRegister(a, b, 4)
}

// dispatchTable maps every Kind to its implementation. Built once in init
// so that stage 2 of the SLINK loop pays the kind-to-function dispatch cost
// a single time per Cluster call, not once per distance evaluation.
var dispatchTable [numKinds]DistanceFunc

func init() {
	dispatchTable[Scalar] = scalarDistance
	dispatchTable[SSE] = sseDistance
	dispatchTable[AVX] = avxDistance
	dispatchTable[SSEOpt] = sseOptDistance
	dispatchTable[AVXOpt] = avxOptDistance
	dispatchTable[SSEOptNoSqrt] = sseOptNoSqrtDistance
	dispatchTable[AVXOptNoSqrt] = avxOptNoSqrtDistance
}

// supported reports whether the host can actually run k's SIMD family, per
// the feature flags detected in cpu_detect_*.go.
func (k Kind) supported() bool {
	switch k.Lanes() {
	case 2:
		return hasSSE3
	case 4:
		return hasAVX
	default:
		return true
	}
}

// Select resolves kind to an effective Kind and its DistanceFunc. If kind
// requests a SIMD family unavailable on the current build/CPU, Select
// silently falls back to Scalar, as does an invalid (out of range) kind.
func Select(kind Kind) (Kind, DistanceFunc) {
	if !kind.valid() || !kind.supported() {
		return Scalar, dispatchTable[Scalar]
	}
	return kind, dispatchTable[kind]
}
