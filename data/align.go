package data

import "unsafe"

// isAligned reports whether s's first element sits at an address that is a
// multiple of alignmentBytes. An empty slice is trivially aligned.
func isAligned(s []float64, alignmentBytes int) bool {
	if alignmentBytes <= 0 || len(s) == 0 {
		return true
	}
	addr := uintptr(unsafe.Pointer(&s[0]))
	return addr%uintptr(alignmentBytes) == 0
}

// CheckAlignment verifies that every point in points satisfies
// alignmentBytes (16 for SSE-family kernels, 32 for AVX-family, per
// kernel.Kind.RequiredAlignment). alignmentBytes <= 0 always succeeds
// (Scalar requires no alignment).
//
// This is an O(n) scan; callers gate it behind a construction-time
// CheckAlignment option (parallel.Config.CheckAlignment) since it is only
// needed once per Cluster call, before the first SIMD kernel invocation.
func CheckAlignment(points Points, alignmentBytes int) error {
	if alignmentBytes <= 0 {
		return nil
	}
	for i := 0; i < points.Len(); i++ {
		if !isAligned(points.PointPadded(i), alignmentBytes) {
			return ErrAlignmentViolation
		}
	}
	return nil
}
