package data

import "errors"

// Sentinel errors for the data package. Messages are prefixed "data: ";
// constructors return these directly and callers match them with
// errors.Is, never string comparison.
var (
	// ErrInvalidDimensions indicates n <= 0, dim <= 0, or stride < dim.
	ErrInvalidDimensions = errors.New("data: invalid dimensions")

	// ErrBufferTooSmall indicates a backing buffer is shorter than n*stride
	// (Linearized) or shorter than stride for some entry (Indirect).
	ErrBufferTooSmall = errors.New("data: backing buffer too small")

	// ErrAlignmentViolation indicates a point's first coordinate does not
	// satisfy the byte alignment a SIMD kernel requires.
	ErrAlignmentViolation = errors.New("data: operand alignment violation")
)

// Points is the capability set the kernel and slink packages need from a
// dataset: random-access to each point's padded coordinate slice, plus the
// shape of the dataset. Both operations are O(1).
type Points interface {
	// Len returns the number of points, N.
	Len() int

	// Dim returns the ambient dimension, d.
	Dim() int

	// Stride returns the per-point footprint in doubles (Stride() >= Dim()).
	Stride() int

	// PointPadded returns point i's coordinates, zero-padded to Stride()
	// doubles. The returned slice must not be retained or mutated by the
	// caller; its backing array is owned by the Points implementation.
	PointPadded(i int) []float64
}

// Stride computes the per-point allocation footprint in doubles for a
// requested SIMD lane width w (w ∈ {1, 2, 4}), rounding dim up to the next
// multiple of w so that packed loads never read past a point's padding.
// w <= 1 means no rounding (Scalar kernels).
func Stride(dim, lanes int) int {
	if lanes <= 1 {
		return dim
	}
	if dim%lanes == 0 {
		return dim
	}
	return lanes * ((dim / lanes) + 1)
}
