package slink

import (
	"errors"

	"github.com/slink-go/slink/data"
)

// Sentinel errors for Cluster. Prefixed "slink: ", returned directly,
// matched with errors.Is, never constructed ad hoc from a format string.
var (
	// ErrInvalidArgument covers n == 0, d == 0, n*d overflow, and
	// undersized pi/lambda output slices. Always reported before any
	// mutation of pi or lambda.
	ErrInvalidArgument = errors.New("slink: invalid argument")

	// ErrAllocationFailure names the scratch row M failing to allocate.
	// Cluster never returns it: in Go a failed make of M aborts the
	// process instead of producing an error.
	ErrAllocationFailure = errors.New("slink: scratch row allocation failed")
)

// ErrAlignmentViolation is reported when a SIMD kernel is given a
// misaligned operand and CheckAlignment is enabled. It is the same
// sentinel data.CheckAlignment returns, re-exported here so callers of
// Cluster can match every failure mode against this one package.
var ErrAlignmentViolation = data.ErrAlignmentViolation
