// Package data exposes a uniform "point-at-index" view over the two
// logical shapes the SLINK engine accepts: a single contiguous,
// stride-padded buffer (Linearized), and an ordered sequence of per-point
// buffers (Indirect). Both satisfy the Points interface, which is the only
// capability kernel dispatch and the SLINK loop need: Len, Dim, Stride, and
// PointPadded.
//
// 🚀 Why a Points interface instead of one adapter type per layout?
//
//	Every downstream consumer (kernel dispatch, the SLINK loop, the MST
//	oracle in the tests) needs the same four capabilities and nothing
//	else, so the whole space of possible container shapes collapses into
//	two concrete types behind one small interface. A caller with a third
//	layout implements Points and everything downstream keeps working.
//
// Stride and alignment:
//
//	Stride(dim, lanes) rounds dim up to a multiple of lanes (2 for SSE, 4
//	for AVX, 1 for Scalar) so that SIMD-width kernels never read past a
//	point's padded region. CheckAlignment verifies every point's first
//	coordinate satisfies the byte alignment a SIMD kernel.Kind requires;
//	on mismatch it returns ErrAlignmentViolation, which slink.Cluster
//	surfaces as slink.ErrAlignmentViolation.
package data
