//go:build !amd64

package kernel

// On non-amd64 targets there is no SSE/AVX to detect; every SIMD-family
// Kind falls back to Scalar via Select.
var (
	hasSSE3 = false
	hasAVX  = false
)
