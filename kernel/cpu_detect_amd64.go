//go:build amd64

package kernel

import "golang.org/x/sys/cpu"

// hasSSE3 and hasAVX gate availability of the SSE-family and AVX-family
// kernel kinds. Detected once at process start via golang.org/x/sys/cpu.
var (
	hasSSE3 = cpu.X86.HasSSE3
	hasAVX  = cpu.X86.HasAVX
)
