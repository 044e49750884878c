package kernel

// sumSquaredMemory computes Σ(a[i]-b[i])² using a memory accumulator: each
// block of `lanes` elements is reduced horizontally to a scalar block sum,
// which is then added into the running total. This mirrors a SIMD kernel
// that stores its partial sum back to memory after every block rather than
// keeping it live in a vector register — more store traffic, but a useful
// reference implementation to check the optimized variants against.
//
// len(a) must equal len(b) and be a multiple of lanes; callers guarantee
// this via stride padding (see the data package), so no remainder handling
// is attempted beyond a defensive scalar tail.
func sumSquaredMemory(a, b []float64, lanes int) float64 {
	n := len(a)
	var sum float64
	i := 0
	for ; i+lanes <= n; i += lanes {
		var block float64
		for l := 0; l < lanes; l++ {
			d := a[i+l] - b[i+l]
			block += d * d
		}
		sum += block
	}
	for ; i < n; i++ {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// sumSquaredRegister computes Σ(a[i]-b[i])² using a register accumulator:
// a lane-width array carries partial sums across the entire loop and is
// horizontally reduced exactly once, at the end. This is the shape a real
// _mm_add_pd/_mm256_add_pd reduction takes.
func sumSquaredRegister(a, b []float64, lanes int) float64 {
	n := len(a)
	var acc [4]float64 // widest lane width in use (AVX, 4 lanes); SSE uses the first 2
	i := 0
	for ; i+lanes <= n; i += lanes {
		for l := 0; l < lanes; l++ {
			d := a[i+l] - b[i+l]
			acc[l] += d * d
		}
	}
	var sum float64
	for l := 0; l < lanes; l++ {
		sum += acc[l]
	}
	for ; i < n; i++ {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
