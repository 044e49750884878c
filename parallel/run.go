package parallel

import (
	"runtime"
	"sync"
)

// Run partitions [0, n) into contiguous, roughly equal ranges and calls fn
// once per range, with range [0, firstChunkEnd) always executed on the
// calling goroutine and every remaining range executed on its own
// goroutine. Run blocks until every goroutine has returned: the fork-join
// barrier between one parallel region and the next.
//
// enabled == false forces a single range (the stage runs entirely on the
// calling goroutine), regardless of workers. workers <= 0 resolves to
// runtime.GOMAXPROCS(0). workers is clamped to n so no goroutine is ever
// started for an empty range.
//
// Partitioning is static: every stage-2/stage-4/stage-5 iteration does
// the same constant-ish amount of work, so work stealing would buy
// nothing here.
func Run(enabled bool, workers, n int, fn func(lo, hi int)) {
	if n <= 0 {
		return
	}

	w := workers
	switch {
	case !enabled:
		w = 1
	case w <= 0:
		w = runtime.GOMAXPROCS(0)
	}
	if w > n {
		w = n
	}
	if w <= 1 {
		fn(0, n)
		return
	}

	chunk := (n + w - 1) / w

	var wg sync.WaitGroup
	for start := chunk; start < n; start += chunk {
		end := start + chunk
		if end > n {
			end = n
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(start, end)
	}

	// The calling goroutine executes the first range inline instead of
	// spawning a goroutine for it — avoids a wasted goroutine whenever
	// workers == 1 or the region is disabled.
	firstEnd := chunk
	if firstEnd > n {
		firstEnd = n
	}
	fn(0, firstEnd)

	wg.Wait()
}
