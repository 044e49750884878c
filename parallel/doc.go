// Package parallel provides the fork-join scheduling primitive the slink
// package uses for stages 2 (distance row), 4 (ancestor fix-up), and 5
// (square-root post-pass): Run partitions [0, n) into roughly equal
// contiguous ranges across a configurable worker count and blocks until
// every worker has finished, a barrier at the end of each parallel
// region. Between regions the calling goroutine is the sole active
// actor; stage 3 (the sequential Sibson recurrence) never goes through
// this package.
//
// Config is a small functional-options struct bundling the three
// independent worker counts (T2, T4, T5), the three
// independent enable flags (P2, P4, P5), the kernel.Kind to use for stage
// 2, and whether Cluster should verify operand alignment before it starts.
//
//	cfg := parallel.NewConfig(
//	    parallel.WithKernel(kernel.AVXOpt),
//	    parallel.WithParallelStage2(true),
//	    parallel.WithStage2Workers(8),
//	)
package parallel
