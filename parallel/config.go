package parallel

import "github.com/slink-go/slink/kernel"

// Config bundles everything the SLINK engine needs to pick a distance
// kernel and schedule its three parallel regions. The zero value is not
// meaningful on its own; use DefaultConfig or NewConfig.
type Config struct {
	// Kernel selects the stage-2 distance algorithm.
	Kernel kernel.Kind

	// Stage2Workers, Stage4Workers, Stage5Workers are T2, T4, T5: the
	// worker count for each parallel region. 0 means "implementation
	// default" (runtime.GOMAXPROCS(0)).
	Stage2Workers int
	Stage4Workers int
	Stage5Workers int

	// ParallelStage2, ParallelStage4, ParallelStage5 are P2, P4, P5:
	// independent booleans enabling the corresponding parallel region.
	// When false, the stage always runs on the calling goroutine
	// regardless of the configured worker count.
	ParallelStage2 bool
	ParallelStage4 bool
	ParallelStage5 bool

	// CheckAlignment enables the data package's operand alignment check,
	// run over every point once when Cluster starts, before any output is
	// written; mismatches surface as slink.ErrAlignmentViolation.
	CheckAlignment bool
}

// DefaultConfig returns Config{Kernel: kernel.Scalar}, all three parallel
// regions disabled, all three worker counts at "implementation default",
// and CheckAlignment enabled.
//
// CheckAlignment defaults to true: a misaligned SIMD operand should fail
// loudly rather than silently read past a kernel's actual data region.
// Callers on a hot measurement path can opt out with
// WithAlignmentCheck(false).
func DefaultConfig() Config {
	return Config{
		Kernel:         kernel.Scalar,
		CheckAlignment: true,
	}
}

// Option configures a Config constructed via NewConfig.
type Option func(*Config)

// WithKernel sets the stage-2 distance kernel.
func WithKernel(k kernel.Kind) Option {
	return func(c *Config) { c.Kernel = k }
}

// WithStage2Workers sets T2, the stage-2 worker count. 0 means default.
func WithStage2Workers(n int) Option {
	return func(c *Config) { c.Stage2Workers = n }
}

// WithStage4Workers sets T4, the stage-4 worker count. 0 means default.
func WithStage4Workers(n int) Option {
	return func(c *Config) { c.Stage4Workers = n }
}

// WithStage5Workers sets T5, the stage-5 worker count. 0 means default.
func WithStage5Workers(n int) Option {
	return func(c *Config) { c.Stage5Workers = n }
}

// WithParallelStage2 toggles P2, stage 2's parallel region.
func WithParallelStage2(enabled bool) Option {
	return func(c *Config) { c.ParallelStage2 = enabled }
}

// WithParallelStage4 toggles P4, stage 4's parallel region.
func WithParallelStage4(enabled bool) Option {
	return func(c *Config) { c.ParallelStage4 = enabled }
}

// WithParallelStage5 toggles P5, stage 5's parallel region.
func WithParallelStage5(enabled bool) Option {
	return func(c *Config) { c.ParallelStage5 = enabled }
}

// WithAlignmentCheck toggles the data package's operand alignment check.
func WithAlignmentCheck(enabled bool) Option {
	return func(c *Config) { c.CheckAlignment = enabled }
}

// NewConfig builds a Config starting from DefaultConfig and applying opts
// in order.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
