package strided

import "runtime"

// DefaultMinChunk is the default smallest number of logical elements
// handed to one MapParallel worker.
const DefaultMinChunk = 4096

// ParallelConfig controls how MapParallel splits work.
type ParallelConfig struct {
	// Workers is the maximum number of goroutines running at once.
	Workers int

	// MinChunk is the smallest number of logical elements per chunk.
	MinChunk int
}

// ParallelOption mutates a ParallelConfig.
type ParallelOption func(*ParallelConfig)

// DefaultParallelConfig returns one worker per GOMAXPROCS slot and
// DefaultMinChunk.
func DefaultParallelConfig() ParallelConfig {
	return ParallelConfig{
		Workers:  runtime.GOMAXPROCS(0),
		MinChunk: DefaultMinChunk,
	}
}

// WithWorkers sets the maximum number of concurrent workers.
func WithWorkers(workers int) ParallelOption {
	return func(cfg *ParallelConfig) {
		if workers > 0 {
			cfg.Workers = workers
		}
	}
}

// WithMinChunk sets the smallest chunk size in logical elements.
func WithMinChunk(minChunk int) ParallelOption {
	return func(cfg *ParallelConfig) {
		if minChunk > 0 {
			cfg.MinChunk = minChunk
		}
	}
}

// ApplyParallelOptions applies zero or more options to the default config.
func ApplyParallelOptions(opts ...ParallelOption) ParallelConfig {
	cfg := DefaultParallelConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
