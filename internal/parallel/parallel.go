// Package parallel splits index ranges across goroutines for row-wise
// matrix kernels.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls how For distributes work.
type Config struct {
	Enabled      bool // Run on several goroutines when n is large enough.
	NumWorkers   int  // Upper bound on goroutines.
	MinChunkSize int  // Minimum indices per goroutine.
}

// DefaultMinChunkSize is the smallest number of indices one goroutine takes.
const DefaultMinChunkSize = 16

// DefaultConfig uses one worker per CPU and chunks of at least DefaultMinChunkSize.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: DefaultMinChunkSize,
	}
}

// Sequential returns a Config that always runs on the calling goroutine.
func Sequential() Config {
	return Config{NumWorkers: 1, MinChunkSize: 1}
}

// For executes f(i) for every i in [0, n) and returns once all calls finished.
// Each index is visited exactly once; chunks are contiguous, so f may write to
// per-index output slots without locking.
func For(n int, f func(i int), cfg Config) {
	if !cfg.Enabled || cfg.NumWorkers < 2 || n < 2*max(cfg.MinChunkSize, 1) {
		for i := 0; i < n; i++ {
			f(i)
		}
		return
	}

	var wg sync.WaitGroup
	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize)

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			for i := s; i < e; i++ {
				f(i)
			}
		}(start, end)
	}
	wg.Wait()
}
