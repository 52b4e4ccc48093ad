// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for product kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic results: options only decide how rows are scheduled,
//     never the arithmetic or its order within a result element.
//   - No global state: every Matrix carries its own Options and hands them
//     down to the matrices its operations return.
package matrix

import (
	"github.com/Paradox644/mp2-lab2-matrix/internal/parallel"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultMinRowsPerWorker is the smallest number of rows one goroutine
	// handles in Mul/MulVec. Smaller matrices run on the calling goroutine.
	DefaultMinRowsPerWorker = parallel.DefaultMinChunkSize
)

// DefaultWorkers is the goroutine budget for Mul/MulVec (one per CPU).
var DefaultWorkers = parallel.DefaultConfig().NumWorkers

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicWorkersInvalid     = "matrix: WithWorkers: n must be >= 1"
	panicRowsPerWorkerValid = "matrix: WithMinRowsPerWorker: n must be >= 1"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (last wins).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	workers          int // >= 1; 1 means sequential
	minRowsPerWorker int // >= 1
}

// defaultOptions returns the documented defaults, taken from the row
// scheduler's own defaults.
func defaultOptions() Options {
	cfg := parallel.DefaultConfig()

	return Options{
		workers:          max(cfg.NumWorkers, 1),
		minRowsPerWorker: max(cfg.MinChunkSize, 1),
	}
}

// gatherOptions applies opts over the defaults in order.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithWorkers caps the number of goroutines used by Mul and MulVec.
// Panics when n < 1.
//
// Complexity:
//   - Time O(1), Space O(1).
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(o *Options) { o.workers = n }
}

// WithMinRowsPerWorker sets the smallest chunk of rows a goroutine takes.
// Panics when n < 1.
func WithMinRowsPerWorker(n int) Option {
	if n < 1 {
		panic(panicRowsPerWorkerValid)
	}

	return func(o *Options) { o.minRowsPerWorker = n }
}

// WithSequential runs every kernel on the calling goroutine.
func WithSequential() Option {
	return func(o *Options) { o.workers = 1 }
}

// parallelConfig maps Options onto the row scheduler.
func (o Options) parallelConfig() parallel.Config {
	if o.workers < 2 {
		return parallel.Sequential()
	}

	return parallel.Config{
		Enabled:      true,
		NumWorkers:   o.workers,
		MinChunkSize: o.minRowsPerWorker,
	}
}
