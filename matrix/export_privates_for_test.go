// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for the Options snapshot
//
// Purpose:
//   - Expose a read-only view of the internal Options to matrix_test ONLY.
//   - The file name ends in _test.go, so it never reaches production builds.
//
// Risks & Maintenance:
//   - Keep OptionsSnapshot in sync with internal Options fields.

import (
	"github.com/Paradox644/mp2-lab2-matrix/internal/parallel"
	"github.com/Paradox644/mp2-lab2-matrix/vector"
)

// OptionsSnapshot is a stable, exported copy of Options for assertions.
type OptionsSnapshot struct {
	Workers          int
	MinRowsPerWorker int
	Parallel         parallel.Config
}

func snapshotOf(o Options) OptionsSnapshot {
	return OptionsSnapshot{
		Workers:          o.workers,
		MinRowsPerWorker: o.minRowsPerWorker,
		Parallel:         o.parallelConfig(),
	}
}

// GatherOptionsSnapshot_TestOnly resolves opts over the defaults.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	return snapshotOf(gatherOptions(opts...))
}

// OptionsOf_TestOnly returns the options carried by m.
func OptionsOf_TestOnly[T vector.Element](m *Matrix[T]) OptionsSnapshot {
	return snapshotOf(m.opts)
}
