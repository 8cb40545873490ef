// Package ipogmt implements a multithreaded variant of IPOG: horizontal
// extension's per-row score computation is farmed out across worker
// goroutines while the sequential value-selection and coverage-map commit
// stays on the calling goroutine; vertical extension, whose cost is
// dominated by solver/absorption bookkeeping rather than scoring, runs
// single-threaded via package ipog exactly as it would outside this
// package.
//
// What: RunUnconstrained/RunConstrained drive the same per-parameter IPOG
// loop as package ipog, switching horizontal extension to its threaded
// implementation whenever the active PC count for that iteration meets or
// exceeds a lower limit derived from the worker count; below that
// threshold the single-threaded ipog implementation runs directly, since
// spinning up workers would not pay for itself.
//
// Why: the original splits each row's active PC range across a fixed
// worker pool that keeps running ahead of the main thread, reconciled
// through a lock-free ring buffer and atomic busy-wait handshake its own
// authors document as unsafe. This package keeps the same split-by-PC-range
// axis but re-synchronizes with a sync.WaitGroup barrier once per row:
// workers only ever read the coverage map, never write it, so there is
// nothing to reconcile and no unsafe code is needed. Which PC sub-range a
// worker takes is not fixed but cycles every row (CyclingRanges/
// CyclingRange), so across many rows every worker ends up covering the
// whole PC space rather than always the same slice.
//
// The constrained variant additionally runs a dedicated constraint-prefetch
// goroutine on its own solver instance, computing each upcoming row's
// feasible value set ahead of when horizontal extension needs it and
// publishing it into a fixed-size ring; scoring and value selection then
// work only over that pre-filtered set instead of probing the solver one
// candidate at a time per row.
//
// Complexity: horizontal extension's scoring work is O(rows/workers ·
// active PCs) per worker, run concurrently; the sequential commit step
// remains O(rows) but touches only already-computed scores.
//
// Errors: same as package ipog — PC-list construction failures and, for a
// constrained run, sut.ErrInfeasible-class solver errors.
//
// RunUnconstrained and RunConstrained accept WithThreadCount (default
// DefaultThreadCount, derived from the host's logical CPUs) and, for
// RunConstrained, WithFilterMap, mirroring ipog.WithFilterMap.
package ipogmt
