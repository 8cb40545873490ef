// Package checker re-derives coverage from a written result file and
// confirms it is genuinely a covering array of the requested strength,
// the way cmd/check-mca is meant to be used: as an independent auditor of
// whatever cmd/covarray-s or cmd/covarray-m produced.
//
// What: CheckFile reads the header/body format package writer emits,
// resolves each cell back to a value id against s, replays every row
// through solv (a FakeSolver accepts any row, for unconstrained SUTs) and
// into a fresh coverage map built one parameter wider than s, then reports
// whether every strength-way interaction over s's real parameters ended up
// covered.
//
// Why: appending a single dummy level-1 parameter and driving the existing
// covmap/pclist machinery at that new column is the same trick the
// original's own check-mca binary uses to reuse the IPOG-iteration
// coverage bookkeeping for a one-shot verification pass instead of writing
// a separate combinatorics routine.
//
// Complexity: O(rows·parameters) to replay, O(interactions) to scan for
// the first uncovered one if the array is not covering.
//
// Errors: ErrColumnMismatch if the file's header doesn't match s; a
// *NotCoveringError naming the first uncovered interaction found.
//
// Limitation: the dummy-parameter trick needs a PC list one strength
// higher than the one being checked, so CheckFile cannot verify strength
// pclist.MaxStrength (it can verify up to pclist.MaxStrength-1) against a
// SUT with more parameters than the requested strength — the same ceiling
// the original's own const-generic STRENGTH+1 instantiation carries.
package checker
