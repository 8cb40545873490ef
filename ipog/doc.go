// Package ipog implements the single-threaded In-Parameter-Order, General
// algorithm: horizontal extension fills the newly-added parameter's column
// in existing rows; vertical extension appends or absorbs rows for any
// interaction horizontal extension left uncovered.
//
// What: RunUnconstrained and RunConstrained drive one IPOG pass over a
// parameter vector from parameter t (the strength) through N-1, each
// iteration re-initialising the coverage map and alternating horizontal
// then vertical extension until every interaction introduced by that
// parameter is covered.
//
// Why: IPOG is greedy-but-bounded: each new parameter only ever needs to
// consider interactions that include it, so the coverage map only tracks
// the interactions active for the current iteration rather than the whole
// array at once.
//
// Complexity: each iteration is O(rows · active PCs) for horizontal
// extension and O(uncovered interactions · vertical_extension_rows) for
// vertical extension, dominating the algorithm's overall runtime.
//
// Errors: RunUnconstrained/RunConstrained return an error only if the
// underlying PC-list construction rejects the strength/parameter count
// (see package pclist); a constrained run additionally surfaces
// sut.ErrInfeasible-class errors from its solver.
//
// RunConstrained takes an optional WithFilterMap, which runs the
// experimental filter-map pre-pass (disabled by default) before each
// iteration's extension.
package ipog
