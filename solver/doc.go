// Package solver abstracts the constraint-satisfaction backend used to
// reject assignments that violate a SUT's `$assert` constraints.
//
// What: a stack-scoped interface (Solver) over parameter=value equality
// assertions, with a no-op implementation (FakeSolver) for unconstrained
// SUTs and verifiers, and a real CNF-SAT-backed implementation (GiniSolver)
// for constrained ones. Also provides the zero-row feasibility search used
// once per constrained SUT at construction time.
//
// Why: IPOG's constrained extensions push a tentative assignment, check
// satisfiability, and pop — a pattern that maps directly onto an
// incremental SAT solver's assumption stack. Isolating it behind an
// interface lets the unconstrained code path (FakeSolver) pay zero runtime
// cost while the constrained path gets a real decision procedure.
//
// Complexity: push/pop/assert are O(1) amortized (stack operations);
// Check is whatever the underlying SAT solver costs.
//
// Errors: NewGiniSolver never validates the clause set eagerly — a SUT
// whose constraints eliminate every row entirely is a user-authored
// constraint-infeasibility condition, not an algorithmic bug, so it
// surfaces the first time a caller calls Check (or FindZeroRow exhausts
// every candidate), as a recoverable condition the sut package turns into
// an error. Stack misuse (Pop underflowing the current depth, PopAll with
// the wrong count) panics: that is a caller bug in this package's own
// users (ipog, ipogmt), never something a constraint file can trigger.
package solver
