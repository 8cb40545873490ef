// Package sut parses `.cocoa` System Under Test files and represents the
// result as SUT / ConstrainedSUT.
//
// What: a hand-written recursive-descent parser for the parameter-list and
// `$assert` constraint grammar, an Expr AST (And/Or/Implies/Not/Eq) for
// constraint formulas, and the SUT/ConstrainedSUT container types plus the
// zero-row-feasible solver construction described in §4.5.
//
// Why: the grammar is small and line-oriented; a hand-rolled scanner reads
// more directly than a parser-combinator dependency would for a format this
// size, matching the effort level of the rest of this module's ambient
// code (no pack example reaches for a parser-combinator library either).
//
// Complexity: parsing is O(len(text)). GetSolver is O(constraints) to
// encode plus whatever FindZeroRow's binary search costs the SAT backend.
//
// Errors: malformed input returns a recoverable *ParseError; a constraint
// set that admits no satisfying row at all returns ErrInfeasible. Parameter
// or value counts that overflow the chosen V/P width return ErrOverflow.
package sut
