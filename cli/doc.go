// Package cli parses and validates the command-line surface shared by
// cmd/covarray-s, cmd/covarray-m, and cmd/check-mca, and drives the common
// load-SUT/generate/write pipeline the two generator binaries need.
//
// What: ParseArgs builds a pflag.FlagSet, validates the parsed flags the
// way the original's validate_args did, and returns a Config; Run loads a
// `.cocoa` file, checks that the strength does not exceed the parameter
// count (the original's check_sizes), picks the constrained or
// unconstrained path, calls into whichever Dispatch a binary supplies
// (ipog or ipogmt), and writes the result through package writer.
//
// Why: a Dispatch pair of plain functions stands in for the original's
// compile-time main! macro, which monomorphized unconstrained/constrained
// generator functions per strength; Go has no const generics, and strength
// here is already a runtime int that ipog/ipogmt accept directly, so the
// macro's real job — picking which of two functions to call — is just a
// struct field.
//
// Complexity: ParseArgs is O(len(args)); Run is O(cost of the chosen
// generator) plus O(rows·parameters) for writing.
//
// Errors: ParseArgs returns the sentinel errors in errors.go for
// malformed or missing flags (all but ErrStrengthExceedsParameters, which
// Run returns); Run also propagates sut.ParseError,
// sut.ErrOverflow, sut.ErrInfeasible, and writer/ipog/ipogmt errors
// unchanged.
package cli
