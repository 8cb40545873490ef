// Package valuegen iterates over the value tuples of a single Parameter
// Combination (PC) plus the parameter currently being added, in the fixed
// odometer order the coverage map's indexing scheme assumes.
//
// What: Generator holds the per-position value ceiling (max_values) for a
// PC of size strength-1 plus the joining parameter, and advances a value
// tuple one step (NextArray), several steps at once (SkipArray, for
// word-skipping past fully-covered map blocks), or in reverse carry order
// (NextVectorInverse). Vertical extension and check-mca use NextArray and
// SkipArray; NextVector and NextVectorInverse have no caller in this
// module outside the package's tests.
//
// Why: IPOG interactions are small mixed-radix tuples; representing their
// enumeration as an explicit digit-carry odometer (rather than computing
// and decomposing a flat index) keeps the coverage map's block-skipping
// fast path (§4.4) working directly against the same counters vertical
// extension uses.
//
// Complexity: NextArray/NextVectorInverse are O(strength) worst case (full
// carry chain), amortized O(1). SkipArray is O(strength) regardless of
// skip size.
//
// Errors: none; Generator has no failure mode, only the boolean
// "still within range" result each step reports.
package valuegen
