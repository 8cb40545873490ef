// Package covmap implements the Coverage Map (CM): a packed bitset that
// marks every (parameter-combination, value-tuple) interaction as covered
// or uncovered during one IPOG iteration, plus the base-offset/stride table
// that makes any interaction's bit index computable in O(t).
//
// What:
//
//   - New precomputes, once, the per-PC base offset and per-dimension
//     strides (see the index formula in the GetBaseIndex doc comment) and
//     allocates the bitset to the largest size any future Initialise call
//     will need.
//   - Initialise resets the active prefix of the map for one IPOG
//     iteration (one parameter being added).
//   - GetHighScore and its *Sub/*Masked/*Triple variants compute, for a
//     partially filled row, the list of bit indices each candidate value
//     of the current parameter would newly cover — this is the scoring
//     hot path that both the single- and multi-threaded horizontal
//     extensions spend almost all their time in.
//   - SetIndex/SetIndices/SetIndicesSub commit scoring decisions back
//     into the bitset and track the Uncovered counter.
//
// Why: packing coverage into a flat bitset keyed by a precomputed
// offset/stride table turns "is this t-way interaction covered" into one
// array read instead of a hash lookup, which is what makes IPOG's inner
// loop fast enough to run over arrays with tens of thousands of rows.
//
// Complexity: New is O(PCs); Initialise is O(active interactions / 64),
// one write per map word it zeroes; a single
// GetHighScore call is O(active PCs); a full horizontal-extension pass is
// O(rows × active PCs).
//
// Errors: none recoverable — out-of-range parameter indices or malformed
// PCLs are programmer errors and panic, matching the original's
// debug-assertion-guarded unsafe indexing.
package covmap
