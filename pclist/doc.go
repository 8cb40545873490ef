// Package pclist builds the Parameter-Combination List (PCL): every
// size-(t−1) subset of the parameters fixed so far, in the deterministic
// order the IPOG algorithm needs to grow its coverage map one parameter at
// a time.
//
// What:
//
//   - Build constructs pcs (the subsets themselves), locations (one
//     bitmask per subset, OR of its members' bits) and sizes (prefix
//     lengths, one per IPOG iteration).
//   - Prefix k of pcs (length sizes[k]) is exactly the set of
//     combinations whose largest member is ≤ t-1+k: the combinations
//     relevant once parameter t-1+k has joined the coverage map.
//
// Why: the coverage map's whole indexing scheme is built on top of this
// fixed enumeration order, so it has to be computed once, deterministically,
// and then reused read-only for the rest of a run.
//
// Complexity: O(C(N-1, t-1)) time and space, where N is the parameter count.
//
// Errors:
//
//	ErrStrengthOutOfRange - t is not within [2, 12].
//	ErrTooFewParameters   - parameterCount < t.
package pclist
