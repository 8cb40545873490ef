// Package numid supplies the unsigned-integer width abstraction shared by
// every other covarray package: parameter ids, value ids, location bitmasks,
// and coverage-map words are all "just some unsigned integer type", and the
// algorithms never need to know which one.
//
// What:
//
//   - Unsigned is the type constraint satisfied by uint8/uint16/uint32/uint64.
//   - DontCare[T] is the sentinel value (T's maximum) used to mark a cell
//     that carries no concrete value yet.
//   - Bit, MaskLow, MaskHigh, CountOnes wrap the handful of bit operations
//     the coverage map and location bitmasks need, generic over Unsigned.
//
// Why:
//
//   - The original design parameterises almost every algorithm over the
//     width chosen for value ids, parameter ids, and location words, so a
//     15-parameter SUT can use uint16 locations while a 40-parameter SUT
//     needs uint64 locations (one location bit per parameter). Go has no const generics to drive this choice
//     through array sizes, so width alone is captured as a type parameter;
//     the strength t is carried as a plain runtime field elsewhere.
//
// Complexity: every operation here is O(1).
//
// Errors: none; this package only supplies value-level helpers.
package numid
