// Package mca holds the rolling test table an IPOG run produces.
//
// What: a growable slice of rows, each carrying a parallel don't-care bitmask
// so extensions can tell a not-yet-assigned cell from a concrete zero value.
// A secondary index, VerticalExtensionRows, lists which rows are still worth
// probing during vertical extension.
//
// Why: horizontal extension mutates existing rows in place; vertical
// extension both mutates rows and appends new ones. Packing the don't-care
// state as a bitmask instead of a sentinel-per-cell scan lets both paths
// test "does this row still have open cells in range X" in O(1).
//
// Complexity: construction is O(prod of first t levels). Appending a row is
// O(N). Recomputing VerticalExtensionRows is O(rows · N/64).
//
// Errors: out-of-range parameter or row indices panic; these are algorithmic
// invariant violations, never user-facing.
package mca
