package pclist

import "github.com/covarray/covarray/numid"

// PCList holds every Parameter Combination (PC) relevant to an IPOG run of
// a given strength, in the fixed deterministic order described in the
// package doc.
//
// P is the unsigned type used for parameter ids; L is the unsigned type
// used for the per-PC location bitmask (OR of the bits of its members).
type PCList[P numid.Unsigned, L numid.Unsigned] struct {
	// Strength is t: the size of each PC is Strength-1.
	Strength int

	// PCs holds every parameter combination, each a slice of length
	// Strength-1 in strictly ascending order.
	PCs [][]P

	// Locations holds, for each PC at the same index, the bitmask OR of
	// its members' bits.
	Locations []L

	// Sizes[k] is the number of PCs active once parameter (Strength-1+k)
	// has joined the coverage map; len(Sizes) == parameterCount-Strength.
	Sizes []int
}

// Len returns the total number of PCs (the full, unprefixed count).
func (l *PCList[P, L]) Len() int {
	return len(l.PCs)
}
