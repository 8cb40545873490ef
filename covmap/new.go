package covmap

import (
	"github.com/covarray/covarray/numid"
	"github.com/covarray/covarray/pclist"
)

// New precomputes the per-PC base offset and stride table for the given
// parameters and PC list, and allocates the bitset to the largest size any
// future Initialise call will need. Memory allocation happens only here;
// every later call reuses this storage.
func New[V numid.Unsigned, P numid.Unsigned, L numid.Unsigned](parameters []V, pcl *pclist.PCList[P, L]) *CoverageMap[V] {
	strength := pcl.Strength
	var offset uint64
	sizes := make([][]uint64, len(pcl.PCs)+1)
	for i := range sizes {
		sizes[i] = make([]uint64, strength-1)
	}

	for pcID, pc := range pcl.PCs {
		row := sizes[pcID]
		row[0] = offset

		vecSize := uint64(parameters[pc[strength-2]])
		for pcIndex := strength - 3; pcIndex >= 0; pcIndex-- {
			row[pcIndex+1] = vecSize
			vecSize *= uint64(parameters[pc[pcIndex]])
		}

		offset += vecSize
	}
	sizes[len(pcl.PCs)][0] = offset

	var maxCoverageMap uint64
	for i, pcListLen := range pcl.Sizes {
		valueCount := uint64(parameters[strength+i])
		needed := valueCount * sizes[pcListLen][0]
		if needed > maxCoverageMap {
			maxCoverageMap = needed
		}
	}

	mapCap := (maxCoverageMap >> bitShift) + 1

	return &CoverageMap[V]{
		Map:         make([]uint64, 0, mapCap),
		Sizes:       sizes,
		strength:    strength,
		allSizesLen: append([]int(nil), pcl.Sizes...),
		parameters:  append([]V(nil), parameters...),
	}
}

// Initialise resets the Coverage Map for the IPOG iteration adding
// parameter atParameter. It zeroes the active prefix of the map and
// resizes it to exactly the bytes this iteration needs.
func (c *CoverageMap[V]) Initialise(atParameter int) {
	if atParameter >= len(c.parameters) {
		panic("covmap: atParameter out of range")
	}
	c.valueChoices = c.parameters[atParameter]
	idx := atParameter - c.strength
	if idx < 0 || idx >= len(c.allSizesLen) {
		panic("covmap: atParameter not reachable from this PCL")
	}
	c.sizesLen = c.allSizesLen[idx]
	if c.sizesLen >= len(c.Sizes) {
		panic("covmap: sizesLen out of range")
	}
	c.Uncovered = int(c.Sizes[c.sizesLen][0]) * numid.AsUsize(c.valueChoices)

	length := (c.Uncovered >> bitShift) + 1
	if length > cap(c.Map) {
		panic("covmap: initialise requires more capacity than allocated")
	}

	c.Map = c.Map[:length]
	for i := range c.Map {
		c.Map[i] = 0
	}
}
