package covmap

import (
	"github.com/covarray/covarray/numid"
	"github.com/covarray/covarray/pclist"
)

// GetBaseIndex computes the base index for PC pcID's interaction in row,
// per the layout in §3: base = sizes[0] + Σ x_i·sizes[i] + x_{t-1}, scaled
// by v_p. It returns ok=false if any of the PC's members hold the
// don't-care sentinel in row — such an interaction is undefined.
func GetBaseIndex[V numid.Unsigned, P numid.Unsigned, L numid.Unsigned](c *CoverageMap[V], pcID int, pcl *pclist.PCList[P, L], row []V) (index uint64, ok bool) {
	sizes := c.Sizes[pcID]
	pc := pcl.PCs[pcID]

	baseIndex := sizes[0]
	for i := 1; i < c.strength-1; i++ {
		value := row[pc[i-1]]
		if numid.IsDontCare(value) {
			return 0, false
		}
		baseIndex += uint64(value) * sizes[i]
	}

	value := row[pc[c.strength-2]]
	if numid.IsDontCare(value) {
		return 0, false
	}
	baseIndex += uint64(value)

	baseIndex *= uint64(c.valueChoices)
	return baseIndex, true
}

// GetBaseIndexUnchecked is GetBaseIndex without the don't-care test. Use it
// only when the caller has already established that row holds concrete
// values at every member of pc (e.g. via a don't-care location mask).
func GetBaseIndexUnchecked[V numid.Unsigned, P numid.Unsigned, L numid.Unsigned](c *CoverageMap[V], pcID int, pcl *pclist.PCList[P, L], row []V) uint64 {
	sizes := c.Sizes[pcID]
	pc := pcl.PCs[pcID]

	baseIndex := sizes[0]
	for i := 1; i < c.strength-1; i++ {
		baseIndex += uint64(row[pc[i-1]]) * sizes[i]
	}
	baseIndex += uint64(row[pc[c.strength-2]])

	baseIndex *= uint64(c.valueChoices)
	return baseIndex
}
