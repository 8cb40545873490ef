package covmap

import (
	"github.com/covarray/covarray/numid"
	"github.com/covarray/covarray/pclist"
)

// SetIndex marks index as covered. If it was already covered this is a
// no-op and returns false; otherwise Uncovered is decremented and it
// returns true.
func (c *CoverageMap[V]) SetIndex(index uint64) bool {
	if c.get(index) {
		return false
	}
	c.setBit(index)
	c.Uncovered--
	return true
}

// SetIndices marks every index in indices as covered and decrements
// Uncovered by len(indices). Callers must ensure none of the indices is
// already covered.
func (c *CoverageMap[V]) SetIndices(indices []uint64) {
	c.Uncovered -= len(indices)
	c.SetIndicesSub(indices)
}

// SetIndicesUpdated is SetIndices but decrements Uncovered by
// len(indices)-filtered, for lists that UpdateScores has already filtered.
func (c *CoverageMap[V]) SetIndicesUpdated(indices []uint64, filtered int) {
	c.Uncovered -= len(indices) - filtered
	c.SetIndicesSub(indices)
}

// SetIndicesSub marks every index in indices as covered without touching
// Uncovered; used by worker goroutines that must not mutate the shared
// counter.
func (c *CoverageMap[V]) SetIndicesSub(indices []uint64) {
	for _, index := range indices {
		c.setBit(index)
	}
}

// UpdateScores zeroes any entry of vec that is already covered and returns
// how many entries were zeroed. Callers use the zero count together with
// SetIndicesUpdated to avoid double-counting coverage that happened
// between a worker computing scores and main committing them.
func (c *CoverageMap[V]) UpdateScores(vec []uint64) int {
	result := 0
	for i, index := range vec {
		if c.get(index) {
			vec[i] = 0
			result++
		}
	}
	return result
}

// SetCoveredRowSimpleSub marks, for every PC in [start,end) whose members
// are concrete in row, the interaction at row[atParameter] as covered.
func SetCoveredRowSimpleSub[V numid.Unsigned, P numid.Unsigned, L numid.Unsigned](c *CoverageMap[V], atParameter int, pcl *pclist.PCList[P, L], row []V, start, end int) {
	value := uint64(row[atParameter])
	for pcID := start; pcID < end; pcID++ {
		if baseIndex, ok := GetBaseIndex(c, pcID, pcl, row); ok {
			c.SetIndex(baseIndex + value)
		}
	}
}

// SetZeroCovered marks, for every active PC, the interaction whose value
// tuple is all zeros at the current parameter as covered, accounting for
// the MCA's all-zeros row 0. Decrements Uncovered by the active PC count.
func (c *CoverageMap[V]) SetZeroCovered() {
	c.Uncovered -= c.sizesLen
	valueChoices := numid.AsUsize(c.valueChoices)
	for i := 0; i < c.sizesLen; i++ {
		index := c.Sizes[i][0] * uint64(valueChoices)
		c.setBit(index)
	}
}

// SetZeroCoveredSub is SetZeroCovered restricted to PCs [start,end); only
// decrements Uncovered when start is zero. Used to split the zero-row
// bookkeeping across worker goroutines.
func (c *CoverageMap[V]) SetZeroCoveredSub(start, end int) {
	if start == 0 {
		c.Uncovered -= c.sizesLen
	}
	valueChoices := numid.AsUsize(c.valueChoices)
	for i := start; i < end; i++ {
		index := c.Sizes[i][0] * uint64(valueChoices)
		c.setBit(index)
	}
}
