package covmap

import (
	"github.com/covarray/covarray/numid"
	"github.com/covarray/covarray/pclist"
)

func (c *CoverageMap[V]) addScores(scores [][]uint64, baseIndex uint64) {
	valueChoices := numid.AsUsize(c.valueChoices)
	for v := 0; v < valueChoices; v++ {
		if !c.get(baseIndex) {
			scores[v] = append(scores[v], baseIndex)
		}
		baseIndex++
	}
}

// GetHighScoreSub is the naive scoring path: it tests every PC in
// [start,end) for don't-cares via GetBaseIndex. Used when row carries few
// don't-cares (DontCaresForNaive or fewer) or no bitmask is available.
func GetHighScoreSub[V numid.Unsigned, P numid.Unsigned, L numid.Unsigned](c *CoverageMap[V], pcl *pclist.PCList[P, L], row []V, scores [][]uint64, start, end int) {
	for pcID := start; pcID < end; pcID++ {
		if baseIndex, ok := GetBaseIndex(c, pcID, pcl, row); ok {
			c.addScores(scores, baseIndex)
		}
	}
}

// GetHighScore scores every active PC (the full [0, pcListLen) range).
func GetHighScore[V numid.Unsigned, P numid.Unsigned, L numid.Unsigned](c *CoverageMap[V], pcl *pclist.PCList[P, L], pcListLen int, row []V, scores [][]uint64) {
	GetHighScoreSub(c, pcl, row, scores, 0, pcListLen)
}

// GetHighScoreMaskedUncheckedSub assumes row carries no don't-cares among
// the first atParameter cells and skips the per-PC don't-care test
// entirely.
func GetHighScoreMaskedUncheckedSub[V numid.Unsigned, P numid.Unsigned, L numid.Unsigned](c *CoverageMap[V], pcl *pclist.PCList[P, L], row []V, scores [][]uint64, start, end int) {
	for pcID := start; pcID < end; pcID++ {
		c.addScores(scores, GetBaseIndexUnchecked(c, pcID, pcl, row))
	}
}

// GetHighScoreMaskedCheckedSub ANDs each PC's location bitmask with row's
// don't-care location mask and skips the PC iff the intersection is
// non-zero, avoiding a per-value don't-care scan.
func GetHighScoreMaskedCheckedSub[V numid.Unsigned, P numid.Unsigned, L numid.Unsigned](c *CoverageMap[V], pcl *pclist.PCList[P, L], row []V, dontCareLocations L, scores [][]uint64, start, end int) {
	for pcID := start; pcID < end; pcID++ {
		if pcl.Locations[pcID]&dontCareLocations == 0 {
			c.addScores(scores, GetBaseIndexUnchecked(c, pcID, pcl, row))
		}
	}
}

// GetHighScoreMaskedSub picks between the unchecked and masked-checked
// paths depending on whether row's don't-care mask intersects the
// no-dont-cares mask (the bits below atParameter).
func GetHighScoreMaskedSub[V numid.Unsigned, P numid.Unsigned, L numid.Unsigned](c *CoverageMap[V], pcl *pclist.PCList[P, L], row []V, dontCareLocations, noDontCares L, scores [][]uint64, start, end int) {
	if noDontCares&dontCareLocations == 0 {
		GetHighScoreMaskedUncheckedSub(c, pcl, row, scores, start, end)
	} else {
		GetHighScoreMaskedCheckedSub(c, pcl, row, dontCareLocations, scores, start, end)
	}
}

// GetHighScoreMaskedTripleSub is the runtime dispatcher described in §4.2:
// it picks the unchecked, naive, or masked-checked scoring path based on
// how many don't-cares remain among row's already-fixed cells.
func GetHighScoreMaskedTripleSub[V numid.Unsigned, P numid.Unsigned, L numid.Unsigned](c *CoverageMap[V], pcl *pclist.PCList[P, L], row []V, dontCareLocations, noDontCares L, scores [][]uint64, start, end int) {
	dontCareCount := numid.CountOnes(noDontCares & dontCareLocations)
	switch {
	case dontCareCount == 0:
		GetHighScoreMaskedUncheckedSub(c, pcl, row, scores, start, end)
	case dontCareCount <= DontCaresForNaive:
		GetHighScoreSub(c, pcl, row, scores, start, end)
	default:
		GetHighScoreMaskedCheckedSub(c, pcl, row, dontCareLocations, scores, start, end)
	}
}

// GetHighScoreSubValuesLimited is like GetHighScoreSub but only appends
// indices for the values present in maskedValueChoices — used by the
// constraint-prefetch path once the feasible value set for a row is
// already known (§4.11).
func GetHighScoreSubValuesLimited[V numid.Unsigned, P numid.Unsigned, L numid.Unsigned](c *CoverageMap[V], pcl *pclist.PCList[P, L], row []V, maskedValueChoices []V, scores [][]uint64, start, end int) {
	for pcID := start; pcID < end; pcID++ {
		baseIndex, ok := GetBaseIndex(c, pcID, pcl, row)
		if !ok {
			continue
		}
		for _, value := range maskedValueChoices {
			index := baseIndex + uint64(value)
			if !c.get(index) {
				scores[value] = append(scores[value], index)
			}
		}
	}
}

// GetHighScoreValue selects the highest-scoring value for the cyclic
// tie-break rule of §4.2: start at (previous+1) mod len(scores), visit all
// values in cyclic order, keep the maximum by (score, -uses).
func GetHighScoreValue[V numid.Unsigned](scores [][]uint64, uses []int, previousValue V) V {
	n := len(scores)
	previous := (int(previousValue) + 1) % n
	highScore := len(scores[previous])
	highUse := uses[previous]
	highValue := previous

	for i := 1; i < n; i++ {
		value := (previous + i) % n
		valueScore := len(scores[value])
		valueUse := uses[value]
		if highScore < valueScore || (highScore == valueScore && valueUse < highUse) {
			highScore = valueScore
			highValue = value
			highUse = valueUse
		}
	}

	return V(highValue)
}

// GetHighScoreValueBlacklisted is GetHighScoreValue except that the cyclic
// scan starts at previousValue itself rather than the value after it, and
// every other value for which blacklist[value] is true is skipped. The
// starting value is not tested against blacklist; callers move
// previousValue off a blacklisted value before calling. Used by the
// constrained horizontal extension's solver-rejection loop.
func GetHighScoreValueBlacklisted[V numid.Unsigned](scores [][]uint64, uses []int, previousValue V, blacklist []bool) V {
	n := len(scores)
	highValue := int(previousValue)
	highScore := len(scores[highValue])
	highUse := uses[highValue]

	for i := 1; i < n; i++ {
		value := (int(previousValue) + i) % n
		if blacklist[value] {
			continue
		}
		valueScore := len(scores[value])
		valueUse := uses[value]
		if highScore < valueScore || (highScore == valueScore && valueUse < highUse) {
			highScore = valueScore
			highValue = value
			highUse = valueUse
		}
	}

	return V(highValue)
}
