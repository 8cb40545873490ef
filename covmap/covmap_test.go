package covmap_test

import (
	"testing"

	"github.com/covarray/covarray/covmap"
	"github.com/covarray/covarray/pclist"
	"github.com/stretchr/testify/require"
)

func newFixture(t *testing.T) (*covmap.CoverageMap[uint8], *pclist.PCList[uint8, uint32], []uint8) {
	t.Helper()
	parameters := []uint8{4, 3, 3, 3, 3, 2, 2}
	pcl, err := pclist.Build[uint8, uint32](len(parameters), 4)
	require.NoError(t, err)
	cm := covmap.New[uint8](parameters, pcl)
	return cm, pcl, parameters
}

func TestInitialiseResetsUncovered(t *testing.T) {
	cm, pcl, parameters := newFixture(t)
	atParameter := 4
	cm.Initialise(atParameter)

	activeLen := cm.ActiveLen()
	require.Equal(t, pcl.Sizes[atParameter-4], activeLen)
	require.Equal(t, int(cm.Sizes[activeLen][0])*int(parameters[atParameter]), cm.Uncovered)
	require.False(t, cm.IsCovered())
}

func TestSetZeroCoveredDecrementsByActiveLen(t *testing.T) {
	cm, _, _ := newFixture(t)
	cm.Initialise(4)
	before := cm.Uncovered
	cm.SetZeroCovered()
	require.Equal(t, before-cm.ActiveLen(), cm.Uncovered)
}

func TestGetBaseIndexRoundTrip(t *testing.T) {
	// Universal invariant 7: get_base_index(pc, row)+x_p is exactly the bit
	// index that SetIndex marks and IsCovered-relevant Uncovered tracks.
	cm, pcl, _ := newFixture(t)
	cm.Initialise(4)
	cm.SetZeroCovered()

	row := make([]uint8, len(pcl.PCs[0])+1)
	for i := range row {
		row[i] = 0
	}

	base, ok := covmap.GetBaseIndex[uint8](cm, 0, pcl, row)
	require.True(t, ok)

	before := cm.Uncovered
	changed := cm.SetIndex(base + 1)
	require.True(t, changed)
	require.Equal(t, before-1, cm.Uncovered)

	// Setting the same index again must not double-decrement.
	changed = cm.SetIndex(base + 1)
	require.False(t, changed)
	require.Equal(t, before-1, cm.Uncovered)
}

func TestGetBaseIndexDontCare(t *testing.T) {
	cm, pcl, _ := newFixture(t)
	cm.Initialise(4)

	row := make([]uint8, 4)
	for i := range row {
		row[i] = 0xFF // don't-care sentinel for uint8
	}

	_, ok := covmap.GetBaseIndex[uint8](cm, 0, pcl, row)
	require.False(t, ok)
}

func TestIdempotentZeroCoveredThenSetIndices(t *testing.T) {
	// Universal invariant 8: re-including the zero indices in set_indices
	// must not double-decrement uncovered once update_scores has filtered
	// them out.
	cm, pcl, _ := newFixture(t)
	cm.Initialise(4)
	cm.SetZeroCovered()

	row := make([]uint8, len(pcl.PCs[0])+1)
	base, ok := covmap.GetBaseIndex[uint8](cm, 0, pcl, row)
	require.True(t, ok)

	indices := []uint64{base} // already covered by SetZeroCovered
	filtered := cm.UpdateScores(indices)
	require.Equal(t, 1, filtered)
	require.Equal(t, uint64(0), indices[0])

	before := cm.Uncovered
	cm.SetIndicesUpdated(indices, filtered)
	require.Equal(t, before, cm.Uncovered)
}

func TestGetHighScoreValueCyclicTieBreak(t *testing.T) {
	scores := [][]uint64{{1}, {1}, {1, 2}}
	uses := []int{3, 1, 1}
	// previous=2 -> start at 0; value 2 has the highest score (2 entries).
	best := covmap.GetHighScoreValue[uint8](scores, uses, 2)
	require.Equal(t, uint8(2), best)
}

func TestGetHighScoreValueBlacklisted(t *testing.T) {
	scores := [][]uint64{{1, 2}, {1, 2}, {1}}
	uses := []int{0, 0, 0}
	blacklist := []bool{true, false, false}
	best := covmap.GetHighScoreValueBlacklisted[uint8](scores, uses, 1, blacklist)
	require.Equal(t, uint8(1), best)
}

func TestScoringPathsAgree(t *testing.T) {
	cm, pcl, parameters := newFixture(t)
	cm.Initialise(4)
	cm.SetZeroCovered()

	row := make([]uint8, len(parameters))
	for i := range row {
		row[i] = 0
	}
	row[4] = 1 // concrete non-zero value, still fully concrete row

	activeLen := cm.ActiveLen()
	scoresA := make([][]uint64, parameters[4])
	scoresB := make([][]uint64, parameters[4])

	covmap.GetHighScore[uint8](cm, pcl, activeLen, row, scoresA)
	covmap.GetHighScoreMaskedUncheckedSub[uint8](cm, pcl, row, scoresB, 0, activeLen)

	for v := range scoresA {
		require.ElementsMatch(t, scoresA[v], scoresB[v])
	}
}

func TestGetHighScoreSubValuesLimitedChecksEachValuesOwnCoverageBit(t *testing.T) {
	// Regression test: the inner loop must check the coverage bit for
	// each candidate value (base+value), not repeatedly recheck value 0's
	// bit, or a value already covered would still score as uncovered.
	cm, pcl, parameters := newFixture(t)
	cm.Initialise(4)

	row := make([]uint8, len(parameters))
	base, ok := covmap.GetBaseIndex[uint8](cm, 0, pcl, row)
	require.True(t, ok)

	// Mark value 1's interaction already covered, leaving value 0's
	// untouched.
	cm.SetIndex(base + 1)

	feasible := []uint8{0, 1}
	scores := make([][]uint64, parameters[4])
	for v := range scores {
		scores[v] = make([]uint64, 0)
	}
	covmap.GetHighScoreSubValuesLimited[uint8](cm, pcl, row, feasible, scores, 0, cm.ActiveLen())

	require.Contains(t, scores[0], base, "value 0's own interaction is still uncovered")
	require.NotContains(t, scores[1], base+1, "value 1's interaction was already marked covered")
}

func TestGetHighScoreSubValuesLimitedSkipsValuesNotInSet(t *testing.T) {
	cm, pcl, parameters := newFixture(t)
	cm.Initialise(4)

	row := make([]uint8, len(parameters))

	feasible := []uint8{0}
	scores := make([][]uint64, parameters[4])
	for v := range scores {
		scores[v] = make([]uint64, 0)
	}
	covmap.GetHighScoreSubValuesLimited[uint8](cm, pcl, row, feasible, scores, 0, cm.ActiveLen())

	require.NotEmpty(t, scores[0])
	for v := 1; v < len(scores); v++ {
		require.Empty(t, scores[v], "value %d was excluded from the feasible set", v)
	}
}
