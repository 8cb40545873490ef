package ipogmt

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitCoversEveryItemExactlyOnce(t *testing.T) {
	for _, tc := range []struct{ threadCount, totalSize int }{
		{4, 37}, {4, 10}, {6, 9}, {6, 10}, {7, 10}, {7, 8}, {7, 7}, {5, 6},
	} {
		seen := make([]int, tc.totalSize)
		for threadID := 0; threadID < tc.threadCount; threadID++ {
			start, end := Split(tc.threadCount, threadID, tc.totalSize)
			require.LessOrEqual(t, start, end)
			for i := start; i < end; i++ {
				seen[i]++
			}
		}
		for i, count := range seen {
			require.Equal(t, 1, count, "item %d covered %d times (threadCount=%d totalSize=%d)", i, count, tc.threadCount, tc.totalSize)
		}
	}
}

func TestSplitHandlesZeroTotal(t *testing.T) {
	start, end := Split(4, 0, 0)
	require.Equal(t, 0, start)
	require.Equal(t, 0, end)
}

// TestCyclingRangesTileSpaceAtEveryCallIndex mirrors the original's
// test_cycling_split: at every call index, the threadCount threads'
// ranges still collectively cover [0, totalSize) exactly once, even
// though which thread owns which piece rotates from one call index to
// the next.
func TestCyclingRangesTileSpaceAtEveryCallIndex(t *testing.T) {
	for _, tc := range []struct{ threadCount, totalSize int }{
		{4, 37}, {4, 10}, {6, 9}, {6, 10}, {7, 10}, {7, 8}, {7, 7}, {5, 6},
	} {
		ranges := CyclingRanges(tc.threadCount, tc.totalSize)
		require.Len(t, ranges, tc.threadCount)

		for callIndex := 0; callIndex < 8; callIndex++ {
			seen := make([]int, tc.totalSize)
			for threadID := 0; threadID < tc.threadCount; threadID++ {
				start, end := CyclingRange(ranges, threadID, callIndex)
				require.LessOrEqual(t, start, end)
				for i := start; i < end; i++ {
					seen[i]++
				}
			}
			for i, count := range seen {
				require.Equal(t, 1, count, "callIndex %d: item %d covered %d times (threadCount=%d totalSize=%d)", callIndex, i, count, tc.threadCount, tc.totalSize)
			}
		}
	}
}

// TestCyclingRangeRotatesAcrossCallIndices confirms the ranges a given
// worker owns actually change between calls, rather than staying static
// like Split's.
func TestCyclingRangeRotatesAcrossCallIndices(t *testing.T) {
	ranges := CyclingRanges(4, 40)
	firstStart, firstEnd := CyclingRange(ranges, 0, 0)
	laterStart, laterEnd := CyclingRange(ranges, 0, 1)
	require.False(t, firstStart == laterStart && firstEnd == laterEnd, "worker 0's range should rotate between calls")
}
