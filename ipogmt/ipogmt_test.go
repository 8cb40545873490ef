package ipogmt

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/covarray/covarray/numid"
	"github.com/covarray/covarray/sut"
)

// rowMatches reports whether row covers the given parameter/value tuple,
// treating don't-care cells as existentially quantified.
func rowMatches[V numid.Unsigned](row []V, parameterIDs []int, values []V) bool {
	for i, p := range parameterIDs {
		cell := row[p]
		if !numid.IsDontCare(cell) && cell != values[i] {
			return false
		}
	}
	return true
}

// assertFullCoverage brute-force-checks that every combination of
// `strength` parameters and every value tuple drawn from their levels is
// covered by at least one row of array.
func assertFullCoverage[V numid.Unsigned](t *testing.T, array [][]V, parameters []V, strength int) {
	t.Helper()
	n := len(parameters)

	var combos [][]int
	var choose func(start int, current []int)
	choose = func(start int, current []int) {
		if len(current) == strength {
			combos = append(combos, append([]int(nil), current...))
			return
		}
		for i := start; i < n; i++ {
			choose(i+1, append(current, i))
		}
	}
	choose(0, nil)

	for _, pc := range combos {
		levels := make([]V, strength)
		for i, p := range pc {
			levels[i] = parameters[p]
		}

		var values []V
		var walk func(index int, current []V)
		walk = func(index int, current []V) {
			if index == strength {
				values = append([]V(nil), current...)
				found := false
				for _, row := range array {
					if rowMatches(row, pc, values) {
						found = true
						break
					}
				}
				require.True(t, found, "combination %v values %v not covered", pc, values)
				return
			}
			for v := V(0); numid.AsUsize(v) < numid.AsUsize(levels[index]); v++ {
				walk(index+1, append(current, v))
			}
		}
		walk(0, nil)
	}
}

func indexOfParameter(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}

func TestRunUnconstrainedMatchesSingleThreadedCoverage(t *testing.T) {
	parameters := []uint8{2, 3, 3, 2, 2}
	m, err := RunUnconstrained[uint8, uint8, uint16](parameters, 3, nil, WithThreadCount(4))
	require.NoError(t, err)
	assertFullCoverage(t, m.Array, m.Parameters, 3)
}

func TestRunUnconstrainedForcesThreadedPath(t *testing.T) {
	parameters := []uint8{3, 3, 3, 3, 3, 3}
	m, err := RunUnconstrained[uint8, uint8, uint16](parameters, 2, nil, WithThreadCount(1))
	require.NoError(t, err)
	assertFullCoverage(t, m.Array, m.Parameters, 2)
}

func TestRunUnconstrainedStrengthEqualsParameterCountReturnsFullEnumeration(t *testing.T) {
	parameters := []uint8{2, 2}
	m, err := RunUnconstrained[uint8, uint8, uint16](parameters, 2, nil)
	require.NoError(t, err)
	require.Equal(t, 4, m.Len())
}

func TestRunConstrainedForbidsDisallowedInteraction(t *testing.T) {
	c, err := sut.ParseConstrained[uint8, uint8](`
		p0: 0, 1;
		p1: 0, 1, 2;
		p2: 0, 1, 2;
		p3: 0, 1;
		p4: 0, 1;
		p5: 0, 1;

		$assert (p1=0) => (p2=1);
	`)
	require.NoError(t, err)

	m, err := RunConstrained[uint8, uint8, uint16](c, 3, nil, WithThreadCount(1))
	require.NoError(t, err)

	p1Index := indexOfParameter(c.SubSUT.ParameterNames, "p1")
	p2Index := indexOfParameter(c.SubSUT.ParameterNames, "p2")
	require.GreaterOrEqual(t, p1Index, 0)
	require.GreaterOrEqual(t, p2Index, 0)

	for _, row := range m.Array {
		p1Cell, p2Cell := row[p1Index], row[p2Index]
		if numid.IsDontCare(p1Cell) || numid.IsDontCare(p2Cell) {
			continue
		}
		p1Name := c.SubSUT.Values[p1Index][p1Cell]
		p2Name := c.SubSUT.Values[p2Index][p2Cell]
		if p1Name == "0" {
			require.Equal(t, "1", p2Name, "row %v: p1=0 must force p2=1", row)
		}
	}
}

func TestDefaultThreadCountIsAtLeastOne(t *testing.T) {
	require.GreaterOrEqual(t, DefaultThreadCount(), 1)
}

// TestRunConstrainedPrefetchRingWrapsAcrossManyRows builds an MCA with
// enough rows that the constraint-prefetch ring (PrefetchRingSize slots)
// must wrap around and reuse slots multiple times, and checks that
// coverage still comes out correct under that wraparound.
func TestRunConstrainedPrefetchRingWrapsAcrossManyRows(t *testing.T) {
	c, err := sut.ParseConstrained[uint8, uint8](`
		p0: 0, 1, 2;
		p1: 0, 1, 2;
		p2: 0, 1, 2;
		p3: 0, 1, 2;
		p4: 0, 1, 2;
		p5: 0, 1, 2;
		p6: 0, 1, 2;
		p7: 0, 1, 2;

		$assert (p0=0) => !(p1=0);
	`)
	require.NoError(t, err)

	m, err := RunConstrained[uint8, uint8, uint16](c, 2, nil, WithThreadCount(2))
	require.NoError(t, err)
	require.Greater(t, m.Len(), PrefetchRingSize, "test should exercise ring wraparound")
	assertFullCoverage(t, m.Array, m.Parameters, 2)

	p0Index := indexOfParameter(c.SubSUT.ParameterNames, "p0")
	p1Index := indexOfParameter(c.SubSUT.ParameterNames, "p1")
	for _, row := range m.Array {
		p0Cell, p1Cell := row[p0Index], row[p1Index]
		if numid.IsDontCare(p0Cell) || numid.IsDontCare(p1Cell) {
			continue
		}
		if c.SubSUT.Values[p0Index][p0Cell] == "0" {
			require.NotEqual(t, "0", c.SubSUT.Values[p1Index][p1Cell], "row %v: p0=0 must forbid p1=0", row)
		}
	}
}
