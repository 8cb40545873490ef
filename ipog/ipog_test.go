package ipog

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

func TestRunUnconstrainedCoversScenarioA(t *testing.T) {
	parameters := []uint8{2, 3, 2}
	m, err := RunUnconstrained[uint8, uint8, uint16](parameters, 2, nil)
	require.NoError(t, err)
	require.GreaterOrEqual(t, m.Len(), 6)
	assertFullCoverage(t, m.Array, m.Parameters, 2)
}

func TestRunUnconstrainedCoversScenarioB(t *testing.T) {
	parameters := []uint8{2, 3, 3, 2, 2}
	m, err := RunUnconstrained[uint8, uint8, uint16](parameters, 3, nil)
	require.NoError(t, err)
	assertFullCoverage(t, m.Array, m.Parameters, 3)
}

func TestRunUnconstrainedStrengthEqualsParameterCountReturnsFullEnumeration(t *testing.T) {
	parameters := []uint8{2, 2}
	m, err := RunUnconstrained[uint8, uint8, uint16](parameters, 2, nil)
	require.NoError(t, err)
	require.Equal(t, 4, m.Len())
}

func indexOfParameter(names []string, name string) int {
	for i, n := range names {
		if n == name {
			return i
		}
	}
	return -1
}

func TestRunConstrainedScenarioCForbidsDisallowedInteraction(t *testing.T) {
	c, err := sut.ParseConstrained[uint8, uint8](`
		p0: 0, 1;
		p1: 0, 1, 2;
		p2: 0, 1, 2;
		p3: 0, 1;
		p4: 0, 1;

		$assert (p1=0) => (p2=1);
	`)
	require.NoError(t, err)

	m, err := RunConstrained[uint8, uint8, uint16](c, 3, nil)
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

func TestRunConstrainedScenarioDPermutesZeroRow(t *testing.T) {
	c, err := sut.ParseConstrained[uint8, uint8](`
		p0: 0, 1;
		p1: 0, 1;

		$assert (p0=0) => (p1=1);
	`)
	require.NoError(t, err)

	m, err := RunConstrained[uint8, uint8, uint16](c, 2, nil)
	require.NoError(t, err)

	p1Index := indexOfParameter(c.SubSUT.ParameterNames, "p1")
	require.GreaterOrEqual(t, p1Index, 0)

	// The zero-row fixer must have permuted p1's value table so that id 0
	// now names what was originally value "1": the all-zero-id row is
	// satisfiable only once that swap has happened.
	require.Equal(t, "1", c.SubSUT.Values[p1Index][0])
	require.Equal(t, []uint8{0, 0}, m.Array[0])
}
