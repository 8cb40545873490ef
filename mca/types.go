package mca

import "github.com/covarray/covarray/numid"

// MCA is the Mixed-level Covering Array under construction. V is the value
// id type; L is the per-row don't-care location bitmask type, wide enough
// to hold one bit per parameter.
type MCA[V numid.Unsigned, L numid.Unsigned] struct {
	// Array holds one row per test case, each of length len(Parameters).
	Array [][]V

	// DontCareLocations[i] has bit k set iff Array[i][k] still holds the
	// don't-care sentinel.
	DontCareLocations []L

	// VerticalExtensionRows lists indices into Array that vertical
	// extension should consider when looking for a row to absorb a new
	// interaction. Populated by SetVerticalExtensionRows.
	VerticalExtensionRows []int

	Parameters []V
}

// RowChecker reports whether row (possibly containing don't-care cells,
// treated as existentially quantified) is satisfiable. Constrained
// construction takes one of these instead of importing the solver package
// directly, so mca has no dependency on the constraint-solving machinery.
type RowChecker[V numid.Unsigned] func(row []V) bool

// Len returns the number of rows currently in the array.
func (m *MCA[V, L]) Len() int {
	return len(m.Array)
}

// CheckLocations reports whether every row's DontCareLocations bitmask
// agrees exactly with which of its cells hold the don't-care sentinel. This is a
// debug-assertion style invariant check meant to run under tests, not on
// the hot path.
func (m *MCA[V, L]) CheckLocations() bool {
	for i, row := range m.Array {
		mask := m.DontCareLocations[i]
		for k, v := range row {
			isDontCare := numid.IsDontCare(v)
			bitSet := mask&numid.Bit[L](k) != 0
			if isDontCare != bitSet {
				return false
			}
		}
	}
	return true
}

// CheckAll is CheckLocations restricted to cells at or after atParameter,
// used after vertical extension has finished filling in column atParameter.
func (m *MCA[V, L]) CheckAll(atParameter int) bool {
	for i, row := range m.Array {
		mask := m.DontCareLocations[i]
		for k := atParameter; k < len(row); k++ {
			isDontCare := numid.IsDontCare(row[k])
			bitSet := mask&numid.Bit[L](k) != 0
			if isDontCare != bitSet {
				return false
			}
		}
	}
	return true
}
