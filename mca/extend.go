package mca

import "github.com/covarray/covarray/numid"

// bitRangeMask returns a mask with bits [lo, hi) set.
func bitRangeMask[L numid.Unsigned](lo, hi int) L {
	return numid.MaskLow[L](hi) &^ numid.MaskLow[L](lo)
}

// SetVerticalExtensionRows scans every row and records, in
// VerticalExtensionRows, the indices of rows whose don't-care mask still
// intersects bits [atParameter, N). It returns that range mask so callers
// can test "has this row lost every don't-care in the tracked range" with a
// single AND.
func (m *MCA[V, L]) SetVerticalExtensionRows(atParameter int) L {
	mask := bitRangeMask[L](atParameter, len(m.Parameters))

	rows := m.VerticalExtensionRows[:0]
	for i, locations := range m.DontCareLocations {
		if locations&mask != 0 {
			rows = append(rows, i)
		}
	}
	m.VerticalExtensionRows = rows
	return mask
}

// RemoveVerticalExtensionRow drops the entry at position i (an index into
// VerticalExtensionRows, not a row id) once a row has no remaining
// don't-cares in the range SetVerticalExtensionRows tracked.
func (m *MCA[V, L]) RemoveVerticalExtensionRow(i int) {
	m.VerticalExtensionRows = append(m.VerticalExtensionRows[:i], m.VerticalExtensionRows[i+1:]...)
}

// AppendRow appends a fresh row carrying the interaction's values at pc's
// member positions and at atParameter, with every other cell don't-care.
// clearMask is the complement of those written positions and becomes the
// new row's don't-care location bitmask directly. values has one entry per
// pc member followed by the value for atParameter. It returns the new row's
// index.
func (m *MCA[V, L]) AppendRow(atParameter int, pc []int, values []V, clearMask L) int {
	row := make([]V, len(m.Parameters))
	for i := range row {
		row[i] = numid.DontCare[V]()
	}
	for i, paramIdx := range pc {
		row[paramIdx] = values[i]
	}
	row[atParameter] = values[len(values)-1]

	m.Array = append(m.Array, row)
	m.DontCareLocations = append(m.DontCareLocations, clearMask)
	return len(m.Array) - 1
}
