package mca_test

import (
	"testing"

	"github.com/covarray/covarray/mca"
	"github.com/covarray/covarray/numid"
	"github.com/stretchr/testify/require"
)

func TestNewUnconstrainedEnumeratesCartesianProduct(t *testing.T) {
	parameters := []uint8{2, 3}
	m := mca.NewUnconstrained[uint8, uint32](parameters, 2)

	require.Equal(t, 6, m.Len())
	require.Equal(t, []uint8{0, 0}, m.Array[0])
	require.Equal(t, []uint8{1, 2}, m.Array[5])
	require.True(t, m.CheckLocations())
}

func TestNewUnconstrainedSetsTrailingDontCare(t *testing.T) {
	parameters := []uint8{2, 2, 3}
	m := mca.NewUnconstrained[uint8, uint32](parameters, 2)

	for _, row := range m.Array {
		require.True(t, numid.IsDontCare(row[2]))
	}
	require.True(t, m.CheckAll(2))
}

func TestNewConstrainedDropsRejectedRows(t *testing.T) {
	parameters := []uint8{2, 2}
	allButZero := func(row []uint8) bool {
		return row[0] != 0 || row[1] != 0
	}
	m := mca.NewConstrained[uint8, uint32](parameters, 2, allButZero)
	require.Equal(t, 3, m.Len())
	for _, row := range m.Array {
		require.False(t, row[0] == 0 && row[1] == 0)
	}
}

func TestSetVerticalExtensionRowsFiltersByRange(t *testing.T) {
	parameters := []uint8{2, 2, 2, 2}
	m := mca.NewUnconstrained[uint8, uint32](parameters, 2)

	mask := m.SetVerticalExtensionRows(2)
	require.Equal(t, uint32(0b1100), mask)
	require.Equal(t, m.Len(), len(m.VerticalExtensionRows))

	m.Array[0][2] = 0
	m.Array[0][3] = 0
	m.DontCareLocations[0] = 0

	mask = m.SetVerticalExtensionRows(2)
	require.NotContains(t, m.VerticalExtensionRows, 0)
}

func TestAppendRowWritesOnlyPcAndParameterCells(t *testing.T) {
	parameters := []uint8{2, 2, 2, 2}
	m := mca.NewUnconstrained[uint8, uint32](parameters, 2)

	pc := []int{0, 1}
	values := []uint8{1, 0, 1} // pc values then x_p
	clearMask := uint32(0b1001)
	idx := m.AppendRow(2, pc, values, clearMask)

	row := m.Array[idx]
	require.Equal(t, uint8(1), row[0])
	require.Equal(t, uint8(0), row[1])
	require.Equal(t, uint8(1), row[2])
	require.True(t, numid.IsDontCare(row[3]))
	require.Equal(t, clearMask, m.DontCareLocations[idx])
}

func TestRemoveVerticalExtensionRowPreservesOrder(t *testing.T) {
	parameters := []uint8{2, 2, 2}
	m := mca.NewUnconstrained[uint8, uint32](parameters, 2)
	m.SetVerticalExtensionRows(1)
	before := append([]int(nil), m.VerticalExtensionRows...)
	require.True(t, len(before) > 1)

	m.RemoveVerticalExtensionRow(0)
	require.Equal(t, before[1:], m.VerticalExtensionRows)
}
