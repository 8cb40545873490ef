package mca

import "github.com/covarray/covarray/numid"

// NewUnconstrained builds the initial MCA for an unconstrained SUT: one row
// per combination of the first `strength` parameter levels (the all-zeros
// row is row 0), with every cell from `strength` onward set to the
// don't-care sentinel.
func NewUnconstrained[V numid.Unsigned, L numid.Unsigned](parameters []V, strength int) *MCA[V, L] {
	if strength < 1 || strength > len(parameters) {
		panic("mca: strength out of range for parameters")
	}

	rowCount := 1
	for i := 0; i < strength; i++ {
		rowCount *= numid.AsUsize(parameters[i])
	}

	dontCareMask := bitRangeMask[L](strength, len(parameters))

	m := &MCA[V, L]{
		Array:                 make([][]V, 0, rowCount),
		DontCareLocations:     make([]L, 0, rowCount),
		VerticalExtensionRows: nil,
		Parameters:            append([]V(nil), parameters...),
	}

	prefix := make([]V, strength)
	for i := 0; i < rowCount; i++ {
		row := make([]V, len(parameters))
		copy(row, prefix)
		for k := strength; k < len(parameters); k++ {
			row[k] = numid.DontCare[V]()
		}
		m.Array = append(m.Array, row)
		m.DontCareLocations = append(m.DontCareLocations, dontCareMask)

		for k := strength - 1; k >= 0; k-- {
			prefix[k]++
			if numid.AsUsize(prefix[k]) < numid.AsUsize(parameters[k]) {
				break
			}
			prefix[k] = 0
		}
	}

	return m
}

// NewConstrained is NewUnconstrained followed by dropping every enumerated
// row that check reports unsatisfiable. The zero-row feasibility fixer
// (package solver) is responsible for guaranteeing row 0 survives this
// filter before this is called.
func NewConstrained[V numid.Unsigned, L numid.Unsigned](parameters []V, strength int, check RowChecker[V]) *MCA[V, L] {
	full := NewUnconstrained[V, L](parameters, strength)

	m := &MCA[V, L]{
		Array:                 make([][]V, 0, len(full.Array)),
		DontCareLocations:     make([]L, 0, len(full.Array)),
		VerticalExtensionRows: nil,
		Parameters:            full.Parameters,
	}

	for i, row := range full.Array {
		if check(row) {
			m.Array = append(m.Array, row)
			m.DontCareLocations = append(m.DontCareLocations, full.DontCareLocations[i])
		}
	}

	return m
}
