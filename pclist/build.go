package pclist

import "github.com/covarray/covarray/numid"

// Build enumerates the full Parameter-Combination List for parameterCount
// parameters at the given interaction strength.
//
// The combinations are produced in the order guaranteed by the package doc:
// the prefix of length Sizes[k] is exactly the complete set of PCs whose
// largest member is ≤ strength-1+k. Strength 2 is handled as a dedicated
// fast path (each PC degenerates to a single parameter id); strength > 2
// walks a nested-index counter that mirrors a t-2 digit odometer bounded
// by the current anchor parameter.
func Build[P numid.Unsigned, L numid.Unsigned](parameterCount, strength int) (*PCList[P, L], error) {
	if strength < MinStrength || strength > MaxStrength {
		return nil, ErrStrengthOutOfRange
	}
	if parameterCount < strength {
		return nil, ErrTooFewParameters
	}

	pcLen := calculateLength(strength, parameterCount-1)
	sizesLen := parameterCount - strength

	pcs := make([][]P, 0, pcLen)
	locations := make([]L, 0, pcLen)
	sizes := make([]int, 0, sizesLen)

	if strength == 2 {
		pcs = append(pcs, []P{0})
		location := L(1)
		locations = append(locations, location)

		for atParameter := strength; atParameter < parameterCount; atParameter++ {
			pcs = append(pcs, []P{P(atParameter - 1)})
			sizes = append(sizes, len(pcs))
			location <<= 1
			locations = append(locations, location)
		}
	} else {
		currentPC := make([]P, strength-1)
		for i := 0; i < strength-1; i++ {
			currentPC[i] = P(i)
		}
		pcs = append(pcs, cloneSlice(currentPC))
		locations = append(locations, pcToLocations[P, L](currentPC))

		for atParameter := strength; atParameter < parameterCount; atParameter++ {
			currentPC[0] = 0
			currentPC[strength-2] = P(atParameter - 1)

			index := 0
			// current_pc[0] reaches (atParameter+2-strength) exactly once: our
			// termination condition, mirroring the source's odometer loop.
			for index != 0 || (atParameter+2-strength) > int(currentPC[0]) {
				for index < strength-3 {
					currentPC[index+1] = currentPC[index] + 1
					index++
				}

				pcs = append(pcs, cloneSlice(currentPC))
				locations = append(locations, pcToLocations[P, L](currentPC))

				for index > 0 && int(currentPC[index]) == (atParameter+1-strength+index) {
					index--
				}
				currentPC[index]++
			}

			sizes = append(sizes, len(pcs))
		}
	}

	return &PCList[P, L]{
		Strength:  strength,
		PCs:       pcs,
		Locations: locations,
		Sizes:     sizes,
	}, nil
}

func cloneSlice[P numid.Unsigned](pc []P) []P {
	out := make([]P, len(pc))
	copy(out, pc)
	return out
}

func pcToLocations[P numid.Unsigned, L numid.Unsigned](pc []P) L {
	var location L
	for _, parameterID := range pc {
		location |= numid.Bit[L](int(parameterID))
	}
	return location
}

// calculateLength returns C(atParameter, strength-1), the number of PCs of
// size strength-1 drawable from {0,...,atParameter-1}.
func calculateLength(strength, atParameter int) int {
	strength--
	if strength > atParameter-strength {
		strength = atParameter - strength
	}
	res := 1
	for i := 0; i < strength; i++ {
		res *= atParameter - i
		res /= i + 1
	}
	return res
}
