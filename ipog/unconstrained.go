package ipog

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/covarray/covarray/covmap"
	"github.com/covarray/covarray/mca"
	"github.com/covarray/covarray/numid"
	"github.com/covarray/covarray/pclist"
	"github.com/covarray/covarray/valuegen"
)

// RunUnconstrained builds an MCA for an unconstrained SUT with the given
// per-parameter levels at the given strength. logger may be nil to
// suppress progress logging.
func RunUnconstrained[V numid.Unsigned, P numid.Unsigned, L numid.Unsigned](parameters []V, strength int, logger *log.Logger) (*mca.MCA[V, L], error) {
	m := mca.NewUnconstrained[V, L](parameters, strength)
	logDebug(logger, "initial unconstrained array", "rows", m.Len())

	if strength == len(parameters) {
		return m, nil
	}

	pcl, err := pclist.Build[P, L](len(parameters), strength)
	if err != nil {
		return nil, err
	}
	cm := covmap.New[V, P, L](parameters, pcl)

	for atParameter := strength; atParameter < len(parameters); atParameter++ {
		pcListLen := pcl.Sizes[atParameter-strength]
		cm.Initialise(atParameter)
		logDebug(logger, "iteration start", "parameter", atParameter, "uncovered", cm.Uncovered)

		start := time.Now()
		HorizontalExtendUnconstrained(parameters, atParameter, pcl, pcListLen, m, cm)
		logDebug(logger, "horizontal extension done", "parameter", atParameter, "elapsed", time.Since(start))

		if !cm.IsCovered() {
			start = time.Now()
			VerticalExtendUnconstrained(parameters, atParameter, pcl, pcListLen, m, cm)
			logDebug(logger, "vertical extension done", "parameter", atParameter, "elapsed", time.Since(start))
		}
	}

	return m, nil
}

func logDebug(logger *log.Logger, message string, keyvals ...interface{}) {
	if logger != nil {
		logger.Debug(message, keyvals...)
	}
}

// HorizontalExtendUnconstrained sets row 0's cell at atParameter to 0 (so
// row 0 stays the all-zeros row whose interactions SetZeroCovered marks),
// then fills column atParameter in every later row by the highest-scoring
// value available at each row, stopping as soon as the coverage map
// reports full coverage for this iteration.
func HorizontalExtendUnconstrained[V numid.Unsigned, P numid.Unsigned, L numid.Unsigned](parameters []V, atParameter int, pcl *pclist.PCList[P, L], pcListLen int, m *mca.MCA[V, L], cm *covmap.CoverageMap[V]) {
	dontCareMask := ^numid.Bit[L](atParameter)
	noDontCares := numid.MaskLow[L](atParameter)
	valueChoices := numid.AsUsize(parameters[atParameter])

	scores := make([][]uint64, valueChoices)
	for i := range scores {
		scores[i] = make([]uint64, 0, pcListLen)
	}

	var previousValue V
	uses := make([]int, valueChoices)
	uses[0] = 1
	cm.SetZeroCovered()
	m.Array[0][atParameter] = 0
	m.DontCareLocations[0] &= dontCareMask

	for rowID := 1; rowID < m.Len(); rowID++ {
		row := m.Array[rowID]
		dontCareLocations := &m.DontCareLocations[rowID]

		for i := range scores {
			scores[i] = scores[i][:0]
		}

		covmap.GetHighScoreMaskedTripleSub(cm, pcl, row, *dontCareLocations, noDontCares, scores, 0, pcListLen)

		value := covmap.GetHighScoreValue(scores, uses, previousValue)

		if len(scores[value]) > 0 {
			row[atParameter] = value
			uses[value]++
			*dontCareLocations &= dontCareMask
			previousValue = value

			cm.SetIndices(scores[value])

			if cm.IsCovered() {
				return
			}
		}
	}
}

// PCAsInts converts a PC's parameter-id slice into plain ints, the
// currency mca.AppendRow and valuegen.New operate in.
func PCAsInts[P numid.Unsigned](pc []P) []int {
	result := make([]int, len(pc))
	for i, p := range pc {
		result[i] = numid.AsUsize(p)
	}
	return result
}

// VerticalExtendUnconstrained walks every PC's remaining uncovered
// interactions in map order, trying to absorb each one into an existing
// row with spare don't-care capacity before appending a brand-new row.
func VerticalExtendUnconstrained[V numid.Unsigned, P numid.Unsigned, L numid.Unsigned](parameters []V, atParameter int, pcl *pclist.PCList[P, L], pcListLen int, m *mca.MCA[V, L], cm *covmap.CoverageMap[V]) {
	valueChoices := uint64(numid.AsUsize(parameters[atParameter]))
	dontCareMask := m.SetVerticalExtensionRows(atParameter)
	parameterMask := numid.Bit[L](atParameter)

	for pcID, pc := range pcl.PCs {
		pcInts := PCAsInts(pc)
		pcDontCareLocations := pcl.Locations[pcID]

		strength := len(pcInts) + 1
		values := make([]V, strength)
		gen := valuegen.New(parameters, atParameter, pcInts)

		mapIndex := cm.Sizes[pcID][0]*valueChoices + 1
		var pcLocations [2]L
		pcLocationsSet := false

	supIndex:
		for {
			mapSubIndex := mapIndex & covmap.BitMask
			mapArray := cm.Word(mapIndex>>covmap.BitShift) >> mapSubIndex

			if mapArray == ^uint64(0) {
				if gen.SkipArray(values, numid.FromUsize[V](covmap.BitMask+1)) {
					mapIndex += covmap.BitMask + 1
					continue supIndex
				}
				break supIndex
			}

			for i := mapSubIndex; i <= covmap.BitMask; i++ {
				if !gen.NextArray(values) {
					break supIndex
				}

				if mapArray&1 == 0 {
					cm.Uncovered--

					if !pcLocationsSet {
						pcLocations = [2]L{pcDontCareLocations, ^(pcDontCareLocations | parameterMask)}
						pcLocationsSet = true
					}

					if !fitInRowUnconstrained(atParameter, pcl, pcListLen, m, cm, pcInts, values, pcID, pcLocations, dontCareMask) {
						m.AppendRow(atParameter, pcInts, values, pcLocations[1])
					}

					if cm.IsCovered() {
						return
					}
				}

				mapIndex++
				mapArray >>= 1
			}
		}
	}
}

// pcFitsRow reports whether row can absorb the interaction (pc, values)
// without contradiction: at least one PC member must still be don't-care,
// every other PC member must already equal its target value, and the
// joining parameter's cell must be don't-care or already equal to its
// target value. When the joining parameter's cell is don't-care and the
// row fits, pcFitsRow writes the target value into it.
func pcFitsRow[V numid.Unsigned, L numid.Unsigned](atParameter int, pc []int, values []V, pcLocations [2]L, row []V, dontCareLocations L) bool {
	sharedDontCares := dontCareLocations & pcLocations[0]
	if sharedDontCares == 0 {
		return false
	}

	if sharedDontCares != pcLocations[0] {
		for i, parameterID := range pc {
			if row[parameterID] != values[i] && !numid.IsDontCare(row[parameterID]) {
				return false
			}
		}
	}

	lastValue := values[len(values)-1]
	if numid.IsDontCare(row[atParameter]) {
		row[atParameter] = lastValue
	} else if row[atParameter] != lastValue {
		return false
	}
	return true
}

// fitInRowUnconstrained tries every row vertical extension is still
// tracking and writes the interaction into the first one it fits,
// retiring that row from tracking if it runs out of don't-cares in range.
func fitInRowUnconstrained[V numid.Unsigned, P numid.Unsigned, L numid.Unsigned](atParameter int, pcl *pclist.PCList[P, L], pcListLen int, m *mca.MCA[V, L], cm *covmap.CoverageMap[V], pc []int, values []V, pcID int, pcLocations [2]L, dontCareMask L) bool {
	for i, rowID := range m.VerticalExtensionRows {
		row := m.Array[rowID]
		dontCareLocations := &m.DontCareLocations[rowID]

		if !pcFitsRow(atParameter, pc, values, pcLocations, row, *dontCareLocations) {
			continue
		}

		for j, parameterID := range pc {
			row[parameterID] = values[j]
		}
		*dontCareLocations &= pcLocations[1]

		if *dontCareLocations&dontCareMask == 0 {
			m.RemoveVerticalExtensionRow(i)
		}

		covmap.SetCoveredRowSimpleSub(cm, atParameter, pcl, row, pcID+1, pcListLen)
		return true
	}
	return false
}
