package ipog

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/covarray/covarray/covmap"
	"github.com/covarray/covarray/mca"
	"github.com/covarray/covarray/numid"
	"github.com/covarray/covarray/pclist"
	"github.com/covarray/covarray/solver"
	"github.com/covarray/covarray/sut"
	"github.com/covarray/covarray/valuegen"
)

// Option configures an optional RunConstrained behaviour.
type Option func(*runConfig)

type runConfig struct {
	filterMap bool
}

// WithFilterMap enables the experimental filter-map pass: before each
// iteration's extension, every interaction the solver proves unsatisfiable
// is pre-marked covered in the coverage map, so horizontal and vertical
// extension never waste a candidate on it. Off by default, since it pays
// for one solver check per candidate up front regardless of whether
// extension would have reached it.
func WithFilterMap() Option {
	return func(c *runConfig) { c.filterMap = true }
}

// RunConstrained builds an MCA for a constrained SUT at the given strength.
// logger may be nil to suppress progress logging.
func RunConstrained[V numid.Unsigned, P numid.Unsigned, L numid.Unsigned](csut *sut.ConstrainedSUT[V, P], strength int, logger *log.Logger, opts ...Option) (*mca.MCA[V, L], error) {
	cfg := runConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	s, err := csut.GetSolver()
	if err != nil {
		return nil, err
	}
	parameters := csut.SubSUT.Parameters

	m := mca.NewConstrained[V, L](parameters, strength, func(row []V) bool {
		return solver.CheckRow[V](s, row)
	})
	logDebug(logger, "initial constrained array", "rows", m.Len())

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

		if cfg.filterMap {
			FilterMap[V, P, L](s, parameters, atParameter, pcl, 0, pcListLen, cm)
		}

		start := time.Now()
		HorizontalExtendConstrained(s, parameters, atParameter, pcl, pcListLen, m, cm)
		logDebug(logger, "horizontal extension done", "parameter", atParameter, "elapsed", time.Since(start))

		if !cm.IsCovered() {
			start = time.Now()
			VerticalExtendConstrained(s, parameters, atParameter, pcl, pcListLen, m, cm)
			logDebug(logger, "vertical extension done", "parameter", atParameter, "elapsed", time.Since(start))
		}
	}

	return m, nil
}

// GetBestValueConstrained searches for a value atParameter can take in the
// row currently on top of the solver's stack: scan candidates by score
// (highest first, cyclically from previousValue, skipping blacklisted
// values), and for each candidate actually ask the solver whether
// parameter = value holds under the row's other assertions. The first
// solver-accepted candidate wins; every rejected candidate is blacklisted
// so the rest of this call never retries it (the caller clears the
// blacklist before each row). If the best remaining candidate has an empty
// score list, (0, false) is returned and the row is left unfilled. If
// valueChoices-1 candidates are rejected, the lowest non-blacklisted value
// is returned unchecked, mirroring the original's final fallback.
func GetBestValueConstrained[V numid.Unsigned](s solver.Solver[V], atParameter int, previousValue V, valueChoices int, scores [][]uint64, blacklist []bool, uses []int) (V, bool) {
	for i := 1; i < valueChoices; i++ {
		value := covmap.GetHighScoreValueBlacklisted(scores, uses, previousValue, blacklist)
		if len(scores[numid.AsUsize(value)]) == 0 {
			return 0, false
		}

		s.PushAndAssertEq(atParameter, value)
		valid := s.Check()
		s.Pop(1)

		if valid {
			return value, true
		}

		blacklist[numid.AsUsize(value)] = true
		if value == previousValue {
			for blacklist[numid.AsUsize(previousValue)] {
				previousValue = (previousValue + 1) % numid.FromUsize[V](valueChoices)
			}
		}
	}

	var value V
	for blacklist[numid.AsUsize(value)] {
		value++
	}
	return value, true
}

// HorizontalExtendConstrained is HorizontalExtendUnconstrained with every
// fill decision routed through the solver via GetBestValueConstrained: a
// row's whole assigned prefix is pushed once, candidates are tried and
// popped one at a time underneath it, and the prefix is popped again
// before moving to the next row.
func HorizontalExtendConstrained[V numid.Unsigned, P numid.Unsigned, L numid.Unsigned](s solver.Solver[V], parameters []V, atParameter int, pcl *pclist.PCList[P, L], pcListLen int, m *mca.MCA[V, L], cm *covmap.CoverageMap[V]) {
	dontCareMask := ^numid.Bit[L](atParameter)
	noDontCares := numid.MaskLow[L](atParameter)
	valueChoices := numid.AsUsize(parameters[atParameter])

	scores := make([][]uint64, valueChoices)
	for i := range scores {
		scores[i] = make([]uint64, 0, pcListLen)
	}
	blacklist := make([]bool, valueChoices)

	var previousValue V
	uses := make([]int, valueChoices)
	uses[0] = 1
	cm.SetZeroCovered()
	m.Array[0][atParameter] = 0
	m.DontCareLocations[0] &= dontCareMask

row:
	for rowID := 1; rowID < m.Len(); rowID++ {
		row := m.Array[rowID]
		dontCareLocations := &m.DontCareLocations[rowID]

		for i := range scores {
			scores[i] = scores[i][:0]
		}
		for i := range blacklist {
			blacklist[i] = false
		}

		covmap.GetHighScoreMaskedTripleSub(cm, pcl, row, *dontCareLocations, noDontCares, scores, 0, pcListLen)

		anyScored := false
		for _, sc := range scores {
			if len(sc) > 0 {
				anyScored = true
				break
			}
		}
		if !anyScored {
			continue row
		}

		s.PushAndAssertRow(row[:atParameter])
		value, ok := GetBestValueConstrained(s, atParameter, previousValue, valueChoices, scores, blacklist, uses)
		s.Pop(1)

		if ok {
			row[atParameter] = value
			uses[numid.AsUsize(value)]++
			*dontCareLocations &= dontCareMask
			previousValue = value

			cm.SetIndices(scores[numid.AsUsize(value)])

			if cm.IsCovered() {
				return
			}
		}
	}
}

// pcValidConstrained asks the solver whether the interaction (pc, values)
// with atParameter bound to values' last element is satisfiable. On
// success the assertion frame is left on the stack for the caller to pop
// once it is done using it (fitInRowConstrained / AppendRow both run
// underneath it); on failure the frame is already popped.
func pcValidConstrained[V numid.Unsigned](s solver.Solver[V], atParameter int, pc []int, values []V) bool {
	s.PushAndAssertInteraction(pc, atParameter, values)
	result := s.Check()
	if !result {
		s.PopAll(1)
	}
	return result
}

// pcFitsRowConstrained is pcFitsRow plus a solver check: once the
// structural don't-care/equality test passes, the row's other assertions
// (everything but pc's members and atParameter) are checked alongside the
// already-pushed interaction to make sure absorbing it wouldn't make the
// row jointly unsatisfiable.
func pcFitsRowConstrained[V numid.Unsigned, L numid.Unsigned](s solver.Solver[V], atParameter int, pc []int, values []V, row []V, dontCareLocations, pcLocations L) bool {
	sharedLocations := dontCareLocations & pcLocations
	if sharedLocations == 0 {
		return false
	}

	if sharedLocations != pcLocations {
		for i, parameterID := range pc {
			if row[parameterID] != values[i] && !numid.IsDontCare(row[parameterID]) {
				return false
			}
		}
	}

	lastValueInteraction := values[len(values)-1]
	if row[atParameter] != lastValueInteraction && !numid.IsDontCare(row[atParameter]) {
		return false
	}

	s.PushAndAssertRowMasked(row, pc, atParameter)
	valid := solver.CheckAndPop(s, 1)
	if !valid {
		return false
	}

	row[atParameter] = lastValueInteraction
	return true
}

// fitInRowConstrained is fitInRowUnconstrained with pcFitsRowConstrained's
// solver-checked structural test in place of the plain one.
func fitInRowConstrained[V numid.Unsigned, P numid.Unsigned, L numid.Unsigned](s solver.Solver[V], atParameter int, pcl *pclist.PCList[P, L], pcListLen int, m *mca.MCA[V, L], cm *covmap.CoverageMap[V], pc []int, values []V, pcID int, pcLocations [2]L, locationsMask L) bool {
	for i, rowID := range m.VerticalExtensionRows {
		row := m.Array[rowID]
		dontCareLocations := &m.DontCareLocations[rowID]

		if !pcFitsRowConstrained(s, atParameter, pc, values, row, *dontCareLocations, pcLocations[0]) {
			continue
		}

		for j, parameterID := range pc {
			row[parameterID] = values[j]
		}
		*dontCareLocations &= pcLocations[1]

		if *dontCareLocations&locationsMask == 0 {
			m.RemoveVerticalExtensionRow(i)
		}

		covmap.SetCoveredRowSimpleSub(cm, atParameter, pcl, row, pcID+1, pcListLen)
		return true
	}
	return false
}

// VerticalExtendConstrained is VerticalExtendUnconstrained with pcValidConstrained
// gating every interaction: only an interaction the solver accepts ever
// gets absorbed into a row or appended as a new one, and the pc_valid
// assertion frame is popped once that decision is made.
func VerticalExtendConstrained[V numid.Unsigned, P numid.Unsigned, L numid.Unsigned](s solver.Solver[V], parameters []V, atParameter int, pcl *pclist.PCList[P, L], pcListLen int, m *mca.MCA[V, L], cm *covmap.CoverageMap[V]) {
	valueChoices := uint64(numid.AsUsize(parameters[atParameter]))
	locationsMask := m.SetVerticalExtensionRows(atParameter)
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

					if pcValidConstrained(s, atParameter, pcInts, values) {
						if !pcLocationsSet {
							pcLocations = [2]L{pcDontCareLocations, ^(pcDontCareLocations | parameterMask)}
							pcLocationsSet = true
						}

						if !fitInRowConstrained(s, atParameter, pcl, pcListLen, m, cm, pcInts, values, pcID, pcLocations, locationsMask) {
							m.AppendRow(atParameter, pcInts, values, pcLocations[1])
						}

						s.PopAll(1)
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

// FilterMap marks every interaction in pcs [start, end) the solver proves
// unsatisfiable as already covered, so extension never spends a candidate
// on something no valid row could ever hold. For each PC it walks every
// combination of that PC's member values (as an odometer, pushing only the
// assertions that changed since the previous combination) and, at each
// combination, tries every value of atParameter in turn.
func FilterMap[V numid.Unsigned, P numid.Unsigned, L numid.Unsigned](s solver.Solver[V], parameters []V, atParameter int, pcl *pclist.PCList[P, L], start, end int, cm *covmap.CoverageMap[V]) {
	mapIndex := uint64(0)

	for pcID := start; pcID < end; pcID++ {
		pc := PCAsInts(pcl.PCs[pcID])
		strength := len(pc) + 1

		values := make([]V, strength-1)
		maxValues := make([]V, strength-1)
		for i, parameterID := range pc {
			s.PushAndAssertEq(parameterID, 0)
			maxValues[i] = parameters[parameterID]
		}

		valueChoices := numid.AsUsize(parameters[atParameter])
		mapIndex++
		firstIteration := true

	valueLoop:
		for {
			for value := 0; value < valueChoices; value++ {
				if firstIteration {
					firstIteration = false
					continue
				}

				s.PushAndAssertEq(atParameter, numid.FromUsize[V](value))
				if !s.Check() {
					cm.SetIndex(mapIndex)
				}
				s.Pop(1)
				mapIndex++
			}

			valueIndex := strength - 2
			values[valueIndex]++
			for valueIndex > 0 && numid.AsUsize(values[valueIndex]) == numid.AsUsize(maxValues[valueIndex]) {
				values[valueIndex] = 0
				values[valueIndex-1]++
				valueIndex--
			}

			s.Pop(strength - valueIndex - 1)
			if valueIndex == 0 && values[0] == maxValues[0] {
				break valueLoop
			}

			s.PushAndAssertEq(pc[valueIndex], values[valueIndex])
			for valueIndex < strength-2 {
				valueIndex++
				s.PushAndAssertEq(pc[valueIndex], values[valueIndex])
			}
		}
	}
}
