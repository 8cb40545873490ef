package ipogmt

import (
	"sync"

	"github.com/covarray/covarray/covmap"
	"github.com/covarray/covarray/mca"
	"github.com/covarray/covarray/numid"
	"github.com/covarray/covarray/pclist"
	"github.com/covarray/covarray/solver"
)

// scorePCRange scores PCs [start,end) of row against cm, bucketed by
// candidate value for atParameter.
func scorePCRange[V numid.Unsigned, P numid.Unsigned, L numid.Unsigned](cm *covmap.CoverageMap[V], pcl *pclist.PCList[P, L], row []V, dontCareLocations, noDontCares L, valueChoices, pcListLen, start, end int) [][]uint64 {
	scores := make([][]uint64, valueChoices)
	for v := range scores {
		scores[v] = make([]uint64, 0, (pcListLen-start)/4+1)
	}
	covmap.GetHighScoreMaskedTripleSub(cm, pcl, row, dontCareLocations, noDontCares, scores, start, end)
	return scores
}

// mergeScoreParts concatenates threadCount workers' per-value partial
// score slices into one set of score slices, in worker order.
func mergeScoreParts(partials [][][]uint64, valueChoices int) [][]uint64 {
	merged := make([][]uint64, valueChoices)
	for v := 0; v < valueChoices; v++ {
		total := 0
		for _, p := range partials {
			total += len(p[v])
		}
		merged[v] = make([]uint64, 0, total)
		for _, p := range partials {
			merged[v] = append(merged[v], p[v]...)
		}
	}
	return merged
}

// scoreRowThreaded splits the active PC range [0, pcListLen) across
// threadCount worker goroutines and scores row's candidates concurrently.
// Which sub-range each worker takes rotates per call via ranges/callIndex
// (see CyclingRange) rather than staying fixed, so that across many rows
// every worker ends up covering the whole PC space instead of always
// scoring the same slice. Every worker only reads cm; nothing writes to it
// until all workers have returned, so this has no data race to guard
// against.
func scoreRowThreaded[V numid.Unsigned, P numid.Unsigned, L numid.Unsigned](cm *covmap.CoverageMap[V], pcl *pclist.PCList[P, L], row []V, dontCareLocations, noDontCares L, valueChoices, pcListLen int, ranges []Range, callIndex, threadCount int) [][]uint64 {
	partials := make([][][]uint64, threadCount)
	var wg sync.WaitGroup
	for w := 0; w < threadCount; w++ {
		start, end := CyclingRange(ranges, w, callIndex)
		wg.Add(1)
		go func(w, start, end int) {
			defer wg.Done()
			partials[w] = scorePCRange(cm, pcl, row, dontCareLocations, noDontCares, valueChoices, pcListLen, start, end)
		}(w, start, end)
	}
	wg.Wait()

	return mergeScoreParts(partials, valueChoices)
}

// scorePCRangeLimited is scorePCRange restricted to the values in
// feasible, via GetHighScoreSubValuesLimited instead of
// GetHighScoreMaskedTripleSub.
func scorePCRangeLimited[V numid.Unsigned, P numid.Unsigned, L numid.Unsigned](cm *covmap.CoverageMap[V], pcl *pclist.PCList[P, L], row []V, feasible []V, valueChoices, pcListLen, start, end int) [][]uint64 {
	scores := make([][]uint64, valueChoices)
	for v := range scores {
		scores[v] = make([]uint64, 0, (pcListLen-start)/4+1)
	}
	covmap.GetHighScoreSubValuesLimited(cm, pcl, row, feasible, scores, start, end)
	return scores
}

// scoreRowThreadedLimited is scoreRowThreaded restricted to the values in
// feasible: used by the constraint-prefetch path (§4.11) once a row's
// feasible value set is already known, so scoring never bothers with a
// value the solver has already ruled out.
func scoreRowThreadedLimited[V numid.Unsigned, P numid.Unsigned, L numid.Unsigned](cm *covmap.CoverageMap[V], pcl *pclist.PCList[P, L], row []V, feasible []V, valueChoices, pcListLen int, ranges []Range, callIndex, threadCount int) [][]uint64 {
	partials := make([][][]uint64, threadCount)
	var wg sync.WaitGroup
	for w := 0; w < threadCount; w++ {
		start, end := CyclingRange(ranges, w, callIndex)
		wg.Add(1)
		go func(w, start, end int) {
			defer wg.Done()
			partials[w] = scorePCRangeLimited(cm, pcl, row, feasible, valueChoices, pcListLen, start, end)
		}(w, start, end)
	}
	wg.Wait()

	return mergeScoreParts(partials, valueChoices)
}

func anyScored(scores [][]uint64) bool {
	for _, sc := range scores {
		if len(sc) > 0 {
			return true
		}
	}
	return false
}

// HorizontalExtendThreadedUnconstrained is ipog.HorizontalExtendUnconstrained
// with every row's score computation spread across threadCount worker
// goroutines (split by PC range, not by row); value selection and the
// coverage-map commit remain sequential, since they mutate shared state
// that the next row's scoring pass depends on.
func HorizontalExtendThreadedUnconstrained[V numid.Unsigned, P numid.Unsigned, L numid.Unsigned](parameters []V, atParameter int, pcl *pclist.PCList[P, L], pcListLen int, m *mca.MCA[V, L], cm *covmap.CoverageMap[V], threadCount int) {
	dontCareMask := ^numid.Bit[L](atParameter)
	noDontCares := numid.MaskLow[L](atParameter)
	valueChoices := numid.AsUsize(parameters[atParameter])

	var previousValue V
	uses := make([]int, valueChoices)
	uses[0] = 1
	cm.SetZeroCovered()
	m.Array[0][atParameter] = 0
	m.DontCareLocations[0] &= dontCareMask
	ranges := CyclingRanges(threadCount, pcListLen)

row:
	for rowID := 1; rowID < m.Len(); rowID++ {
		row := m.Array[rowID]
		dontCareLocations := &m.DontCareLocations[rowID]

		scores := scoreRowThreaded(cm, pcl, row, *dontCareLocations, noDontCares, valueChoices, pcListLen, ranges, rowID-1, threadCount)
		if !anyScored(scores) {
			continue row
		}

		value := covmap.GetHighScoreValue(scores, uses, previousValue)
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

// PrefetchRingSize is the number of rows' feasible-value sets the
// constraint-prefetch goroutine may compute ahead of the row the main
// goroutine is currently scoring (§4.11). Must be a power of two: slot
// selection is row_id & (PrefetchRingSize-1).
const PrefetchRingSize = 16

// constraintPrefetchRing is the fixed-size handoff between
// runConstraintPrefetch and HorizontalExtendThreadedConstrained: slot
// row_id&(PrefetchRingSize-1) carries the feasible-value set for that row
// over a capacity-1 channel. A slot's channel can hold at most one unread
// set, so the producer blocks on slot reuse (16 rows later) until the
// consumer has drained the previous one, bounding how far ahead of the
// main goroutine prefetch is allowed to run.
type constraintPrefetchRing[V numid.Unsigned] struct {
	ready [PrefetchRingSize]chan []V
}

func newConstraintPrefetchRing[V numid.Unsigned]() *constraintPrefetchRing[V] {
	r := &constraintPrefetchRing[V]{}
	for i := range r.ready {
		r.ready[i] = make(chan []V, 1)
	}
	return r
}

// feasibleValues asks s, with prefix pushed as row assertions, which of
// [0, valueChoices) atParameter could still take.
func feasibleValues[V numid.Unsigned](s solver.Solver[V], prefix []V, atParameter, valueChoices int) []V {
	feasible := make([]V, 0, valueChoices)
	s.PushAndAssertRow(prefix)
	for v := 0; v < valueChoices; v++ {
		value := numid.FromUsize[V](v)
		s.PushAndAssertEq(atParameter, value)
		if s.Check() {
			feasible = append(feasible, value)
		}
		s.Pop(1)
	}
	s.Pop(1)
	return feasible
}

// runConstraintPrefetch walks rows [1, m.Len()) in order on its own solver
// instance s (independent of the one the calling goroutine uses, per
// sut.ConstrainedSUT.NewAdditionalSolver), computing each row's feasible
// value set for atParameter and publishing it into ring. Every row before
// atParameter is already fixed by prior iterations, so reading
// row[:atParameter] here races with nothing the main goroutine writes
// (which only ever touches row[atParameter] and dontCareLocations).
// Returns once every row has been published or done is closed.
func runConstraintPrefetch[V numid.Unsigned, L numid.Unsigned](s solver.Solver[V], atParameter, valueChoices int, m *mca.MCA[V, L], ring *constraintPrefetchRing[V], done <-chan struct{}) {
	for rowID := 1; rowID < m.Len(); rowID++ {
		row := m.Array[rowID]
		feasible := feasibleValues(s, row[:atParameter], atParameter, valueChoices)

		slot := rowID & (PrefetchRingSize - 1)
		select {
		case ring.ready[slot] <- feasible:
		case <-done:
			return
		}
	}
}

// HorizontalExtendThreadedConstrained is HorizontalExtendThreadedUnconstrained
// with fill decisions restricted to the feasible value set a dedicated
// constraint-prefetch goroutine computes ahead of time on prefetchSolver
// (§4.11), instead of ipog.GetBestValueConstrained's sequential
// blacklist/pop-retry loop: since the prefetch goroutine has already
// asked the solver which values are feasible for a row, the scoring phase
// only needs to rank among them (via GetHighScoreSubValuesLimited), and
// value selection needs no further solver round-trip.
func HorizontalExtendThreadedConstrained[V numid.Unsigned, P numid.Unsigned, L numid.Unsigned](prefetchSolver solver.Solver[V], parameters []V, atParameter int, pcl *pclist.PCList[P, L], pcListLen int, m *mca.MCA[V, L], cm *covmap.CoverageMap[V], threadCount int) {
	dontCareMask := ^numid.Bit[L](atParameter)
	valueChoices := numid.AsUsize(parameters[atParameter])
	ranges := CyclingRanges(threadCount, pcListLen)

	ring := newConstraintPrefetchRing[V]()
	done := make(chan struct{})
	finished := make(chan struct{})
	defer func() {
		close(done)
		<-finished
	}()
	go func() {
		defer close(finished)
		runConstraintPrefetch(prefetchSolver, atParameter, valueChoices, m, ring, done)
	}()

	notFeasible := make([]bool, valueChoices)
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

		slot := rowID & (PrefetchRingSize - 1)
		feasible := <-ring.ready[slot]
		if len(feasible) == 0 {
			continue row
		}

		scores := scoreRowThreadedLimited(cm, pcl, row, feasible, valueChoices, pcListLen, ranges, rowID-1, threadCount)
		if !anyScored(scores) {
			continue row
		}

		for i := range notFeasible {
			notFeasible[i] = true
		}
		for _, v := range feasible {
			notFeasible[numid.AsUsize(v)] = false
		}

		value := covmap.GetHighScoreValueBlacklisted(scores, uses, previousValue, notFeasible)
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
