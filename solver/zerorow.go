package solver

import "github.com/covarray/covarray/numid"

// FindZeroRow searches for a satisfiable all-zeros-biased row: starting
// from the all-zeros assignment, it repeatedly finds (by binary search) the
// longest prefix of parameters whose equality assertions are jointly
// satisfiable, then bumps the trial value at the first unsatisfiable
// parameter and retries. It returns the first fully satisfiable row found,
// or ok=false if every value of some parameter was exhausted without one.
//
// Requires (and leaves) an empty solver stack.
func FindZeroRow[V numid.Unsigned](s Solver[V], levels []V) (row []V, ok bool) {
	row = make([]V, len(levels))

	for {
		prefixLen := satisfiablePrefixLen(s, row)
		if prefixLen == len(row) {
			return row, true
		}

		failing := prefixLen
		row[failing]++
		for i := failing + 1; i < len(row); i++ {
			row[i] = 0
		}

		if numid.AsUsize(row[failing]) >= numid.AsUsize(levels[failing]) {
			return nil, false
		}
	}
}

// satisfiablePrefixLen binary-searches the longest k in [0, len(row)] such
// that asserting row[0..k) as equalities is jointly satisfiable.
func satisfiablePrefixLen[V numid.Unsigned](s Solver[V], row []V) int {
	lo, hi := 0, len(row)
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if prefixSatisfiable(s, row, mid) {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

func prefixSatisfiable[V numid.Unsigned](s Solver[V], row []V, k int) bool {
	for p := 0; p < k; p++ {
		s.PushAndAssertEq(p, row[p])
	}
	result := s.Check()
	if k > 0 {
		s.Pop(k)
	}
	return result
}
