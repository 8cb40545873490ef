package solver

import "github.com/covarray/covarray/numid"

// CheckAndPop checks the current stack and then pops num frames. It is the
// Go expression of the original's default trait method of the same name.
func CheckAndPop[V numid.Unsigned](s Solver[V], num int) bool {
	result := s.Check()
	s.Pop(num)
	return result
}

// CheckAndPopAll checks the current stack and then pops all num frames; the
// stack must be exactly num deep.
func CheckAndPopAll[V numid.Unsigned](s Solver[V], num int) bool {
	result := s.Check()
	s.PopAll(num)
	return result
}

// CheckRow pushes row, checks it, and pops it again. Requires (and leaves)
// an empty stack.
func CheckRow[V numid.Unsigned](s Solver[V], row []V) bool {
	s.PushAndAssertRow(row)
	return CheckAndPopAll(s, 1)
}

// CheckRowOverrides pushes the interaction and the masked row, checks them
// together, and pops both. Requires (and leaves) an empty stack.
func CheckRowOverrides[V numid.Unsigned](s Solver[V], row []V, pc []int, atParameter int, values []V) bool {
	s.PushAndAssertInteraction(pc, atParameter, values)
	s.PushAndAssertRowMasked(row, pc, atParameter)
	return CheckAndPopAll(s, 2)
}
