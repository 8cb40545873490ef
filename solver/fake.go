package solver

import "github.com/covarray/covarray/numid"

// FakeSolver reports every check as satisfiable. It is used for
// unconstrained SUTs and for the check-mca verifier, which must apply the
// same Solver-shaped code paths without paying for a real SAT backend.
type FakeSolver[V numid.Unsigned] struct{}

var _ Solver[uint8] = FakeSolver[uint8]{}

func (FakeSolver[V]) Push()                                                    {}
func (FakeSolver[V]) Pop(int)                                                  {}
func (FakeSolver[V]) PopAll(int)                                               {}
func (FakeSolver[V]) PushAndAssertEq(int, V)                                   {}
func (FakeSolver[V]) PushAndAssertRow([]V)                                     {}
func (FakeSolver[V]) PushAndAssertRowMasked([]V, []int, int)                   {}
func (FakeSolver[V]) PushAndAssertInteraction([]int, int, []V)                 {}
func (FakeSolver[V]) Check() bool                                              { return true }

func (FakeSolver[V]) String() string { return "<FakeSolver>" }
