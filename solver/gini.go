package solver

import (
	giniSAT "github.com/irifrance/gini"
	"github.com/irifrance/gini/z"

	"github.com/covarray/covarray/numid"
)

// GiniSolver is the real CNF-SAT-backed Solver, built on
// github.com/irifrance/gini. Each (parameter, value) pair gets its own
// boolean variable; an exactly-one clause set per parameter ties them
// together, and the caller's clauses encode the SUT's `$assert`
// constraints over those same variables. Checking satisfiability under a
// tentative row assignment is expressed as solving under assumption
// literals, exactly mirroring the original's MiniSat-assumption approach:
// push/pop only manipulate which assumptions are active, never the
// permanent clause database.
type GiniSolver[V numid.Unsigned] struct {
	sat        *giniSAT.Gini
	parameters [][]z.Lit // parameters[p][v] is the literal for parameter p = value v
	aux        []z.Lit   // auxiliary Tseitin variables introduced by FormulaBuilder
	values     []z.Lit   // active assumption literals, flattened across all pushes
	wayPoints  []int     // stack of prefix lengths into values, one per Push
}

var _ Solver[uint8] = (*GiniSolver[uint8])(nil)

// NewGiniSolver builds a solver for a SUT with the given per-parameter
// level counts and constraint clauses already translated into Literal
// atoms over (parameter, value) pairs, plus however many auxiliary
// variables those clauses reference (see FormulaBuilder.Build).
func NewGiniSolver[V numid.Unsigned](levels []V, auxCount int, clauses []Clause[V]) *GiniSolver[V] {
	sat := giniSAT.New()
	parameters := make([][]z.Lit, len(levels))

	for p, level := range levels {
		n := numid.AsUsize(level)
		lits := make([]z.Lit, n)
		for v := 0; v < n; v++ {
			lits[v] = sat.Lit()
		}
		parameters[p] = lits

		// At least one value holds.
		for _, lit := range lits {
			sat.Add(lit)
		}
		sat.Add(z.LitNull)

		// At most one value holds (pairwise mutual exclusion).
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				sat.Add(lits[i].Not())
				sat.Add(lits[j].Not())
				sat.Add(z.LitNull)
			}
		}
	}

	aux := make([]z.Lit, auxCount)
	for i := range aux {
		aux[i] = sat.Lit()
	}

	g := &GiniSolver[V]{
		sat:        sat,
		parameters: parameters,
		aux:        aux,
		values:     make([]z.Lit, 0, len(levels)),
		wayPoints:  make([]int, 0, len(levels)),
	}

	for _, clause := range clauses {
		for _, literal := range clause {
			sat.Add(g.lit(literal))
		}
		sat.Add(z.LitNull)
	}

	return g
}

func (g *GiniSolver[V]) lit(l Literal[V]) z.Lit {
	var lit z.Lit
	if l.IsAux {
		lit = g.aux[l.Aux]
	} else {
		lit = g.parameters[l.Parameter][numid.AsUsize(l.Value)]
	}
	if l.Negated {
		return lit.Not()
	}
	return lit
}

func (g *GiniSolver[V]) Push() {
	g.wayPoints = append(g.wayPoints, len(g.values))
}

func (g *GiniSolver[V]) Pop(num int) {
	if num == 0 {
		panic("solver: pop(0) is meaningless")
	}
	if len(g.wayPoints) < num {
		panic("solver: pop underflows the assertion stack")
	}
	g.wayPoints = g.wayPoints[:len(g.wayPoints)-num+1]
	newLen := g.wayPoints[len(g.wayPoints)-1]
	g.wayPoints = g.wayPoints[:len(g.wayPoints)-1]
	g.values = g.values[:newLen]
}

func (g *GiniSolver[V]) PopAll(num int) {
	if len(g.wayPoints) != num {
		panic("solver: pop_all count does not match stack depth")
	}
	g.values = g.values[:0]
	g.wayPoints = g.wayPoints[:0]
}

func (g *GiniSolver[V]) PushAndAssertEq(parameter int, value V) {
	g.Push()
	if numid.AsUsize(value) < len(g.parameters[parameter]) {
		g.values = append(g.values, g.parameters[parameter][numid.AsUsize(value)])
	}
}

func (g *GiniSolver[V]) PushAndAssertRow(row []V) {
	g.Push()
	for parameter, value := range row {
		if numid.IsDontCare(value) {
			continue
		}
		g.values = append(g.values, g.parameters[parameter][numid.AsUsize(value)])
	}
}

func (g *GiniSolver[V]) PushAndAssertRowMasked(row []V, pc []int, atParameter int) {
	g.Push()
	skip := make(map[int]bool, len(pc)+1)
	for _, p := range pc {
		skip[p] = true
	}
	skip[atParameter] = true

	for parameter := 0; parameter < atParameter; parameter++ {
		if skip[parameter] {
			continue
		}
		value := row[parameter]
		if numid.IsDontCare(value) {
			continue
		}
		g.values = append(g.values, g.parameters[parameter][numid.AsUsize(value)])
	}
}

func (g *GiniSolver[V]) PushAndAssertInteraction(pc []int, atParameter int, values []V) {
	g.Push()
	for i, parameter := range pc {
		g.values = append(g.values, g.parameters[parameter][numid.AsUsize(values[i])])
	}
	g.values = append(g.values, g.parameters[atParameter][numid.AsUsize(values[len(values)-1])])
}

func (g *GiniSolver[V]) Check() bool {
	if len(g.values) > 0 {
		g.sat.Assume(g.values...)
	}
	return g.sat.Solve() == 1
}

func (g *GiniSolver[V]) String() string {
	return "<GiniSolver>"
}
