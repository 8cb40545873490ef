package solver

import "github.com/covarray/covarray/numid"

// FormulaBuilder Tseitin-encodes arbitrary propositional formulas over
// (parameter, value) atoms into CNF clauses suitable for NewGiniSolver. It
// exists so the sut package's Expr AST (And/Or/Implies/Not/Eq, mirroring
// the original's boolean-gate evaluation against a MiniSat Bool) can be
// translated into clauses without solver importing sut, or sut reaching
// into gini directly.
type FormulaBuilder[V numid.Unsigned] struct {
	nextAux int
	clauses []Clause[V]
}

// NewFormulaBuilder returns an empty builder.
func NewFormulaBuilder[V numid.Unsigned]() *FormulaBuilder[V] {
	return &FormulaBuilder[V]{}
}

func (b *FormulaBuilder[V]) newAux() Literal[V] {
	lit := Literal[V]{IsAux: true, Aux: b.nextAux}
	b.nextAux++
	return lit
}

// And returns a literal equivalent to (a && c), introducing one auxiliary
// variable and the three clauses of its standard Tseitin encoding.
func (b *FormulaBuilder[V]) And(a, c Literal[V]) Literal[V] {
	aux := b.newAux()
	b.clauses = append(b.clauses,
		Clause[V]{aux.Not(), a},
		Clause[V]{aux.Not(), c},
		Clause[V]{aux, a.Not(), c.Not()},
	)
	return aux
}

// Or returns a literal equivalent to (a || c).
func (b *FormulaBuilder[V]) Or(a, c Literal[V]) Literal[V] {
	aux := b.newAux()
	b.clauses = append(b.clauses,
		Clause[V]{a.Not(), aux},
		Clause[V]{c.Not(), aux},
		Clause[V]{aux.Not(), a, c},
	)
	return aux
}

// Implies returns a literal equivalent to (a => c), i.e. (!a || c).
func (b *FormulaBuilder[V]) Implies(a, c Literal[V]) Literal[V] {
	return b.Or(a.Not(), c)
}

// Assert records l as a top-level unit clause: the built solver must treat
// it as true.
func (b *FormulaBuilder[V]) Assert(l Literal[V]) {
	b.clauses = append(b.clauses, Clause[V]{l})
}

// Build returns the accumulated CNF clauses and how many auxiliary
// variables they reference, for NewGiniSolver.
func (b *FormulaBuilder[V]) Build() (clauses []Clause[V], auxCount int) {
	return b.clauses, b.nextAux
}
