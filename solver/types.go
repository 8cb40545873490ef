package solver

import "github.com/covarray/covarray/numid"

// Solver represents a constraint-satisfaction backend scoped by a push/pop
// assertion stack. V is the value-id type.
//
// Implementations must treat Push/Pop/PopAll as exact stack-depth
// bookkeeping: every Push call (including the ones the PushAndAssert*
// methods perform implicitly) adds exactly one frame, and Pop(n) removes
// exactly n frames, restoring the assertions exactly as they were below
// that depth.
type Solver[V numid.Unsigned] interface {
	// Push records the current assertion set as a restore point.
	Push()

	// Pop discards the most recent num restore points, along with any
	// assertions made since the oldest of them.
	Pop(num int)

	// PopAll discards all num restore points; the stack must be exactly
	// num deep when this is called.
	PopAll(num int)

	// PushAndAssertEq pushes a restore point and asserts parameter =
	// value.
	PushAndAssertEq(parameter int, value V)

	// PushAndAssertRow pushes a restore point and asserts every concrete
	// (non-don't-care) cell of row as parameter = row[parameter].
	PushAndAssertRow(row []V)

	// PushAndAssertRowMasked is PushAndAssertRow restricted to the cells
	// before atParameter, skipping pc's member parameters.
	PushAndAssertRowMasked(row []V, pc []int, atParameter int)

	// PushAndAssertInteraction pushes a restore point and asserts the
	// interaction's equalities: pc[i] = values[i] for each i, and
	// atParameter = values[len(values)-1].
	PushAndAssertInteraction(pc []int, atParameter int, values []V)

	// Check reports whether the current assertion set is satisfiable.
	Check() bool
}

// Literal is either a (parameter, value) equality atom or an auxiliary
// Tseitin variable introduced by FormulaBuilder, optionally negated.
// Clauses built from Literals are how callers (the sut package) hand a
// constrained SUT's `$assert` formulas to GiniSolver without GiniSolver
// importing sut.
type Literal[V numid.Unsigned] struct {
	IsAux     bool
	Parameter int
	Value     V
	Aux       int
	Negated   bool
}

// Atom returns the literal for the proposition "parameter = value".
func Atom[V numid.Unsigned](parameter int, value V) Literal[V] {
	return Literal[V]{Parameter: parameter, Value: value}
}

// Not returns the negation of l.
func (l Literal[V]) Not() Literal[V] {
	l.Negated = !l.Negated
	return l
}

// Clause is a disjunction of Literals: the constraint is satisfied when at
// least one of them holds.
type Clause[V numid.Unsigned] []Literal[V]
