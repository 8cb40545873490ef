package sut

import (
	"strings"

	"github.com/covarray/covarray/numid"
	"github.com/covarray/covarray/solver"
)

// resolver looks up a (parameter name, value name) pair against the
// current name tables, returning the parameter and value indices. It
// exists so toLiteral never touches ConstrainedSUT's maps directly, since
// those maps are rebuilt by the zero-row fixer's permutation step.
type resolver func(parameterName, valueName string) (parameter int, value int, err error)

// Expr is a boolean constraint formula node: And/Or/Implies (via BinOp),
// Not, and the Eq leaf. It mirrors the original's Expr trait.
type Expr interface {
	String() string
	isExpr()
}

// bop identifies a BinOp's connective.
type bop int

const (
	opAnd bop = iota
	opOr
	opImplies
)

func (o bop) String() string {
	switch o {
	case opAnd:
		return " && "
	case opOr:
		return " || "
	default:
		return " => "
	}
}

// Not negates its operand.
type Not struct {
	Sub Expr
}

func (*Not) isExpr()          {}
func (n *Not) String() string { return "!(" + n.Sub.String() + ")" }

// BinOp is a binary connective over two sub-expressions.
type BinOp struct {
	Left  Expr
	Op    bop
	Right Expr
}

func (*BinOp) isExpr() {}
func (o *BinOp) String() string {
	return "(" + o.Left.String() + o.Op.String() + o.Right.String() + ")"
}

// Eq is the atomic proposition "parameter = value", referenced by name.
type Eq struct {
	Parameter string
	Value     string
}

func (*Eq) isExpr()          {}
func (e *Eq) String() string { return e.Parameter + "=" + e.Value }

// toLiteral walks an Expr tree exactly as expr_minisat.rs's apply_minisat
// walks the Rust Expr tree, but emitting solver.FormulaBuilder gates
// instead of MiniSat Bool gates. V is the ConstrainedSUT's chosen value-id
// width, carried as a type parameter here since Expr itself stays
// non-generic (it is built once at parse time, before V is known to the
// generic SUT/ConstrainedSUT instantiation that will consume it).
func toLiteral[V numid.Unsigned](e Expr, b *solver.FormulaBuilder[V], resolve resolver) (solver.Literal[V], error) {
	switch n := e.(type) {
	case *Eq:
		parameter, value, err := resolve(n.Parameter, n.Value)
		if err != nil {
			return solver.Literal[V]{}, err
		}
		return solver.Atom[V](parameter, numid.FromUsize[V](value)), nil

	case *Not:
		sub, err := toLiteral(n.Sub, b, resolve)
		if err != nil {
			return solver.Literal[V]{}, err
		}
		return sub.Not(), nil

	case *BinOp:
		left, err := toLiteral(n.Left, b, resolve)
		if err != nil {
			return solver.Literal[V]{}, err
		}
		right, err := toLiteral(n.Right, b, resolve)
		if err != nil {
			return solver.Literal[V]{}, err
		}
		switch n.Op {
		case opAnd:
			return b.And(left, right), nil
		case opOr:
			return b.Or(left, right), nil
		default:
			return b.Implies(left, right), nil
		}

	default:
		panic("sut: unknown Expr node type")
	}
}

func joinConstraints(constraints []Expr) string {
	parts := make([]string, len(constraints))
	for i, c := range constraints {
		parts[i] = "$assert " + c.String() + ";"
	}
	return strings.Join(parts, "\n")
}
