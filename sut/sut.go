package sut

import (
	"fmt"
	"sort"
	"strings"

	"github.com/covarray/covarray/numid"
	"github.com/covarray/covarray/solver"
)

// SUT is an unconstrained System Under Test: a list of parameters, each
// with a level (number of admissible values) and a set of value names.
//
// Parameters is indexed by parameter id and holds each parameter's level,
// expressed as V since every level must fit the chosen value-id width.
// Values[p][v] is the name of parameter p's value v.
type SUT[V numid.Unsigned, P numid.Unsigned] struct {
	Parameters     []V
	ParameterNames []string
	Values         [][]string
}

// rawSUT holds a parsed-but-not-yet-width-checked SUT, mirroring the
// original's SUT<usize, usize> intermediate representation.
type rawSUT struct {
	parameters     []int
	parameterNames []string
	values         [][]string
}

// newRawSUT sorts parameters by descending level (the default; IPOG runs
// better when the highest-level parameters are fixed first) and flattens
// them into parallel slices.
func newRawSUT(parameters []temporaryParameter) rawSUT {
	sorted := make([]temporaryParameter, len(parameters))
	copy(sorted, parameters)
	sort.SliceStable(sorted, func(i, j int) bool {
		return len(sorted[i].values) > len(sorted[j].values)
	})

	raw := rawSUT{
		parameters:     make([]int, len(sorted)),
		parameterNames: make([]string, len(sorted)),
		values:         make([][]string, len(sorted)),
	}
	for i, p := range sorted {
		raw.parameters[i] = len(p.values)
		raw.parameterNames[i] = p.name
		raw.values[i] = p.values
	}
	return raw
}

func checkParametersFit[P numid.Unsigned](raw rawSUT) error {
	limit := numid.AsUsize(numid.DontCare[P]())
	if len(raw.parameters) > limit {
		return fmt.Errorf("%w: %d parameters exceed parameter-id capacity", ErrOverflow, len(raw.parameters))
	}
	return nil
}

func checkValuesFit[V numid.Unsigned](raw rawSUT) error {
	limit := numid.AsUsize(numid.DontCare[V]())
	for _, level := range raw.parameters {
		if level >= limit {
			return fmt.Errorf("%w: a parameter has %d levels, which exceeds value-id capacity", ErrOverflow, level)
		}
	}
	return nil
}

func buildSUT[V numid.Unsigned, P numid.Unsigned](raw rawSUT) (*SUT[V, P], error) {
	if err := checkParametersFit[P](raw); err != nil {
		return nil, err
	}
	if err := checkValuesFit[V](raw); err != nil {
		return nil, err
	}
	for i, name := range raw.parameterNames {
		for _, other := range raw.parameterNames[:i] {
			if other == name {
				return nil, fmt.Errorf("sut: duplicate parameter name %q", name)
			}
		}
		seen := make(map[string]bool, len(raw.values[i]))
		for _, v := range raw.values[i] {
			if seen[v] {
				return nil, fmt.Errorf("sut: parameter %q has duplicate value %q", name, v)
			}
			seen[v] = true
		}
	}
	parameters := make([]V, len(raw.parameters))
	for i, level := range raw.parameters {
		parameters[i] = numid.FromUsize[V](level)
	}
	return &SUT[V, P]{
		Parameters:     parameters,
		ParameterNames: raw.parameterNames,
		Values:         raw.values,
	}, nil
}

// ParseUnconstrained parses a `.cocoa` parameter list with no constraint
// section into an unconstrained SUT.
func ParseUnconstrained[V numid.Unsigned, P numid.Unsigned](text string) (*SUT[V, P], error) {
	c := &cursor{text: text}
	params, err := c.parseParameters()
	if err != nil {
		return nil, err
	}
	c.skipWhitespace()
	if c.pos != len(c.text) {
		return nil, c.errorf("unexpected trailing content")
	}
	return buildSUT[V, P](newRawSUT(params))
}

// ConstrainedSUT wraps a SUT with `$assert` constraints plus the name
// tables needed to resolve them, and knows how to build a Solver for it.
type ConstrainedSUT[V numid.Unsigned, P numid.Unsigned] struct {
	SubSUT        *SUT[V, P]
	Constraints   []Expr
	ParameterToID map[string]int
	ValueToID     []map[string]int
}

func newConstrainedSUT[V numid.Unsigned, P numid.Unsigned](sub *SUT[V, P], constraints []Expr) *ConstrainedSUT[V, P] {
	return &ConstrainedSUT[V, P]{
		SubSUT:        sub,
		Constraints:   constraints,
		ParameterToID: parameterToID(sub.ParameterNames),
		ValueToID:     valueToID(sub.Values),
	}
}

func parameterToID(names []string) map[string]int {
	result := make(map[string]int, len(names))
	for i, name := range names {
		result[name] = i
	}
	return result
}

func valueToID(values [][]string) []map[string]int {
	result := make([]map[string]int, len(values))
	for i, vs := range values {
		m := make(map[string]int, len(vs))
		for j, v := range vs {
			m[v] = j
		}
		result[i] = m
	}
	return result
}

// ParseConstrained parses a `.cocoa` file's parameter list and `$assert`
// constraint section into a ConstrainedSUT.
func ParseConstrained[V numid.Unsigned, P numid.Unsigned](text string) (*ConstrainedSUT[V, P], error) {
	c := &cursor{text: text}
	params, err := c.parseParameters()
	if err != nil {
		return nil, err
	}
	constraints, err := c.parseConstraints()
	if err != nil {
		return nil, err
	}
	sub, err := buildSUT[V, P](newRawSUT(params))
	if err != nil {
		return nil, err
	}
	return newConstrainedSUT(sub, constraints), nil
}

// WrapSUT produces a ConstrainedSUT with no constraints, so the
// constrained code path can run unchanged over an unconstrained SUT.
func WrapSUT[V numid.Unsigned, P numid.Unsigned](sub *SUT[V, P]) *ConstrainedSUT[V, P] {
	return newConstrainedSUT(sub, nil)
}

// HasConstraints reports whether the SUT carries any `$assert` lines.
func (c *ConstrainedSUT[V, P]) HasConstraints() bool {
	return len(c.Constraints) > 0
}

// CountConstraints returns the number of `$assert` lines.
func (c *ConstrainedSUT[V, P]) CountConstraints() int {
	return len(c.Constraints)
}

// String renders the SUT back to `.cocoa` source, parameters first and
// constraints after a blank line, matching the original's Debug impl.
func (c *ConstrainedSUT[V, P]) String() string {
	var b strings.Builder
	for i, name := range c.SubSUT.ParameterNames {
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(strings.Join(c.SubSUT.Values[i], ", "))
		b.WriteString(";\n")
	}
	b.WriteString("\n")
	if len(c.Constraints) > 0 {
		b.WriteString(joinConstraints(c.Constraints))
		b.WriteString("\n")
	}
	return b.String()
}

func (c *ConstrainedSUT[V, P]) resolve(parameterName, valueName string) (int, int, error) {
	parameter, ok := c.ParameterToID[parameterName]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownParameter, parameterName)
	}
	value, ok := c.ValueToID[parameter][valueName]
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrUnknownValue, valueName)
	}
	return parameter, value, nil
}

func (c *ConstrainedSUT[V, P]) buildSolver() (*solver.GiniSolver[V], error) {
	b := solver.NewFormulaBuilder[V]()
	for _, constraint := range c.Constraints {
		lit, err := toLiteral(constraint, b, c.resolve)
		if err != nil {
			return nil, err
		}
		b.Assert(lit)
	}
	clauses, auxCount := b.Build()
	return solver.NewGiniSolver[V](c.SubSUT.Parameters, auxCount, clauses), nil
}

// NewAdditionalSolver builds a second GiniSolver loaded with the same
// constraints as GetSolver's, independent of any solver built before it:
// it shares no Gini instance, assumption stack, or literal tables with
// them, so it is safe to drive from a separate goroutine concurrently
// with a solver GetSolver returned. Must only be called after GetSolver
// has already returned successfully once, since GetSolver may permute
// value names to make the all-zeros row satisfiable, and this method
// relies on that permutation having already settled.
func (c *ConstrainedSUT[V, P]) NewAdditionalSolver() (*solver.GiniSolver[V], error) {
	return c.buildSolver()
}

// GetSolver builds a GiniSolver loaded with the SUT's constraints. If the
// all-zeros row is not satisfiable, it permutes each parameter's value
// names (and the ConstrainedSUT's lookup tables) so that it becomes one,
// then rebuilds the solver against the permuted names. It returns
// ErrInfeasible if no row satisfies the constraints at all.
func (c *ConstrainedSUT[V, P]) GetSolver() (*solver.GiniSolver[V], error) {
	s, err := c.buildSolver()
	if err != nil {
		return nil, err
	}

	row := make([]V, len(c.SubSUT.Parameters))
	if solver.CheckRow[V](s, row) {
		return s, nil
	}

	fixedRow, ok := solver.FindZeroRow[V](s, c.SubSUT.Parameters)
	if !ok {
		return nil, ErrInfeasible
	}

	for parameter, value := range fixedRow {
		if value == 0 {
			continue
		}
		vi := numid.AsUsize(value)
		values := c.SubSUT.Values[parameter]
		a, b := values[0], values[vi]
		values[0], values[vi] = b, a
		idMap := c.ValueToID[parameter]
		idMap[a], idMap[b] = idMap[b], idMap[a]
	}

	return c.buildSolver()
}
