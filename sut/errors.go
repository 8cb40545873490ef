package sut

import (
	"errors"
	"strconv"
)

var (
	// ErrOverflow means the parsed SUT has more parameters, or a
	// parameter with more levels, than the chosen id type can represent.
	ErrOverflow = errors.New("sut: parameter or value count overflows the chosen id width")

	// ErrInfeasible means a constrained SUT's constraints admit no
	// satisfying row at all.
	ErrInfeasible = errors.New("sut: constraints admit no satisfiable row")

	// ErrUnknownParameter means a constraint referenced a parameter name
	// that no parameter line declared.
	ErrUnknownParameter = errors.New("sut: constraint references an unknown parameter")

	// ErrUnknownValue means a constraint referenced a value name that
	// its parameter's value list does not contain.
	ErrUnknownValue = errors.New("sut: constraint references an unknown value")
)

// ParseError reports a syntax error at a specific byte offset, in the
// teacher's sentinel-error-plus-context style.
type ParseError struct {
	Offset  int
	Message string
}

func (e *ParseError) Error() string {
	return "sut: parse error at offset " + strconv.Itoa(e.Offset) + ": " + e.Message
}
