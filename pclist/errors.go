package pclist

import "errors"

var (
	// ErrStrengthOutOfRange indicates strength was not within [MinStrength, MaxStrength].
	ErrStrengthOutOfRange = errors.New("pclist: strength out of range")

	// ErrTooFewParameters indicates fewer parameters than strength were supplied.
	ErrTooFewParameters = errors.New("pclist: parameter count must be at least strength")
)

// MinStrength and MaxStrength bound the supported interaction strength t.
const (
	MinStrength = 2
	MaxStrength = 12
)
