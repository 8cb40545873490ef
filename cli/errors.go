package cli

import "errors"

var (
	// ErrMissingInput means no positional input file argument was given.
	ErrMissingInput = errors.New("cli: an input file argument is required")

	// ErrMissingStrength means --strength was not provided.
	ErrMissingStrength = errors.New("cli: --strength is required")

	// ErrStrengthOutOfRange means --strength fell outside [pclist.MinStrength, pclist.MaxStrength].
	ErrStrengthOutOfRange = errors.New("cli: strength out of range")

	// ErrConstraintFlagsRequired means neither or both of --constraints/--no-constraints were given.
	ErrConstraintFlagsRequired = errors.New("cli: exactly one of --constraints or --no-constraints is required")

	// ErrSameInputOutput means the input and output paths are identical.
	ErrSameInputOutput = errors.New("cli: input and output paths must differ")

	// ErrStrengthExceedsParameters means the requested strength is larger
	// than the SUT's parameter count.
	ErrStrengthExceedsParameters = errors.New("cli: strength exceeds parameter count")
)
