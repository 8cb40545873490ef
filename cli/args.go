package cli

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/covarray/covarray/pclist"
)

// Version is overwritten via -ldflags at build time; the original embeds
// its git hash the same way through clap's crate_version! at compile time.
var Version = "dev"

// Config is the validated result of parsing a binary's command line.
type Config struct {
	InputPath   string
	OutputPath  string
	Strength    int
	Constraints bool
	ShowVersion bool
}

// ParseArgs builds a fresh FlagSet named programName, parses args against
// it, and validates the result. Each call gets its own FlagSet so that
// parsing twice in the same process (as tests do) never collides over
// already-registered flags.
func ParseArgs(programName string, args []string) (*Config, error) {
	fs := pflag.NewFlagSet(programName, pflag.ContinueOnError)
	output := fs.StringP("output", "o", "result.txt", "Set the output file.")
	strength := fs.IntP("strength", "s", 0, "Set the strength of the resulting test suite.")
	constraints := fs.BoolP("constraints", "c", false, "Use the constraints in the provided file.")
	noConstraints := fs.BoolP("no-constraints", "n", false, "Do not use the constraints in the provided file.")
	version := fs.BoolP("version", "v", false, "Print version information and exit.")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if *version {
		return &Config{ShowVersion: true}, nil
	}

	if fs.NArg() != 1 {
		return nil, ErrMissingInput
	}
	input := fs.Arg(0)

	if !fs.Changed("strength") {
		return nil, ErrMissingStrength
	}
	if *strength < pclist.MinStrength || *strength > pclist.MaxStrength {
		return nil, fmt.Errorf("%w: want %d..%d, got %d", ErrStrengthOutOfRange, pclist.MinStrength, pclist.MaxStrength, *strength)
	}

	if *constraints == *noConstraints {
		return nil, ErrConstraintFlagsRequired
	}

	if input == *output {
		return nil, ErrSameInputOutput
	}

	return &Config{
		InputPath:   input,
		OutputPath:  *output,
		Strength:    *strength,
		Constraints: *constraints,
	}, nil
}

func checkSizes(strength, parameterCount int) error {
	if strength > parameterCount {
		return fmt.Errorf("%w: strength %d, %d parameters", ErrStrengthExceedsParameters, strength, parameterCount)
	}
	return nil
}
