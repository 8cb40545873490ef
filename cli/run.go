package cli

import (
	"os"

	"github.com/charmbracelet/log"

	"github.com/covarray/covarray/mca"
	"github.com/covarray/covarray/numid"
	"github.com/covarray/covarray/sut"
	"github.com/covarray/covarray/writer"
)

// Dispatch supplies the two generator entry points a binary calls into,
// standing in for the original main! macro's compile-time unconstrained/
// constrained method pair.
type Dispatch[V numid.Unsigned, P numid.Unsigned, L numid.Unsigned] struct {
	Unconstrained func(parameters []V, strength int, logger *log.Logger) (*mca.MCA[V, L], error)
	Constrained   func(csut *sut.ConstrainedSUT[V, P], strength int, logger *log.Logger) (*mca.MCA[V, L], error)
}

// Run loads cfg.InputPath, parses it as a constrained or unconstrained SUT
// per cfg.Constraints, generates an MCA through d, and writes the result to
// cfg.OutputPath.
func Run[V numid.Unsigned, P numid.Unsigned, L numid.Unsigned](cfg *Config, logger *log.Logger, d Dispatch[V, P, L]) error {
	contents, err := os.ReadFile(cfg.InputPath)
	if err != nil {
		return err
	}

	var s *sut.SUT[V, P]
	var m *mca.MCA[V, L]

	if cfg.Constraints {
		csut, err := sut.ParseConstrained[V, P](string(contents))
		if err != nil {
			return err
		}
		s = csut.SubSUT
		if err := checkSizes(cfg.Strength, len(s.Parameters)); err != nil {
			return err
		}

		if csut.HasConstraints() {
			m, err = d.Constrained(csut, cfg.Strength, logger)
		} else {
			m, err = d.Unconstrained(s.Parameters, cfg.Strength, logger)
		}
		if err != nil {
			return err
		}
	} else {
		parsed, err := sut.ParseUnconstrained[V, P](string(contents))
		if err != nil {
			return err
		}
		s = parsed
		if err := checkSizes(cfg.Strength, len(s.Parameters)); err != nil {
			return err
		}

		m, err = d.Unconstrained(s.Parameters, cfg.Strength, logger)
		if err != nil {
			return err
		}
	}

	return writer.WriteResult(s, m, cfg.OutputPath)
}
