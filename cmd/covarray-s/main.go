// Command covarray-s generates a mixed-level covering array for a system
// under test using the single-threaded IPOG implementation.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/covarray/covarray/cli"
	"github.com/covarray/covarray/ipog"
	"github.com/covarray/covarray/mca"
	"github.com/covarray/covarray/sut"
)

// Value ids and parameter ids are widened to uint16 rather than the
// original's fixed u8,u8 instantiation, and locations to uint64: the
// original chooses one of a handful of precompiled const-generic widths at
// build time, but Go's runtime strength parameter (see cli.Dispatch) makes
// the whole precompiled-matrix approach unnecessary, so one generous width
// covers every SUT instead of dispatching between several.
type valueID = uint16
type parameterID = uint16
type location = uint64

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := cli.ParseArgs("covarray-s", args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if cfg.ShowVersion {
		fmt.Printf("covarray-s %s\n", cli.Version)
		return 0
	}

	logger := log.New(os.Stderr)

	dispatch := cli.Dispatch[valueID, parameterID, location]{
		Unconstrained: func(parameters []valueID, strength int, logger *log.Logger) (*mca.MCA[valueID, location], error) {
			return ipog.RunUnconstrained[valueID, parameterID, location](parameters, strength, logger)
		},
		Constrained: func(csut *sut.ConstrainedSUT[valueID, parameterID], strength int, logger *log.Logger) (*mca.MCA[valueID, location], error) {
			return ipog.RunConstrained[valueID, parameterID, location](csut, strength, logger)
		},
	}

	if err := cli.Run(cfg, logger, dispatch); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
