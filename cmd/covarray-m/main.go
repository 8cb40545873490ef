// Command covarray-m generates a mixed-level covering array for a system
// under test using the multithreaded IPOG implementation.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/covarray/covarray/cli"
	"github.com/covarray/covarray/ipogmt"
	"github.com/covarray/covarray/mca"
	"github.com/covarray/covarray/sut"
)

type valueID = uint16
type parameterID = uint16
type location = uint64

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := cli.ParseArgs("covarray-m", args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if cfg.ShowVersion {
		fmt.Printf("covarray-m %s\n", cli.Version)
		return 0
	}

	logger := log.New(os.Stderr)

	dispatch := cli.Dispatch[valueID, parameterID, location]{
		Unconstrained: func(parameters []valueID, strength int, logger *log.Logger) (*mca.MCA[valueID, location], error) {
			return ipogmt.RunUnconstrained[valueID, parameterID, location](parameters, strength, logger)
		},
		Constrained: func(csut *sut.ConstrainedSUT[valueID, parameterID], strength int, logger *log.Logger) (*mca.MCA[valueID, location], error) {
			return ipogmt.RunConstrained[valueID, parameterID, location](csut, strength, logger)
		},
	}

	if err := cli.Run(cfg, logger, dispatch); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
