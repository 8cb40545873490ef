// Command check-mca independently audits a result file produced by
// covarray-s or covarray-m, confirming it is genuinely a covering array of
// the requested strength. It is inefficient by design — a one-shot replay,
// not a hot path — so prefer it for small arrays or be ready to wait.
package main

import (
	"fmt"
	"os"

	"github.com/covarray/covarray/checker"
	"github.com/covarray/covarray/cli"
	"github.com/covarray/covarray/solver"
	"github.com/covarray/covarray/sut"
)

type valueID = uint16
type parameterID = uint16
type location = uint64

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, err := cli.ParseArgs("check-mca", args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if cfg.ShowVersion {
		fmt.Printf("check-mca %s\n", cli.Version)
		return 0
	}

	if err := checkFile(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	fmt.Println("MCA is covering.")
	return 0
}

func checkFile(cfg *cli.Config) error {
	contents, err := os.ReadFile(cfg.InputPath)
	if err != nil {
		return err
	}

	var s *sut.SUT[valueID, parameterID]
	var solv solver.Solver[valueID]

	if cfg.Constraints {
		csut, err := sut.ParseConstrained[valueID, parameterID](string(contents))
		if err != nil {
			return err
		}
		if err := checkSizes(cfg.Strength, len(csut.SubSUT.Parameters)); err != nil {
			return err
		}
		s = csut.SubSUT
		if csut.HasConstraints() {
			gini, err := csut.GetSolver()
			if err != nil {
				return err
			}
			solv = gini
		} else {
			solv = solver.FakeSolver[valueID]{}
		}
	} else {
		parsed, err := sut.ParseUnconstrained[valueID, parameterID](string(contents))
		if err != nil {
			return err
		}
		if err := checkSizes(cfg.Strength, len(parsed.Parameters)); err != nil {
			return err
		}
		s = parsed
		solv = solver.FakeSolver[valueID]{}
	}

	result, err := os.Open(cfg.OutputPath)
	if err != nil {
		return err
	}
	defer result.Close()

	return checker.CheckFile[valueID, parameterID, location](s, solv, result, cfg.Strength)
}

func checkSizes(strength, parameterCount int) error {
	if strength > parameterCount {
		return fmt.Errorf("check-mca: strength %d exceeds %d parameters", strength, parameterCount)
	}
	return nil
}
