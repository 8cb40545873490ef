package checker

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/covarray/covarray/covmap"
	"github.com/covarray/covarray/numid"
	"github.com/covarray/covarray/pclist"
	"github.com/covarray/covarray/solver"
	"github.com/covarray/covarray/sut"
	"github.com/covarray/covarray/valuegen"
	"github.com/covarray/covarray/writer"
)

// CheckFile reads a writer-format result file from r and confirms it is a
// strength-way covering array for s, pushing every row through solv first
// (use solver.FakeSolver[V]{} for an unconstrained SUT).
func CheckFile[V numid.Unsigned, P numid.Unsigned, L numid.Unsigned](s *sut.SUT[V, P], solv solver.Solver[V], r io.Reader, strength int) error {
	scanner := bufio.NewScanner(r)

	var header string
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "#") {
			continue
		}
		header = line
		break
	}

	columns := strings.Split(header, ",")
	if err := checkHeader(s, columns); err != nil {
		return err
	}

	valueIndex := buildValueIndex(s.Values)

	// A dummy level-1 parameter joins the real ones so the existing
	// per-column covmap/pclist machinery can check every strength-sized
	// combination of REAL parameters in one shot: pclStrength (one
	// higher than the requested strength) makes each PC itself strength
	// members wide, with the dummy contributing the interaction's single
	// extra (always-zero) slot instead of a real degree of freedom.
	if strength > len(s.Parameters) {
		return fmt.Errorf("checker: strength %d exceeds %d parameters", strength, len(s.Parameters))
	}
	if strength == len(s.Parameters) {
		return drainRows(scanner, s, valueIndex, solv, columns, len(s.Parameters))
	}

	augmented := append(append([]V(nil), s.Parameters...), numid.FromUsize[V](1))
	atParameter := len(s.Parameters)
	pclStrength := strength + 1
	pcl, err := pclist.Build[P, L](len(augmented), pclStrength)
	if err != nil {
		return err
	}
	cm := covmap.New[V, P, L](augmented, pcl)
	cm.Initialise(atParameter)
	pcListLen := pcl.Sizes[atParameter-pclStrength]

	row := make([]V, atParameter+1)
	lineNumber := 1
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if line == "" {
			continue
		}
		cells := strings.Split(line, ",")
		if len(cells) != len(columns) {
			return fmt.Errorf("%w: line %d has %d cells, want %d", ErrMalformedRow, lineNumber, len(cells), len(columns))
		}
		for i, cell := range cells {
			if cell == writer.DontCareText {
				row[i] = numid.DontCare[V]()
				continue
			}
			id, ok := valueIndex[i][cell]
			if !ok {
				return fmt.Errorf("%w: line %d: %q is not a value of %s", ErrMalformedRow, lineNumber, cell, s.ParameterNames[i])
			}
			row[i] = numid.FromUsize[V](id)
		}
		row[atParameter] = 0

		if !solver.CheckRow[V](solv, row[:atParameter]) {
			return fmt.Errorf("%w: line %d: %s", ErrConstraintViolation, lineNumber, line)
		}
		covmap.SetCoveredRowSimpleSub(cm, atParameter, pcl, row, 0, pcListLen)
	}

	if cm.IsCovered() {
		return nil
	}

	pcIndex, valueOffset, found := firstUncovered(cm, pcListLen)
	if !found {
		return &NotCoveringError{}
	}

	parameters := make([]int, len(pcl.PCs[pcIndex]))
	for i, p := range pcl.PCs[pcIndex] {
		parameters[i] = numid.AsUsize(p)
	}

	values := make([]V, pclStrength)
	gen := valuegen.New[V](augmented, atParameter, parameters)
	gen.SkipArray(values, numid.FromUsize[V](valueOffset))

	assigned := make([]int, len(pcl.PCs[pcIndex]))
	for i := range assigned {
		assigned[i] = numid.AsUsize(values[i])
	}

	return &NotCoveringError{Parameters: parameters, Values: assigned}
}

// drainRows handles the degenerate strength == len(parameters) case: each
// row is replayed through the constraint check, and the array covers only
// if its distinct rows without a don't-care cell number the product of
// all parameter levels. A row containing a don't-care cell is not counted
// toward coverage.
func drainRows[V numid.Unsigned, P numid.Unsigned](scanner *bufio.Scanner, s *sut.SUT[V, P], valueIndex []map[string]int, solv solver.Solver[V], columns []string, parameterCount int) error {
	row := make([]V, parameterCount)
	seen := make(map[string]bool)
	lineNumber := 1
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if line == "" {
			continue
		}
		cells := strings.Split(line, ",")
		if len(cells) != len(columns) {
			return fmt.Errorf("%w: line %d has %d cells, want %d", ErrMalformedRow, lineNumber, len(cells), len(columns))
		}
		for i, cell := range cells {
			if cell == writer.DontCareText {
				row[i] = numid.DontCare[V]()
				continue
			}
			id, ok := valueIndex[i][cell]
			if !ok {
				return fmt.Errorf("%w: line %d: %q is not a value of %s", ErrMalformedRow, lineNumber, cell, s.ParameterNames[i])
			}
			row[i] = numid.FromUsize[V](id)
		}
		if !solver.CheckRow[V](solv, row) {
			return fmt.Errorf("%w: line %d: %s", ErrConstraintViolation, lineNumber, line)
		}
		if !strings.Contains(line, writer.DontCareText) {
			seen[line] = true
		}
	}
	total := 1
	for _, level := range s.Parameters {
		total *= numid.AsUsize(level)
	}
	if len(seen) < total {
		return &NotCoveringError{}
	}
	return nil
}

func checkHeader[V numid.Unsigned, P numid.Unsigned](s *sut.SUT[V, P], columns []string) error {
	if len(columns) != len(s.ParameterNames) {
		return fmt.Errorf("%w: expected %d columns, got %d", ErrColumnMismatch, len(s.ParameterNames), len(columns))
	}
	for i, name := range columns {
		if name != s.ParameterNames[i] {
			return fmt.Errorf("%w: column %d is %q, want %q", ErrColumnMismatch, i, name, s.ParameterNames[i])
		}
	}
	return nil
}

func buildValueIndex(values [][]string) []map[string]int {
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

// firstUncovered finds the lowest-index uncovered bit among the active PCs
// and maps it back to a (pc, within-pc value offset) pair. A direct
// bit-by-bit scan, not the word-skipping one vertical extension uses:
// check-mca is a one-shot auditor run once per result file, not a hot loop,
// so simplicity wins over the extra bookkeeping a skip-scan needs.
func firstUncovered[V numid.Unsigned](cm *covmap.CoverageMap[V], pcListLen int) (pcIndex int, valueOffset int, found bool) {
	total := cm.Sizes[pcListLen][0]
	for index := uint64(0); index < total; index++ {
		wordIndex := index >> covmap.BitShift
		bit := uint64(1) << (index & covmap.BitMask)
		if cm.Word(wordIndex)&bit != 0 {
			continue
		}
		pc := 0
		for pc+1 < pcListLen && cm.Sizes[pc+1][0] <= index {
			pc++
		}
		return pc, int(index - cm.Sizes[pc][0]), true
	}
	return 0, 0, false
}
