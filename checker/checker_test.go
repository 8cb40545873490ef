package checker

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/covarray/covarray/ipog"
	"github.com/covarray/covarray/solver"
	"github.com/covarray/covarray/sut"
	"github.com/covarray/covarray/writer"
)

func TestCheckFileAcceptsAGenuineCoveringArray(t *testing.T) {
	s, err := sut.ParseUnconstrained[uint8, uint8](`p0: a, b, c; p1: x, y; p2: 0, 1;`)
	require.NoError(t, err)

	m, err := ipog.RunUnconstrained[uint8, uint8, uint16](s.Parameters, 2, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writer.WriteResultTo(&buf, s, m))

	err = CheckFile[uint8, uint8, uint16](s, solver.FakeSolver[uint8]{}, bytes.NewReader(buf.Bytes()), 2)
	require.NoError(t, err)
}

func TestCheckFileRejectsAMismatchedHeader(t *testing.T) {
	s, err := sut.ParseUnconstrained[uint8, uint8](`p0: a, b; p1: x, y;`)
	require.NoError(t, err)

	body := "#  '*' represents don't care value\n# Number of parameters: 2\n# Number of configurations: 1\nwrong,header\na,x\n"
	err = CheckFile[uint8, uint8, uint16](s, solver.FakeSolver[uint8]{}, bytes.NewReader([]byte(body)), 2)
	require.ErrorIs(t, err, ErrColumnMismatch)
}

func TestCheckFileDetectsAnUncoveredInteraction(t *testing.T) {
	s, err := sut.ParseUnconstrained[uint8, uint8](`p0: a, b; p1: x, y;`)
	require.NoError(t, err)

	body := "#  '*' represents don't care value\n# Number of parameters: 2\n# Number of configurations: 1\np0,p1\na,x\n"
	err = CheckFile[uint8, uint8, uint16](s, solver.FakeSolver[uint8]{}, bytes.NewReader([]byte(body)), 2)
	require.Error(t, err)
	var notCovering *NotCoveringError
	require.ErrorAs(t, err, &notCovering)
}

func TestCheckFileHandlesStrengthEqualsParameterCount(t *testing.T) {
	s, err := sut.ParseUnconstrained[uint8, uint8](`p0: a, b;`)
	require.NoError(t, err)

	m, err := ipog.RunUnconstrained[uint8, uint8, uint16](s.Parameters, 1, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writer.WriteResultTo(&buf, s, m))

	err = CheckFile[uint8, uint8, uint16](s, solver.FakeSolver[uint8]{}, bytes.NewReader(buf.Bytes()), 1)
	require.NoError(t, err)
}
