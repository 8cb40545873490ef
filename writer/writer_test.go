package writer

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/covarray/covarray/mca"
	"github.com/covarray/covarray/sut"
)

func TestWriteResultToRendersHeaderAndNamedValues(t *testing.T) {
	s, err := sut.ParseUnconstrained[uint8, uint8](`p0: a, b; p1: x, y, z;`)
	require.NoError(t, err)

	m := mca.NewUnconstrained[uint8, uint16](s.Parameters, len(s.Parameters))

	var buf bytes.Buffer
	require.NoError(t, WriteResultTo(&buf, s, m))

	lines := bytesSplitLines(t, buf.Bytes())
	require.Equal(t, "#  '*' represents don't care value", lines[0])
	require.Equal(t, "# Number of parameters: 2", lines[1])
	require.Equal(t, "# Number of configurations: 6", lines[2])
	require.Equal(t, strings.Join(s.ParameterNames, ","), lines[3])

	require.Len(t, lines, 4+m.Len())
	for i, row := range m.Array {
		expected := s.Values[0][row[0]] + "," + s.Values[1][row[1]]
		require.Equal(t, expected, lines[4+i])
	}
}

func TestWriteResultToRendersDontCareAsAsterisk(t *testing.T) {
	s, err := sut.ParseUnconstrained[uint8, uint8](`p0: a, b; p1: x, y, z;`)
	require.NoError(t, err)

	m := mca.NewUnconstrained[uint8, uint16](s.Parameters, 1)

	var buf bytes.Buffer
	require.NoError(t, WriteResultTo(&buf, s, m))

	lines := bytesSplitLines(t, buf.Bytes())
	first := m.Array[0]
	expected := s.Values[0][first[0]] + ",*"
	require.Equal(t, expected, lines[4])
}

func TestWriteResultWritesToDisk(t *testing.T) {
	s, err := sut.ParseUnconstrained[uint8, uint8](`p0: a, b;`)
	require.NoError(t, err)
	m := mca.NewUnconstrained[uint8, uint16](s.Parameters, 1)

	path := filepath.Join(t.TempDir(), "result.txt")
	require.NoError(t, WriteResult(s, m, path))

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(contents), "# Number of parameters: 1")
}

func bytesSplitLines(t *testing.T, data []byte) []string {
	t.Helper()
	text := string(bytes.TrimRight(data, "\n"))
	return strings.Split(text, "\n")
}
