package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/covarray/covarray/mca"
	"github.com/covarray/covarray/numid"
	"github.com/covarray/covarray/sut"
)

// DontCareText is emitted for any cell still holding the don't-care
// sentinel when an MCA is written without every interaction having been
// resolved to a concrete value.
const DontCareText = "*"

// WriteResult creates (or truncates) path and writes m's rows there in the
// output format, using s to resolve value ids back to their original
// names.
func WriteResult[V numid.Unsigned, P numid.Unsigned, L numid.Unsigned](s *sut.SUT[V, P], m *mca.MCA[V, L], path string) (err error) {
	file, createErr := os.Create(path)
	if createErr != nil {
		return fmt.Errorf("writer: create %s: %w", path, createErr)
	}
	defer func() {
		if closeErr := file.Close(); err == nil {
			err = closeErr
		}
	}()

	err = WriteResultTo(file, s, m)
	return err
}

// WriteResultTo writes the comment header, the parameter-name header row,
// and one CSV row per row of m to w.
func WriteResultTo[V numid.Unsigned, P numid.Unsigned, L numid.Unsigned](w io.Writer, s *sut.SUT[V, P], m *mca.MCA[V, L]) error {
	if err := writeHeader(w, len(s.Parameters), m.Len()); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(s.ParameterNames); err != nil {
		return err
	}

	record := make([]string, len(s.Parameters))
	for _, row := range m.Array {
		for i, cell := range row {
			record[i] = valueText(s, i, cell)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func writeHeader(w io.Writer, parameterCount, rowCount int) error {
	_, err := fmt.Fprintf(w, "#  '*' represents don't care value\n# Number of parameters: %d\n# Number of configurations: %d\n", parameterCount, rowCount)
	return err
}

func valueText[V numid.Unsigned, P numid.Unsigned](s *sut.SUT[V, P], parameterIndex int, cell V) string {
	if numid.IsDontCare(cell) {
		return DontCareText
	}
	return s.Values[parameterIndex][cell]
}
