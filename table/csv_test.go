package table_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pairdist/harmonic"
	"github.com/katalvlaran/pairdist/table"
	"github.com/katalvlaran/pairdist/table/tabletest"
)

// dataLine formats one 25-cell coefficient line with u1 = first.
func dataLine(label string, h, j int, first string) string {
	cells := []string{label, itoa(h), itoa(j), "a", ""}
	cells = append(cells, first)
	for i := 1; i < 20; i++ {
		cells = append(cells, "0")
	}
	return strings.Join(cells, ",")
}

func itoa(n int) string { return string(rune('0' + n)) }

// TestParseCSV covers header, blank, short and unparsable lines.
func TestParseCSV(t *testing.T) {
	var logs bytes.Buffer
	src := strings.Join([]string{
		table.HeaderLabel + ",h,j,param,func,u1,u2,u3,u4,u5,u6,u7,u8,u9,u10,u11,u12,u13,u14,u15,u16,u17,u18,u19,u20",
		dataLine("coscos", 0, 0, "1.5"),
		"",
		",,,,",
		"coscos,0,0,only,five",
		dataLine("sinsin", 2, 3, "-2e-3"),
		dataLine("sinsin", 2, 3, "oops"),
	}, "\n") + "\n"

	recs, err := table.ParseCSV(strings.NewReader(src), table.WithLogger(quietLogger(&logs)))
	require.NoError(t, err)
	require.Len(t, recs, 2)

	require.Equal(t, "coscos", recs[0].Label)
	require.Equal(t, 0, recs[0].H)
	require.Equal(t, 1.5, recs[0].Values[0])
	require.Len(t, recs[0].Values, 20)

	require.Equal(t, "sinsin", recs[1].Label)
	require.Equal(t, 2, recs[1].H)
	require.Equal(t, 3, recs[1].J)
	require.Equal(t, -2e-3, recs[1].Values[0])

	require.Equal(t, 2, bytes.Count(logs.Bytes(), []byte("skipping coefficient line")))
}

// TestWriteParseRoundTrip writes a table and reads it back bit for bit.
func TestWriteParseRoundTrip(t *testing.T) {
	tbl := tabletest.Table(t)

	var buf bytes.Buffer
	require.NoError(t, table.WriteCSV(&buf, tbl))
	require.True(t, strings.HasPrefix(buf.String(), table.HeaderLabel+","))

	recs, err := table.ParseCSV(&buf)
	require.NoError(t, err)
	again, err := table.Build(recs)
	require.NoError(t, err)

	for _, idx := range harmonic.All() {
		a, _ := tbl.Rows(idx)
		b, _ := again.Rows(idx)
		require.Equal(t, a, b, idx.String())
	}
}

// TestLoadFile exercises the file path, including a missing-index failure.
func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	tbl := tabletest.Table(t)

	var buf bytes.Buffer
	require.NoError(t, table.WriteCSV(&buf, tbl))
	good := filepath.Join(dir, "Interpolation_parameters.csv")
	require.NoError(t, os.WriteFile(good, buf.Bytes(), 0o644))

	loaded, err := table.LoadFile(good)
	require.NoError(t, err)
	require.Equal(t, harmonic.Count, loaded.Len())

	// Drop the last data line: (2,3,3) loses a row.
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	short := filepath.Join(dir, "short.csv")
	require.NoError(t, os.WriteFile(short, []byte(strings.Join(lines[:len(lines)-1], "\n")+"\n"), 0o644))

	_, err = table.LoadFile(short)
	require.ErrorIs(t, err, table.ErrRowCount)

	_, err = table.LoadFile(filepath.Join(dir, "absent.csv"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
