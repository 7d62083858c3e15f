package export_test

import (
	"bytes"
	"encoding/csv"
	"log/slog"
	"math"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/pairdist/export"
	"github.com/katalvlaran/pairdist/matrix"
	"github.com/katalvlaran/pairdist/reconstruct"
	"github.com/katalvlaran/pairdist/table/tabletest"
)

var (
	testR    = []float64{0.9, 1.2}
	testPhi1 = []float64{0, math.Pi / 2, math.Pi}
	testPhi2 = []float64{0, math.Pi}
)

func field(t *testing.T) *reconstruct.Field {
	t.Helper()
	quiet := slog.New(slog.NewTextHandler(new(bytes.Buffer), nil))
	rc, err := reconstruct.New(tabletest.Table(t), reconstruct.WithLogger(quiet))
	require.NoError(t, err)
	f, err := rc.ComputeAxes(testR, testPhi1, testPhi2, 10, 0.2)
	require.NoError(t, err)

	return f
}

func rawFloat(t *testing.T, wb *excelize.File, sheet, cell string) float64 {
	t.Helper()
	s, err := wb.GetCellValue(sheet, cell, excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	v, err := strconv.ParseFloat(s, 64)
	require.NoError(t, err, "%s!%s = %q", sheet, cell, s)

	return v
}

// TestWriteXLSX reopens the workbook and checks the summary, labels and data.
func TestWriteXLSX(t *testing.T) {
	f := field(t)
	path := filepath.Join(t.TempDir(), "g.xlsx")
	require.NoError(t, export.WriteXLSX(path, f))

	wb, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer wb.Close()

	assert.Equal(t, []string{export.SummarySheet, "r1", "r2"}, wb.GetSheetList())

	st := f.Stats()
	assert.Equal(t, 10.0, rawFloat(t, wb, export.SummarySheet, "B2"))
	assert.Equal(t, 0.2, rawFloat(t, wb, export.SummarySheet, "B3"))
	assert.Equal(t, 2.0, rawFloat(t, wb, export.SummarySheet, "B4"))
	assert.Equal(t, 3.0, rawFloat(t, wb, export.SummarySheet, "B5"))
	assert.Equal(t, 2.0, rawFloat(t, wb, export.SummarySheet, "B6"))
	assert.Equal(t, st.Min, rawFloat(t, wb, export.SummarySheet, "B7"))
	assert.Equal(t, st.Max, rawFloat(t, wb, export.SummarySheet, "B8"))
	assert.Equal(t, st.Mean, rawFloat(t, wb, export.SummarySheet, "B9"))

	for i, r := range testR {
		sheet := export.SheetName(i)
		assert.Equal(t, r, rawFloat(t, wb, sheet, "B1"))
		assert.Equal(t, testPhi1[2], rawFloat(t, wb, sheet, "A6"))
		assert.Equal(t, testPhi2[1], rawFloat(t, wb, sheet, "C3"))

		s, err := f.Slice(i)
		require.NoError(t, err)
		s.Do(func(a, b int, v float64) bool {
			cell, _ := excelize.CoordinatesToCellName(2+b, 4+a)
			assert.Equal(t, v, rawFloat(t, wb, sheet, cell), "%s!%s", sheet, cell)
			return true
		})
	}
}

// TestWriteXLSXMeshLabels checks mesh grids are labeled by position.
func TestWriteXLSXMeshLabels(t *testing.T) {
	quiet := slog.New(slog.NewTextHandler(new(bytes.Buffer), nil))
	rc, err := reconstruct.New(tabletest.Table(t), reconstruct.WithLogger(quiet))
	require.NoError(t, err)
	x, y, err := matrix.Meshgrid(testPhi1, testPhi2)
	require.NoError(t, err)
	grid, err := reconstruct.NewMeshGrid(x, y)
	require.NoError(t, err)
	f, err := rc.Compute([]float64{1}, grid, 10, 0.2)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "mesh.xlsx")
	require.NoError(t, export.WriteXLSX(path, f))
	wb, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer wb.Close()

	corner, err := wb.GetCellValue("r1", "A3")
	require.NoError(t, err)
	assert.Equal(t, "a\\b", corner)
	assert.Equal(t, 2.0, rawFloat(t, wb, "r1", "A6"))
	assert.Equal(t, 1.0, rawFloat(t, wb, "r1", "C3"))
}

// TestWriteTSV parses the long-format output back.
func TestWriteTSV(t *testing.T) {
	f := field(t)
	var buf bytes.Buffer
	require.NoError(t, export.WriteTSV(&buf, f))

	cr := csv.NewReader(&buf)
	cr.Comma = '\t'
	lines, err := cr.ReadAll()
	require.NoError(t, err)
	require.Len(t, lines, 1+len(testR)*len(testPhi1)*len(testPhi2))
	assert.Equal(t, export.TSVHeader, lines[0])

	n := 1
	for i, r := range testR {
		for a, p1 := range testPhi1 {
			for b, p2 := range testPhi2 {
				want, err := f.At(i, a, b)
				require.NoError(t, err)
				line := lines[n]
				n++
				assert.Equal(t, strconv.FormatFloat(r, 'g', -1, 64), line[0])
				assert.Equal(t, strconv.FormatFloat(p1, 'g', -1, 64), line[1])
				assert.Equal(t, strconv.FormatFloat(p2, 'g', -1, 64), line[2])
				got, err := strconv.ParseFloat(line[3], 64)
				require.NoError(t, err)
				assert.Equal(t, want, got)
			}
		}
	}
}

// TestNilField checks both writers reject a nil field.
func TestNilField(t *testing.T) {
	require.ErrorIs(t, export.WriteTSV(new(bytes.Buffer), nil), export.ErrNilField)
	require.ErrorIs(t, export.WriteXLSX(filepath.Join(t.TempDir(), "x.xlsx"), nil), export.ErrNilField)
}
