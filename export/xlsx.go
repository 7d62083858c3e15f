// SPDX-License-Identifier: MIT

package export

import (
	"fmt"
	"math"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/katalvlaran/pairdist/reconstruct"
)

// SummarySheet is the name of the first worksheet.
const SummarySheet = "Summary"

// Layout of a distance sheet: A1/B1 hold "r" and its value, the label row
// is dataRow-1 and the label column is A.
const (
	dataRow = 4
	dataCol = 2
)

// SheetName is the worksheet name for distance index i.
func SheetName(i int) string { return "r" + strconv.Itoa(i+1) }

// WriteXLSX writes f to an .xlsx workbook at path.
//
// Implementation:
//   - Stage 1: Summary sheet with Pe, Φ, the field shape and statistics.
//   - Stage 2: one sheet per distance; cell (a, b) of the data block is
//     g(r_i, φ1[a,b], φ2[a,b]).
//
// Errors:
//   - ErrNilField, or the underlying excelize error wrapped with its cell.
func WriteXLSX(path string, f *reconstruct.Field) error {
	if f == nil {
		return fmt.Errorf("WriteXLSX: %w", ErrNilField)
	}
	wb := excelize.NewFile()
	defer wb.Close()

	if err := wb.SetSheetName("Sheet1", SummarySheet); err != nil {
		return fmt.Errorf("WriteXLSX: %w", err)
	}
	if err := writeSummary(wb, f); err != nil {
		return fmt.Errorf("WriteXLSX: %w", err)
	}

	r := f.R()
	for i := range r {
		if err := writeSlice(wb, f, i); err != nil {
			return fmt.Errorf("WriteXLSX: sheet %s: %w", SheetName(i), err)
		}
	}

	if err := wb.SaveAs(path); err != nil {
		return fmt.Errorf("WriteXLSX: %w", err)
	}

	return nil
}

func writeSummary(wb *excelize.File, f *reconstruct.Field) error {
	nr, n1, n2 := f.Shape()
	st := f.Stats()
	rows := [][2]any{
		{"Quantity", "Value"},
		{"Pe", cell(f.Peclet())},
		{"Phi", cell(f.Density())},
		{"distances", nr},
		{"n1", n1},
		{"n2", n2},
		{"min", cell(st.Min)},
		{"max", cell(st.Max)},
		{"mean", cell(st.Mean)},
		{"NaN", st.NaN},
	}
	for n, row := range rows {
		if err := set(wb, SummarySheet, 1, n+1, row[0]); err != nil {
			return err
		}
		if err := set(wb, SummarySheet, 2, n+1, row[1]); err != nil {
			return err
		}
	}

	return nil
}

func writeSlice(wb *excelize.File, f *reconstruct.Field, i int) error {
	sheet := SheetName(i)
	if _, err := wb.NewSheet(sheet); err != nil {
		return err
	}
	s, err := f.Slice(i)
	if err != nil {
		return err
	}
	if err := set(wb, sheet, 1, 1, "r"); err != nil {
		return err
	}
	if err := set(wb, sheet, 2, 1, cell(f.R()[i])); err != nil {
		return err
	}

	// Labels
	phi1, phi2, axes := f.Grid().Axes()
	corner := "a\\b"
	if axes {
		corner = "phi1\\phi2"
	}
	if err := set(wb, sheet, 1, dataRow-1, corner); err != nil {
		return err
	}
	for a := 0; a < s.Rows(); a++ {
		var label any = a
		if axes {
			label = cell(phi1[a])
		}
		if err := set(wb, sheet, 1, dataRow+a, label); err != nil {
			return err
		}
	}
	for b := 0; b < s.Cols(); b++ {
		var label any = b
		if axes {
			label = cell(phi2[b])
		}
		if err := set(wb, sheet, dataCol+b, dataRow-1, label); err != nil {
			return err
		}
	}

	// Data
	var werr error
	s.Do(func(a, b int, v float64) bool {
		werr = set(wb, sheet, dataCol+b, dataRow+a, cell(v))
		return werr == nil
	})

	return werr
}

func set(wb *excelize.File, sheet string, col, row int, v any) error {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := wb.SetCellValue(sheet, name, v); err != nil {
		return fmt.Errorf("cell %s: %w", name, err)
	}

	return nil
}

// cell maps non-finite values to text.
func cell(v float64) any {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}

	return v
}
