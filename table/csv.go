// SPDX-License-Identifier: MIT

package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/pairdist/basis"
	"github.com/katalvlaran/pairdist/harmonic"
)

// Coefficient-source layout: label, h, j, two reserved cells, u1..u20.
const (
	// CellsPerRecord is the exact number of cells of a data line.
	CellsPerRecord = 5 + basis.NumCoeffs

	// HeaderLabel is the first cell of the header line.
	HeaderLabel = "k index for cos or sin"

	firstValueCell = 5
)

// ParseCSV reads coefficient records from the comma-separated source r.
//
// The header line and blank lines are skipped silently. Lines with a cell
// count other than CellsPerRecord, or with unparsable numbers, are skipped
// with a warning. Label validity is left to Build.
//
// Errors:
//   - I/O errors from r.
func ParseCSV(r io.Reader, opts ...Option) ([]Record, error) {
	o := gatherOptions(opts)
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1 // cell count is checked per line below
	cr.TrimLeadingSpace = true

	var out []Record
	for {
		cells, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			o.logger.Warn("skipping coefficient line", "line", perr.Line, "reason", perr.Err)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("ParseCSV: %w", err)
		}
		line, _ := cr.FieldPos(0)

		label := strings.TrimSpace(cells[0])
		if label == "" || label == HeaderLabel {
			continue
		}
		if len(cells) != CellsPerRecord {
			o.logger.Warn("skipping coefficient line", "line", line,
				"reason", fmt.Sprintf("got %d cells, want %d", len(cells), CellsPerRecord))
			continue
		}
		rec, err := parseRecord(label, cells)
		if err != nil {
			o.logger.Warn("skipping coefficient line", "line", line, "reason", err)
			continue
		}
		out = append(out, rec)
	}

	return out, nil
}

// parseRecord converts the numeric cells of one data line.
func parseRecord(label string, cells []string) (Record, error) {
	h, err := strconv.Atoi(strings.TrimSpace(cells[1]))
	if err != nil {
		return Record{}, fmt.Errorf("h: %w", err)
	}
	j, err := strconv.Atoi(strings.TrimSpace(cells[2]))
	if err != nil {
		return Record{}, fmt.Errorf("j: %w", err)
	}
	vals := make([]float64, basis.NumCoeffs)
	for i := range vals {
		v, err := strconv.ParseFloat(strings.TrimSpace(cells[firstValueCell+i]), 64)
		if err != nil {
			return Record{}, fmt.Errorf("u%d: %w", i+1, err)
		}
		vals[i] = v
	}

	return Record{Label: label, H: h, J: j, Values: vals}, nil
}

// LoadFile opens path, parses it with ParseCSV and builds the table.
func LoadFile(path string, opts ...Option) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadFile: %w", err)
	}
	defer f.Close()

	recs, err := ParseCSV(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("LoadFile %s: %w", path, err)
	}
	t, err := Build(recs, opts...)
	if err != nil {
		return nil, fmt.Errorf("LoadFile %s: %w", path, err)
	}

	return t, nil
}

// WriteCSV writes t in the coefficient-source layout, header included.
// The reserved cells hold the parameter position and the composite name.
// Values are formatted so that ParseCSV reads them back exactly.
func WriteCSV(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)

	header := make([]string, 0, CellsPerRecord)
	header = append(header, HeaderLabel, "h", "j", "parameter", "fit function")
	for i := 1; i <= basis.NumCoeffs; i++ {
		header = append(header, "u"+strconv.Itoa(i))
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}

	cells := make([]string, CellsPerRecord)
	for _, idx := range t.Indices() {
		shape, _ := harmonic.ShapeOf(idx)
		for n, row := range t.rows[idx.Ordinal()] {
			cells[0] = idx.K.Label()
			cells[1] = strconv.Itoa(idx.H)
			cells[2] = strconv.Itoa(idx.J)
			cells[3] = strconv.Itoa(n)
			cells[4] = shape.String()
			for i, v := range row {
				cells[firstValueCell+i] = strconv.FormatFloat(v, 'g', -1, 64)
			}
			if err := cw.Write(cells); err != nil {
				return fmt.Errorf("WriteCSV: %w", err)
			}
		}
	}
	cw.Flush()

	if err := cw.Error(); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}

	return nil
}
