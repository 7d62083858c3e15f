// SPDX-License-Identifier: MIT

package table

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/pairdist/basis"
	"github.com/katalvlaran/pairdist/harmonic"
)

// Record is one coefficient-source entry: the 20 coefficients of one
// interpolation-function instance for index (Label, H, J).
type Record struct {
	Label  string    // "coscos" (k=1) or "sinsin" (k=2)
	H, J   int       // harmonic numbers
	Values []float64 // u1..u20
}

// Table maps each harmonic index to its ordered coefficient rows.
// The zero value is an empty table; use Build.
type Table struct {
	rows [harmonic.Count][]basis.Coeffs
}

// Build ingests records in order and validates the result.
//
// Implementation:
//   - Stage 1: map label→k, skip (and log) records with an unknown label,
//     an index outside the series, or a payload other than 20 values.
//   - Stage 2: append each accepted payload as a new row under (k,h,j).
//   - Stage 3: require harmonic.Arity(idx) rows for every present index and,
//     unless AllowMissing, the presence of all 25 indices.
//
// Errors:
//   - ErrRowCount, ErrMissingIndex (both wrap ErrMalformedTable).
func Build(records []Record, opts ...Option) (*Table, error) {
	o := gatherOptions(opts)
	t := &Table{}
	skipped := 0

	for n, rec := range records {
		k, err := harmonic.ParseClass(rec.Label)
		if err != nil {
			o.logger.Warn("skipping coefficient record", "record", n, "reason", err)
			skipped++
			continue
		}
		idx := harmonic.Index{K: k, H: rec.H, J: rec.J}
		if !idx.Valid() {
			o.logger.Warn("skipping coefficient record", "record", n, "index", idx.String(),
				"reason", "index outside the series")
			skipped++
			continue
		}
		if len(rec.Values) != basis.NumCoeffs {
			o.logger.Warn("skipping coefficient record", "record", n, "index", idx.String(),
				"reason", fmt.Sprintf("got %d values, want %d", len(rec.Values), basis.NumCoeffs))
			skipped++
			continue
		}
		var row basis.Coeffs
		copy(row[:], rec.Values)
		slot := idx.Ordinal()
		t.rows[slot] = append(t.rows[slot], row)
	}

	if err := t.validate(o.allowMissing); err != nil {
		return nil, err
	}
	o.logger.Debug("parameter table built",
		slog.Int("records", len(records)),
		slog.Int("skipped", skipped),
		slog.Int("indices", t.Len()))

	return t, nil
}

// validate checks row counts of present indices and, unless allowMissing,
// presence of every index. Indices are checked in summation order so the
// reported index is deterministic.
func (t *Table) validate(allowMissing bool) error {
	for _, idx := range harmonic.All() {
		got := len(t.rows[idx.Ordinal()])
		if got == 0 {
			if allowMissing {
				continue
			}
			return indexErrorf(idx, ErrMissingIndex)
		}
		if want := harmonic.Arity(idx); got != want {
			return fmt.Errorf("index %s: got %d rows, want %d: %w", idx, got, want, ErrRowCount)
		}
	}

	return nil
}

// Require checks that every index in need is present and complete.
// It returns the first violation in the order given.
func (t *Table) Require(need []harmonic.Index) error {
	for _, idx := range need {
		slot := idx.Ordinal()
		if slot < 0 || len(t.rows[slot]) == 0 {
			return indexErrorf(idx, ErrMissingIndex)
		}
		if got, want := len(t.rows[slot]), harmonic.Arity(idx); got != want {
			return fmt.Errorf("index %s: got %d rows, want %d: %w", idx, got, want, ErrRowCount)
		}
	}

	return nil
}

// Rows returns a copy of the rows stored for idx. ok is false when idx is
// invalid or absent.
func (t *Table) Rows(idx harmonic.Index) (rows []basis.Coeffs, ok bool) {
	slot := idx.Ordinal()
	if slot < 0 || len(t.rows[slot]) == 0 {
		return nil, false
	}

	return append([]basis.Coeffs(nil), t.rows[slot]...), true
}

// Row returns row n of idx by value.
func (t *Table) Row(idx harmonic.Index, n int) (basis.Coeffs, bool) {
	slot := idx.Ordinal()
	if slot < 0 || n < 0 || n >= len(t.rows[slot]) {
		return basis.Coeffs{}, false
	}

	return t.rows[slot][n], true
}

// Has reports whether idx has rows.
func (t *Table) Has(idx harmonic.Index) bool {
	slot := idx.Ordinal()
	return slot >= 0 && len(t.rows[slot]) > 0
}

// Len is the number of indices with rows.
func (t *Table) Len() int {
	n := 0
	for _, r := range t.rows {
		if len(r) > 0 {
			n++
		}
	}

	return n
}

// Indices returns the present indices in summation order.
func (t *Table) Indices() []harmonic.Index {
	out := make([]harmonic.Index, 0, harmonic.Count)
	for _, idx := range harmonic.All() {
		if t.Has(idx) {
			out = append(out, idx)
		}
	}

	return out
}

// Records flattens the table back into records, in summation order and row
// order. Build(t.Records()) reproduces t.
func (t *Table) Records() []Record {
	var out []Record
	for _, idx := range t.Indices() {
		for _, row := range t.rows[idx.Ordinal()] {
			vals := make([]float64, basis.NumCoeffs)
			copy(vals, row[:])
			out = append(out, Record{Label: idx.K.Label(), H: idx.H, J: idx.J, Values: vals})
		}
	}

	return out
}
