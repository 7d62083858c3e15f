// SPDX-License-Identifier: MIT

// Package table builds the immutable parameter table of the reconstruction:
// for every harmonic index (k, h, j), the ordered rows of 20 interpolation
// coefficients, one row per composite parameter.
//
// Building:
//
//	recs, err := table.ParseCSV(f)          // or assemble []Record yourself
//	tbl, err := table.Build(recs)           // strict: all 25 indices, exact row counts
//
// Row order inside an index is the order in which records were encountered;
// it lines up positionally with harmonic.ParameterFuncs. Payloads that are not
// 20 values long, unknown labels and out-of-domain indices are skipped with a
// warning on the configured slog.Logger. A table that then lacks an index, or
// holds the wrong number of rows for one, is a configuration error
// (ErrMalformedTable). AllowMissing relaxes only the first condition.
//
// A *Table never changes after Build and may be shared by any number of
// goroutines without locking.
package table
