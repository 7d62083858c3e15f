// SPDX-License-Identifier: MIT

// Package export writes a reconstructed pair distribution to disk.
//
//   - WriteXLSX: an Excel workbook with a Summary sheet and one sheet per
//     distance. Axis grids get φ1 row labels and φ2 column labels; mesh
//     grids are labeled by grid position.
//   - WriteTSV: long format, one "r phi1 phi2 g" line per sample.
//
// NaN and infinite values are written as text in workbooks, since the
// format has no numeric cell for them.
package export
