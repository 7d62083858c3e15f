// SPDX-License-Identifier: MIT

package table

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pairdist/harmonic"
)

var (
	// ErrMalformedTable is the configuration error: the table cannot serve a
	// reconstruction. ErrMissingIndex and ErrRowCount both wrap it.
	ErrMalformedTable = errors.New("table: malformed parameter table")

	// ErrMissingIndex indicates a required harmonic index has no rows.
	ErrMissingIndex = fmt.Errorf("%w: missing harmonic index", ErrMalformedTable)

	// ErrRowCount indicates an index holds a number of rows different from
	// the parameter count of its composite.
	ErrRowCount = fmt.Errorf("%w: row count does not match parameter count", ErrMalformedTable)
)

// indexErrorf attaches the offending index to a sentinel.
func indexErrorf(idx harmonic.Index, err error) error {
	return fmt.Errorf("index %s: %w", idx, err)
}
