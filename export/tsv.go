// SPDX-License-Identifier: MIT

package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/pairdist/reconstruct"
)

// TSVHeader is the first line WriteTSV emits.
var TSVHeader = []string{"r", "phi1", "phi2", "g"}

// WriteTSV writes f to w in long format: a header, then one line per
// (distance, grid point) in row-major order.
func WriteTSV(w io.Writer, f *reconstruct.Field) error {
	if f == nil {
		return fmt.Errorf("WriteTSV: %w", ErrNilField)
	}
	cw := csv.NewWriter(w)
	cw.Comma = '\t'

	if err := cw.Write(TSVHeader); err != nil {
		return fmt.Errorf("WriteTSV: %w", err)
	}
	phi1, phi2 := f.Grid().Phi1(), f.Grid().Phi2()
	for i, r := range f.R() {
		s, err := f.Slice(i)
		if err != nil {
			return fmt.Errorf("WriteTSV: %w", err)
		}
		rs := format(r)
		var werr error
		s.Do(func(a, b int, v float64) bool {
			p1, _ := phi1.At(a, b)
			p2, _ := phi2.At(a, b)
			werr = cw.Write([]string{rs, format(p1), format(p2), format(v)})
			return werr == nil
		})
		if werr != nil {
			return fmt.Errorf("WriteTSV: %w", werr)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("WriteTSV: %w", err)
	}

	return nil
}

func format(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
