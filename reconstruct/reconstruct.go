// SPDX-License-Identifier: MIT

package reconstruct

import (
	"fmt"
	"log/slog"
	"math"
	"runtime"
	"sort"
	"sync"

	"github.com/katalvlaran/pairdist/basis"
	"github.com/katalvlaran/pairdist/harmonic"
	"github.com/katalvlaran/pairdist/matrix"
	"github.com/katalvlaran/pairdist/table"
)

// term is everything Compute needs for one active index, resolved once by New.
type term struct {
	idx   harmonic.Index
	shape basis.Shape
	fns   []basis.InterpFunc
	rows  []basis.Coeffs
}

// Reconstructor evaluates g for one parameter table. It is immutable and safe
// for concurrent use.
type Reconstructor struct {
	terms   []term // summation order
	workers int
	logger  *slog.Logger
}

// New validates tbl for the active indices and returns a Reconstructor.
//
// Implementation:
//   - Stage 1: resolve the active set (all 25 unless WithIndices), reject
//     invalid or repeated indices, sort into summation order.
//   - Stage 2: tbl.Require(active); the table must hold exactly
//     harmonic.Arity(idx) rows for each active index.
//   - Stage 3: snapshot shape, interpolation functions and rows per index.
//
// Errors:
//   - ErrNilTable, ErrInvalidIndex.
//   - table.ErrMalformedTable (via ErrMissingIndex or ErrRowCount).
func New(tbl *table.Table, opts ...Option) (*Reconstructor, error) {
	if tbl == nil {
		return nil, fmt.Errorf("New: %w", ErrNilTable)
	}
	o := gatherOptions(opts)

	active := o.indices
	if active == nil {
		active = harmonic.All()
	}
	seen := make(map[int]bool, len(active))
	for _, idx := range active {
		slot := idx.Ordinal()
		if slot < 0 {
			return nil, fmt.Errorf("New: index %s: %w", idx, ErrInvalidIndex)
		}
		if seen[slot] {
			return nil, fmt.Errorf("New: index %s repeated: %w", idx, ErrInvalidIndex)
		}
		seen[slot] = true
	}
	active = append([]harmonic.Index(nil), active...)
	sort.Slice(active, func(a, b int) bool { return active[a].Ordinal() < active[b].Ordinal() })

	if err := tbl.Require(active); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	terms := make([]term, len(active))
	for n, idx := range active {
		shape, _ := harmonic.ShapeOf(idx)
		fns, _ := harmonic.ParameterFuncs(idx)
		rows, _ := tbl.Rows(idx)
		terms[n] = term{idx: idx, shape: shape, fns: fns, rows: rows}
	}

	workers := o.workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	o.logger.Debug("reconstructor ready", "indices", len(terms), "workers", workers)

	return &Reconstructor{terms: terms, workers: workers, logger: o.logger}, nil
}

// Indices returns the active indices in summation order.
func (rc *Reconstructor) Indices() []harmonic.Index {
	out := make([]harmonic.Index, len(rc.terms))
	for n, t := range rc.terms {
		out[n] = t.idx
	}

	return out
}

// Coefficient returns the composite of idx bound to the parameters
// H(pe, phi; row_i). idx must be active.
//
// Errors:
//   - ErrInvalidIndex if idx is not active.
//   - ErrNonPositivePeclet if pe <= 0 or not finite.
func (rc *Reconstructor) Coefficient(idx harmonic.Index, pe, phi float64) (basis.Coefficient, error) {
	if err := checkPeclet(pe); err != nil {
		return nil, fmt.Errorf("Coefficient: %w", err)
	}
	for n := range rc.terms {
		if rc.terms[n].idx == idx {
			return rc.terms[n].bind(pe, phi)
		}
	}

	return nil, fmt.Errorf("Coefficient: index %s not active: %w", idx, ErrInvalidIndex)
}

// ComputeAxes is Compute on NewAxesGrid(phi1, phi2).
func (rc *Reconstructor) ComputeAxes(r, phi1, phi2 []float64, pe, phi float64) (*Field, error) {
	grid, err := NewAxesGrid(phi1, phi2)
	if err != nil {
		return nil, fmt.Errorf("ComputeAxes: %w", err)
	}

	return rc.Compute(r, grid, pe, phi)
}

// Compute evaluates g at every distance in r and every point of grid.
//
// Implementation:
//   - Stage 1: reject a nil or zero grid, empty r and Pe <= 0 before any work.
//   - Stage 2: per active index (in parallel, bounded by WithWorkers):
//     p_i = H(pe, phi; row_i), c(r) = shape.Bind(p), and the angular
//     factors basis(h·φ1) and basis(j·φ2).
//   - Stage 3: add (c(r_i)·basis(h·φ1))·basis(j·φ2) into slice i, index by
//     index in summation order.
//
// Complexity: O(|active| · len(r) · n1 · n2).
//
// Errors:
//   - ErrShape, ErrNonPositivePeclet.
func (rc *Reconstructor) Compute(r []float64, grid *Grid, pe, phi float64) (*Field, error) {
	if grid == nil || grid.phi1 == nil {
		return nil, fmt.Errorf("Compute: nil grid: %w", ErrShape)
	}
	if len(r) == 0 {
		return nil, fmt.Errorf("Compute: no distances: %w", ErrShape)
	}
	if err := checkPeclet(pe); err != nil {
		return nil, fmt.Errorf("Compute: %w", err)
	}
	f, err := newField(r, grid, pe, phi)
	if err != nil {
		return nil, fmt.Errorf("Compute: %w", err)
	}

	parts := make([]contribution, len(rc.terms))
	errs := make([]error, len(rc.terms))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < min(rc.workers, len(rc.terms)); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := range jobs {
				parts[n], errs[n] = rc.terms[n].contribute(r, grid, pe, phi)
			}
		}()
	}
	for n := range rc.terms {
		jobs <- n
	}
	close(jobs)
	wg.Wait()

	for n, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("Compute: index %s: %w", rc.terms[n].idx, err)
		}
	}

	for _, part := range parts {
		for i, c := range part.radial {
			if err := matrix.AddScaledProductInPlace(f.slices[i], c, part.phi1, part.phi2); err != nil {
				return nil, fmt.Errorf("Compute: %w", err)
			}
		}
	}
	n1, n2 := grid.Shape()
	rc.logger.Debug("pair distribution computed", "distances", len(r), "points", n1*n2, "pe", pe, "phi", phi)

	return f, nil
}

// contribution is c_{khj}(r), basis(h·φ1) and basis(j·φ2) of one index.
type contribution struct {
	radial     []float64
	phi1, phi2 *matrix.Dense
}

func (t *term) bind(pe, phi float64) (basis.Coefficient, error) {
	p := make([]float64, len(t.fns))
	for i, fn := range t.fns {
		p[i] = fn(pe, phi, &t.rows[i])
	}

	return t.shape.Bind(p)
}

func (t *term) contribute(r []float64, grid *Grid, pe, phi float64) (contribution, error) {
	c, err := t.bind(pe, phi)
	if err != nil {
		return contribution{}, err
	}
	a, b := grid.angular(t.idx.K.Basis(), t.idx.H, t.idx.J)

	return contribution{radial: basis.Eval(c, r, nil), phi1: a, phi2: b}, nil
}

func checkPeclet(pe float64) error {
	if !(pe > 0) || math.IsInf(pe, 1) {
		return fmt.Errorf("Pe=%g: %w", pe, ErrNonPositivePeclet)
	}

	return nil
}
