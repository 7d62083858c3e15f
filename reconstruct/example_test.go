package reconstruct_test

import (
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/katalvlaran/pairdist/harmonic"
	"github.com/katalvlaran/pairdist/matrix"
	"github.com/katalvlaran/pairdist/reconstruct"
	"github.com/katalvlaran/pairdist/table"
	"github.com/katalvlaran/pairdist/table/tabletest"
)

// ExampleReconstructor_ComputeAxes evaluates a one-term table at a single point.
func ExampleReconstructor_ComputeAxes() {
	quiet := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	zero := harmonic.Index{K: harmonic.CosCos}

	tbl, err := table.Build(tabletest.IndexRecords(zero, 1), table.AllowMissing(), table.WithLogger(quiet))
	if err != nil {
		fmt.Println(err)
		return
	}
	rc, err := reconstruct.New(tbl, reconstruct.WithIndices(zero), reconstruct.WithLogger(quiet))
	if err != nil {
		fmt.Println(err)
		return
	}
	g, err := rc.ComputeAxes([]float64{1}, []float64{0}, []float64{0}, 10, 0.2)
	if err != nil {
		fmt.Println(err)
		return
	}
	v, _ := g.At(0, 0, 0)
	fmt.Printf("g(1, 0, 0) = %.6f\n", v)
	// Output:
	// g(1, 0, 0) = 1.072233
}

// ExampleNewMeshGrid samples g along the diagonal φ1 = φ2, a grid that is not
// rectilinear, from explicit coordinate rows.
func ExampleNewMeshGrid() {
	quiet := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	zero := harmonic.Index{K: harmonic.CosCos}

	diag := [][]float64{{0, math.Pi / 2, math.Pi}}
	phi1, err := matrix.NewFromRows(diag)
	if err != nil {
		fmt.Println(err)
		return
	}
	phi2, _ := matrix.NewFromRows(diag)
	grid, err := reconstruct.NewMeshGrid(phi1, phi2)
	if err != nil {
		fmt.Println(err)
		return
	}

	tbl, _ := table.Build(tabletest.IndexRecords(zero, 1), table.AllowMissing(), table.WithLogger(quiet))
	rc, _ := reconstruct.New(tbl, reconstruct.WithIndices(zero), reconstruct.WithLogger(quiet))
	g, err := rc.Compute([]float64{1}, grid, 10, 0.2)
	if err != nil {
		fmt.Println(err)
		return
	}
	_, n1, n2 := g.Shape()
	fmt.Printf("%dx%d grid\n", n1, n2)
	for b := 0; b < n2; b++ {
		v, _ := g.At(0, 0, b)
		fmt.Printf("%.6f\n", v)
	}
	// Output:
	// 1x3 grid
	// 1.072233
	// 1.072233
	// 1.072233
}

// ExampleAdvise prints the advisory warnings for out-of-range inputs.
func ExampleAdvise() {
	for _, err := range reconstruct.Advise([]float64{11}, 10, 1.2) {
		fmt.Println(err)
	}
	// Output:
	// Phi=1.2: reconstruct: unphysical packing density
	// r[0]=11: reconstruct: distance outside approximation bounds
}
