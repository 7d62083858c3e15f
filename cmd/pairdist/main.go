// SPDX-License-Identifier: MIT

// Command pairdist reconstructs the pair distribution function of active
// Brownian ellipsoids for one distance on a full (φ1, φ2) grid.
//
// Usage
//
//	pairdist [-r dist] [-d Phi] [-p peclet] [-n resolution] [-o out.xlsx] [-tsv out.tsv] [config_file]
//
// The optional argument is the path to a TOML config file. Flags override the
// config file, which overrides the defaults (r=1, Phi=0.2, Pe=10, 180 points
// per angle).
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"

	"github.com/katalvlaran/pairdist/export"
	"github.com/katalvlaran/pairdist/reconstruct"
	"github.com/katalvlaran/pairdist/table"
)

const usage = `Usage: pairdist [flags] [config_file]

The last argument is optional and is the path to a TOML config file.
Flags override values from the config file.

Flags:
`

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		Fatal(err)
	}
}

// Fatal prints err and exits with status 1.
func Fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	os.Exit(1)
}

func run(args []string, stdout, stderr io.Writer) error {
	conf, err := loadConfig(args, stderr)
	if err != nil {
		return err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(conf.LogLevel)); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	r := []float64{conf.Dist}
	for _, w := range reconstruct.Advise(r, conf.Peclet, conf.Density) {
		logger.Warn("suspicious input", "reason", w)
	}

	tbl, err := table.LoadFile(conf.Table, table.WithLogger(logger))
	if err != nil {
		return err
	}
	rc, err := reconstruct.New(tbl, reconstruct.WithWorkers(conf.Workers), reconstruct.WithLogger(logger))
	if err != nil {
		return err
	}

	axis := angles(conf.Resolution)
	g, err := rc.ComputeAxes(r, axis, axis, conf.Peclet, conf.Density)
	if err != nil {
		return err
	}

	st := g.Stats()
	fmt.Fprintf(stdout, "r = %g, Pe = %g, Phi = %g, grid %dx%d\n",
		conf.Dist, conf.Peclet, conf.Density, conf.Resolution, conf.Resolution)
	fmt.Fprintf(stdout, "g: min %.6g, max %.6g, mean %.6g\n", st.Min, st.Max, st.Mean)
	if st.NaN > 0 {
		logger.Warn("non-numeric values in g", "count", st.NaN)
	}

	if conf.Output != "" {
		if err := export.WriteXLSX(conf.Output, g); err != nil {
			return err
		}
		logger.Info("wrote workbook", "path", conf.Output)
	}
	if conf.TSV != "" {
		if err := writeTSV(conf.TSV, g); err != nil {
			return err
		}
		logger.Info("wrote table", "path", conf.TSV)
	}

	return nil
}

// loadConfig applies defaults, then the optional config file, then the
// flags that were set explicitly.
func loadConfig(args []string, stderr io.Writer) (*Config, error) {
	fs := flag.NewFlagSet("pairdist", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprint(stderr, usage)
		fs.PrintDefaults()
	}
	var flags Config
	fs.Float64Var(&flags.Dist, "r", DefaultConf.Dist, "particle distance in multiples of sigma")
	fs.Float64Var(&flags.Density, "d", DefaultConf.Density, "packing density")
	fs.Float64Var(&flags.Peclet, "p", DefaultConf.Peclet, "Peclet number")
	fs.IntVar(&flags.Resolution, "n", DefaultConf.Resolution, "grid points per angle")
	fs.StringVar(&flags.Table, "table", DefaultConf.Table, "coefficient CSV")
	fs.StringVar(&flags.Output, "o", "", "write g to this .xlsx file")
	fs.StringVar(&flags.TSV, "tsv", "", "write g to this TSV file")
	fs.IntVar(&flags.Workers, "workers", DefaultConf.Workers, "parallel workers (0 = GOMAXPROCS)")
	fs.StringVar(&flags.LogLevel, "log", DefaultConf.LogLevel, "log level")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	var conf *Config
	switch fs.NArg() {
	case 0:
		c := DefaultConf
		conf = &c
	case 1:
		var err error
		if conf, err = ParseConfig(fs.Arg(0)); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%d arguments provided (0 required, 1 optional)", fs.NArg())
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "r":
			conf.Dist = flags.Dist
		case "d":
			conf.Density = flags.Density
		case "p":
			conf.Peclet = flags.Peclet
		case "n":
			conf.Resolution = flags.Resolution
		case "table":
			conf.Table = flags.Table
		case "o":
			conf.Output = flags.Output
		case "tsv":
			conf.TSV = flags.TSV
		case "workers":
			conf.Workers = flags.Workers
		case "log":
			conf.LogLevel = flags.LogLevel
		}
	})

	return conf, conf.Validate()
}

// angles returns n equally spaced angles over [0, 2π).
func angles(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = 2 * math.Pi * float64(i) / float64(n)
	}

	return out
}

func writeTSV(path string, g *reconstruct.Field) error {
	fp, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export.WriteTSV(fp, g); err != nil {
		fp.Close()
		return err
	}

	return fp.Close()
}
