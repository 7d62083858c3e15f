package main

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pairdist/table"
	"github.com/katalvlaran/pairdist/table/tabletest"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

// writeTable stores the synthetic coefficient table as CSV in dir.
func writeTable(t *testing.T, dir string) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, table.WriteCSV(&buf, tabletest.Table(t)))

	return writeFile(t, dir, "coeffs.csv", buf.String())
}

// TestParseConfigOverridesDefaults checks only the keys in the file change.
func TestParseConfigOverridesDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "run.toml", "Peclet = 40.0\nResolution = 12\n")

	conf, err := ParseConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 40.0, conf.Peclet)
	assert.Equal(t, 12, conf.Resolution)
	assert.Equal(t, DefaultConf.Dist, conf.Dist)
	assert.Equal(t, DefaultConf.Density, conf.Density)
	assert.Equal(t, DefaultConf.Table, conf.Table)

	// DefaultConf itself is untouched.
	assert.Equal(t, 10.0, DefaultConf.Peclet)
	assert.Equal(t, 180, DefaultConf.Resolution)
}

// TestParseConfigErrors covers unreadable, malformed and unknown-key files.
func TestParseConfigErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := ParseConfig(filepath.Join(dir, "absent.toml"))
	require.Error(t, err)

	_, err = ParseConfig(writeFile(t, dir, "bad.toml", "Peclet = \n"))
	require.Error(t, err)

	_, err = ParseConfig(writeFile(t, dir, "typo.toml", "Pecelt = 3.0\n"))
	require.ErrorContains(t, err, "unknown key")
}

// TestLoadConfigPrecedence checks flags > file > defaults.
func TestLoadConfigPrecedence(t *testing.T) {
	path := writeFile(t, t.TempDir(), "run.toml", "Peclet = 40.0\nDist = 2.5\n")

	conf, err := loadConfig([]string{"-p", "5", path}, new(bytes.Buffer))
	require.NoError(t, err)
	assert.Equal(t, 5.0, conf.Peclet)
	assert.Equal(t, 2.5, conf.Dist)
	assert.Equal(t, DefaultConf.Density, conf.Density)

	conf, err = loadConfig(nil, new(bytes.Buffer))
	require.NoError(t, err)
	assert.Equal(t, DefaultConf, *conf)
}

// TestLoadConfigErrors covers bad arguments.
func TestLoadConfigErrors(t *testing.T) {
	var stderr bytes.Buffer
	_, err := loadConfig([]string{"-h"}, &stderr)
	require.ErrorIs(t, err, flag.ErrHelp)
	assert.Contains(t, stderr.String(), "Usage: pairdist")

	_, err = loadConfig([]string{"a.toml", "b.toml"}, new(bytes.Buffer))
	require.ErrorContains(t, err, "2 arguments provided")

	_, err = loadConfig([]string{"-n", "0"}, new(bytes.Buffer))
	require.ErrorContains(t, err, "resolution")

	_, err = loadConfig([]string{"-workers", "-2"}, new(bytes.Buffer))
	require.ErrorContains(t, err, "workers")
}

// TestRun drives a full run with both exports.
func TestRun(t *testing.T) {
	dir := t.TempDir()
	tbl := writeTable(t, dir)
	xlsx := filepath.Join(dir, "g.xlsx")
	tsv := filepath.Join(dir, "g.tsv")

	var stdout, stderr bytes.Buffer
	err := run([]string{"-table", tbl, "-n", "8", "-o", xlsx, "-tsv", tsv, "-d", "1.5"}, &stdout, &stderr)
	require.NoError(t, err)

	assert.Contains(t, stdout.String(), "r = 1, Pe = 10, Phi = 1.5, grid 8x8")
	assert.Contains(t, stdout.String(), "g: min ")
	assert.Contains(t, stderr.String(), "unphysical packing density")
	assert.FileExists(t, xlsx)

	data, err := os.ReadFile(tsv)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 1+8*8)
	assert.Equal(t, "r\tphi1\tphi2\tg", lines[0])
}

// TestRunErrors covers a missing table and a bad log level.
func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	err := run([]string{"-table", filepath.Join(dir, "absent.csv")}, new(bytes.Buffer), new(bytes.Buffer))
	require.Error(t, err)

	err = run([]string{"-table", writeTable(t, dir), "-log", "loud"}, new(bytes.Buffer), new(bytes.Buffer))
	require.ErrorContains(t, err, "log level")

	err = run([]string{"-table", writeTable(t, dir), "-p", "0"}, new(bytes.Buffer), new(bytes.Buffer))
	require.Error(t, err)
}

func TestAngles(t *testing.T) {
	a := angles(4)
	require.Len(t, a, 4)
	assert.Equal(t, 0.0, a[0])
	assert.InDelta(t, 1.5*3.141592653589793, a[3], 1e-15)
}
