package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pointlander/pamc/internal/config"
)

func TestLoadEALatticeParsesTables(t *testing.T) {
	dir := t.TempDir()
	neighborPath := filepath.Join(dir, "neighbor.txt")
	bondPath := filepath.Join(dir, "bond.txt")

	require.NoError(t, os.WriteFile(neighborPath, []byte("0 0 0 0 0 0\n"), 0o644))
	require.NoError(t, os.WriteFile(bondPath, []byte("-1 1 -1 1 -1 1\n"), 0o644))

	a, err := config.ParseEAArgs([]string{"1", "10", "0.1", "1.0", "1", neighborPath, bondPath})
	require.NoError(t, err)

	shared, err := loadEALattice(a)
	require.NoError(t, err)
	require.Equal(t, 1, shared.N)
	require.Equal(t, []float64{-1, 1, -1, 1, -1, 1}, shared.Bond)
}

func TestLoadEALatticeMissingFile(t *testing.T) {
	a, err := config.ParseEAArgs([]string{"2", "10", "0.1", "1.0", "1", "/nonexistent/neighbor.txt", "/nonexistent/bond.txt"})
	require.NoError(t, err)

	_, err = loadEALattice(a)
	require.Error(t, err)
}
