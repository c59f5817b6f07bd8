package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pointlander/pamc/internal/config"
)

func TestBuildIsingLatticeDefaultsToCubic(t *testing.T) {
	a, err := config.ParseIsingArgs([]string{"4", "100", "0.1", "1.0", "1"})
	require.NoError(t, err)

	shared, err := buildIsingLattice(a)
	require.NoError(t, err)
	require.Equal(t, 4*4*4, shared.N)
	require.Equal(t, 6, shared.Z)
}

func TestBuildIsingLatticeLoadsTables(t *testing.T) {
	dir := t.TempDir()
	neighborPath := filepath.Join(dir, "neighbor.txt")
	bondPath := filepath.Join(dir, "bond.txt")

	// L=1 with self-loops on every neighbor slot: a degenerate but
	// well-formed 1-spin lattice, the smallest shape the loader accepts.
	require.NoError(t, os.WriteFile(neighborPath, []byte("0 0 0 0 0 0\n"), 0o644))
	require.NoError(t, os.WriteFile(bondPath, []byte("1 1 1 1 1 1\n"), 0o644))

	a, err := config.ParseIsingArgs([]string{"1", "10", "0.1", "1.0", "1", neighborPath, bondPath})
	require.NoError(t, err)

	shared, err := buildIsingLattice(a)
	require.NoError(t, err)
	require.Equal(t, 1, shared.N)
	require.Equal(t, 6, shared.Z)
}

func TestBuildIsingLatticeMissingFile(t *testing.T) {
	a, err := config.ParseIsingArgs([]string{"2", "10", "0.1", "1.0", "1", "/nonexistent/neighbor.txt", "/nonexistent/bond.txt"})
	require.NoError(t, err)

	_, err = buildIsingLattice(a)
	require.Error(t, err)
}
