package config

import (
	"errors"
	"testing"

	"github.com/pointlander/pamc/internal/pamcerr"
)

func TestParseIsingArgsDefaultLattice(t *testing.T) {
	a, err := ParseIsingArgs([]string{"10", "1000", "0.1", "2.0", "42"})
	if err != nil {
		t.Fatalf("ParseIsingArgs: %v", err)
	}
	if a.L != 10 || a.PopSize != 1000 || a.Seed != 42 {
		t.Fatalf("unexpected parse result: %+v", a)
	}
	if a.NeighborPath != "" || a.BondPath != "" {
		t.Fatalf("expected empty paths for the default-lattice form, got %+v", a)
	}
}

func TestParseIsingArgsExplicitLattice(t *testing.T) {
	a, err := ParseIsingArgs([]string{"10", "1000", "0.1", "2.0", "42", "n.txt", "b.txt"})
	if err != nil {
		t.Fatalf("ParseIsingArgs: %v", err)
	}
	if a.NeighborPath != "n.txt" || a.BondPath != "b.txt" {
		t.Fatalf("unexpected paths: %+v", a)
	}
}

func TestParseIsingArgsWrongCount(t *testing.T) {
	_, err := ParseIsingArgs([]string{"10", "1000"})
	if !errors.Is(err, pamcerr.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestParseIsingArgsRejectsCullingFracOutOfRange(t *testing.T) {
	_, err := ParseIsingArgs([]string{"10", "1000", "1.5", "2.0", "42"})
	if !errors.Is(err, pamcerr.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for culling_frac=1.5, got %v", err)
	}
}

func TestParseEAArgsRequiresLatticeFiles(t *testing.T) {
	_, err := ParseEAArgs([]string{"10", "1000", "0.1", "2.0", "42", "", ""})
	if !errors.Is(err, pamcerr.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for missing lattice files, got %v", err)
	}
}

func TestParseEAArgsValid(t *testing.T) {
	a, err := ParseEAArgs([]string{"4", "500", "0.25", "3.5", "7", "n.txt", "b.txt"})
	if err != nil {
		t.Fatalf("ParseEAArgs: %v", err)
	}
	if a.NeighborPath != "n.txt" || a.BondPath != "b.txt" {
		t.Fatalf("unexpected paths: %+v", a)
	}
}
