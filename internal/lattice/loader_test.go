package lattice

import (
	"errors"
	"strings"
	"testing"

	"github.com/pointlander/pamc/internal/pamcerr"
)

func TestLoadNeighborTable(t *testing.T) {
	text := "0 1 2 3\n1 0 3 2\n2 3 0 1\n3 2 1 0\n"
	out, err := LoadNeighborTable(strings.NewReader(text), 4, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []int{0, 1, 2, 3, 1, 0, 3, 2, 2, 3, 0, 1, 3, 2, 1, 0}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("entry %d = %d, want %d", i, out[i], want[i])
		}
	}
}

func TestLoadNeighborTableTruncated(t *testing.T) {
	_, err := LoadNeighborTable(strings.NewReader("0 1\n"), 4, 4)
	if !errors.Is(err, pamcerr.ErrIO) {
		t.Fatalf("expected ErrIO, got %v", err)
	}
}

func TestLoadNeighborTableUnparseable(t *testing.T) {
	_, err := LoadNeighborTable(strings.NewReader("0 x 2 3\n"), 1, 4)
	if !errors.Is(err, pamcerr.ErrIO) {
		t.Fatalf("expected ErrIO, got %v", err)
	}
}

func TestLoadBondTable(t *testing.T) {
	text := "1.0 -1.5\n0.5 2.25\n"
	out, err := LoadBondTable(strings.NewReader(text), 2, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{1.0, -1.5, 0.5, 2.25}
	for i := range want {
		if out[i] != want[i] {
			t.Fatalf("entry %d = %v, want %v", i, out[i], want[i])
		}
	}
}

func TestLoadBondTableTruncated(t *testing.T) {
	_, err := LoadBondTable(strings.NewReader("1.0\n"), 4, 4)
	if !errors.Is(err, pamcerr.ErrIO) {
		t.Fatalf("expected ErrIO, got %v", err)
	}
}
