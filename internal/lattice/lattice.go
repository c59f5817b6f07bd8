// Package lattice holds the immutable, shared-by-reference description of
// the spin lattice: its size, coordination number, and the flat
// neighbor/bond tables every replica reads but none owns.
package lattice

import "github.com/pointlander/pamc/internal/pamcerr"

// Shared is the lattice geometry and coupling data every replica in a
// run reads. It is constructed once per run and referenced, never
// copied, by every Replica.
type Shared struct {
	// L is the lattice side length as passed to New; BuildCubic sets it
	// to the cube's side. New does not check it against N.
	L int
	// N is the number of spins.
	N int
	// Z is the coordination number (must be even — bonds are symmetric
	// pairs at indices 2k and 2k+1).
	Z int
	// Neighbor is the flat N*Z neighbor table: Neighbor[i*Z+n] is the
	// site index of spin i's n-th neighbor, in [0, N).
	Neighbor []int
	// Bond is the flat N*Z coupling table: Bond[i*Z+n] is the coupling
	// between spin i and Neighbor[i*Z+n].
	Bond []float64
}

// New validates and constructs a Shared from caller-supplied tables. It
// copies neither slice; the caller must not mutate them afterward.
func New(l, n, z int, neighbor []int, bond []float64) (*Shared, error) {
	if z%2 != 0 {
		return nil, pamcerr.InvalidArgument("lattice: coordination number %d must be even", z)
	}
	if len(neighbor) != n*z {
		return nil, pamcerr.InvalidArgument("lattice: neighbor table length %d, want %d", len(neighbor), n*z)
	}
	if len(bond) != n*z {
		return nil, pamcerr.InvalidArgument("lattice: bond table length %d, want %d", len(bond), n*z)
	}
	for _, j := range neighbor {
		if j < 0 || j >= n {
			return nil, pamcerr.InvalidArgument("lattice: neighbor index %d out of range [0,%d)", j, n)
		}
	}
	return &Shared{L: l, N: n, Z: z, Neighbor: neighbor, Bond: bond}, nil
}
