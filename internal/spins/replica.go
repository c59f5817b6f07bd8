// Package spins implements the Ising-class replica model: per-replica
// spin state, energy/magnetization measurement, and the Metropolis,
// heat-bath, and Wolff update kernels, operating on an externally-shared
// lattice.Shared neighbor/bond table.
package spins

import (
	"github.com/pointlander/pamc/internal/lattice"
	"github.com/pointlander/pamc/internal/pamcerr"
	"github.com/pointlander/pamc/internal/rng"
)

// UpdateMethod selects which update kernel UpdateSweep runs.
type UpdateMethod int

const (
	Metropolis UpdateMethod = iota
	HeatBath
	Wolff
)

func (m UpdateMethod) String() string {
	switch m {
	case Metropolis:
		return "metropolis"
	case HeatBath:
		return "heat-bath"
	case Wolff:
		return "wolff"
	default:
		return "unknown"
	}
}

// storageKind records whether a Replica's spin slice is heap-owned or
// borrowed from a memutil.Pool, fixed at construction.
type storageKind int

const (
	storageHeap storageKind = iota
	storagePool
)

// Replica is one member of the population: a complete, independent
// lattice state plus its genealogy tags.
type Replica struct {
	shared *lattice.Shared
	spins  []int8
	kind   storageKind

	family int // -1 until set once; then fixed for the replica's lifetime
	parent int

	// visited and stack are scratch buffers reused across Wolff steps to
	// avoid a fresh allocation per cluster flip.
	visited []bool
	stack   []int
}

// NewReplica constructs a Replica with heap-owned spin storage, all
// spins initialized to +1. family and parent both start at index.
func NewReplica(shared *lattice.Shared, index int) *Replica {
	spins := make([]int8, shared.N)
	for i := range spins {
		spins[i] = 1
	}
	return &Replica{shared: shared, spins: spins, kind: storageHeap, family: index, parent: index}
}

// NewPooledReplica constructs a Replica whose spin storage is carved from
// pool. The pool must outlive the Replica.
func NewPooledReplica(shared *lattice.Shared, index int, alloc func(n int) []int8) *Replica {
	spins := alloc(shared.N)
	for i := range spins {
		spins[i] = 1
	}
	return &Replica{shared: shared, spins: spins, kind: storagePool, family: index, parent: index}
}

// Len returns the number of spins (N).
func (r *Replica) Len() int { return len(r.spins) }

// Family returns the replica's family id, or -1 if unset.
func (r *Replica) Family() int { return r.family }

// Parent returns the replica's parent index, as of the most recent
// ResetParent or construction.
func (r *Replica) Parent() int { return r.parent }

// SetFamily sets the family id once. Calling it again with a different
// value returns ErrLogic. Calling it again with the same value is a
// no-op, which keeps idempotent call sites simple.
func (r *Replica) SetFamily(family int) error {
	if r.family >= 0 && r.family != family {
		return pamcerr.Logic("spins: family already set to %d, cannot reassign to %d", r.family, family)
	}
	r.family = family
	return nil
}

// ResetParent sets parent to index — called at the top of each resample
// round so ancestry survives the copies that follow.
func (r *Replica) ResetParent(index int) { r.parent = index }

// Spin returns the spin at site i.
func (r *Replica) Spin(i int) int8 { return r.spins[i] }

// SetSpin sets the spin at site i to value, which must be -1 or +1.
func (r *Replica) SetSpin(i int, value int) error {
	if i < 0 || i >= len(r.spins) {
		return pamcerr.InvalidArgument("spins: site %d out of range [0,%d)", i, len(r.spins))
	}
	if value != -1 && value != 1 {
		return pamcerr.InvalidArgument("spins: spin value %d must be -1 or +1", value)
	}
	r.spins[i] = int8(value)
	return nil
}

// InitializeState randomizes every spin to ±1 with equal probability.
func (r *Replica) InitializeState(source rng.Source) {
	for i := range r.spins {
		r.spins[i] = int8(2*source.IntN(2) - 1)
	}
}

// CopyStateFrom byte-copies spins and copies family and parent from
// other. It panics on size mismatch: mismatched replica sizes within one
// population are a programmer error, not a runtime condition a caller
// can recover from.
func (r *Replica) CopyStateFrom(other *Replica) {
	if len(r.spins) != len(other.spins) {
		panic("spins: CopyStateFrom size mismatch")
	}
	copy(r.spins, other.spins)
	r.family = other.family
	r.parent = other.parent
}

// MeasureEnergy returns the total (extensive) energy:
//
//	E = -Σᵢ Σₙ(n even) sᵢ·s_{neighbor[i·Z+n]}·bond[i·Z+n]
//
// The stride-2 loop relies on the neighbor table pairing opposite
// directions at indices 2k, 2k+1, so each undirected bond is counted
// once.
func (r *Replica) MeasureEnergy() float64 {
	z := r.shared.Z
	neighbor := r.shared.Neighbor
	bond := r.shared.Bond
	energy := 0.0
	for i := range r.spins {
		si := float64(r.spins[i])
		base := i * z
		for n := 0; n < z; n += 2 {
			j := neighbor[base+n]
			energy += si * float64(r.spins[j]) * bond[base+n]
		}
	}
	return -energy
}

// Magnetization returns Σsᵢ/N.
func (r *Replica) Magnetization() float64 {
	sum := 0
	for _, s := range r.spins {
		sum += int(s)
	}
	return float64(sum) / float64(len(r.spins))
}

// localField computes h = Σₙ s_{neighbor[i·Z+n]}·bond[i·Z+n] over all Z
// neighbors (not just even-indexed ones — this is the full local field
// used by Metropolis and heat-bath, distinct from the stride-2 energy sum).
func (r *Replica) localField(i int) float64 {
	z := r.shared.Z
	base := i * z
	neighbor := r.shared.Neighbor
	bond := r.shared.Bond
	h := 0.0
	for n := 0; n < z; n++ {
		j := neighbor[base+n]
		h += float64(r.spins[j]) * bond[base+n]
	}
	return h
}
