// Package pamc implements the population manager: resampling, numerically
// stable weight computation, free-energy bookkeeping, replica lifecycle,
// and genealogy tracking. It is the orchestration layer above
// internal/spins' per-replica update kernels.
package pamc

import (
	"math"

	"github.com/pointlander/pamc/internal/lattice"
	"github.com/pointlander/pamc/internal/memutil"
	"github.com/pointlander/pamc/internal/rng"
	"github.com/pointlander/pamc/internal/spins"
	"github.com/pointlander/pamc/internal/telemetry"
)

// Population owns R replicas plus the parallel energy/weight/copy-count
// bookkeeping arrays needed to resample them. It is not safe for
// concurrent use — all operations run on the caller's goroutine.
type Population struct {
	shared *lattice.Shared
	source rng.Source

	rNom float64 // nominal/target size, fixed at construction
	r0   int     // initial size, bounds family ids

	rMax int // hard upper bound: R_nom + 10*sqrt(R_nom)

	pool *memutil.Pool[int8] // backs every replica's spin storage, sized for rMax*N

	replicas   []*spins.Replica
	energy     []float64
	weight     []float64 // unnormalized resample weights from the latest Resample
	copyCount  []int

	r int // current replica count

	beta            float64
	deltaBetaF      float64
	meanEnergy      float64
	varEnergy       float64
	energiesCurrent bool
}

// New constructs a Population of r replicas sharing shared, seeded from
// seed. Family and parent of replica i are both set to i.
func New(r int, shared *lattice.Shared, seed uint64) *Population {
	rNom := float64(r)
	rMax := growthCap(rNom)

	p := &Population{
		shared: shared,
		source: rng.New(seed),
		rNom:   rNom,
		r0:     r,
		rMax:   rMax,
		r:      r,
		pool:   memutil.NewPool[int8](rMax * shared.N),
	}

	capacity := rMax
	p.replicas = make([]*spins.Replica, r, capacity)
	p.energy = make([]float64, r, capacity)
	p.weight = make([]float64, r, capacity)
	p.copyCount = make([]int, r, capacity)

	for i := 0; i < r; i++ {
		rep := spins.NewPooledReplica(shared, i, p.pool.Alloc)
		rep.InitializeState(p.source)
		p.replicas[i] = rep
	}

	return p
}

// growthCap returns R_nom + 10*sqrt(R_nom), rounded up.
func growthCap(rNom float64) int {
	return int(math.Ceil(rNom + 10*math.Sqrt(rNom)))
}

// reserveCap returns target + 5*sqrt(target), rounded up — the growth
// policy's slack allowance when resizing storage.
func reserveCap(target int) int {
	t := float64(target)
	return int(math.Ceil(t + 5*math.Sqrt(t)))
}

// Size returns the current replica count R.
func (p *Population) Size() int { return p.r }

// NominalSize returns R_nom.
func (p *Population) NominalSize() float64 { return p.rNom }

// MaxSize returns R_max.
func (p *Population) MaxSize() int { return p.rMax }

// Beta returns the population's current inverse temperature.
func (p *Population) Beta() float64 { return p.beta }

// DeltaBetaF returns the accumulated free-energy change ΔβF.
func (p *Population) DeltaBetaF() float64 { return p.deltaBetaF }

// Replica exposes replica i read-only access, e.g. for driver-level
// observables.
func (p *Population) Replica(i int) *spins.Replica { return p.replicas[i] }

// Equilibrate stores beta and runs numSweeps of method on every replica.
// It invalidates the energy cache.
func (p *Population) Equilibrate(numSweeps int, beta float64, method spins.UpdateMethod, sequential bool) error {
	p.beta = beta
	for _, rep := range p.replicas[:p.r] {
		if err := rep.UpdateSweep(numSweeps, beta, p.source, method, sequential); err != nil {
			return err
		}
	}
	p.energiesCurrent = false
	return nil
}

// MeasureEnergy returns <E> over the current population, recomputing and
// caching per-replica energies and Var(E) when the cache is stale or
// force is set.
func (p *Population) MeasureEnergy(force bool) float64 {
	if p.energiesCurrent && !force {
		return p.meanEnergy
	}
	sum, sumSq := 0.0, 0.0
	for i := 0; i < p.r; i++ {
		e := p.replicas[i].MeasureEnergy()
		p.energy[i] = e
		sum += e
		sumSq += e * e
	}
	n := float64(p.r)
	p.meanEnergy = sum / n
	p.varEnergy = sumSq/n - p.meanEnergy*p.meanEnergy
	p.energiesCurrent = true
	return p.meanEnergy
}

// MinEnergy returns the minimum per-replica energy from the latest
// measurement, recomputing it first if the cache is stale.
func (p *Population) MinEnergy() float64 {
	p.MeasureEnergy(false)
	min := p.energy[0]
	for _, e := range p.energy[:p.r] {
		if e < min {
			min = e
		}
	}
	return min
}

// VarEnergy returns Var(E) from the latest measurement.
func (p *Population) VarEnergy() float64 {
	p.MeasureEnergy(false)
	return p.varEnergy
}

// SuggestNextBeta returns beta + sqrt(2*epsilon)/sigma_E, where sigma_E^2
// is Var(E) from the latest measurement. The caller is responsible for
// clamping the result to beta_max.
func (p *Population) SuggestNextBeta(beta, epsilon float64) float64 {
	sigma := math.Sqrt(p.VarEnergy())
	if sigma == 0 {
		return beta
	}
	return beta + math.Sqrt(2*epsilon)/sigma
}

// Observable computes a scalar diagnostic from a single replica.
type Observable func(*spins.Replica) float64

// Observe evaluates obs over every live replica and returns the
// per-replica results, the generic traversal underlying driver-level
// diagnostics like Binder's cumulant that need more than one moment of
// a per-replica quantity.
func (p *Population) Observe(obs Observable) []float64 {
	out := make([]float64, p.r)
	for i := 0; i < p.r; i++ {
		out[i] = obs(p.replicas[i])
	}
	return out
}

// Magnetizations returns the per-replica magnetization.
func (p *Population) Magnetizations() []float64 {
	return p.Observe(func(r *spins.Replica) float64 { return r.Magnetization() })
}

// ComputeGenealogyStatistics computes GenealogyStats over the live
// replicas.
func (p *Population) ComputeGenealogyStatistics() GenealogyStats {
	families := make([]int, p.r)
	for i := 0; i < p.r; i++ {
		families[i] = p.replicas[i].Family()
	}
	return computeGenealogyStats(families, p.r0, p.rNom)
}

// Metrics returns a point-in-time snapshot of the population's
// resampling-quality diagnostics, for drivers to feed into a telemetry
// registry. It is purely observational: nothing in this package reads
// the result back.
func (p *Population) Metrics() telemetry.Snapshot {
	stats := p.ComputeGenealogyStatistics()
	return telemetry.Snapshot{
		Size:       p.r,
		DeltaBetaF: p.deltaBetaF,
		MeanEnergy: p.meanEnergy,
		RhoT:       stats.RhoT,
		RhoS:       stats.RhoS,
	}
}
