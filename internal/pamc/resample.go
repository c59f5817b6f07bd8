package pamc

import (
	"math"

	"github.com/pointlander/pamc/internal/pamcerr"
	"github.com/pointlander/pamc/internal/rng"
	"github.com/pointlander/pamc/internal/spins"
)

// Resample advances beta to newBeta, computes numerically-stable
// resampling weights, updates ΔβF, converts weights to expected copy
// counts, stochastically rounds them to integer counts, and reshuffles
// the population in place to realize those counts — without an
// intermediate copy of the replicas (only the tau and count slices of
// length R are allocated).
//
// override, if non-nil, is used only for the stochastic-rounding draw,
// so a caller can hold that stream independent of the one driving
// UpdateSweep. Pass nil to use the population's own RNG.
func (p *Population) Resample(newBeta float64, override rng.Source) error {
	deltaBeta := newBeta - p.beta
	p.MeasureEnergy(false)

	r := p.r
	meanEnergy := p.meanEnergy

	// Step 2: ancestry survives the copies below because every replica's
	// parent is reset to its own current index before any copying starts.
	for i := 0; i < r; i++ {
		p.replicas[i].ResetParent(i)
	}

	// Step 3: numerically-stable weights, shifted by <E> to avoid
	// underflow in exp(-Δβ·E) at large Δβ.
	qR := 0.0
	for i := 0; i < r; i++ {
		w := math.Exp(-deltaBeta * (p.energy[i] - meanEnergy))
		p.weight[i] = w
		qR += w
	}

	// Step 4: the Δβ·<E> term cancels the shift applied above, yielding
	// the physically-correct ΔβF increment.
	p.deltaBetaF -= math.Log(qR/float64(r)) + deltaBeta*meanEnergy

	// Step 5: normalize to expected copy counts.
	tau := make([]float64, r)
	for i := 0; i < r; i++ {
		tau[i] = p.rNom * p.weight[i] / qR
	}

	// Step 6: stochastic rounding. n[i] = floor(tau[i]) + 1 with
	// probability tau[i]-floor(tau[i]), else floor(tau[i]).
	source := p.source
	if override != nil {
		source = override
	}
	n := make([]int, r)
	rPrime := 0
	for i := 0; i < r; i++ {
		floor := math.Floor(tau[i])
		frac := tau[i] - floor
		count := int(floor)
		if source.Float64() < frac {
			count++
		}
		n[i] = count
		rPrime += count
	}

	if rPrime > p.rMax {
		return pamcerr.CapacityExceeded("pamc: resample target %d exceeds R_max %d", rPrime, p.rMax)
	}

	// Step 7/8: in-place reshuffle.
	switch {
	case rPrime > r:
		p.growTo(rPrime)
		n = append(n, make([]int, rPrime-r)...)
		p.forwardPass(n, rPrime)
	case rPrime < r:
		p.forwardPass(n, r)
		p.backfillPass(n, r, rPrime)
	default:
		p.forwardPass(n, r)
	}

	p.copyCount = n[:rPrime]
	p.r = rPrime
	p.beta = newBeta
	p.energiesCurrent = false

	if got := sumInts(n[:rPrime]); got != rPrime {
		panic("pamc: resample postcondition violated: sum(copy_count) != R'")
	}

	return nil
}

// growTo extends the active replica count to target, allocating fresh
// Replica objects for the new tail slots. Storage for up to R_max
// replicas/energy/weight slots is reserved at Population construction,
// so growing within R_max never reallocates the backing arrays — it only
// extends their active length and populates the new tail with
// placeholder replicas that the subsequent forward pass immediately
// overwrites via CopyStateFrom.
func (p *Population) growTo(target int) {
	for i := len(p.replicas); i < target; i++ {
		p.replicas = append(p.replicas, spins.NewPooledReplica(p.shared, -1, p.pool.Alloc))
		p.energy = append(p.energy, 0)
		p.weight = append(p.weight, 0)
	}
}

// forwardPass fills holes (n[to]==0) using donors with surplus
// (n[from]>=2), scanning both cursors left to right over the first l
// slots.
func (p *Population) forwardPass(n []int, l int) {
	to, from := 0, 0
	for to < l && from < l {
		if n[to] != 0 {
			to++
			continue
		}
		if n[from] < 2 {
			from++
			continue
		}
		p.replicas[to].CopyStateFrom(p.replicas[from])
		n[from]--
		n[to] = 1
		to++
	}
}

// backfillPass relocates surviving single copies from the high end of a
// shrinking population (length r) into holes left below r' after the
// forward pass. It leaves p.replicas/p.energy/p.weight at their
// high-water length rather than truncating to r' — every method that
// walks live replicas bounds its loop by p.r, never by len(p.replicas),
// so the slots at or above r' are simply ignored until a later resample
// grows back into them. growTo then finds them already materialized and
// skips reallocating their pool-backed spin storage.
func (p *Population) backfillPass(n []int, r, rPrime int) {
	to, from := 0, r-1
	for to < from {
		if n[to] != 0 {
			to++
			continue
		}
		if n[from] == 0 {
			from--
			continue
		}
		p.replicas[to].CopyStateFrom(p.replicas[from])
		n[from]--
		n[to] = 1
		to++
	}
}

func sumInts(xs []int) int {
	s := 0
	for _, x := range xs {
		s += x
	}
	return s
}
