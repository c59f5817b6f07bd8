package pamc

import "math"

// GenealogyStats is the value type reported by
// Population.ComputeGenealogyStatistics: ρ_t, ρ_s, family counts, and max
// family size.
type GenealogyStats struct {
	RhoT              float64
	RhoS              float64
	NumUniqueFamilies int
	MaxFamilySize     int
}

// computeGenealogyStats computes GenealogyStats over the live replicas'
// family ids, using r0 as the family-id range and rNom as the
// normalization:
//
//	family_size[f] = count of live replicas with family == f
//	rho_t = Σ_f family_size[f]^2 / R_nom
//	rho_s = exp(H), H = -Σ_f p_f ln p_f, p_f = family_size[f]/R_nom
//
// ρ_s is the effective number of distinct families (a Shannon diversity
// index): at initialization every replica is its own singleton family,
// so H = ln(R0) and ρ_s = R0, matching the population's actual family
// count (see DESIGN.md for why rho_s is exp(H) rather than R_nom/exp(H)).
func computeGenealogyStats(families []int, r0 int, rNom float64) GenealogyStats {
	counts := make([]int, r0)
	for _, f := range families {
		if f >= 0 && f < r0 {
			counts[f]++
		}
	}

	var rhoT float64
	var entropy float64
	numUnique := 0
	maxSize := 0
	for _, n := range counts {
		if n == 0 {
			continue
		}
		numUnique++
		if n > maxSize {
			maxSize = n
		}
		rhoT += float64(n) * float64(n)
		p := float64(n) / rNom
		entropy -= p * math.Log(p)
	}
	rhoT /= rNom

	rhoS := math.Exp(entropy)

	return GenealogyStats{
		RhoT:              rhoT,
		RhoS:              rhoS,
		NumUniqueFamilies: numUnique,
		MaxFamilySize:     maxSize,
	}
}
