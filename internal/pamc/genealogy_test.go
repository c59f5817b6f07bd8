package pamc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestGenealogyAtInitialization checks that a freshly constructed
// population of R0 replicas is R0 singleton families, giving ρ_t=1,
// ρ_s=R0, and R0 unique families of size 1.
func TestGenealogyAtInitialization(t *testing.T) {
	p := newTestPopulation(t, 20, 3, 42)
	stats := p.ComputeGenealogyStatistics()

	assert.InDelta(t, 1.0, stats.RhoT, 1e-9)
	assert.InDelta(t, 20.0, stats.RhoS, 1e-9)
	assert.Equal(t, 20, stats.NumUniqueFamilies)
	assert.Equal(t, 1, stats.MaxFamilySize)
}

// TestGenealogyFullCollapse covers the opposite extreme: every replica
// shares one family, giving ρ_t=R_nom, ρ_s=1 (a single category has zero
// entropy), and one unique family spanning the whole population.
func TestGenealogyFullCollapse(t *testing.T) {
	families := make([]int, 6)
	for i := range families {
		families[i] = 3 // all replicas descend from original replica 3
	}
	stats := computeGenealogyStats(families, 6, 6)

	assert.InDelta(t, 6.0, stats.RhoT, 1e-9)
	assert.InDelta(t, 1.0, stats.RhoS, 1e-9)
	assert.Equal(t, 1, stats.NumUniqueFamilies)
	assert.Equal(t, 6, stats.MaxFamilySize)
}

// TestGenealogyTwoEvenFamilies checks the intermediate case against a
// hand-computed Shannon entropy: two equally-sized families out of R_nom=8
// slots give H=ln(2), so ρ_s=2.
func TestGenealogyTwoEvenFamilies(t *testing.T) {
	families := []int{0, 0, 0, 0, 1, 1, 1, 1}
	stats := computeGenealogyStats(families, 2, 8)

	wantRhoT := (16.0 + 16.0) / 8.0 // 4^2 + 4^2 over R_nom
	assert.InDelta(t, wantRhoT, stats.RhoT, 1e-9)
	assert.InDelta(t, 2.0, stats.RhoS, 1e-9)
	assert.Equal(t, 2, stats.NumUniqueFamilies)
	assert.Equal(t, 4, stats.MaxFamilySize)
}

func TestGenealogyIgnoresOutOfRangeFamilies(t *testing.T) {
	families := []int{0, 1, -1, 5}
	stats := computeGenealogyStats(families, 2, 4)
	assert.Equal(t, 2, stats.NumUniqueFamilies, "family -1 and 5 fall outside [0, r0)")
}
