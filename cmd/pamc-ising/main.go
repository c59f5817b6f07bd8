// Command pamc-ising anneals a population of cubic-lattice Ising
// ferromagnets from beta=0 up to a target inverse temperature,
// printing per-step energy, magnetization, and Binder's cumulant.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/pointlander/pamc/internal/config"
	"github.com/pointlander/pamc/internal/lattice"
	"github.com/pointlander/pamc/internal/pamc"
	"github.com/pointlander/pamc/internal/spins"
	"github.com/pointlander/pamc/internal/telemetry"
)

func main() {
	root := &cobra.Command{
		Use:   "pamc-ising L pop_size culling_frac beta_max seed [neighbor_path bond_path]",
		Short: "Anneal a population of Ising ferromagnets with population annealing Monte Carlo",
		Args:  cobra.RangeArgs(5, 7),
		RunE:  run,
	}
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger := telemetry.NewLogger(slog.LevelInfo)
	registry := telemetry.NewRegistry(prometheus.DefaultRegisterer)

	a, err := config.ParseIsingArgs(args)
	if err != nil {
		return err
	}

	shared, err := buildIsingLattice(a)
	if err != nil {
		return err
	}

	pop := pamc.New(a.PopSize, shared, a.Seed)
	numSpins := shared.N

	beta := 0.0
	step := 0
	for {
		if err := pop.Equilibrate(10, beta, spins.Metropolis, true); err != nil {
			return err
		}
		e := pop.MeasureEnergy(false)

		mags := pop.Observe(func(r *spins.Replica) float64 { return r.Magnetization() })
		var mSum, m2Sum, m4Sum float64
		for _, m := range mags {
			mSum += m
			m2Sum += m * m
			m4Sum += m * m * m * m
		}
		n := float64(len(mags))
		mAvg := mSum / n
		m2Avg := m2Sum / n
		m4Avg := m4Sum / n
		binder := 1.0 - m4Avg/(3.0*m2Avg*m2Avg)

		stats := pop.ComputeGenealogyStatistics()

		fmt.Printf("%d %.15g %.15g %.15g %.15g %.15g %.15g\n",
			step, beta, e/float64(numSpins), mAvg, binder, stats.RhoT, stats.RhoS)

		if beta == a.BetaMax {
			break
		}
		beta = pop.SuggestNextBeta(beta, a.CullingFrac)
		if beta > a.BetaMax {
			beta = a.BetaMax
		}
		if err := pop.Resample(beta, nil); err != nil {
			logger.Warn("resample failed", "beta", beta, "error", err)
			return err
		}
		registry.Observe(pop.Metrics())
		step++
	}

	return nil
}

func buildIsingLattice(a config.IsingArgs) (*lattice.Shared, error) {
	if a.NeighborPath == "" {
		return lattice.BuildCubic(a.L)
	}

	neighborFile, err := os.Open(a.NeighborPath)
	if err != nil {
		return nil, err
	}
	defer neighborFile.Close()
	bondFile, err := os.Open(a.BondPath)
	if err != nil {
		return nil, err
	}
	defer bondFile.Close()

	n := a.L * a.L * a.L
	const z = 6
	neighbor, err := lattice.LoadNeighborTable(neighborFile, n, z)
	if err != nil {
		return nil, err
	}
	bond, err := lattice.LoadBondTable(bondFile, n, z)
	if err != nil {
		return nil, err
	}
	return lattice.New(a.L, n, z, neighbor, bond)
}
