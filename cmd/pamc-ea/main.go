// Command pamc-ea anneals a population of Edwards-Anderson spin
// glasses, loaded from a neighbor/bond table pair, up to a target
// inverse temperature, printing per-step energy and genealogy
// diagnostics.
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
		Use:   "pamc-ea L pop_size culling_frac beta_max seed neighbor_path bond_path",
		Short: "Anneal a population of Edwards-Anderson spin glasses with population annealing Monte Carlo",
		Args:  cobra.ExactArgs(7),
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

	a, err := config.ParseEAArgs(args)
	if err != nil {
		return err
	}

	shared, err := loadEALattice(a)
	if err != nil {
		return err
	}

	pop := pamc.New(a.PopSize, shared, a.Seed)

	beta := 0.0
	step := 0
	for {
		if err := pop.Equilibrate(10, beta, spins.Metropolis, true); err != nil {
			return err
		}
		e := pop.MeasureEnergy(false)
		eMin := pop.MinEnergy()
		stats := pop.ComputeGenealogyStatistics()

		fmt.Printf("%d %.15g %.15g %.15g %.15g %d\n",
			step, beta, e, eMin, stats.RhoT, stats.NumUniqueFamilies)

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

func loadEALattice(a config.EAArgs) (*lattice.Shared, error) {
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
