package config

import (
	"strconv"

	"github.com/pointlander/pamc/internal/pamcerr"
)

// ParseIsingArgs binds and validates the pamc-ising positional arguments:
// L pop_size culling_frac beta_max seed [neighbor_path bond_path].
func ParseIsingArgs(args []string) (IsingArgs, error) {
	if len(args) != 5 && len(args) != 7 {
		return IsingArgs{}, pamcerr.InvalidArgument("config: pamc-ising takes 5 or 7 arguments, got %d", len(args))
	}
	a, err := parseCommon(args)
	if err != nil {
		return IsingArgs{}, err
	}
	out := IsingArgs{L: a.l, PopSize: a.popSize, CullingFrac: a.cullingFrac, BetaMax: a.betaMax, Seed: a.seed}
	if len(args) == 7 {
		out.NeighborPath = args[5]
		out.BondPath = args[6]
	}
	return out, out.Validate()
}

// ParseEAArgs binds and validates the pamc-ea positional arguments:
// L pop_size culling_frac beta_max seed neighbor_path bond_path.
func ParseEAArgs(args []string) (EAArgs, error) {
	if len(args) != 7 {
		return EAArgs{}, pamcerr.InvalidArgument("config: pamc-ea takes 7 arguments, got %d", len(args))
	}
	a, err := parseCommon(args)
	if err != nil {
		return EAArgs{}, err
	}
	out := EAArgs{
		L: a.l, PopSize: a.popSize, CullingFrac: a.cullingFrac, BetaMax: a.betaMax, Seed: a.seed,
		NeighborPath: args[5], BondPath: args[6],
	}
	return out, out.Validate()
}

type common struct {
	l           int
	popSize     int
	cullingFrac float64
	betaMax     float64
	seed        uint64
}

func parseCommon(args []string) (common, error) {
	l, err := strconv.Atoi(args[0])
	if err != nil {
		return common{}, pamcerr.InvalidArgument("config: L %q is not an integer", args[0])
	}
	popSize, err := strconv.Atoi(args[1])
	if err != nil {
		return common{}, pamcerr.InvalidArgument("config: pop_size %q is not an integer", args[1])
	}
	cullingFrac, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return common{}, pamcerr.InvalidArgument("config: culling_frac %q is not a float", args[2])
	}
	betaMax, err := strconv.ParseFloat(args[3], 64)
	if err != nil {
		return common{}, pamcerr.InvalidArgument("config: beta_max %q is not a float", args[3])
	}
	seed, err := strconv.ParseUint(args[4], 10, 64)
	if err != nil {
		return common{}, pamcerr.InvalidArgument("config: seed %q is not an unsigned integer", args[4])
	}
	return common{l: l, popSize: popSize, cullingFrac: cullingFrac, betaMax: betaMax, seed: seed}, nil
}
