// Package config defines the validated argument structs the cmd
// drivers bind their positional CLI arguments into before constructing
// a lattice and population.
package config

import (
	"github.com/go-playground/validator/v10"

	"github.com/pointlander/pamc/internal/pamcerr"
)

var validate = validator.New()

// IsingArgs carries the pamc-ising driver's argument order:
// L pop_size culling_frac beta_max seed [neighbor_path bond_path].
// NeighborPath and BondPath are both empty when the driver should fall
// back to the built-in cubic ferromagnet lattice.
type IsingArgs struct {
	L            int     `validate:"required,gt=0"`
	PopSize      int     `validate:"required,gt=0"`
	CullingFrac  float64 `validate:"gt=0,lt=1"`
	BetaMax      float64 `validate:"gt=0"`
	Seed         uint64
	NeighborPath string
	BondPath     string
}

// EAArgs carries the pamc-ea driver's argument order:
// L pop_size culling_frac beta_max seed neighbor_path bond_path. Unlike
// IsingArgs, NeighborPath and BondPath are mandatory — an Edwards-Anderson
// spin glass has no canonical default bond table to fall back to.
type EAArgs struct {
	L            int     `validate:"required,gt=0"`
	PopSize      int     `validate:"required,gt=0"`
	CullingFrac  float64 `validate:"gt=0,lt=1"`
	BetaMax      float64 `validate:"gt=0"`
	Seed         uint64
	NeighborPath string `validate:"required"`
	BondPath     string `validate:"required"`
}

// Validate checks a's fields against its struct tags, wrapping any
// validator.ValidationErrors in pamcerr.ErrInvalidArgument.
func (a IsingArgs) Validate() error {
	if err := validate.Struct(a); err != nil {
		return pamcerr.InvalidArgument("config: invalid ising arguments: %v", err)
	}
	return nil
}

// Validate checks a's fields against its struct tags, wrapping any
// validator.ValidationErrors in pamcerr.ErrInvalidArgument.
func (a EAArgs) Validate() error {
	if err := validate.Struct(a); err != nil {
		return pamcerr.InvalidArgument("config: invalid EA arguments: %v", err)
	}
	return nil
}
