// Package pamcerr defines the error taxonomy shared by every PAMC
// component: invalid arguments, capacity overruns, malformed input files,
// and programmer-error misuse of the replica lifecycle.
package pamcerr

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument flags a caller-supplied value outside its
	// documented domain: an unknown update method, an out-of-range site
	// index, a spin value that isn't ±1, or sequential mode with Wolff.
	ErrInvalidArgument = errors.New("pamc: invalid argument")

	// ErrCapacityExceeded flags a resample target that would grow the
	// population beyond R_max.
	ErrCapacityExceeded = errors.New("pamc: capacity exceeded")

	// ErrIO flags a missing or malformed neighbor/bond table file.
	ErrIO = errors.New("pamc: io error")

	// ErrLogic flags a caller bug: reassigning an already-set family.
	// Copying state between replicas of mismatched size panics instead.
	ErrLogic = errors.New("pamc: logic error")
)

// InvalidArgument wraps ErrInvalidArgument with context.
func InvalidArgument(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrInvalidArgument)...)
}

// CapacityExceeded wraps ErrCapacityExceeded with context.
func CapacityExceeded(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrCapacityExceeded)...)
}

// IO wraps ErrIO with context.
func IO(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrIO)...)
}

// Logic wraps ErrLogic with context.
func Logic(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrLogic)...)
}
