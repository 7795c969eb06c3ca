package sumgrid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSelection is returned when a confirmed path does not add up
	// to the target.
	ErrInvalidSelection = errors.New("sumgrid: selection does not match target")

	// ErrEmptySelection is returned when confirming with nothing selected or
	// when a power-up is requested with no charges left.
	ErrEmptySelection = errors.New("sumgrid: empty selection")

	// ErrOutOfBounds is returned for coordinates outside the grid.
	ErrOutOfBounds = errors.New("sumgrid: coordinate out of bounds")

	// ErrInvalidConfig is returned for unusable grid dimensions or targets.
	ErrInvalidConfig = errors.New("sumgrid: invalid configuration")

	// ErrNoHint is returned when no path on the board reaches the target.
	ErrNoHint = errors.New("sumgrid: no matching path on board")

	// ErrRefillPending is returned for board actions issued between a
	// removal and its refill.
	ErrRefillPending = errors.New("sumgrid: refill pending")

	// ErrNoCharges is returned when a consumable is exhausted.
	// It matches ErrEmptySelection under errors.Is.
	ErrNoCharges = fmt.Errorf("%w: no charges left", ErrEmptySelection)
)
