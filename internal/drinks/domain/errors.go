package domain

import (
	"github.com/allisson/drinks/internal/errors"
)

// Drink-specific error definitions.
var (
	// ErrDrinkNotFound indicates no drink exists with the requested id.
	ErrDrinkNotFound = errors.Wrap(errors.ErrNotFound, "drink not found")

	// ErrDrinkAlreadyExists indicates another drink already uses the title.
	ErrDrinkAlreadyExists = errors.Wrap(errors.ErrConflict, "drink already exists")
)
