// Package usecase defines the interfaces and implementations for the drinks menu.
package usecase

import (
	"context"

	drinksDomain "github.com/allisson/drinks/internal/drinks/domain"
)

// DrinkRepository defines the interface for Drink persistence operations.
type DrinkRepository interface {
	Create(ctx context.Context, drink *drinksDomain.Drink) error
	List(ctx context.Context) ([]*drinksDomain.Drink, error)
	GetByID(ctx context.Context, id int64) (*drinksDomain.Drink, error)
	UpdateTitle(ctx context.Context, id int64, title string) error
	Delete(ctx context.Context, id int64) error
}

// DrinkUseCase defines the interface for drink menu business logic.
type DrinkUseCase interface {
	// List returns every drink on the menu ordered by ID.
	List(ctx context.Context) ([]*drinksDomain.Drink, error)
	// Create stores a new drink and returns it with its generated ID.
	Create(ctx context.Context, title string, recipe drinksDomain.Recipe) (*drinksDomain.Drink, error)
	// UpdateTitle renames a drink and returns the stored result.
	UpdateTitle(ctx context.Context, id int64, title string) (*drinksDomain.Drink, error)
	// Delete removes a drink.
	Delete(ctx context.Context, id int64) error
}
