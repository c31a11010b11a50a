package usecase

import (
	"context"

	"github.com/allisson/drinks/internal/database"
	drinksDomain "github.com/allisson/drinks/internal/drinks/domain"
)

// drinkUseCase implements the DrinkUseCase interface.
type drinkUseCase struct {
	txManager database.TxManager
	drinkRepo DrinkRepository
}

// List returns every drink on the menu.
func (d *drinkUseCase) List(ctx context.Context) ([]*drinksDomain.Drink, error) {
	return d.drinkRepo.List(ctx)
}

// Create stores a new drink.
func (d *drinkUseCase) Create(
	ctx context.Context,
	title string,
	recipe drinksDomain.Recipe,
) (*drinksDomain.Drink, error) {
	drink := &drinksDomain.Drink{
		Title:  title,
		Recipe: recipe,
	}
	if err := d.drinkRepo.Create(ctx, drink); err != nil {
		return nil, err
	}
	return drink, nil
}

// UpdateTitle renames a drink and reads it back within one transaction.
func (d *drinkUseCase) UpdateTitle(ctx context.Context, id int64, title string) (*drinksDomain.Drink, error) {
	var drink *drinksDomain.Drink
	err := d.txManager.WithTx(ctx, func(txCtx context.Context) error {
		if err := d.drinkRepo.UpdateTitle(txCtx, id, title); err != nil {
			return err
		}

		updated, err := d.drinkRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		drink = updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return drink, nil
}

// Delete removes a drink.
func (d *drinkUseCase) Delete(ctx context.Context, id int64) error {
	return d.drinkRepo.Delete(ctx, id)
}

// NewDrinkUseCase creates a new DrinkUseCase.
func NewDrinkUseCase(txManager database.TxManager, drinkRepo DrinkRepository) DrinkUseCase {
	return &drinkUseCase{
		txManager: txManager,
		drinkRepo: drinkRepo,
	}
}
