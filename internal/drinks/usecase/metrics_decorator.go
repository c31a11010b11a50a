package usecase

import (
	"context"
	"time"

	drinksDomain "github.com/allisson/drinks/internal/drinks/domain"
	"github.com/allisson/drinks/internal/metrics"
)

// drinkUseCaseWithMetrics decorates DrinkUseCase with metrics instrumentation.
type drinkUseCaseWithMetrics struct {
	next    DrinkUseCase
	metrics metrics.BusinessMetrics
}

// NewDrinkUseCaseWithMetrics wraps a DrinkUseCase with metrics recording.
func NewDrinkUseCaseWithMetrics(useCase DrinkUseCase, m metrics.BusinessMetrics) DrinkUseCase {
	return &drinkUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (d *drinkUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := metrics.StatusOf(err)
	d.metrics.RecordOperation(ctx, "drinks", operation, status)
	d.metrics.RecordDuration(ctx, "drinks", operation, time.Since(start), status)
}

// List records metrics for drink listing.
func (d *drinkUseCaseWithMetrics) List(ctx context.Context) ([]*drinksDomain.Drink, error) {
	start := time.Now()
	drinks, err := d.next.List(ctx)
	d.record(ctx, "drink_list", start, err)
	return drinks, err
}

// Create records metrics for drink creation.
func (d *drinkUseCaseWithMetrics) Create(
	ctx context.Context,
	title string,
	recipe drinksDomain.Recipe,
) (*drinksDomain.Drink, error) {
	start := time.Now()
	drink, err := d.next.Create(ctx, title, recipe)
	d.record(ctx, "drink_create", start, err)
	return drink, err
}

// UpdateTitle records metrics for drink updates.
func (d *drinkUseCaseWithMetrics) UpdateTitle(
	ctx context.Context,
	id int64,
	title string,
) (*drinksDomain.Drink, error) {
	start := time.Now()
	drink, err := d.next.UpdateTitle(ctx, id, title)
	d.record(ctx, "drink_update", start, err)
	return drink, err
}

// Delete records metrics for drink deletion.
func (d *drinkUseCaseWithMetrics) Delete(ctx context.Context, id int64) error {
	start := time.Now()
	err := d.next.Delete(ctx, id)
	d.record(ctx, "drink_delete", start, err)
	return err
}
