// Package repository implements drink persistence for PostgreSQL and MySQL.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"github.com/allisson/drinks/internal/database"
	drinksDomain "github.com/allisson/drinks/internal/drinks/domain"
	apperrors "github.com/allisson/drinks/internal/errors"
)

const pgUniqueViolation = "23505"

// PostgreSQLDrinkRepository implements Drink persistence for PostgreSQL databases.
type PostgreSQLDrinkRepository struct {
	db *sql.DB
}

// Create inserts a drink and sets its generated ID.
func (p *PostgreSQLDrinkRepository) Create(ctx context.Context, drink *drinksDomain.Drink) error {
	querier := database.GetTx(ctx, p.db)

	recipe, err := drink.Recipe.Marshal()
	if err != nil {
		return err
	}

	query := `INSERT INTO drinks (title, recipe) VALUES ($1, $2) RETURNING id`

	if err := querier.QueryRowContext(ctx, query, drink.Title, recipe).Scan(&drink.ID); err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return drinksDomain.ErrDrinkAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create drink")
	}
	return nil
}

// List returns every drink ordered by ID.
func (p *PostgreSQLDrinkRepository) List(ctx context.Context) ([]*drinksDomain.Drink, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, title, recipe FROM drinks ORDER BY id`

	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list drinks")
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanDrinks(rows)
}

// GetByID retrieves a drink by its ID.
func (p *PostgreSQLDrinkRepository) GetByID(ctx context.Context, id int64) (*drinksDomain.Drink, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, title, recipe FROM drinks WHERE id = $1`

	drink, err := scanDrink(querier.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, drinksDomain.ErrDrinkNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get drink by id")
	}
	return drink, nil
}

// UpdateTitle changes the title of a drink, leaving its recipe untouched.
func (p *PostgreSQLDrinkRepository) UpdateTitle(ctx context.Context, id int64, title string) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE drinks SET title = $1 WHERE id = $2`

	result, err := querier.ExecContext(ctx, query, title, id)
	if err != nil {
		if isPostgreSQLUniqueViolation(err) {
			return drinksDomain.ErrDrinkAlreadyExists
		}
		return apperrors.Wrap(err, "failed to update drink")
	}
	return requireAffected(result)
}

// Delete removes a drink by its ID.
func (p *PostgreSQLDrinkRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, p.db)

	query := `DELETE FROM drinks WHERE id = $1`

	result, err := querier.ExecContext(ctx, query, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete drink")
	}
	return requireAffected(result)
}

// isPostgreSQLUniqueViolation reports whether err is a unique constraint violation.
func isPostgreSQLUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pgUniqueViolation
}

// NewPostgreSQLDrinkRepository creates a new PostgreSQL Drink repository instance.
func NewPostgreSQLDrinkRepository(db *sql.DB) *PostgreSQLDrinkRepository {
	return &PostgreSQLDrinkRepository{db: db}
}
