package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"

	"github.com/allisson/drinks/internal/database"
	drinksDomain "github.com/allisson/drinks/internal/drinks/domain"
	apperrors "github.com/allisson/drinks/internal/errors"
)

const mysqlDuplicateEntry = 1062

// MySQLDrinkRepository implements Drink persistence for MySQL databases.
type MySQLDrinkRepository struct {
	db *sql.DB
}

// Create inserts a drink and sets its generated ID.
func (m *MySQLDrinkRepository) Create(ctx context.Context, drink *drinksDomain.Drink) error {
	querier := database.GetTx(ctx, m.db)

	recipe, err := drink.Recipe.Marshal()
	if err != nil {
		return err
	}

	query := `INSERT INTO drinks (title, recipe) VALUES (?, ?)`

	result, err := querier.ExecContext(ctx, query, drink.Title, recipe)
	if err != nil {
		if isMySQLUniqueViolation(err) {
			return drinksDomain.ErrDrinkAlreadyExists
		}
		return apperrors.Wrap(err, "failed to create drink")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to read drink id")
	}
	drink.ID = id
	return nil
}

// List returns every drink ordered by ID.
func (m *MySQLDrinkRepository) List(ctx context.Context) ([]*drinksDomain.Drink, error) {
	querier := database.GetTx(ctx, m.db)

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
func (m *MySQLDrinkRepository) GetByID(ctx context.Context, id int64) (*drinksDomain.Drink, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, title, recipe FROM drinks WHERE id = ?`

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
func (m *MySQLDrinkRepository) UpdateTitle(ctx context.Context, id int64, title string) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE drinks SET title = ? WHERE id = ?`

	result, err := querier.ExecContext(ctx, query, title, id)
	if err != nil {
		if isMySQLUniqueViolation(err) {
			return drinksDomain.ErrDrinkAlreadyExists
		}
		return apperrors.Wrap(err, "failed to update drink")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read affected rows")
	}
	if affected > 0 {
		return nil
	}

	// MySQL reports changed rows, so an update to the same title affects none.
	_, err = m.GetByID(ctx, id)
	return err
}

// Delete removes a drink by its ID.
func (m *MySQLDrinkRepository) Delete(ctx context.Context, id int64) error {
	querier := database.GetTx(ctx, m.db)

	query := `DELETE FROM drinks WHERE id = ?`

	result, err := querier.ExecContext(ctx, query, id)
	if err != nil {
		return apperrors.Wrap(err, "failed to delete drink")
	}
	return requireAffected(result)
}

// isMySQLUniqueViolation reports whether err is a duplicate entry error.
func isMySQLUniqueViolation(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry
}

// NewMySQLDrinkRepository creates a new MySQL Drink repository instance.
func NewMySQLDrinkRepository(db *sql.DB) *MySQLDrinkRepository {
	return &MySQLDrinkRepository{db: db}
}
