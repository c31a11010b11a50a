package repository

import (
	"database/sql"

	drinksDomain "github.com/allisson/drinks/internal/drinks/domain"
	apperrors "github.com/allisson/drinks/internal/errors"
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDrink(row rowScanner) (*drinksDomain.Drink, error) {
	var (
		drink  drinksDomain.Drink
		recipe string
	)
	if err := row.Scan(&drink.ID, &drink.Title, &recipe); err != nil {
		return nil, err
	}

	decoded, err := drinksDomain.UnmarshalRecipe(recipe)
	if err != nil {
		return nil, err
	}
	drink.Recipe = decoded
	return &drink, nil
}

func scanDrinks(rows *sql.Rows) ([]*drinksDomain.Drink, error) {
	drinks := make([]*drinksDomain.Drink, 0)
	for rows.Next() {
		drink, err := scanDrink(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan drink")
		}
		drinks = append(drinks, drink)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate drinks")
	}
	return drinks, nil
}

// requireAffected maps a statement that touched no row onto ErrDrinkNotFound.
func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, "failed to read affected rows")
	}
	if affected == 0 {
		return drinksDomain.ErrDrinkNotFound
	}
	return nil
}
