package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/drinks/internal/database"
	drinksDomain "github.com/allisson/drinks/internal/drinks/domain"
	apperrors "github.com/allisson/drinks/internal/errors"
)

const latteRecipe = `[{"name":"espresso","color":"brown","parts":1},{"name":"milk","color":"white","parts":3}]`

func latte() *drinksDomain.Drink {
	return &drinksDomain.Drink{
		Title: "Latte",
		Recipe: drinksDomain.Recipe{
			{Name: "espresso", Color: "brown", Parts: 1},
			{Name: "milk", Color: "white", Parts: 3},
		},
	}
}

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db, mock
}

func TestPostgreSQLDrinkRepository_Create(t *testing.T) {
	query := regexp.QuoteMeta(`INSERT INTO drinks (title, recipe) VALUES ($1, $2) RETURNING id`)

	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLDrinkRepository(db)

		mock.ExpectQuery(query).
			WithArgs("Latte", latteRecipe).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

		drink := latte()
		require.NoError(t, repo.Create(context.Background(), drink))
		assert.Equal(t, int64(7), drink.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("DuplicateTitle", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLDrinkRepository(db)

		mock.ExpectQuery(query).
			WithArgs("Latte", latteRecipe).
			WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})

		err := repo.Create(context.Background(), latte())
		assert.ErrorIs(t, err, drinksDomain.ErrDrinkAlreadyExists)
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})

	t.Run("DatabaseError", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLDrinkRepository(db)

		mock.ExpectQuery(query).WillReturnError(errors.New("connection reset"))

		err := repo.Create(context.Background(), latte())
		assert.ErrorContains(t, err, "failed to create drink")
		assert.NotErrorIs(t, err, apperrors.ErrConflict)
	})
}

func TestPostgreSQLDrinkRepository_List(t *testing.T) {
	query := regexp.QuoteMeta(`SELECT id, title, recipe FROM drinks ORDER BY id`)

	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLDrinkRepository(db)

		mock.ExpectQuery(query).WillReturnRows(
			sqlmock.NewRows([]string{"id", "title", "recipe"}).
				AddRow(1, "Latte", latteRecipe).
				AddRow(2, "Water", `[{"name":"water","color":"blue","parts":1}]`),
		)

		drinks, err := repo.List(context.Background())
		require.NoError(t, err)
		require.Len(t, drinks, 2)
		assert.Equal(t, "Latte", drinks[0].Title)
		assert.Equal(t, latte().Recipe, drinks[0].Recipe)
		assert.Equal(t, int64(2), drinks[1].ID)
	})

	t.Run("Empty", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLDrinkRepository(db)

		mock.ExpectQuery(query).WillReturnRows(sqlmock.NewRows([]string{"id", "title", "recipe"}))

		drinks, err := repo.List(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, drinks)
		assert.Empty(t, drinks)
	})

	t.Run("CorruptRecipe", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLDrinkRepository(db)

		mock.ExpectQuery(query).WillReturnRows(
			sqlmock.NewRows([]string{"id", "title", "recipe"}).AddRow(1, "Latte", `[{`),
		)

		_, err := repo.List(context.Background())
		assert.ErrorContains(t, err, "failed to scan drink")
	})
}

func TestPostgreSQLDrinkRepository_GetByID(t *testing.T) {
	query := regexp.QuoteMeta(`SELECT id, title, recipe FROM drinks WHERE id = $1`)

	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLDrinkRepository(db)

		mock.ExpectQuery(query).WithArgs(int64(1)).WillReturnRows(
			sqlmock.NewRows([]string{"id", "title", "recipe"}).AddRow(1, "Latte", latteRecipe),
		)

		drink, err := repo.GetByID(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, "Latte", drink.Title)
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLDrinkRepository(db)

		mock.ExpectQuery(query).WithArgs(int64(99)).WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(context.Background(), 99)
		assert.ErrorIs(t, err, drinksDomain.ErrDrinkNotFound)
	})
}

func TestPostgreSQLDrinkRepository_UpdateTitle(t *testing.T) {
	query := regexp.QuoteMeta(`UPDATE drinks SET title = $1 WHERE id = $2`)

	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLDrinkRepository(db)

		mock.ExpectExec(query).WithArgs("Flat White", int64(1)).WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.UpdateTitle(context.Background(), 1, "Flat White"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLDrinkRepository(db)

		mock.ExpectExec(query).WithArgs("Flat White", int64(99)).WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateTitle(context.Background(), 99, "Flat White")
		assert.ErrorIs(t, err, drinksDomain.ErrDrinkNotFound)
	})

	t.Run("DuplicateTitle", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLDrinkRepository(db)

		mock.ExpectExec(query).WithArgs("Water", int64(1)).WillReturnError(&pq.Error{Code: "23505"})

		err := repo.UpdateTitle(context.Background(), 1, "Water")
		assert.ErrorIs(t, err, drinksDomain.ErrDrinkAlreadyExists)
	})
}

func TestPostgreSQLDrinkRepository_Delete(t *testing.T) {
	query := regexp.QuoteMeta(`DELETE FROM drinks WHERE id = $1`)

	t.Run("Success", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLDrinkRepository(db)

		mock.ExpectExec(query).WithArgs(int64(1)).WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(context.Background(), 1))
	})

	t.Run("NotFound", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewPostgreSQLDrinkRepository(db)

		mock.ExpectExec(query).WithArgs(int64(42)).WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), 42), drinksDomain.ErrDrinkNotFound)
	})
}

func TestPostgreSQLDrinkRepository_UsesTransactionFromContext(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPostgreSQLDrinkRepository(db)
	txManager := database.NewTxManager(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE drinks SET title = $1 WHERE id = $2`)).
		WithArgs("Mocha", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, title, recipe FROM drinks WHERE id = $1`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "recipe"}).AddRow(1, "Mocha", latteRecipe))
	mock.ExpectCommit()

	err := txManager.WithTx(context.Background(), func(ctx context.Context) error {
		if err := repo.UpdateTitle(ctx, 1, "Mocha"); err != nil {
			return err
		}
		_, err := repo.GetByID(ctx, 1)
		return err
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
