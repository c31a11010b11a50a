package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	databaseMocks "github.com/allisson/drinks/internal/database/mocks"
	drinksDomain "github.com/allisson/drinks/internal/drinks/domain"
	"github.com/allisson/drinks/internal/drinks/usecase"
	usecaseMocks "github.com/allisson/drinks/internal/drinks/usecase/mocks"
)

func passthroughTx(txManager *databaseMocks.MockTxManager) {
	txManager.EXPECT().
		WithTx(mock.Anything, mock.AnythingOfType("func(context.Context) error")).
		RunAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).
		Once()
}

func TestDrinkUseCase_List(t *testing.T) {
	ctx := context.Background()
	mockTxManager := databaseMocks.NewMockTxManager(t)
	mockRepo := usecaseMocks.NewMockDrinkRepository(t)

	drinks := []*drinksDomain.Drink{{ID: 1, Title: "Latte"}}
	mockRepo.EXPECT().List(ctx).Return(drinks, nil).Once()

	uc := usecase.NewDrinkUseCase(mockTxManager, mockRepo)
	result, err := uc.List(ctx)

	require.NoError(t, err)
	assert.Equal(t, drinks, result)
}

func TestDrinkUseCase_Create(t *testing.T) {
	ctx := context.Background()
	recipe := drinksDomain.Recipe{{Name: "espresso", Color: "brown", Parts: 1}}

	t.Run("Success", func(t *testing.T) {
		mockTxManager := databaseMocks.NewMockTxManager(t)
		mockRepo := usecaseMocks.NewMockDrinkRepository(t)

		mockRepo.EXPECT().
			Create(ctx, mock.MatchedBy(func(d *drinksDomain.Drink) bool {
				return d.Title == "Espresso" && assert.ObjectsAreEqual(recipe, d.Recipe)
			})).
			Run(func(_ context.Context, d *drinksDomain.Drink) {
				d.ID = 3
			}).
			Return(nil).
			Once()

		uc := usecase.NewDrinkUseCase(mockTxManager, mockRepo)
		drink, err := uc.Create(ctx, "Espresso", recipe)

		require.NoError(t, err)
		assert.Equal(t, int64(3), drink.ID)
		assert.Equal(t, "Espresso", drink.Title)
	})

	t.Run("DuplicateTitle", func(t *testing.T) {
		mockTxManager := databaseMocks.NewMockTxManager(t)
		mockRepo := usecaseMocks.NewMockDrinkRepository(t)

		mockRepo.EXPECT().Create(ctx, mock.Anything).Return(drinksDomain.ErrDrinkAlreadyExists).Once()

		uc := usecase.NewDrinkUseCase(mockTxManager, mockRepo)
		drink, err := uc.Create(ctx, "Espresso", recipe)

		assert.Nil(t, drink)
		assert.ErrorIs(t, err, drinksDomain.ErrDrinkAlreadyExists)
	})
}

func TestDrinkUseCase_UpdateTitle(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockTxManager := databaseMocks.NewMockTxManager(t)
		mockRepo := usecaseMocks.NewMockDrinkRepository(t)
		passthroughTx(mockTxManager)

		updated := &drinksDomain.Drink{ID: 1, Title: "Flat White"}
		mockRepo.EXPECT().UpdateTitle(ctx, int64(1), "Flat White").Return(nil).Once()
		mockRepo.EXPECT().GetByID(ctx, int64(1)).Return(updated, nil).Once()

		uc := usecase.NewDrinkUseCase(mockTxManager, mockRepo)
		drink, err := uc.UpdateTitle(ctx, 1, "Flat White")

		require.NoError(t, err)
		assert.Equal(t, updated, drink)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockTxManager := databaseMocks.NewMockTxManager(t)
		mockRepo := usecaseMocks.NewMockDrinkRepository(t)
		passthroughTx(mockTxManager)

		mockRepo.EXPECT().UpdateTitle(ctx, int64(9), "Flat White").Return(drinksDomain.ErrDrinkNotFound).Once()

		uc := usecase.NewDrinkUseCase(mockTxManager, mockRepo)
		drink, err := uc.UpdateTitle(ctx, 9, "Flat White")

		assert.Nil(t, drink)
		assert.ErrorIs(t, err, drinksDomain.ErrDrinkNotFound)
	})

	t.Run("TransactionError", func(t *testing.T) {
		mockTxManager := databaseMocks.NewMockTxManager(t)
		mockRepo := usecaseMocks.NewMockDrinkRepository(t)

		txErr := errors.New("begin failed")
		mockTxManager.EXPECT().WithTx(ctx, mock.Anything).Return(txErr).Once()

		uc := usecase.NewDrinkUseCase(mockTxManager, mockRepo)
		_, err := uc.UpdateTitle(ctx, 1, "Flat White")

		assert.ErrorIs(t, err, txErr)
	})
}

func TestDrinkUseCase_Delete(t *testing.T) {
	ctx := context.Background()
	mockTxManager := databaseMocks.NewMockTxManager(t)
	mockRepo := usecaseMocks.NewMockDrinkRepository(t)

	mockRepo.EXPECT().Delete(ctx, int64(1)).Return(nil).Once()
	mockRepo.EXPECT().Delete(ctx, int64(2)).Return(drinksDomain.ErrDrinkNotFound).Once()

	uc := usecase.NewDrinkUseCase(mockTxManager, mockRepo)

	assert.NoError(t, uc.Delete(ctx, 1))
	assert.ErrorIs(t, uc.Delete(ctx, 2), drinksDomain.ErrDrinkNotFound)
}
