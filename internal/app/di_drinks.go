package app

import (
	"fmt"

	drinksHTTP "github.com/allisson/drinks/internal/drinks/http"
	drinksRepository "github.com/allisson/drinks/internal/drinks/repository"
	drinksUseCase "github.com/allisson/drinks/internal/drinks/usecase"
)

// DrinkRepository returns the drink repository based on database driver.
func (c *Container) DrinkRepository() (drinksUseCase.DrinkRepository, error) {
	var err error
	c.drinkRepositoryInit.Do(func() {
		c.drinkRepository, err = c.initDrinkRepository()
		if err != nil {
			c.initErrors["drinkRepository"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["drinkRepository"]; exists {
		return nil, storedErr
	}
	return c.drinkRepository, nil
}

// DrinkUseCase returns the drink use case.
func (c *Container) DrinkUseCase() (drinksUseCase.DrinkUseCase, error) {
	var err error
	c.drinkUseCaseInit.Do(func() {
		c.drinkUseCase, err = c.initDrinkUseCase()
		if err != nil {
			c.initErrors["drinkUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["drinkUseCase"]; exists {
		return nil, storedErr
	}
	return c.drinkUseCase, nil
}

// DrinkHandler returns the drink HTTP handler.
func (c *Container) DrinkHandler() (*drinksHTTP.DrinkHandler, error) {
	var err error
	c.drinkHandlerInit.Do(func() {
		c.drinkHandler, err = c.initDrinkHandler()
		if err != nil {
			c.initErrors["drinkHandler"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["drinkHandler"]; exists {
		return nil, storedErr
	}
	return c.drinkHandler, nil
}

// initDrinkRepository creates the drink repository based on the database driver.
func (c *Container) initDrinkRepository() (drinksUseCase.DrinkRepository, error) {
	switch c.config.DBDriver {
	case "postgres", "mysql":
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}

	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for drink repository: %w", err)
	}

	if c.config.DBDriver == "mysql" {
		return drinksRepository.NewMySQLDrinkRepository(db), nil
	}
	return drinksRepository.NewPostgreSQLDrinkRepository(db), nil
}

// initDrinkUseCase creates the drink use case with all its dependencies.
func (c *Container) initDrinkUseCase() (drinksUseCase.DrinkUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for drink use case: %w", err)
	}

	drinkRepository, err := c.DrinkRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get drink repository for drink use case: %w", err)
	}

	baseUseCase := drinksUseCase.NewDrinkUseCase(txManager, drinkRepository)

	// Wrap with metrics if enabled
	if c.config.MetricsEnabled {
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return nil, fmt.Errorf("failed to get business metrics for drink use case: %w", err)
		}
		return drinksUseCase.NewDrinkUseCaseWithMetrics(baseUseCase, businessMetrics), nil
	}

	return baseUseCase, nil
}

// initDrinkHandler creates the drink HTTP handler with all its dependencies.
func (c *Container) initDrinkHandler() (*drinksHTTP.DrinkHandler, error) {
	drinkUseCase, err := c.DrinkUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get drink use case for drink handler: %w", err)
	}
	return drinksHTTP.NewDrinkHandler(drinkUseCase, c.Logger()), nil
}
