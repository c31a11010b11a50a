package dto

import (
	"net/http"

	drinksDomain "github.com/allisson/drinks/internal/drinks/domain"
)

// DrinkShortResponse is the public form of a drink.
type DrinkShortResponse struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// DrinkLongResponse is the detailed form of a drink, including its recipe.
type DrinkLongResponse struct {
	ID     int64                `json:"id"`
	Title  string               `json:"title"`
	Recipe drinksDomain.Recipe `json:"recipe"`
}

// ListDrinksShortResponse is the body of GET /drinks.
type ListDrinksShortResponse struct {
	Success bool                 `json:"success"`
	Drinks  []DrinkShortResponse `json:"drinks"`
}

// ListDrinksLongResponse is the body of GET /drinks-detail.
type ListDrinksLongResponse struct {
	Success bool                `json:"success"`
	Drinks  []DrinkLongResponse `json:"drinks"`
}

// DrinkMutationResponse is the body of successful create, update and delete requests.
type DrinkMutationResponse struct {
	Success bool  `json:"success"`
	Status  int   `json:"status"`
	DrinkID int64 `json:"drink_id"`
}

// MapDrinksToShortResponse converts drinks to the public list body.
func MapDrinksToShortResponse(drinks []*drinksDomain.Drink) ListDrinksShortResponse {
	data := make([]DrinkShortResponse, 0, len(drinks))
	for _, drink := range drinks {
		data = append(data, DrinkShortResponse{
			ID:    drink.ID,
			Title: drink.Title,
		})
	}
	return ListDrinksShortResponse{Success: true, Drinks: data}
}

// MapDrinksToLongResponse converts drinks to the detailed list body.
func MapDrinksToLongResponse(drinks []*drinksDomain.Drink) ListDrinksLongResponse {
	data := make([]DrinkLongResponse, 0, len(drinks))
	for _, drink := range drinks {
		recipe := drink.Recipe
		if recipe == nil {
			recipe = drinksDomain.Recipe{}
		}
		data = append(data, DrinkLongResponse{
			ID:     drink.ID,
			Title:  drink.Title,
			Recipe: recipe,
		})
	}
	return ListDrinksLongResponse{Success: true, Drinks: data}
}

// MapDrinkIDToMutationResponse builds the body acknowledging a change to drinkID.
func MapDrinkIDToMutationResponse(drinkID int64) DrinkMutationResponse {
	return DrinkMutationResponse{
		Success: true,
		Status:  http.StatusOK,
		DrinkID: drinkID,
	}
}
