// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	"encoding/json"

	validation "github.com/jellydator/validation"

	drinksDomain "github.com/allisson/drinks/internal/drinks/domain"
	customValidation "github.com/allisson/drinks/internal/validation"
)

const maxTitleLength = 80

// IngredientRequest is one recipe entry in a create request. Attributes other than
// name, color and parts are carried in Extra and stored with the recipe.
type IngredientRequest struct {
	Name  string                     `json:"name"`
	Color string                     `json:"color"`
	Parts int                        `json:"parts"`
	Extra map[string]json.RawMessage `json:"-"`
}

// UnmarshalJSON decodes the ingredient the same way it is stored.
func (i *IngredientRequest) UnmarshalJSON(data []byte) error {
	var ingredient drinksDomain.Ingredient
	if err := json.Unmarshal(data, &ingredient); err != nil {
		return err
	}
	*i = IngredientRequest(ingredient)
	return nil
}

// MarshalJSON encodes the ingredient the same way it is stored.
func (i IngredientRequest) MarshalJSON() ([]byte, error) {
	return json.Marshal(drinksDomain.Ingredient(i))
}

// Validate checks if the ingredient is valid.
func (i IngredientRequest) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name, validation.Required, customValidation.NotBlank),
		validation.Field(&i.Color, validation.Required, customValidation.NotBlank),
		validation.Field(&i.Parts, validation.Required, validation.Min(1)),
	)
}

// CreateDrinkRequest contains the parameters for creating a drink.
type CreateDrinkRequest struct {
	Title  string              `json:"title"`
	Recipe []IngredientRequest `json:"recipe"`
}

// Validate checks if the create drink request is valid.
func (r *CreateDrinkRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title,
			validation.Required,
			customValidation.NotBlank,
			validation.RuneLength(1, maxTitleLength),
		),
		validation.Field(&r.Recipe, validation.Required, validation.Length(1, 0)),
	)
}

// ToRecipe converts the request ingredients into a domain recipe.
func (r *CreateDrinkRequest) ToRecipe() drinksDomain.Recipe {
	recipe := make(drinksDomain.Recipe, 0, len(r.Recipe))
	for _, ingredient := range r.Recipe {
		recipe = append(recipe, drinksDomain.Ingredient(ingredient))
	}
	return recipe
}

// UpdateDrinkRequest contains the parameters for renaming a drink.
type UpdateDrinkRequest struct {
	Title string `json:"title"`
}

// Validate checks if the update drink request is valid.
func (r *UpdateDrinkRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Title,
			validation.Required,
			customValidation.NotBlank,
			validation.RuneLength(1, maxTitleLength),
		),
	)
}
