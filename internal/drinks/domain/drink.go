// Package domain defines the drink model served by the menu API.
package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Ingredient is one component of a recipe. Attributes other than name, color and parts
// are kept in Extra as sent by the client and written back unchanged.
type Ingredient struct {
	Name  string                     `json:"name"`
	Color string                     `json:"color"`
	Parts int                        `json:"parts"`
	Extra map[string]json.RawMessage `json:"-"`
}

type ingredientFields struct {
	Name  string `json:"name"`
	Color string `json:"color"`
	Parts int    `json:"parts"`
}

// MarshalJSON encodes name, color and parts followed by the extra attributes in key order.
func (i Ingredient) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(ingredientFields{Name: i.Name, Color: i.Color, Parts: i.Parts})
	if err != nil || len(i.Extra) == 0 {
		return data, err
	}

	keys := make([]string, 0, len(i.Extra))
	for key := range i.Extra {
		if !isIngredientField(key) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	buf := bytes.NewBuffer(data[:len(data)-1])
	for _, key := range keys {
		encodedKey, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.WriteByte(',')
		buf.Write(encodedKey)
		buf.WriteByte(':')
		if err := json.Compact(buf, i.Extra[key]); err != nil {
			return nil, fmt.Errorf("ingredient attribute %q: %w", key, err)
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// isIngredientField reports whether key decodes into name, color or parts.
// encoding/json matches field names case-insensitively.
func isIngredientField(key string) bool {
	switch strings.ToLower(key) {
	case "name", "color", "parts":
		return true
	}
	return false
}

// UnmarshalJSON decodes name, color and parts and keeps every other attribute in Extra.
func (i *Ingredient) UnmarshalJSON(data []byte) error {
	var known ingredientFields
	if err := json.Unmarshal(data, &known); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for key := range raw {
		if isIngredientField(key) {
			delete(raw, key)
		}
	}
	if len(raw) == 0 {
		raw = nil
	}

	*i = Ingredient{Name: known.Name, Color: known.Color, Parts: known.Parts, Extra: raw}
	return nil
}

// Recipe is the ordered list of ingredients of a drink. It is stored serialized as JSON.
type Recipe []Ingredient

// Marshal serializes the recipe for storage.
func (r Recipe) Marshal() (string, error) {
	if r == nil {
		r = Recipe{}
	}
	data, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("marshal recipe: %w", err)
	}
	return string(data), nil
}

// UnmarshalRecipe decodes a stored recipe.
func UnmarshalRecipe(data string) (Recipe, error) {
	var recipe Recipe
	if err := json.Unmarshal([]byte(data), &recipe); err != nil {
		return nil, fmt.Errorf("unmarshal recipe: %w", err)
	}
	if recipe == nil {
		recipe = Recipe{}
	}
	return recipe, nil
}

// Drink is a menu entry. ID is assigned by the store and Title is unique.
type Drink struct {
	ID     int64
	Title  string
	Recipe Recipe
}
