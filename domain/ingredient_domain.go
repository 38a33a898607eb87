package domain

import (
	"errors"
)

var (
	MessageSuccessAddIngredient    = "ingredient added successfully"
	MessageSuccessUpdateIngredient = "ingredient updated successfully"
	MessageSuccessDeleteIngredient = "ingredient deleted successfully"
	MessageSuccessGetIngredients   = "ingredients retrieved successfully"

	MessageFailedAddIngredient    = "failed to add ingredient"
	MessageFailedUpdateIngredient = "failed to update ingredient"
	MessageFailedDeleteIngredient = "failed to delete ingredient"
	MessageFailedGetIngredients   = "failed to retrieve ingredients"

	ErrIngredientNotFound = errors.New("ingredient not found")
	ErrIngredientInUse    = errors.New("ingredient is linked to a dish")
)

type (
	AddIngredientRequest struct {
		Name string `json:"name" validate:"required"`
		// Allergens overrides automatic detection when provided.
		Allergens []string `json:"allergens" validate:"omitempty"`
	}

	UpdateIngredientRequest struct {
		Name      string   `json:"name" validate:"omitempty"`
		Allergens []string `json:"allergens" validate:"omitempty"`
	}

	IngredientResponse struct {
		ID                string   `json:"id"`
		Name              string   `json:"name"`
		ContainsAllergens []string `json:"contains_allergens"`
		// AlreadyExisted is true when creation collided with an existing
		// ingredient of the same name and that row was returned instead.
		AlreadyExisted bool `json:"already_existed,omitempty"`
	}
)
