package domain

import (
	"errors"
)

var (
	MessageSuccessAddDish           = "dish added successfully"
	MessageSuccessUpdateDish        = "dish updated successfully"
	MessageSuccessDeleteDish        = "dish deactivated successfully"
	MessageSuccessGetDishes         = "dishes retrieved successfully"
	MessageSuccessGetDishDetail     = "dish detail retrieved successfully"
	MessageSuccessGetDishAllergens  = "dish allergen summary retrieved successfully"
	MessageSuccessAddIngredientLink = "ingredient linked successfully"
	MessageSuccessUpdateLink        = "ingredient link updated successfully"
	MessageSuccessRemoveLink        = "ingredient link removed successfully"
	MessageSuccessAddSubstitute     = "substitute added successfully"
	MessageSuccessRemoveSubstitute  = "substitute removed successfully"
	MessageSuccessAddStep           = "cooking step added successfully"
	MessageSuccessUpdateStep        = "cooking step updated successfully"
	MessageSuccessDeleteStep        = "cooking step deleted successfully"

	MessageFailedAddDish           = "failed to add dish"
	MessageFailedUpdateDish        = "failed to update dish"
	MessageFailedDeleteDish        = "failed to deactivate dish"
	MessageFailedGetDishes         = "failed to retrieve dishes"
	MessageFailedGetDishAllergens  = "failed to retrieve dish allergen summary"
	MessageFailedAddIngredientLink = "failed to link ingredient"
	MessageFailedUpdateLink        = "failed to update ingredient link"
	MessageFailedRemoveLink        = "failed to remove ingredient link"
	MessageFailedAddSubstitute     = "failed to add substitute"
	MessageFailedRemoveSubstitute  = "failed to remove substitute"
	MessageFailedAddStep           = "failed to add cooking step"
	MessageFailedUpdateStep        = "failed to update cooking step"
	MessageFailedDeleteStep        = "failed to delete cooking step"

	ErrDishNotFound         = errors.New("dish not found")
	ErrDishInactive         = errors.New("dish is not active")
	ErrLinkNotFound         = errors.New("ingredient link not found")
	ErrStepNotFound         = errors.New("cooking step not found")
	ErrSubstituteNotFound   = errors.New("substitute not found")
	ErrLinkNotSubstitutable = errors.New("link must be substitutable before adding substitutes")
	ErrInvalidPrice         = errors.New("price must not be negative")
)

type (
	AddDishRequest struct {
		Name                 string   `json:"name" validate:"required"`
		Category             string   `json:"category" validate:"omitempty"`
		Price                float64  `json:"price" validate:"omitempty,min=0"`
		Description          string   `json:"description" validate:"omitempty"`
		DescriptionAllergens []string `json:"description_allergens" validate:"omitempty"`
		Calories             int      `json:"calories" validate:"omitempty,min=0"`
		ProteinG             float64  `json:"protein_g" validate:"omitempty,min=0"`
		CarbsG               float64  `json:"carbs_g" validate:"omitempty,min=0"`
		SodiumMg             float64  `json:"sodium_mg" validate:"omitempty,min=0"`
		NutritionKnown       bool     `json:"nutrition_known"`
	}

	UpdateDishRequest struct {
		Name                 string   `json:"name" validate:"omitempty"`
		Category             string   `json:"category" validate:"omitempty"`
		Price                *float64 `json:"price" validate:"omitempty"`
		Description          string   `json:"description" validate:"omitempty"`
		DescriptionAllergens []string `json:"description_allergens" validate:"omitempty"`
		Calories             *int     `json:"calories" validate:"omitempty"`
		ProteinG             *float64 `json:"protein_g" validate:"omitempty"`
		CarbsG               *float64 `json:"carbs_g" validate:"omitempty"`
		SodiumMg             *float64 `json:"sodium_mg" validate:"omitempty"`
		NutritionKnown       *bool    `json:"nutrition_known"`
	}

	DishResponse struct {
		ID                   string   `json:"id"`
		Name                 string   `json:"name"`
		Category             string   `json:"category"`
		Price                float64  `json:"price"`
		Description          string   `json:"description"`
		DescriptionAllergens []string `json:"description_allergens"`
		Calories             int      `json:"calories"`
		ProteinG             float64  `json:"protein_g"`
		CarbsG               float64  `json:"carbs_g"`
		SodiumMg             float64  `json:"sodium_mg"`
		IsActive             bool     `json:"is_active"`
	}

	AddIngredientLinkRequest struct {
		IngredientID    string  `json:"ingredient_id" validate:"required,uuid"`
		AmountValue     float64 `json:"amount_value" validate:"omitempty,min=0"`
		AmountUnit      string  `json:"amount_unit" validate:"omitempty"`
		IsRemovable     bool    `json:"is_removable"`
		IsSubstitutable bool    `json:"is_substitutable"`
	}

	UpdateIngredientLinkRequest struct {
		AmountValue     *float64 `json:"amount_value" validate:"omitempty"`
		AmountUnit      string   `json:"amount_unit" validate:"omitempty"`
		IsRemovable     *bool    `json:"is_removable" validate:"omitempty"`
		IsSubstitutable *bool    `json:"is_substitutable" validate:"omitempty"`
	}

	AddSubstituteRequest struct {
		SubstituteIngredientID string `json:"substitute_ingredient_id" validate:"required,uuid"`
	}

	IngredientLinkResponse struct {
		ID                string               `json:"id"`
		IngredientID      string               `json:"ingredient_id"`
		IngredientName    string               `json:"ingredient_name"`
		ContainsAllergens []string             `json:"contains_allergens"`
		AmountValue       float64              `json:"amount_value"`
		AmountUnit        string               `json:"amount_unit"`
		IsRemovable       bool                 `json:"is_removable"`
		IsSubstitutable   bool                 `json:"is_substitutable"`
		Substitutes       []SubstituteResponse `json:"substitutes,omitempty"`
	}

	SubstituteResponse struct {
		ID                string   `json:"id"`
		IngredientID      string   `json:"ingredient_id"`
		IngredientName    string   `json:"ingredient_name"`
		ContainsAllergens []string `json:"contains_allergens"`
	}

	AddCookingStepRequest struct {
		Description         string   `json:"description" validate:"required"`
		CrossContactRisk    []string `json:"cross_contact_risk" validate:"omitempty"`
		IsModifiable        bool     `json:"is_modifiable"`
		ModifiableAllergens []string `json:"modifiable_allergens" validate:"omitempty"`
		ModificationNote    string   `json:"modification_note" validate:"omitempty"`
	}

	UpdateCookingStepRequest struct {
		Description         string   `json:"description" validate:"omitempty"`
		CrossContactRisk    []string `json:"cross_contact_risk" validate:"omitempty"`
		IsModifiable        *bool    `json:"is_modifiable" validate:"omitempty"`
		ModifiableAllergens []string `json:"modifiable_allergens" validate:"omitempty"`
		ModificationNote    string   `json:"modification_note" validate:"omitempty"`
	}

	CookingStepResponse struct {
		ID                  string   `json:"id"`
		StepNumber          int      `json:"step_number"`
		Description         string   `json:"description"`
		CrossContactRisk    []string `json:"cross_contact_risk"`
		IsModifiable        bool     `json:"is_modifiable"`
		ModifiableAllergens []string `json:"modifiable_allergens"`
		ModificationNote    string   `json:"modification_note,omitempty"`
	}

	DishDetailResponse struct {
		DishResponse
		Ingredients []IngredientLinkResponse `json:"ingredients"`
		Steps       []CookingStepResponse    `json:"steps"`
	}

	DishAllergenSummaryResponse struct {
		DishID            string            `json:"dish_id"`
		AllAllergens      []string          `json:"all_allergens"`
		PerAllergenStatus map[string]string `json:"per_allergen_status"`
	}
)
