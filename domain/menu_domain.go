package domain

import (
	"errors"
)

var (
	MessageSuccessGetCustomerMenu = "menu retrieved successfully"
	MessageSuccessGetDietary      = "dietary availability retrieved successfully"
	MessageSuccessGetMatrix       = "allergen matrix retrieved successfully"
	MessageSuccessExportMenu      = "menu exported successfully"
	MessageSuccessEmailExport     = "menu export emailed successfully"

	MessageFailedGetCustomerMenu = "failed to retrieve menu"
	MessageFailedGetDietary      = "failed to retrieve dietary availability"
	MessageFailedGetMatrix       = "failed to retrieve allergen matrix"
	MessageFailedExportMenu      = "failed to export menu"
	MessageFailedEmailExport     = "failed to email menu export"

	ErrQRCodeRequired       = errors.New("qr token is required")
	ErrUnknownQRCode        = errors.New("no restaurant matches the qr token")
	ErrMenuNotPublished     = errors.New("menu is not published yet")
	ErrUnknownDietaryFilter = errors.New("unknown dietary category")
	ErrNoOwnerEmail         = errors.New("restaurant has no owner email on file")
)

// Safety buckets for one dish relative to a customer's declared allergens.
const (
	DishSafetySafe       = "safe"
	DishSafetyModifiable = "modifiable"
	DishSafetyUnsafe     = "unsafe"
)

type (
	CustomerMenuDish struct {
		ID                string            `json:"id"`
		Name              string            `json:"name"`
		Category          string            `json:"category"`
		Price             float64           `json:"price"`
		Description       string            `json:"description"`
		AllAllergens      []string          `json:"all_allergens"`
		PerAllergenStatus map[string]string `json:"per_allergen_status"`
		// Safety is computed against the customer's declared allergens;
		// "safe" when none are present, "modifiable" when every declared
		// allergen present can be modified away, "unsafe" otherwise.
		Safety string `json:"safety"`
	}

	CustomerMenuResponse struct {
		RestaurantID      string             `json:"restaurant_id"`
		RestaurantName    string             `json:"restaurant_name"`
		DeclaredAllergens []string           `json:"declared_allergens,omitempty"`
		Dishes            []CustomerMenuDish `json:"dishes"`
	}

	DietaryAvailabilityEntry struct {
		Category        string             `json:"category"`
		Status          string             `json:"status"`
		AvailableDishes []DietaryDishEntry `json:"available_dishes,omitempty"`
		Reason          string             `json:"reason,omitempty"`
		Warning         string             `json:"warning,omitempty"`
	}

	DietaryDishEntry struct {
		ID                   string   `json:"id"`
		RequiresModification bool     `json:"requires_modification"`
		Modifications        []string `json:"modifications,omitempty"`
	}

	DietaryAvailabilityResponse struct {
		RestaurantID string                     `json:"restaurant_id"`
		Categories   []DietaryAvailabilityEntry `json:"categories"`
	}

	AllergenMatrixRow struct {
		DishID   string            `json:"dish_id"`
		DishName string            `json:"dish_name"`
		Statuses map[string]string `json:"statuses"`
	}

	AllergenMatrixResponse struct {
		Vocabulary []string            `json:"vocabulary"`
		Rows       []AllergenMatrixRow `json:"rows"`
	}

	EmailExportRequest struct {
		// Email overrides the owner email on file when provided.
		Email string `json:"email" validate:"omitempty,email"`
	}
)
