package domain

import (
	"errors"
)

var (
	MessageSuccessSaveProfile = "customer profile saved successfully"
	MessageSuccessGetProfile  = "customer profile retrieved successfully"

	MessageFailedSaveProfile = "failed to save customer profile"
	MessageFailedGetProfile  = "failed to retrieve customer profile"

	ErrSessionKeyRequired = errors.New("session key is required")
	ErrProfileNotFound    = errors.New("customer profile not found")
)

type (
	SaveCustomerProfileRequest struct {
		Restrictions    []string `json:"restrictions" validate:"omitempty"`
		CustomAllergens []string `json:"custom_allergens" validate:"omitempty"`
	}

	CustomerProfileResponse struct {
		SessionKey      string   `json:"session_key"`
		Restrictions    []string `json:"restrictions"`
		CustomAllergens []string `json:"custom_allergens"`
		// DeclaredAllergens is the normalized union used for menu filtering.
		DeclaredAllergens []string `json:"declared_allergens"`
	}
)
