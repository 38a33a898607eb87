package domain

import (
	"errors"
)

var (
	MessageSuccessOnboardRestaurant  = "restaurant onboarded successfully"
	MessageSuccessGetRestaurant      = "restaurant retrieved successfully"
	MessageSuccessAcceptTerms        = "terms accepted"
	MessageSuccessCompleteOnboarding = "onboarding completed"
	MessageSuccessGetMenuURL         = "menu URL retrieved successfully"

	MessageFailedOnboardRestaurant  = "failed to onboard restaurant"
	MessageFailedGetRestaurant      = "failed to retrieve restaurant"
	MessageFailedAcceptTerms        = "failed to accept terms"
	MessageFailedCompleteOnboarding = "failed to complete onboarding"
	MessageFailedGetMenuURL         = "failed to retrieve menu URL"

	ErrRestaurantNotFound         = errors.New("restaurant not found")
	ErrUnauthorizedRestaurant     = errors.New("unauthorized access to restaurant")
	ErrTermsNotAccepted           = errors.New("terms must be accepted before completing onboarding")
	ErrOnboardingAlreadyCompleted = errors.New("onboarding already completed")
)

type (
	OnboardRestaurantRequest struct {
		Name       string `json:"name" validate:"required"`
		OwnerEmail string `json:"owner_email" validate:"omitempty,email"`
	}

	RestaurantResponse struct {
		ID                  string `json:"id"`
		Name                string `json:"name"`
		QRCode              string `json:"qr_code"`
		OwnerEmail          string `json:"owner_email,omitempty"`
		TermsAccepted       bool   `json:"terms_accepted"`
		OnboardingCompleted bool   `json:"onboarding_completed"`
	}

	MenuURLResponse struct {
		QRCode  string `json:"qr_code"`
		MenuURL string `json:"menu_url"`
	}
)
