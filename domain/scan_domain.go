package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessUploadMenuPhoto = "menu photo uploaded successfully"
	MessageSuccessGetScan         = "menu scan retrieved successfully"
	MessageSuccessConfirmScan     = "scanned dishes saved successfully"

	MessageFailedUploadMenuPhoto = "failed to upload menu photo"
	MessageFailedGetScan         = "failed to retrieve menu scan"
	MessageFailedConfirmScan     = "failed to save scanned dishes"

	ErrScanNotFound        = errors.New("menu scan not found")
	ErrScanNotDetected     = errors.New("menu scan has no detected items yet")
	ErrScanAlreadyResolved = errors.New("menu scan already completed")
	ErrDetectionFailed     = errors.New("dish detection failed")
)

// Conflict resolutions accepted when confirming a scan.
const (
	ScanResolutionCreate = "create"
	ScanResolutionUpdate = "update"
	ScanResolutionSkip   = "skip"
)

type (
	UploadMenuPhotoRequest struct {
		Photo *multipart.FileHeader `json:"photo" form:"photo" validate:"required"`
	}

	// ScannedDish is one detected menu item, annotated with the closest
	// existing catalog dish when the name similarity clears the threshold.
	ScannedDish struct {
		Name        string  `json:"name"`
		Category    string  `json:"category"`
		Price       float64 `json:"price"`
		Description string  `json:"description"`

		MatchedDishID   string `json:"matched_dish_id,omitempty"`
		MatchedDishName string `json:"matched_dish_name,omitempty"`
		MatchScore      int    `json:"match_score,omitempty"`
	}

	UploadMenuPhotoResponse struct {
		ScanID   string        `json:"scan_id"`
		ImageURL string        `json:"image_url,omitempty"`
		Status   string        `json:"status"`
		Detected []ScannedDish `json:"detected"`
	}

	ConfirmScannedDishRequest struct {
		Name        string  `json:"name" validate:"required"`
		Category    string  `json:"category" validate:"omitempty"`
		Price       float64 `json:"price" validate:"omitempty,min=0"`
		Description string  `json:"description" validate:"omitempty"`
		// Resolution decides what happens when the item matched an existing
		// dish: "create" a new dish, "update" the matched one, or "skip".
		Resolution string `json:"resolution" validate:"required,oneof=create update skip"`
		DishID     string `json:"dish_id" validate:"omitempty,uuid"`
	}

	ConfirmScanRequest struct {
		Items []ConfirmScannedDishRequest `json:"items" validate:"required,dive"`
	}

	ConfirmScanResponse struct {
		Created int `json:"created"`
		Updated int `json:"updated"`
		Skipped int `json:"skipped"`
	}
)
