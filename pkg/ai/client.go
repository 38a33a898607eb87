package ai

import (
	"context"
	"errors"

	"github.com/amaralmassoterapia2-wq/safedining-sub000/pkg/dietary"
)

var (
	// ErrNotConfigured is returned when the API credential or model name is
	// missing. Callers treat it as "no signal", never as a blocking failure.
	ErrNotConfigured = errors.New("ai client not configured")

	ErrEmptyResponse = errors.New("empty model response")
)

// DetectedDish is one menu item recognized on a scanned photo.
type DetectedDish struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// Client is the vision/text classification collaborator. Responses are
// parsed defensively; items failing validation are dropped rather than
// raising.
type Client interface {
	// DetectDishes extracts dish records from a menu photo.
	DetectDishes(ctx context.Context, imageData []byte, mimeType string) ([]DetectedDish, error)

	// ClassifyIngredient returns raw allergen-category strings for an
	// ingredient name. Output still has to pass vocabulary normalization.
	ClassifyIngredient(ctx context.Context, name string) ([]string, error)

	// JudgeDietaryStyle decides per-dish suitability for a dietary-style
	// category from structured ingredient and nutrition data.
	JudgeDietaryStyle(ctx context.Context, category string, dishes []dietary.StyleDishInput) ([]dietary.StyleVerdict, error)
}
